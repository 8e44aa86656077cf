package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Storage.Backend != "fs" {
		t.Fatalf("backend = %q, want fs", cfg.Storage.Backend)
	}
	if cfg.Solver.Strategy != "mrv" {
		t.Fatalf("strategy = %q, want mrv", cfg.Solver.Strategy)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  addr: \":9090\"\nstorage:\n  backend: badger\n  badger:\n    dir: /tmp/bdg\nlog:\n  level: debug\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Storage.Backend != "badger" || cfg.Storage.Badger.Dir != "/tmp/bdg" {
		t.Fatalf("storage = %+v", cfg.Storage)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.Log.Level)
	}
	// untouched keys keep their defaults
	if cfg.Storage.Redis.Addr != "localhost:6379" {
		t.Fatalf("redis addr = %q, want default", cfg.Storage.Redis.Addr)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("storage:\n  backend: s3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
