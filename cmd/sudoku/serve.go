package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	httpadapter "maninstone.dev/sudoku/internal/adapters/http"
	"maninstone.dev/sudoku/internal/config"
	"maninstone.dev/sudoku/internal/generator"
	"maninstone.dev/sudoku/internal/hint"
	"maninstone.dev/sudoku/internal/infrastructure/storage"
	"maninstone.dev/sudoku/internal/ports"
	"maninstone.dev/sudoku/internal/solver"
	"maninstone.dev/sudoku/internal/usecase"
	"maninstone.dev/sudoku/internal/validator"
)

var configPath string

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Sudoku JSON API server",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&configPath, "config", "", "directory containing config.yaml")
	rootCmd.AddCommand(serveCmd)
}

func openStorage(ctx context.Context, cfg *config.Config) (ports.Storage, error) {
	switch cfg.Storage.Backend {
	case "badger":
		return storage.NewBadger(cfg.Storage.Badger.Dir)
	case "redis":
		return storage.NewRedis(ctx, cfg.Storage.Redis.Addr, cfg.Storage.Redis.Password, cfg.Storage.Redis.DB)
	default:
		if err := os.MkdirAll(cfg.Storage.FS.Dir, 0o755); err != nil {
			return nil, err
		}
		return storage.NewFS(cfg.Storage.FS.Dir), nil
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Log.Level)

	store, err := openStorage(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage.Backend, err)
	}
	defer store.Close()

	s := solver.NewBacktrackingSolver(solver.ParseStrategy(cfg.Solver.Strategy))
	uc := usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New(), hint.NewSingles(), store)
	router := httpadapter.NewRouter(uc, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening",
		"addr", cfg.Server.Addr,
		"storage", cfg.Storage.Backend,
		"strategy", cfg.Solver.Strategy,
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
