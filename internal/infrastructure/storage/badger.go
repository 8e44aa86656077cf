package storage

import (
	"context"
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v3"

	"maninstone.dev/sudoku/internal/domain"
)

const badgerKeyPrefix = "puzzle/"

// Badger stores puzzles as JSON values in an embedded Badger database.
type Badger struct {
	db *badger.DB
}

// NewBadger opens (or creates) a Badger database at dir. An empty dir
// opens an in-memory database, useful for tests.
func NewBadger(dir string) (*Badger, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(dir)
	}
	opts = opts.WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Badger{db: db}, nil
}

func badgerKey(id string) []byte {
	return []byte(badgerKeyPrefix + id)
}

func (s *Badger) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(p.ID), data)
	})
}

func (s *Badger) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var out domain.Puzzle
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Badger) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(badgerKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var p domain.Puzzle
				if err := json.Unmarshal(val, &p); err != nil || p.ID == "" {
					return nil // skip unreadable entries
				}
				out = append(out, domain.PuzzleMeta{
					ID:         p.ID,
					Name:       p.Name,
					Difficulty: p.Difficulty,
					CreatedAt:  p.CreatedAt,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Badger) Close() error { return s.db.Close() }
