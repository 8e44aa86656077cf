package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"maninstone.dev/sudoku/internal/domain"
)

const (
	redisKeyPrefix = "sudoku:puzzle:"
	redisIndexKey  = "sudoku:puzzles"
)

// Redis stores puzzles as JSON strings keyed by ID, with a set of all IDs
// for listing.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to the given Redis instance and verifies the
// connection with a ping.
func NewRedis(ctx context.Context, addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &Redis{client: client}, nil
}

func (s *Redis) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+p.ID, data, 0)
	pipe.SAdd(ctx, redisIndexKey, p.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Redis) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Redis) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	ids, err := s.client.SMembers(ctx, redisIndexKey).Result()
	if err != nil {
		return nil, err
	}
	var out []domain.PuzzleMeta
	for _, id := range ids {
		p, err := s.Load(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue // index can outlive a deleted key
			}
			return nil, err
		}
		out = append(out, domain.PuzzleMeta{
			ID:         p.ID,
			Name:       p.Name,
			Difficulty: p.Difficulty,
			CreatedAt:  p.CreatedAt,
		})
	}
	return out, nil
}

func (s *Redis) Close() error { return s.client.Close() }
