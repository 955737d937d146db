package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveResult(ctx context.Context, summary *model.GameSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, resultKey(summary.ID), data, s.cfg.ResultTTL)
	pipe.ZAdd(ctx, resultsByCompletionKey(), redis.Z{
		Score:  float64(summary.CompletedAt.UnixMilli()),
		Member: string(summary.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetResult(ctx context.Context, id model.GameID) (*model.GameSummary, error) {
	data, err := s.client.Get(ctx, resultKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrResultNotFound
		}
		return nil, err
	}

	var summary model.GameSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Storage) ListResults(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	ids, err := s.client.ZRevRange(ctx, resultsByCompletionKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.GameSummary{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = resultKey(model.GameID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	results := make([]*model.GameSummary, 0, len(values))
	var expired []any
	for i, value := range values {
		str, ok := value.(string)
		if !ok {
			// Summary expired; drop it from the index
			expired = append(expired, ids[i])
			continue
		}
		var summary model.GameSummary
		if err := json.Unmarshal([]byte(str), &summary); err != nil {
			return nil, err
		}
		results = append(results, &summary)
		if limit > 0 && len(results) == limit {
			break
		}
	}

	if len(expired) > 0 {
		if err := s.client.ZRem(ctx, resultsByCompletionKey(), expired...).Err(); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (s *Storage) DeleteResult(ctx context.Context, id model.GameID) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, resultKey(id))
	pipe.ZRem(ctx, resultsByCompletionKey(), string(id))
	_, err := pipe.Exec(ctx)
	return err
}
