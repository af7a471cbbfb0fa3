package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"marketcontext/internal/domain/models"
	domrepo "marketcontext/internal/domain/repository"
)

// RedisSink keeps the most recent snapshots in a capped Redis list. This is
// history for operators and downstream consumers, not a cache: nothing in the
// aggregation path ever reads it back.
type RedisSink struct {
	client     *redis.Client
	key        string
	maxEntries int64
}

// NewRedisSink creates a Redis-backed snapshot sink.
func NewRedisSink(addr, password string, db int, key string, maxEntries int64) domrepo.SnapshotSink {
	if key == "" {
		key = "marketcontext:snapshots"
	}
	if maxEntries <= 0 {
		maxEntries = 100
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisSink{client: client, key: key, maxEntries: maxEntries}
}

func (s *RedisSink) Record(ctx context.Context, snap *models.MarketSnapshot) error {
	if snap == nil {
		return nil
	}

	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, s.key, b)
	pipe.LTrim(ctx, s.key, 0, s.maxEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis record: %w", err)
	}
	return nil
}

func (s *RedisSink) Close() error {
	return s.client.Close()
}
