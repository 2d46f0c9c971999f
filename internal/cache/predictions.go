package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/invensight/backend-go/internal/config"
	"github.com/invensight/backend-go/internal/domain"
)

const (
	predictionKeyPrefix = "analytics:predictions"
	predictionScanBatch = 100
)

// PredictionCache stores per-snapshot prediction results. Keys are derived
// from a hash of the snapshot, so a store mutation naturally misses the
// cache without explicit invalidation.
type PredictionCache interface {
	GetPredictions(ctx context.Context, snap domain.Snapshot) ([]domain.PredictionResult, bool, error)
	SetPredictions(ctx context.Context, snap domain.Snapshot, predictions []domain.PredictionResult) error
	InvalidateAll(ctx context.Context) error
}

type redisPredictionCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopPredictionCache struct{}

// NewPredictionCache returns a Redis-backed cache, or a noop one when
// caching is disabled in config.
func NewPredictionCache(cfg config.CacheConfig) (PredictionCache, error) {
	if !cfg.Enabled {
		return &noopPredictionCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisPredictionCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// NewNoopPredictionCache returns a cache that never hits.
func NewNoopPredictionCache() PredictionCache {
	return &noopPredictionCache{}
}

func (c *redisPredictionCache) GetPredictions(ctx context.Context, snap domain.Snapshot) ([]domain.PredictionResult, bool, error) {
	key := buildPredictionKey(snap)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var predictions []domain.PredictionResult
	if err := json.Unmarshal(payload, &predictions); err != nil {
		return nil, false, fmt.Errorf("decode prediction cache: %w", err)
	}

	return predictions, true, nil
}

func (c *redisPredictionCache) SetPredictions(ctx context.Context, snap domain.Snapshot, predictions []domain.PredictionResult) error {
	key := buildPredictionKey(snap)
	payload, err := json.Marshal(predictions)
	if err != nil {
		return fmt.Errorf("encode prediction cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisPredictionCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, predictionKeyPrefix, predictionScanBatch)
}

func (n *noopPredictionCache) GetPredictions(ctx context.Context, snap domain.Snapshot) ([]domain.PredictionResult, bool, error) {
	return nil, false, nil
}

func (n *noopPredictionCache) SetPredictions(ctx context.Context, snap domain.Snapshot, predictions []domain.PredictionResult) error {
	return nil
}

func (n *noopPredictionCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildPredictionKey(snap domain.Snapshot) string {
	return fmt.Sprintf("%s:%s", predictionKeyPrefix, snapshotHash(snap))
}

func snapshotHash(snap domain.Snapshot) string {
	payload, err := json.Marshal(snap)
	if err != nil {
		return "unhashable"
	}
	sum := sha1.Sum(payload)
	return hex.EncodeToString(sum[:])
}
