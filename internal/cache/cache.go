// Package cache holds rendered public listing payloads (approved reviews,
// published case studies) so the marketing pages don't hit Mongo on every
// view. Entries expire by TTL and are dropped early whenever an admin
// mutation changes what a listing would show.
package cache

import (
	"context"
	"time"
)

// Cache stores serialized response bodies keyed by listing. Get reports a
// miss with the second return value; an expired or absent key is a miss, not
// an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NoopCache backs deployments without Redis configured: every Get is a miss
// and writes go nowhere, so the listings are rendered fresh each time.
type NoopCache struct{}

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}
