package usecase

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

import (
	"context"
	"time"
)

// Cache is the read-through cache port. Implementations must treat an
// unavailable backend as a miss.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const (
	keyProfileDirectory = "profiles:all"
	profileKeyPrefix    = "profile:"
	averageKeyPrefix    = "rating:avg:"
)

func profileKey(memberID string) string { return profileKeyPrefix + memberID }
func averageKey(memberID string) string { return averageKeyPrefix + memberID }

type noopCache struct{}

func (noopCache) GetJSON(context.Context, string, any) (bool, error)        { return false, nil }
func (noopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) Delete(context.Context, ...string) error                   { return nil }

func cacheOrNoop(c Cache) Cache {
	if c == nil {
		return noopCache{}
	}
	return c
}
