package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/petlove/backend/cmd/redis"
	"github.com/petlove/backend/model"
)

// Repository defines methods for interacting with Redis key-values. The cache
// is best-effort: when the client is not initialized every call degrades to a
// no-op so the service keeps answering from the database.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// PetListKey builds the cache key for one page of the pet catalog.
func PetListKey(filter *model.PetFilter) string {
	return fmt.Sprintf("pets:list:%s:%s:%d:%d", filter.Species, filter.AdoptionStatus, filter.Page, filter.PerPage)
}

// PetListPattern matches every cached page of the pet catalog.
const PetListPattern = "pets:list:*"

// Get retrieves a value by key. A missing key is returned as an empty string,
// not an error.
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// DeleteByPattern removes every key matching the pattern. Used to drop all
// cached catalog pages after a pet is created or updated.
func (r *redis) DeleteByPattern(ctx context.Context, pattern string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
