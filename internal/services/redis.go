package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// Catalog cache TTL. Short on purpose: admin edits must show up quickly
// even if an invalidation is missed.
const catalogCacheTTL = 5 * time.Minute

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// CatalogCacheKey builds the cache key for a catalog list response.
// The raw query string keeps distinct filter combinations apart.
func CatalogCacheKey(collection, rawQuery string) string {
	if rawQuery == "" {
		return fmt.Sprintf("catalog:%s", collection)
	}
	return fmt.Sprintf("catalog:%s?%s", collection, rawQuery)
}

// GetCachedCatalog returns a cached catalog list response, or redis.Nil
// if the key is absent.
func GetCachedCatalog(ctx context.Context, key string) (string, error) {
	if RedisClient == nil {
		return "", redis.Nil
	}
	return RedisClient.Get(ctx, key).Result()
}

// SetCachedCatalog stores a serialized catalog list response.
func SetCachedCatalog(ctx context.Context, key string, payload []byte) error {
	if RedisClient == nil {
		return nil
	}
	return RedisClient.Set(ctx, key, payload, catalogCacheTTL).Err()
}

// InvalidateCatalog drops every cached list for a collection. Called from
// the admin create/update/delete handlers.
func InvalidateCatalog(ctx context.Context, collection string) error {
	if RedisClient == nil {
		return nil
	}

	pattern := fmt.Sprintf("catalog:%s*", collection)
	iter := RedisClient.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := RedisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
