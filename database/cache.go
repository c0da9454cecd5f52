package database

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Read-through cache for the public field list. Optional: when no redis
// address is configured everything degrades to straight DB reads.
var Cache *redis.Client

var cacheCtx = context.Background()

const fieldCacheTTL = 5 * time.Minute

func ConnectCache(addr string) {
	if addr == "" {
		return
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := rdb.Ping(cacheCtx).Err(); err != nil {
		log.Printf("[cache] redis unavailable at %s, running without cache: %v", addr, err)
		return
	}
	Cache = rdb
}

// CacheGet returns the cached payload for key, or "" on miss/disabled.
func CacheGet(key string) string {
	if Cache == nil {
		return ""
	}
	v, err := Cache.Get(cacheCtx, key).Result()
	if err != nil {
		return ""
	}
	return v
}

func CacheSet(key, val string) {
	if Cache == nil {
		return
	}
	if err := Cache.Set(cacheCtx, key, val, fieldCacheTTL).Err(); err != nil {
		log.Printf("[cache] set %s failed: %v", key, err)
	}
}

func CacheDel(key string) {
	if Cache == nil {
		return
	}
	if err := Cache.Del(cacheCtx, key).Err(); err != nil {
		log.Printf("[cache] del %s failed: %v", key, err)
	}
}
