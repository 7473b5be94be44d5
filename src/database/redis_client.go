package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisCtx    = context.Background()
	RedisURI    string
)

// InitRedis connects the shared Redis client. Redis is optional in dev:
// on failure the client stays nil and callers fall through without caching.
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI") // e.g. localhost:6379
	if RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Caching and scheduled jobs disabled.")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: "",
		DB:       0,
	})
	if _, err := RedisClient.Ping(RedisCtx).Result(); err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		RedisClient = nil
		return
	}
	log.Println("✅ Redis connected successfully")
}
