package middleware

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// RevokeToken blacklists a token until it would have expired anyway.
// Logout uses this so a stolen cookie stops working immediately.
func RevokeToken(token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Hour
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return redisClient.Set(ctx, "revoked:"+token, "1", ttl).Err()
}

func IsTokenRevoked(token string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	n, err := redisClient.Exists(ctx, "revoked:"+token).Result()
	if err != nil {
		// Redis being down must not lock every user out.
		log.Printf("Token blacklist check failed: %v", err)
		return false
	}
	return n > 0
}
