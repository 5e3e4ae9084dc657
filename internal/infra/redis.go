package infra

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"itinero/internal/config"
)

func InitRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// The catalog degrades to uncached reads when Redis is away.
		log.Printf("Redis not reachable at %s: %v", cfg.Redis.Addr, err)
	}

	return client
}
