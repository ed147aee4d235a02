package database

import (
	"context"
	"time"

	"github.com/Tareq669/bot-sub000/internal/config"
	"github.com/Tareq669/bot-sub000/internal/logging"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when no Redis address is configured; the
// scheduler then runs without a cross-instance lease.
func ConnectRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logging.Log.Fatalf("failed to connect to redis: %v", err)
	}

	logging.Log.Info("redis connected")
	return rdb
}
