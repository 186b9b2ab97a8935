package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var RedisClient *redis.Client

func ConnectRedis(cfg RedisConfig) error {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	RedisClient = redis.NewClient(opt)

	ctx, cancel := WithTimeout()
	defer cancel()

	res, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info().Str("component", "redis").Str("ping", res).Msg("✅ connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
	}
}

func PingRedis(ctx context.Context) error {
	if RedisClient == nil {
		return fmt.Errorf("redis not initialised")
	}
	return RedisClient.Ping(ctx).Err()
}
