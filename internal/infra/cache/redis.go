package cache

import (
	"context"

	"github.com/Alaebelamkaddame/content-management/internal/config"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

func New(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

// RegisterOpenTelemetryPlugin instruments the redis client for tracing.
// Call after telemetry.SetupTracing so the global tracer provider is set.
func RegisterOpenTelemetryPlugin(rdb *redis.Client) error {
	return redisotel.InstrumentTracing(rdb)
}

func Close(rdb *redis.Client) error {
	return rdb.Close()
}
