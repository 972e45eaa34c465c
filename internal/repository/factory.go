package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/fyf-cart/internal/config"
	"github.com/nikolayk812/fyf-cart/internal/port"
	"github.com/redis/go-redis/v9"
)

// Open builds the cart repository selected by cfg.Driver. The returned close
// function releases the underlying connections.
func Open(ctx context.Context, cfg config.StoreConfig) (port.CartRepository, func() error, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewKeyValueCart(NewMemoryStore()), func() error { return nil }, nil

	case config.DriverSQLite:
		store, err := OpenSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("OpenSQLiteStore: %w", err)
		}
		return NewKeyValueCart(store), store.Close, nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("client.Ping: %w", err)
		}
		store := NewRedisStore(client)
		return NewKeyValueCart(store), store.Close, nil

	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("pool.Ping: %w", err)
		}
		return NewCart(pool), func() error { pool.Close(); return nil }, nil

	default:
		return nil, nil, fmt.Errorf("store driver[%s] is not supported", cfg.Driver)
	}
}
