package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/stream-console/internal/config"
	"github.com/MKhiriev/stream-console/internal/logger"
)

// NewMedium initialises the storage medium selected by cfg.Driver:
//   - "sqlite": opens the database file at cfg.DSN and runs migrations;
//   - "redis": connects to cfg.Redis.Addr and pings it;
//   - "memory": returns a process-local map.
func NewMedium(ctx context.Context, cfg config.Storage, log *logger.Logger) (Medium, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating storage medium...")

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return NewSQLiteMedium(db, log), nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis connection error: %w", err)
		}

		return NewRedisMedium(client, cfg.Redis.Prefix, log), nil

	case config.DriverMemory:
		return NewMemoryMedium(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
