package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/firestorestore"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/mongo"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/postgres"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/redisstore"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Connection is an opened backend together with its release function.
type Connection struct {
	Repo  ports.ListRepository
	close func(ctx context.Context) error
}

// Shutdown releases the backend's client or pool.
func (c *Connection) Shutdown(ctx context.Context) error {
	if c.close == nil {
		return nil
	}
	return c.close(ctx)
}

type openFunc func(ctx context.Context) (*Connection, error)

// Connect opens the backend named by cfg.Driver. Failed attempts are retried
// with exponential backoff starting at cfg.Connect.InitialInterval until
// cfg.Connect.MaxElapsed has passed or ctx is done.
func Connect(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (*Connection, error) {
	open, err := opener(cfg)
	if err != nil {
		return nil, err
	}
	return connectWithRetry(ctx, cfg.Driver, cfg.Connect, logger, open)
}

func opener(cfg config.StoreConfig) (openFunc, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return func(context.Context) (*Connection, error) {
			return &Connection{Repo: memory.New()}, nil
		}, nil
	case config.DriverMongo:
		return func(ctx context.Context) (*Connection, error) {
			s, err := mongo.Open(ctx, cfg.Mongo)
			if err != nil {
				return nil, err
			}
			return &Connection{Repo: s, close: s.Close}, nil
		}, nil
	case config.DriverPostgres:
		return func(ctx context.Context) (*Connection, error) {
			s, err := postgres.Open(ctx, cfg.Postgres)
			if err != nil {
				return nil, err
			}
			return &Connection{Repo: s, close: func(context.Context) error { s.Close(); return nil }}, nil
		}, nil
	case config.DriverRedis:
		return func(ctx context.Context) (*Connection, error) {
			s, err := redisstore.Open(ctx, cfg.Redis)
			if err != nil {
				return nil, err
			}
			return &Connection{Repo: s, close: func(context.Context) error { return s.Close() }}, nil
		}, nil
	case config.DriverFirestore:
		return func(ctx context.Context) (*Connection, error) {
			s, err := firestorestore.Open(ctx, cfg.Firestore)
			if err != nil {
				return nil, err
			}
			return &Connection{Repo: s, close: func(context.Context) error { return s.Close() }}, nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func connectWithRetry(
	ctx context.Context, driver string, cc config.ConnectConfig, logger *slog.Logger, open openFunc,
) (*Connection, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cc.InitialInterval
	b.MaxElapsedTime = cc.MaxElapsed

	attempt := 0
	conn, err := backoff.RetryNotifyWithData(
		func() (*Connection, error) {
			attempt++
			return open(ctx)
		},
		backoff.WithContext(b, ctx),
		func(err error, wait time.Duration) {
			logger.WarnContext(ctx, "store connection failed, retrying",
				slog.String("driver", driver),
				slog.Int("attempt", attempt),
				slog.Duration("retry_in", wait),
				slog.Any("error", err),
			)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s store after %d attempts: %w", driver, attempt, err)
	}

	logger.InfoContext(ctx, "store connected", slog.String("driver", driver), slog.Int("attempts", attempt))
	return conn, nil
}
