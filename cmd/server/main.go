// Package main runs the todo list service. It loads configuration, wires the
// dependency graph with samber/do v2, connects the configured store and
// serves HTTP until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-list-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/instrumented"
	"github.com/jsamuelsen11/todo-list-service/internal/app"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

const (
	storeCloseTimeout   = 5 * time.Second
	otelShutdownTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	conn, err := store.Connect(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), storeCloseTimeout)
		defer cancel()
		if err := conn.Shutdown(closeCtx); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	do.ProvideValue(injector, conn)
	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	if err := server.Run(ctx); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.ListRepository, error) {
		conn := do.MustInvoke[*store.Connection](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return instrumented.New(conn.Repo, &cfg.Store, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[ports.ListRepository](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ListService, error) {
		repo := do.MustInvoke[ports.ListRepository](i)
		return app.NewListService(repo, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ListHandler, error) {
		return handlers.NewListHandler(do.MustInvoke[ports.ListService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		return handlers.NewTodoHandler(do.MustInvoke[ports.ListService](i), cfg.Pagination.DefaultLimit), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, do.MustInvoke[ports.ListRepository](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.ListHandler](i),
			do.MustInvoke[*handlers.TodoHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(nil, metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
			middleware.AppContext(),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
