package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Pagination.validate(),
		c.Store.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (p *PaginationConfig) validate() error {
	if p.DefaultLimit < 0 {
		return fmt.Errorf("pagination.default_limit must be >= 0, got %d", p.DefaultLimit)
	}
	return nil
}

// validate checks the shared store settings and the section of the selected
// driver only. Sections of other drivers may be left empty.
func (s *StoreConfig) validate() error {
	var errs []error

	if s.Connect.MaxElapsed < 0 {
		errs = append(errs, errors.New("store.connect.max_elapsed must not be negative"))
	}
	if s.Connect.InitialInterval <= 0 {
		errs = append(errs, errors.New("store.connect.initial_interval must be positive"))
	}
	if s.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("store.circuit_breaker.max_failures must be >= 1, got %d",
			s.CircuitBreaker.MaxFailures))
	}
	if s.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("store.rate_limit.requests_per_second must be >= 0, got %g",
			s.RateLimit.RequestsPerSecond))
	}
	if s.RateLimit.RequestsPerSecond > 0 && s.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("store.rate_limit.burst_size must be >= 1, got %d", s.RateLimit.BurstSize))
	}

	switch s.Driver {
	case DriverMemory:
		// Nothing to configure.
	case DriverMongo:
		errs = append(errs, s.Mongo.validate())
	case DriverPostgres:
		errs = append(errs, s.Postgres.validate())
	case DriverRedis:
		errs = append(errs, s.Redis.validate())
	case DriverFirestore:
		errs = append(errs, s.Firestore.validate())
	default:
		errs = append(errs, fmt.Errorf(
			"store.driver must be one of: memory, mongo, postgres, redis, firestore; got %q", s.Driver))
	}

	return errors.Join(errs...)
}

func (m *MongoConfig) validate() error {
	var errs []error

	if m.URI == "" {
		errs = append(errs, errors.New("store.mongo.uri must not be empty"))
	}
	if m.Database == "" {
		errs = append(errs, errors.New("store.mongo.database must not be empty"))
	}
	if m.ListsCollection == "" || m.CountersCollection == "" {
		errs = append(errs, errors.New("store.mongo collections must not be empty"))
	}

	return errors.Join(errs...)
}

func (p *PostgresConfig) validate() error {
	var errs []error

	if p.DSN == "" {
		errs = append(errs, errors.New("store.postgres.dsn must not be empty"))
	}
	if p.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("store.postgres.max_conns must be >= 1, got %d", p.MaxConns))
	}

	return errors.Join(errs...)
}

func (r *RedisConfig) validate() error {
	if r.Addr == "" {
		return errors.New("store.redis.addr must not be empty")
	}
	if r.DB < 0 {
		return fmt.Errorf("store.redis.db must be >= 0, got %d", r.DB)
	}
	return nil
}

func (f *FirestoreConfig) validate() error {
	var errs []error

	if f.ProjectID == "" {
		errs = append(errs, errors.New("store.firestore.project_id must not be empty"))
	}
	if f.ListsCollection == "" || f.CountersCollection == "" {
		errs = append(errs, errors.New("store.firestore collections must not be empty"))
	}

	return errors.Join(errs...)
}
