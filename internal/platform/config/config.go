// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Store drivers accepted by store.driver.
const (
	DriverMemory    = "memory"
	DriverMongo     = "mongo"
	DriverPostgres  = "postgres"
	DriverRedis     = "redis"
	DriverFirestore = "firestore"
)

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
	Pagination PaginationConfig `koanf:"pagination"`
	Store      StoreConfig      `koanf:"store"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// ShutdownTimeout bounds the drain of in-flight requests on exit.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// PaginationConfig holds paging defaults for todo listings.
type PaginationConfig struct {
	// DefaultLimit applies when a request omits limit. Zero means unlimited.
	DefaultLimit int `koanf:"default_limit"`
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	Driver         string               `koanf:"driver"`
	Connect        ConnectConfig        `koanf:"connect"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
	Mongo          MongoConfig          `koanf:"mongo"`
	Postgres       PostgresConfig       `koanf:"postgres"`
	Redis          RedisConfig          `koanf:"redis"`
	Firestore      FirestoreConfig      `koanf:"firestore"`
}

// ConnectConfig bounds the exponential backoff used while establishing the
// store connection at startup. Requests are never retried.
type ConnectConfig struct {
	MaxElapsed      time.Duration `koanf:"max_elapsed"`
	InitialInterval time.Duration `koanf:"initial_interval"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token-bucket settings for store calls.
// A zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// MongoConfig configures the MongoDB backend.
type MongoConfig struct {
	URI                string `koanf:"uri"`
	Database           string `koanf:"database"`
	ListsCollection    string `koanf:"lists_collection"`
	CountersCollection string `koanf:"counters_collection"`
}

// PostgresConfig configures the PostgreSQL backend.
type PostgresConfig struct {
	DSN        string `koanf:"dsn"`
	MaxConns   int32  `koanf:"max_conns"`
	AutoCreate bool   `koanf:"auto_create"`
}

// RedisConfig configures the Redis backend.
type RedisConfig struct {
	Addr      string `koanf:"addr"`
	Password  string `koanf:"password"`
	DB        int    `koanf:"db"`
	KeyPrefix string `koanf:"key_prefix"`
}

// FirestoreConfig configures the Cloud Firestore backend. CredentialsFile is
// optional; application default credentials are used when it is empty.
type FirestoreConfig struct {
	ProjectID          string `koanf:"project_id"`
	ListsCollection    string `koanf:"lists_collection"`
	CountersCollection string `koanf:"counters_collection"`
	CredentialsFile    string `koanf:"credentials_file"`
}
