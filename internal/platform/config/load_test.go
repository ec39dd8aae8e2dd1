package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_STORE_MONGO_URI", "mongodb://db.internal:27017")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if cfg.Store.Driver != config.DriverMongo {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, config.DriverMongo)
	}
	if cfg.Store.Mongo.URI != "mongodb://db.internal:27017" {
		t.Errorf("Store.Mongo.URI = %q, want env value", cfg.Store.Mongo.URI)
	}
}

func TestLoad_ProdProfileRequiresMongoURI(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("prod")
	if err == nil {
		t.Fatal("Load(\"prod\") without APP_STORE_MONGO_URI returned nil error")
	}
	if !strings.Contains(err.Error(), "store.mongo.uri") {
		t.Errorf("error = %v, want mention of store.mongo.uri", err)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Pagination.DefaultLimit != 100 {
		t.Errorf("Pagination.DefaultLimit = %d, want 100 (from base)", cfg.Pagination.DefaultLimit)
	}
	if cfg.Store.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Store.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Store.CircuitBreaker.MaxFailures)
	}
	if cfg.Store.Mongo.Database != "todo" {
		t.Errorf("Store.Mongo.Database = %q, want \"todo\" (from base)", cfg.Store.Mongo.Database)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "server:\n  port: 9999\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\"", cfg.Log.Level)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("Server.WriteTimeout = %v, want 10s (default)", cfg.Server.WriteTimeout)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s (default)", cfg.Server.ShutdownTimeout)
	}
	if cfg.Store.Driver != config.DriverMemory {
		t.Errorf("Store.Driver = %q, want memory (default)", cfg.Store.Driver)
	}
	if cfg.Pagination.DefaultLimit != 100 {
		t.Errorf("Pagination.DefaultLimit = %d, want 100 (default)", cfg.Pagination.DefaultLimit)
	}
}

func TestLoad_EnvOverridesDefaultOnlyKey(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: info\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "store:\n  driver: redis\n")
	t.Setenv("APP_STORE_REDIS_ADDR", "cache:6379")
	t.Setenv("APP_STORE_REDIS_KEY_PREFIX", "todo-test")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Store.Redis.Addr != "cache:6379" {
		t.Errorf("Store.Redis.Addr = %q, want \"cache:6379\"", cfg.Store.Redis.Addr)
	}
	if cfg.Store.Redis.KeyPrefix != "todo-test" {
		t.Errorf("Store.Redis.KeyPrefix = %q, want \"todo-test\"", cfg.Store.Redis.KeyPrefix)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "single segment key",
			env:  map[string]string{"APP_SERVER_PORT": "9090"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.Port != 9090 {
					t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
				}
			},
		},
		{
			name: "underscore inside a segment",
			env:  map[string]string{"APP_SERVER_READ_TIMEOUT": "15s"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.ReadTimeout != 15*time.Second {
					t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
				}
			},
		},
		{
			name: "three levels deep",
			env:  map[string]string{"APP_STORE_CIRCUIT_BREAKER_MAX_FAILURES": "7"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Store.CircuitBreaker.MaxFailures != 7 {
					t.Errorf("Store.CircuitBreaker.MaxFailures = %d, want 7", cfg.Store.CircuitBreaker.MaxFailures)
				}
			},
		},
		{
			name: "unknown variables are ignored",
			env:  map[string]string{"APP_PROFILE": "local", "APP_SERVER_PORTT": "1"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Server.Port != 8080 {
					t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir("../../..")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load("local")
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `dev\prod`, "a/b"} {
		if _, err := config.Load(profile, config.WithConfigDir(t.TempDir())); err == nil {
			t.Errorf("Load(%q) returned nil error", profile)
		}
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_NegativeShutdownTimeout(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.ShutdownTimeout = -time.Second

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "server.shutdown_timeout") {
		t.Fatalf("Validate() = %v, want shutdown_timeout error", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Store.Driver = "cassandra"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for unknown driver")
	}
}

func TestValidate_DriverSections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:    "mongo without uri",
			mutate:  func(c *config.Config) { c.Store.Driver = config.DriverMongo },
			wantErr: "store.mongo.uri",
		},
		{
			name:    "postgres without dsn",
			mutate:  func(c *config.Config) { c.Store.Driver = config.DriverPostgres },
			wantErr: "store.postgres.dsn",
		},
		{
			name:    "redis without addr",
			mutate:  func(c *config.Config) { c.Store.Driver = config.DriverRedis },
			wantErr: "store.redis.addr",
		},
		{
			name:    "firestore without project",
			mutate:  func(c *config.Config) { c.Store.Driver = config.DriverFirestore },
			wantErr: "store.firestore.project_id",
		},
		{
			name: "negative page limit",
			mutate: func(c *config.Config) {
				c.Pagination.DefaultLimit = -1
			},
			wantErr: "pagination.default_limit",
		},
		{
			name: "rate limit without burst",
			mutate: func(c *config.Config) {
				c.Store.RateLimit.RequestsPerSecond = 10
				c.Store.RateLimit.BurstSize = 0
			},
			wantErr: "store.rate_limit.burst_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_OtherDriverSectionsIgnored(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Store.Driver = config.DriverPostgres
	cfg.Store.Postgres.DSN = "postgres://localhost/todo"
	cfg.Store.Mongo = config.MongoConfig{}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Pagination: config.PaginationConfig{DefaultLimit: 100},
		Store: config.StoreConfig{
			Driver: config.DriverMemory,
			Connect: config.ConnectConfig{
				MaxElapsed:      30 * time.Second,
				InitialInterval: 500 * time.Millisecond,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
			RateLimit: config.RateLimitConfig{BurstSize: 200},
			Mongo: config.MongoConfig{
				Database:           "todo",
				ListsCollection:    "lists",
				CountersCollection: "counters",
			},
			Postgres: config.PostgresConfig{MaxConns: 10},
			Firestore: config.FirestoreConfig{
				ListsCollection:    "lists",
				CountersCollection: "counters",
			},
		},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
