package config

const (
	defaultServerPort   = 8080
	defaultPageLimit    = 100
	defaultPostgresPool = 10

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
	defaultRateLimitBurst            = 200
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-list-service",

		"pagination.default_limit": defaultPageLimit,

		"store.driver":                          DriverMemory,
		"store.connect.max_elapsed":             "30s",
		"store.connect.initial_interval":        "500ms",
		"store.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.circuit_breaker.timeout":         "30s",
		"store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"store.rate_limit.requests_per_second":  0,
		"store.rate_limit.burst_size":           defaultRateLimitBurst,

		"store.mongo.uri":                 "",
		"store.mongo.database":            "todo",
		"store.mongo.lists_collection":    "lists",
		"store.mongo.counters_collection": "counters",

		"store.postgres.dsn":         "",
		"store.postgres.max_conns":   defaultPostgresPool,
		"store.postgres.auto_create": true,

		"store.redis.addr":       "",
		"store.redis.password":   "",
		"store.redis.db":         0,
		"store.redis.key_prefix": "todo",

		"store.firestore.project_id":          "",
		"store.firestore.lists_collection":    "lists",
		"store.firestore.counters_collection": "counters",
		"store.firestore.credentials_file":    "",
	}
}
