package ports

import "context"

// HealthChecker reports whether one dependency is usable. The storage
// backends implement it through ListRepository.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g. "mongo".
	Name() string
	// HealthCheck returns nil when the dependency answers before ctx ends.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates checkers for the readiness and database health
// endpoints.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every checker and maps its name to the result; nil
	// means healthy.
	CheckAll(ctx context.Context) map[string]error
}
