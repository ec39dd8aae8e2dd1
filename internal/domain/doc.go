// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/list, domain/todo).
// This root package holds the API error catalog, the three-state Optional
// used by partial updates and the Action interface for compensated writes.
package domain
