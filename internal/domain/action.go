package domain

import "context"

// Action is one reversible step of a write that spans several store calls,
// such as emptying a list before deleting it.
type Action interface {
	Execute(ctx context.Context) error
	// Rollback undoes a successful Execute. It may run after the request
	// context has ended.
	Rollback(ctx context.Context) error
	// Description names the step in logs, e.g. "delete list 12".
	Description() string
}
