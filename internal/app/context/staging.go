package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/logging"
)

// AddAction stages action to run on Commit after the ones already staged.
// It fails with ErrNilAction or, once Commit has been called,
// ErrAlreadyCommitted. Safe for concurrent use.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, action)
	return nil
}

// Pending reports how many staged actions are waiting for Commit.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return len(rc.items)
}

// Commit executes the staged actions in order. On the first failure the
// actions that had succeeded are rolled back newest first and the failure is
// returned; rollback failures are only logged. Commit can run once per
// RequestContext, whatever its outcome.
func (rc *RequestContext) Commit(ctx context.Context) error {
	staged, err := rc.drain()
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx).With(slog.String("operation", "Commit"))

	for n, action := range staged {
		log.DebugContext(ctx, "executing action",
			slog.String("action", action.Description()),
			slog.String("step", fmt.Sprintf("%d/%d", n+1, len(staged))),
		)
		if err := action.Execute(ctx); err != nil {
			log.ErrorContext(ctx, "action failed",
				slog.String("action", action.Description()),
				slog.Int("rolling_back", n),
				slog.Any("error", err),
			)
			undo(context.WithoutCancel(ctx), log, staged[:n])
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}
	return nil
}

func (rc *RequestContext) drain() ([]domain.Action, error) {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return nil, ErrAlreadyCommitted
	}
	rc.committed = true
	staged := rc.items
	rc.items = nil
	return staged, nil
}

// undo rolls back done newest first. ctx must outlive the request.
func undo(ctx context.Context, log *slog.Logger, done []domain.Action) {
	for n := len(done) - 1; n >= 0; n-- {
		action := done[n]
		if err := action.Rollback(ctx); err != nil {
			log.ErrorContext(ctx, "rollback failed",
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			continue
		}
		log.InfoContext(ctx, "rolled back", slog.String("action", action.Description()))
	}
}
