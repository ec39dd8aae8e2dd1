// Package todo holds the Todo entity, its partial-update Patch and the
// query/sort engine that orders and pages the todos of a list.
package todo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
)

// Description length bounds, counted in UTF-8 characters.
const (
	DescriptionMinLength = 1
	DescriptionMaxLength = 2000
)

// Todo is a single task entry within exactly one list. IDs are unique per list
// and come from the list's own sequence.
type Todo struct {
	ID          int64
	ListID      int64
	Description string
	State       State
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Patch carries the client-mutable fields of a partial update. Unset fields
// are left untouched; a null DueDate clears the due date.
type Patch struct {
	Description domain.Optional[string]
	DueDate     domain.Optional[time.Time]
	State       domain.Optional[State]
	UpdatedAt   time.Time
}

// IsEmpty reports whether no client field is set.
func (p Patch) IsEmpty() bool {
	return !p.Description.IsSet() && !p.DueDate.IsSet() && !p.State.IsSet()
}

// Apply returns a copy of t with the patch applied and UpdatedAt refreshed.
func (p Patch) Apply(t Todo) Todo {
	if v, ok := p.Description.Get(); ok {
		t.Description = v
	}
	if p.DueDate.IsNull() {
		t.DueDate = nil
	} else if v, ok := p.DueDate.Get(); ok {
		t.DueDate = &v
	}
	if v, ok := p.State.Get(); ok {
		t.State = v
	}
	if p.UpdatedAt.After(t.UpdatedAt) {
		t.UpdatedAt = p.UpdatedAt
	}
	return t
}

// CheckDescription returns a description of the violated constraint, or ""
// when desc is acceptable.
func CheckDescription(desc string) string {
	n := utf8.RuneCountInString(desc)
	switch {
	case n < DescriptionMinLength || strings.TrimSpace(desc) == "":
		return `"description" is not allowed to be empty`
	case n > DescriptionMaxLength:
		return fmt.Sprintf(`"description" length must be less than or equal to %d characters long`,
			DescriptionMaxLength)
	default:
		return ""
	}
}

// Timestamp normalizes t to the precision exposed on the wire (UTC
// milliseconds), so stored and returned values compare equal.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// FromEpochMillis converts a client-supplied epoch-milliseconds value.
func FromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
