// Package list holds the List entity: a named container of todo entries.
package list

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Name length bounds, counted in UTF-8 characters.
const (
	NameMinLength = 1
	NameMaxLength = 400
)

// List is a named container of todos. IDs come from a global sequence owned
// by the repository.
type List struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CheckName returns a description of the violated constraint, or "" when
// name is acceptable.
func CheckName(name string) string {
	n := utf8.RuneCountInString(name)
	switch {
	case n < NameMinLength || strings.TrimSpace(name) == "":
		return `"name" is not allowed to be empty`
	case n > NameMaxLength:
		return fmt.Sprintf(`"name" length must be less than or equal to %d characters long`, NameMaxLength)
	default:
		return ""
	}
}

// NormalizeName trims surrounding whitespace before a name is stored.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
