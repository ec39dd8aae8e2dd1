package todo

import (
	"cmp"
	"slices"
)

// OrderBy names the timestamp a page is sorted on.
type OrderBy string

const (
	OrderByCreationDate   OrderBy = "creation_date"
	OrderByLastUpdateDate OrderBy = "last_update_date"
)

// IsValid returns true if the field is one of the defined constants.
func (o OrderBy) IsValid() bool {
	return o == OrderByCreationDate || o == OrderByLastUpdateDate
}

// Direction is the sort direction applied to the OrderBy field.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// IsValid returns true if the direction is one of the defined constants.
func (d Direction) IsValid() bool {
	return d == Ascending || d == Descending
}

// Query selects one page of a list's todos. Zero values mean defaults:
// creation_date, descending, offset 0, no limit.
type Query struct {
	Index     int
	Limit     int
	OrderBy   OrderBy
	Direction Direction
}

// Normalize fills defaulted fields.
func (q Query) Normalize() Query {
	if q.OrderBy == "" {
		q.OrderBy = OrderByCreationDate
	}
	if q.Direction == "" {
		q.Direction = Descending
	}
	if q.Index < 0 {
		q.Index = 0
	}
	return q
}

// Compare orders a and b for q: by the OrderBy timestamp in q's direction,
// then by id ascending regardless of direction.
func (q Query) Compare(a, b Todo) int {
	q = q.Normalize()

	ta, tb := a.CreatedAt, b.CreatedAt
	if q.OrderBy == OrderByLastUpdateDate {
		ta, tb = a.UpdatedAt, b.UpdatedAt
	}

	c := ta.Compare(tb)
	if q.Direction == Descending {
		c = -c
	}
	if c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Paginate sorts a copy of todos and returns the page selected by q.
// An index past the end yields an empty, non-nil slice.
func Paginate(todos []Todo, q Query) []Todo {
	q = q.Normalize()

	sorted := slices.Clone(todos)
	slices.SortFunc(sorted, q.Compare)

	if q.Index >= len(sorted) {
		return []Todo{}
	}
	end := len(sorted)
	if q.Limit > 0 && q.Limit < end-q.Index {
		end = q.Index + q.Limit
	}
	return sorted[q.Index:end]
}
