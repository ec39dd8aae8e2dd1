package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/list"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// MaxBodyBytes caps the size of a JSON request body (1 MiB).
const MaxBodyBytes = 1 << 20

// Query parameter names accepted by the todo listing.
const (
	ParamIndex          = "index"
	ParamLimit          = "limit"
	ParamOrderBy        = "orderBy"
	ParamOrderDirection = "orderDirection"
)

const msgIDNotAllowed = `"id" is not allowed`

// CreateListRequest is the body of POST /lists.
type CreateListRequest struct {
	ID   domain.Optional[json.RawMessage] `json:"id"`
	Name *string                          `json:"name"`
}

// Validate returns ErrIDNotAcceptable or ErrInvalidListName with detail.
func (r *CreateListRequest) Validate() error {
	if r.ID.IsSet() {
		return domain.ErrIDNotAcceptable.WithDetail(msgIDNotAllowed)
	}
	if r.Name == nil {
		return domain.ErrInvalidListName.WithDetail(`"name" is required`)
	}
	if msg := list.CheckName(*r.Name); msg != "" {
		return domain.ErrInvalidListName.WithDetail(msg)
	}
	return nil
}

// CreateTodoRequest is the body of POST /lists/{listId}/todos. DueDate is
// epoch milliseconds.
type CreateTodoRequest struct {
	ID          domain.Optional[json.RawMessage] `json:"id"`
	Description *string                          `json:"description"`
	DueDate     domain.Optional[int64]           `json:"due_date"`
}

// Validate returns ErrIDNotAcceptable or ErrInvalidTodoEntry with detail.
func (r *CreateTodoRequest) Validate() error {
	if r.ID.IsSet() {
		return domain.ErrIDNotAcceptable.WithDetail(msgIDNotAllowed)
	}
	if r.Description == nil {
		return domain.ErrInvalidTodoEntry.WithDetail(`"description" is required`)
	}
	if msg := todo.CheckDescription(*r.Description); msg != "" {
		return domain.ErrInvalidTodoEntry.WithDetail(msg)
	}
	if r.DueDate.IsNull() {
		return domain.ErrInvalidTodoEntry.WithDetail(`"due_date" must be a number`)
	}
	if msg := checkDueDate(r.DueDate); msg != "" {
		return domain.ErrInvalidTodoEntry.WithDetail(msg)
	}
	return nil
}

// NewTodo converts a validated request into the service input.
func (r *CreateTodoRequest) NewTodo() ports.NewTodo {
	in := ports.NewTodo{Description: *r.Description}
	if ms, ok := r.DueDate.Get(); ok {
		due := todo.FromEpochMillis(ms)
		in.DueDate = &due
	}
	return in
}

// UpdateTodoRequest is the body of PATCH /lists/{listId}/todos/{todoId}.
// A null due_date clears the due date.
type UpdateTodoRequest struct {
	ID          domain.Optional[json.RawMessage] `json:"id"`
	Description domain.Optional[string]          `json:"description"`
	DueDate     domain.Optional[int64]           `json:"due_date"`
	State       domain.Optional[string]          `json:"state"`
}

// Validate returns ErrIDNotAcceptable or ErrInvalidTodoEntry with detail.
func (r *UpdateTodoRequest) Validate() error {
	if r.ID.IsSet() {
		return domain.ErrIDNotAcceptable.WithDetail(msgIDNotAllowed)
	}
	if !r.Description.IsSet() && !r.DueDate.IsSet() && !r.State.IsSet() {
		return domain.ErrInvalidTodoEntry.WithDetail(
			`"value" must contain at least one of [description, due_date, state]`)
	}
	if r.Description.IsNull() {
		return domain.ErrInvalidTodoEntry.WithDetail(`"description" must be a string`)
	}
	if desc, ok := r.Description.Get(); ok {
		if msg := todo.CheckDescription(desc); msg != "" {
			return domain.ErrInvalidTodoEntry.WithDetail(msg)
		}
	}
	if msg := checkDueDate(r.DueDate); msg != "" {
		return domain.ErrInvalidTodoEntry.WithDetail(msg)
	}
	if r.State.IsSet() {
		if s, ok := r.State.Get(); !ok || !todo.State(s).IsValid() {
			return domain.ErrInvalidTodoEntry.WithDetail(fmt.Sprintf(
				`"state" must be one of [%s, %s]`, todo.StateIncomplete, todo.StateComplete))
		}
	}
	return nil
}

// Patch converts a validated request into a todo.Patch. UpdatedAt is left
// for the service to stamp.
func (r *UpdateTodoRequest) Patch() todo.Patch {
	var p todo.Patch
	if desc, ok := r.Description.Get(); ok {
		p.Description = domain.Some(desc)
	}
	switch ms, ok := r.DueDate.Get(); {
	case r.DueDate.IsNull():
		p.DueDate = domain.Null[time.Time]()
	case ok:
		p.DueDate = domain.Some(todo.FromEpochMillis(ms))
	}
	if s, ok := r.State.Get(); ok {
		p.State = domain.Some(todo.State(s))
	}
	return p
}

func checkDueDate(due domain.Optional[int64]) string {
	if ms, ok := due.Get(); ok && ms < 1 {
		return `"due_date" must be greater than or equal to 1`
	}
	return ""
}

// Decode reads a single JSON object from r into dst. Unknown fields, keys
// that differ from a field name only by case, syntax errors, type mismatches
// and oversized bodies fail with kind carrying a description of the problem.
// w may be nil when no size limit is wanted.
func Decode(w http.ResponseWriter, r *http.Request, dst any, kind domain.Error) error {
	body := r.Body
	if w != nil {
		body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return kind.WithDetail(describeDecodeError(err))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return kind.WithDetail(describeDecodeError(err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return kind.WithDetail("body must contain a single JSON object")
	}
	if key := nonCanonicalKey(data, dst); key != "" {
		return kind.WithDetail(fmt.Sprintf(`"%s" is not allowed`, key))
	}
	return nil
}

// nonCanonicalKey returns the first top-level key of data that is not spelled
// exactly like a json tag of dst. encoding/json matches keys case-insensitively.
func nonCanonicalKey(data []byte, dst any) string {
	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ""
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return ""
	}
	allowed := fieldNames(t)
	for key := range keys {
		if _, ok := allowed[key]; !ok {
			return key
		}
	}
	return ""
}

func fieldNames(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{}, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		names[name] = struct{}{}
	}
	return names
}

func describeDecodeError(err error) string {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		sizeErr   *http.MaxBytesError
	)
	switch {
	case errors.Is(err, io.EOF):
		return "body is required"
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "body is not valid JSON"
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return `"value" must be of type object`
		}
		return fmt.Sprintf(`"%s" must be %s`, typeErr.Field, kindName(typeErr.Type))
	case errors.As(err, &sizeErr):
		return fmt.Sprintf("body must not exceed %d bytes", sizeErr.Limit)
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return strings.TrimPrefix(err.Error(), "json: unknown field ") + " is not allowed"
	default:
		return "body is not valid JSON"
	}
}

func kindName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.Bool:
		return "a boolean"
	default:
		return "of type " + t.Kind().String()
	}
}

// ParseID parses a list or todo id path segment: a non-negative decimal
// integer. Anything else fails with ErrIDNotAcceptable.
func ParseID(param, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 || raw != strconv.FormatInt(id, 10) {
		return 0, domain.ErrIDNotAcceptable.WithDetail(fmt.Sprintf(`"%s" must be a non-negative integer`, param))
	}
	return id, nil
}

// ParsePageQuery validates the todo listing query. defaultLimit applies when
// limit is absent; zero means no limit.
func ParsePageQuery(values url.Values, defaultLimit int) (todo.Query, error) {
	q := todo.Query{Limit: defaultLimit}

	for key, vals := range values {
		switch key {
		case ParamIndex, ParamLimit, ParamOrderBy, ParamOrderDirection:
		default:
			return todo.Query{}, pageError(`"%s" is not allowed`, key)
		}
		if len(vals) != 1 {
			return todo.Query{}, pageError(`"%s" must be a single value`, key)
		}
	}

	if raw, ok := single(values, ParamIndex); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return todo.Query{}, pageError(`"%s" must be an integer`, ParamIndex)
		}
		if n < 0 {
			return todo.Query{}, pageError(`"%s" must be greater than or equal to 0`, ParamIndex)
		}
		q.Index = n
	}

	if raw, ok := single(values, ParamLimit); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return todo.Query{}, pageError(`"%s" must be an integer`, ParamLimit)
		}
		if n < 1 {
			return todo.Query{}, pageError(`"%s" must be greater than or equal to 1`, ParamLimit)
		}
		q.Limit = n
	}

	orderBy, hasOrderBy := single(values, ParamOrderBy)
	if hasOrderBy {
		if !todo.OrderBy(orderBy).IsValid() {
			return todo.Query{}, pageError(`"%s" must be one of [%s, %s]`,
				ParamOrderBy, todo.OrderByCreationDate, todo.OrderByLastUpdateDate)
		}
		q.OrderBy = todo.OrderBy(orderBy)
	}

	if dir, ok := single(values, ParamOrderDirection); ok {
		if !hasOrderBy {
			return todo.Query{}, pageError(`"%s" missing required peer "%s"`, ParamOrderDirection, ParamOrderBy)
		}
		if !todo.Direction(dir).IsValid() {
			return todo.Query{}, pageError(`"%s" must be one of [%s, %s]`,
				ParamOrderDirection, todo.Ascending, todo.Descending)
		}
		q.Direction = todo.Direction(dir)
	}

	return q.Normalize(), nil
}

func single(values url.Values, key string) (string, bool) {
	vals, ok := values[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

func pageError(format string, args ...any) error {
	return domain.ErrInvalidPaginationParams.WithDetail(fmt.Sprintf(format, args...))
}
