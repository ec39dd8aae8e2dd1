package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
)

type patchBody struct {
	DueDate domain.Optional[int64] `json:"due_date"`
}

func TestOptional_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantNull  bool
		wantValue int64
		wantErr   bool
	}{
		{name: "absent", body: `{}`, wantSet: false},
		{name: "null", body: `{"due_date": null}`, wantSet: true, wantNull: true},
		{name: "value", body: `{"due_date": 1700000000000}`, wantSet: true, wantValue: 1700000000000},
		{name: "wrong type", body: `{"due_date": "soon"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var b patchBody
			err := json.Unmarshal([]byte(tt.body), &b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if b.DueDate.IsSet() != tt.wantSet {
				t.Errorf("IsSet() = %v, want %v", b.DueDate.IsSet(), tt.wantSet)
			}
			if b.DueDate.IsNull() != tt.wantNull {
				t.Errorf("IsNull() = %v, want %v", b.DueDate.IsNull(), tt.wantNull)
			}
			v, ok := b.DueDate.Get()
			if ok != (tt.wantSet && !tt.wantNull) {
				t.Errorf("Get() ok = %v", ok)
			}
			if v != tt.wantValue {
				t.Errorf("Get() value = %d, want %d", v, tt.wantValue)
			}
		})
	}
}

func TestOptional_Constructors(t *testing.T) {
	t.Parallel()

	if v, ok := domain.Some("x").Get(); !ok || v != "x" {
		t.Errorf("Some(x).Get() = %q, %v", v, ok)
	}
	if !domain.Null[string]().IsNull() {
		t.Error("Null().IsNull() = false")
	}
	var unset domain.Optional[string]
	if unset.IsSet() || unset.IsNull() {
		t.Error("zero Optional should be unset")
	}
}
