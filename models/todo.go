package models

import (
	"encoding/json"
	"time"
)

// Todo is the persisted entity. Description is a pointer: a todo without a
// description carries SQL NULL and serializes as JSON null, never "".
type Todo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateTodoRequest is the create payload. Description omitted and
// description:null are equivalent: both mean "no description".
type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// OptString is a JSON field that distinguishes three states: absent
// (Set=false), explicit null (Set=true, Value=nil) and a string value
// (Set=true, Value!=nil). UnmarshalJSON only runs for present fields,
// which is what makes the absent case detectable.
type OptString struct {
	Set   bool
	Value *string
}

func (o *OptString) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

// UpdateTodoRequest is a partial patch: nil / unset fields are left
// unchanged, description:null clears the description.
type UpdateTodoRequest struct {
	Title       *string   `json:"title"`
	Description OptString `json:"description"`
	Completed   *bool     `json:"completed"`
}

// Apply writes the fields present in the patch onto t. Absent fields stay
// untouched; an explicit-null description clears it.
func (r UpdateTodoRequest) Apply(t *Todo) {
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Description.Set {
		t.Description = r.Description.Value
	}
	if r.Completed != nil {
		t.Completed = *r.Completed
	}
}
