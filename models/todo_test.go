package models

import (
	"encoding/json"
	"testing"
)

func TestUpdateRequestAbsentFields(t *testing.T) {
	var req UpdateTodoRequest
	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatal(err)
	}
	if req.Title != nil || req.Completed != nil {
		t.Fatalf("absent fields must stay nil: %+v", req)
	}
	if req.Description.Set {
		t.Fatal("absent description must not be marked set")
	}
}

func TestUpdateRequestNullDescription(t *testing.T) {
	var req UpdateTodoRequest
	if err := json.Unmarshal([]byte(`{"description":null}`), &req); err != nil {
		t.Fatal(err)
	}
	if !req.Description.Set {
		t.Fatal("explicit null must be marked set")
	}
	if req.Description.Value != nil {
		t.Fatalf("explicit null must carry nil, got %q", *req.Description.Value)
	}
}

func TestUpdateRequestDescriptionValue(t *testing.T) {
	var req UpdateTodoRequest
	if err := json.Unmarshal([]byte(`{"description":"milk run"}`), &req); err != nil {
		t.Fatal(err)
	}
	if !req.Description.Set || req.Description.Value == nil || *req.Description.Value != "milk run" {
		t.Fatalf("unexpected description: %+v", req.Description)
	}
}

func TestApplyAbsentFieldsLeaveTodoUnchanged(t *testing.T) {
	desc := "2 liters"
	todo := Todo{ID: 1, Title: "buy milk", Description: &desc, Completed: true}

	UpdateTodoRequest{}.Apply(&todo)

	if todo.Title != "buy milk" || !todo.Completed {
		t.Fatalf("empty patch changed fields: %+v", todo)
	}
	if todo.Description == nil || *todo.Description != "2 liters" {
		t.Fatalf("empty patch touched description: %+v", todo.Description)
	}
}

func TestApplyCompletedOnly(t *testing.T) {
	desc := "2 liters"
	todo := Todo{Title: "buy milk", Description: &desc}
	done := true

	UpdateTodoRequest{Completed: &done}.Apply(&todo)

	if !todo.Completed {
		t.Fatal("completed not applied")
	}
	if todo.Title != "buy milk" || todo.Description == nil || *todo.Description != "2 liters" {
		t.Fatalf("completed-only patch changed other fields: %+v", todo)
	}
}

func TestApplyTitle(t *testing.T) {
	todo := Todo{Title: "buy milk"}
	title := "buy bread"

	UpdateTodoRequest{Title: &title}.Apply(&todo)

	if todo.Title != "buy bread" {
		t.Fatalf("title not applied: %q", todo.Title)
	}
}

func TestApplyClearsDescription(t *testing.T) {
	desc := "2 liters"
	todo := Todo{Title: "buy milk", Description: &desc}

	UpdateTodoRequest{Description: OptString{Set: true, Value: nil}}.Apply(&todo)

	if todo.Description != nil {
		t.Fatalf("explicit null must clear description, got %q", *todo.Description)
	}
}

func TestApplySetsDescription(t *testing.T) {
	todo := Todo{Title: "buy milk"}
	desc := "whole grain"

	UpdateTodoRequest{Description: OptString{Set: true, Value: &desc}}.Apply(&todo)

	if todo.Description == nil || *todo.Description != "whole grain" {
		t.Fatalf("description not applied: %+v", todo.Description)
	}
}

func TestApplyFromJSONRoundTrip(t *testing.T) {
	desc := "2 liters"
	todo := Todo{Title: "buy milk", Description: &desc, Completed: false}

	var req UpdateTodoRequest
	if err := json.Unmarshal([]byte(`{"completed":true,"description":null}`), &req); err != nil {
		t.Fatal(err)
	}
	req.Apply(&todo)

	if todo.Title != "buy milk" {
		t.Fatalf("absent title changed: %q", todo.Title)
	}
	if !todo.Completed {
		t.Fatal("completed not applied")
	}
	if todo.Description != nil {
		t.Fatalf("description not cleared: %q", *todo.Description)
	}
}

func TestTodoNullDescriptionJSON(t *testing.T) {
	b, err := json.Marshal(Todo{ID: 1, Title: "x"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	raw, ok := m["description"]
	if !ok {
		t.Fatal("description must be present in JSON output")
	}
	if string(raw) != "null" {
		t.Fatalf("missing description must encode as null, got %s", raw)
	}
}
