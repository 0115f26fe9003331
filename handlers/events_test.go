package handlers

import (
	"strings"
	"testing"
)

func TestFormatSSEMessage(t *testing.T) {
	msg, err := formatSSEMessage(EventDeleted, TodoEvent{Type: EventDeleted, ID: 7})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(msg, "event: todo.deleted\n") {
		t.Fatalf("unexpected event line: %q", msg)
	}
	if !strings.Contains(msg, `"id":7`) {
		t.Fatalf("payload missing from message: %q", msg)
	}
	if !strings.HasSuffix(msg, "\n\n") {
		t.Fatalf("message must end with a blank line: %q", msg)
	}
}

func TestBroadcastReachesSessions(t *testing.T) {
	s := &session{id: "test", eventChannel: make(chan TodoEvent, 1)}
	currentSessions.addSession(s)
	defer currentSessions.removeSession(s)

	publishTodoEvent(TodoEvent{Type: EventCreated, ID: 3})

	select {
	case ev := <-s.eventChannel:
		if ev.Type != EventCreated || ev.ID != 3 {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("event not delivered to session")
	}
}

func TestBroadcastSkipsSlowSessions(t *testing.T) {
	full := &session{id: "full", eventChannel: make(chan TodoEvent)}
	currentSessions.addSession(full)
	defer currentSessions.removeSession(full)

	// must not block even though nobody reads the channel
	publishTodoEvent(TodoEvent{Type: EventUpdated, ID: 1})
}

func TestRemoveSession(t *testing.T) {
	s := &session{id: "gone", eventChannel: make(chan TodoEvent, 1)}
	currentSessions.addSession(s)
	currentSessions.removeSession(s)

	publishTodoEvent(TodoEvent{Type: EventCreated, ID: 5})

	select {
	case ev := <-s.eventChannel:
		t.Fatalf("removed session still receives events: %+v", ev)
	default:
	}
}
