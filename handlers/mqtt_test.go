package handlers

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"
)

type tokenStub struct {
	completed bool
	err       error
}

func (t *tokenStub) WaitTimeout(time.Duration) bool { return t.completed }
func (t *tokenStub) Error() error                   { return t.err }

func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	fn()
	return buf.String()
}

func TestLogPublishResultTimeout(t *testing.T) {
	out := captureLog(t, func() {
		logPublishResult(&tokenStub{completed: false})
	})
	if !strings.Contains(out, "MQTT publish timed out") {
		t.Fatalf("timeout not logged: %q", out)
	}
}

func TestLogPublishResultError(t *testing.T) {
	out := captureLog(t, func() {
		logPublishResult(&tokenStub{completed: true, err: errors.New("broker gone")})
	})
	if !strings.Contains(out, "broker gone") {
		t.Fatalf("publish error not logged: %q", out)
	}
}

func TestLogPublishResultSuccess(t *testing.T) {
	out := captureLog(t, func() {
		logPublishResult(&tokenStub{completed: true})
	})
	if out != "" {
		t.Fatalf("successful publish should log nothing, got %q", out)
	}
}
