package utils

import (
	"encoding/hex"
	"testing"
)

func TestGenerateRandomID(t *testing.T) {
	id, err := GenerateRandomID()
	if err != nil {
		t.Fatal(err)
	}
	if len(id) != 32 {
		t.Fatalf("expected 32 hex chars, got %d", len(id))
	}
	if _, err := hex.DecodeString(id); err != nil {
		t.Fatalf("id is not hex: %v", err)
	}

	other, err := GenerateRandomID()
	if err != nil {
		t.Fatal(err)
	}
	if id == other {
		t.Fatal("two ids should not collide")
	}
}
