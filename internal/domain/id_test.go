package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewID_ValidUUID(t *testing.T) {
	t.Parallel()

	id := NewID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("NewID() = %q is not a valid UUID: %v", id, err)
	}
}

func TestNewID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("NewID() produced duplicate %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestPseudoID_Alphanumeric(t *testing.T) {
	t.Parallel()

	id := pseudoID(8)
	if len(id) != 8 {
		t.Fatalf("pseudoID(8) length = %d, want 8", len(id))
	}
	for _, r := range id {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z') {
			t.Errorf("pseudoID contains non-alphanumeric rune %q", r)
		}
	}
}
