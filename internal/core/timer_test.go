package core

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	clock := time.Unix(100, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	// The first poll pays out the primed tick.
	if n := fs.Due(100); n != 1 {
		t.Fatalf("first Due = %d, want 1", n)
	}

	clock = clock.Add(350 * time.Millisecond)
	if n := fs.Due(100); n != 3 {
		t.Fatalf("Due after 350ms = %d, want 3", n)
	}

	clock = clock.Add(60 * time.Millisecond)
	if n := fs.Due(100); n != 1 {
		t.Fatalf("Due with carried remainder = %d, want 1", n)
	}

	clock = clock.Add(10 * time.Second)
	if n := fs.Due(5); n != 5 {
		t.Fatalf("capped Due = %d, want 5", n)
	}
	if n := fs.Due(5); n != 0 {
		t.Fatalf("Due after cap = %d, want 0", n)
	}
}
