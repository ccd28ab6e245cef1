package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindsMatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create university: %w", Conflict("university name already exists"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict kind")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("conflict must not match not found")
	}
	if got := Message(err, "fallback"); got != "university name already exists" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(ErrUnavailable, "storage unavailable", cause)
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, cause) {
		t.Fatalf("expected both kind and cause to match")
	}
	if err.Error() != "storage unavailable: connection reset" {
		t.Fatalf("unexpected error text %q", err.Error())
	}
}

func TestMessageFallback(t *testing.T) {
	if got := Message(errors.New("boom"), "internal server error"); got != "internal server error" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := Message(NotFound(""), "x"); got != "not found" {
		t.Fatalf("expected kind text as default message, got %q", got)
	}
}
