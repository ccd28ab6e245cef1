package helpers

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("dev-password")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "dev-password" {
		t.Fatalf("expected hash to differ from plain text")
	}
	if !CompareHashAndPassword(hash, "dev-password") {
		t.Fatalf("expected password to match")
	}
	if CompareHashAndPassword(hash, "wrong-password") {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestHashPasswordByteLimit(t *testing.T) {
	if _, err := HashPassword(strings.Repeat("a", MaxPasswordBytes)); err != nil {
		t.Fatalf("expected 72 bytes to hash: %v", err)
	}
	for _, plain := range []string{strings.Repeat("a", MaxPasswordBytes+1), strings.Repeat("\u00e9", 37)} {
		if _, err := HashPassword(plain); !errors.Is(err, ErrPasswordTooLong) {
			t.Fatalf("expected ErrPasswordTooLong for %d bytes, got %v", len(plain), err)
		}
	}
	if CompareHashAndPassword("", "") {
		t.Fatalf("expected empty hash to never match")
	}
}

func TestPublicURL(t *testing.T) {
	got := PublicURL("unibase-media", "media/u1/a.png")
	if got != "https://storage.googleapis.com/unibase-media/media/u1/a.png" {
		t.Fatalf("unexpected url %s", got)
	}
}
