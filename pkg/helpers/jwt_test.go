package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func fixedClock(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

func newTestManager(now *time.Time) *JWTManager {
	m := NewJWTManager("access-secret", "refresh-secret", "unibase-test", time.Hour, 24*time.Hour)
	m.Now = fixedClock(now)
	return m
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	m := newTestManager(&now)

	pair, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}
	if pair.TokenType != "Bearer" {
		t.Fatalf("expected Bearer token type, got %s", pair.TokenType)
	}
	if !pair.AccessExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected access expiry %v", pair.AccessExpiresAt)
	}

	v := m.VerifyAccess(pair.AccessToken)
	if !v.Valid() {
		t.Fatalf("expected valid access token, got %s (%v)", v.Status, v.Err)
	}
	if v.Claims.UserID != "user-1" || v.Claims.Subject != "user-1" {
		t.Fatalf("unexpected claims %+v", v.Claims)
	}

	if v := m.VerifyRefresh(pair.RefreshToken); !v.Valid() {
		t.Fatalf("expected valid refresh token, got %s", v.Status)
	}
}

func TestExpiryInstantIsExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	m := newTestManager(&now)
	pair, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	now = now.Add(time.Hour - time.Second)
	if v := m.VerifyAccess(pair.AccessToken); !v.Valid() {
		t.Fatalf("expected valid one second before expiry, got %s", v.Status)
	}

	now = now.Add(time.Second)
	v := m.VerifyAccess(pair.AccessToken)
	if v.Status != StatusExpired {
		t.Fatalf("expected expired at the expiry instant, got %s", v.Status)
	}
	if v.Claims == nil || v.Claims.UserID != "user-1" {
		t.Fatalf("expected expired verification to keep claims for logging")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	m := newTestManager(&now)
	other := newTestManager(&now)
	other.AccessSecret = []byte("someone-else")

	pair, _ := other.Issue("user-1")
	if v := m.VerifyAccess(pair.AccessToken); v.Status != StatusSignatureInvalid {
		t.Fatalf("expected signature invalid, got %s", v.Status)
	}
}

func TestVerifyRejectsGarbageAndWrongType(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	m := newTestManager(&now)
	m.RefreshSecret = m.AccessSecret

	if v := m.VerifyAccess("not-a-token"); v.Status != StatusMalformed {
		t.Fatalf("expected malformed, got %s", v.Status)
	}

	pair, _ := m.Issue("user-1")
	if v := m.VerifyAccess(pair.RefreshToken); v.Status != StatusMalformed {
		t.Fatalf("expected refresh token to be rejected as access, got %s", v.Status)
	}
	if v := m.VerifyRefresh(pair.AccessToken); v.Status != StatusMalformed {
		t.Fatalf("expected access token to be rejected as refresh, got %s", v.Status)
	}
}

func TestVerifyRejectsUnsignedAndForeignIssuer(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	m := newTestManager(&now)

	claims := &Claims{
		UserID: "user-1",
		Type:   AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "unibase-test",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if v := m.VerifyAccess(unsigned); v.Valid() {
		t.Fatalf("expected unsigned token to be rejected")
	}

	foreign := newTestManager(&now)
	foreign.Issuer = "someone-else"
	pair, _ := foreign.Issue("user-1")
	if v := m.VerifyAccess(pair.AccessToken); v.Status != StatusMalformed {
		t.Fatalf("expected foreign issuer to be malformed, got %s", v.Status)
	}
}

func TestVerifyStatusString(t *testing.T) {
	for status, want := range map[VerifyStatus]string{
		StatusValid:            "valid",
		StatusExpired:          "expired",
		StatusMalformed:        "malformed",
		StatusSignatureInvalid: "signature_invalid",
	} {
		if status.String() != want {
			t.Fatalf("expected %s, got %s", want, status.String())
		}
	}
}
