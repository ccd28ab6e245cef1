package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/infrastructure/memory"
	"github.com/oksasatya/unibase/pkg/helpers"
)

type gateFixture struct {
	engine *gin.Engine
	jwt    *helpers.JWTManager
	staff  *entity.User
	user   *entity.User
}

func newGateFixture(t *testing.T) gateFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := memory.New()
	ctx := context.Background()
	staff := &entity.User{Email: "staff@example.com", IsStaff: true}
	user := &entity.User{Email: "user@example.com"}
	for _, u := range []*entity.User{staff, user} {
		if err := st.Users().Create(ctx, u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	jwt := helpers.NewJWTManager("access", "refresh", "unibase-test", time.Hour, 24*time.Hour)
	gate := NewGate(jwt, st.Users(), logger)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/me", gate.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUser(c).ID, "uid": c.GetString(CtxUserIDKey)})
	})
	r.GET("/staff", gate.RequireStaff(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/public", func(c *gin.Context) {
		if CurrentUser(c) != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})
	return gateFixture{engine: r, jwt: jwt, staff: staff, user: user}
}

func (f gateFixture) do(path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f gateFixture) token(t *testing.T, userID string) string {
	t.Helper()
	pair, err := f.jwt.Issue(userID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return pair.AccessToken
}

func TestRequireAuth(t *testing.T) {
	f := newGateFixture(t)

	w := f.do("/me", "")
	if w.Code != http.StatusUnauthorized || w.Header().Get("WWW-Authenticate") == "" {
		t.Fatalf("expected 401 with challenge, got %d %q", w.Code, w.Header().Get("WWW-Authenticate"))
	}

	w = f.do("/me", "bearer "+f.token(t, f.user.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with lowercase scheme, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["id"] != f.user.ID || body["uid"] != f.user.ID {
		t.Fatalf("unexpected identity %v", body)
	}

	w = f.do("/me", "Basic "+f.token(t, f.user.ID))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong scheme, got %d", w.Code)
	}

	pair, _ := f.jwt.Issue(f.user.ID)
	w = f.do("/me", "Bearer "+pair.RefreshToken)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for refresh token, got %d", w.Code)
	}

	w = f.do("/me", "Bearer "+f.token(t, "00000000-0000-0000-0000-000000000000"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", w.Code)
	}
}

func TestRequireAuthHidesRejectionCause(t *testing.T) {
	f := newGateFixture(t)
	tok := f.token(t, f.user.ID)
	tampered := tok[:len(tok)-2] + "xx"
	f.jwt.Now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	type rejection struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	var bodies []rejection
	for _, header := range []string{"Bearer " + tok, "Bearer " + tampered, "Bearer not-a-jwt"} {
		w := f.do("/me", header)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %q, got %d", header, w.Code)
		}
		if w.Header().Get("WWW-Authenticate") == "" {
			t.Fatalf("expected WWW-Authenticate header")
		}
		var body rejection
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body.Error) != 0 && string(body.Error) != "null" {
			t.Fatalf("expected no error details, got %s", body.Error)
		}
		bodies = append(bodies, body)
	}
	for _, b := range bodies[1:] {
		if b.Message != bodies[0].Message {
			t.Fatalf("expected identical messages, got %q and %q", bodies[0].Message, b.Message)
		}
	}
}

func TestRequireStaff(t *testing.T) {
	f := newGateFixture(t)

	if w := f.do("/staff", "Bearer "+f.token(t, f.user.ID)); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-staff, got %d", w.Code)
	}
	if w := f.do("/staff", "Bearer "+f.token(t, f.staff.ID)); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for staff, got %d", w.Code)
	}
	if w := f.do("/staff", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if w := f.do("/public", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected public route without user, got %d", w.Code)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]bool{
		"Bearer abc":   true,
		"BEARER abc":   true,
		"  Bearer abc": true,
		"Bearer ":      false,
		"Bearer":       false,
		"Token abc":    false,
		"":             false,
	}
	for header, want := range cases {
		if _, ok := bearerToken(header); ok != want {
			t.Fatalf("bearerToken(%q) = %v, want %v", header, ok, want)
		}
	}
}

func TestRealIPAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(), RealIP())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("real_ip"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "203.0.113.7" {
		t.Fatalf("expected left-most forwarded ip, got %s", w.Body.String())
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatalf("expected request id header")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	req.Header.Set("CF-Connecting-IP", "198.51.100.2")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) == "not-a-uuid" {
		t.Fatalf("expected malformed request id to be replaced")
	}
	if w.Body.String() != "198.51.100.2" {
		t.Fatalf("expected cloudflare ip, got %s", w.Body.String())
	}
}

func TestRateLimitWithoutRedisIsNoop(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i, w.Code)
		}
	}
}

func TestAllowPrivateIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	allow := AllowPrivateIP()
	for ip, want := range map[string]bool{"10.1.2.3": true, "127.0.0.1": true, "8.8.8.8": false, "junk": false} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set("real_ip", ip)
		if got := allow(c); got != want {
			t.Fatalf("AllowPrivateIP(%s) = %v, want %v", ip, got, want)
		}
	}
}
