package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestOKWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	OK(c, http.StatusCreated, []string{}, "created", PageMeta{Limit: 50})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body struct {
		Status    int             `json:"status"`
		RequestID string          `json:"request_id"`
		Success   bool            `json:"success"`
		Data      json.RawMessage `json:"data"`
		Meta      PageMeta        `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.RequestID != "req-1" || body.Status != http.StatusCreated {
		t.Fatalf("unexpected envelope %+v", body)
	}
	if string(body.Data) != "[]" {
		t.Fatalf("expected empty array data, got %s", body.Data)
	}
	if body.Meta.Limit != 50 {
		t.Fatalf("expected meta limit 50, got %d", body.Meta.Limit)
	}
}

func TestAbortStopsChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Abort(c, 0, "bad input", map[string]string{"name": "is required"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected default 400, got %d", w.Code)
	}
	if !c.IsAborted() {
		t.Fatalf("expected context to be aborted")
	}
}
