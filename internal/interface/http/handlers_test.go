package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/internal/domain/entity"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperror.Invalid("bad"), http.StatusBadRequest},
		{apperror.Unauthenticated(""), http.StatusUnauthorized},
		{apperror.Forbidden(""), http.StatusForbidden},
		{apperror.NotFound("university not found"), http.StatusNotFound},
		{apperror.Conflict("dup"), http.StatusConflict},
		{apperror.Unavailable(""), http.StatusServiceUnavailable},
		{fmt.Errorf("wrapped: %w", apperror.Conflict("dup")), http.StatusConflict},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusOf(tc.err); got != tc.want {
			t.Fatalf("statusOf(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func runFail(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fail(c, quietLogger(), err)
	return w
}

func TestFailMessages(t *testing.T) {
	w := runFail(errors.New(`pq: relation "users" does not exist`))
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusInternalServerError || body["message"] != "internal server error" {
		t.Fatalf("expected opaque 500, got %d %v", w.Code, body)
	}

	w = runFail(apperror.Conflict("university name already exists"))
	body = map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusConflict || body["message"] != "university name already exists" {
		t.Fatalf("expected conflict message, got %d %v", w.Code, body)
	}

	w = runFail(apperror.Unauthenticated("invalid credentials"))
	if w.Header().Get("WWW-Authenticate") == "" {
		t.Fatalf("expected bearer challenge on 401")
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/things/:id", func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		c.String(http.StatusOK, id)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/nope", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/6F9619FF-8B86-D011-B42D-00C04FC964FF", nil))
	if w.Code != http.StatusOK || w.Body.String() != "6f9619ff-8b86-d011-b42d-00c04fc964ff" {
		t.Fatalf("expected canonical id, got %d %s", w.Code, w.Body.String())
	}
}

func TestListWritesEmptyArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var none []entity.News
	list(c, mapSlice(none, toNews), repo.Page{}.Normalize(), "news")

	var body struct {
		Data json.RawMessage `json:"data"`
		Meta struct {
			Limit int `json:"limit"`
			Count int `json:"count"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(body.Data) != "[]" || body.Meta.Limit != repo.DefaultLimit || body.Meta.Count != 0 {
		t.Fatalf("unexpected list body %s", w.Body.String())
	}
}

func TestStudentSummaryOmitsProfile(t *testing.T) {
	s := entity.Student{ID: "1", Name: "Ada", Lastname: "Lovelace", Achievements: "engine notes"}
	b, _ := json.Marshal(toStudentSummary(&s))
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	if _, ok := m["achievements"]; ok {
		t.Fatalf("summary should not carry achievements: %s", b)
	}
	if m["lastname"] != "Lovelace" {
		t.Fatalf("unexpected summary %s", b)
	}
}
