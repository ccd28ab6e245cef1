package helpers

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerLevels(t *testing.T) {
	if l := NewLogger("unibase-test", "development", ""); l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug in development, got %s", l.GetLevel())
	}
	if l := NewLogger("unibase-test", "production", ""); l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info in production, got %s", l.GetLevel())
	}
	if l := NewLogger("unibase-test", "production", "warn"); l.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected LOG_LEVEL override, got %s", l.GetLevel())
	}
	if l := NewLogger("unibase-test", "production", "loud"); l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected bad level to be ignored, got %s", l.GetLevel())
	}
}

func TestLoggerStampsApp(t *testing.T) {
	l := NewLogger("unibase-test", "production", "")
	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json entry: %v", err)
	}
	if entry["app"] != "unibase-test" {
		t.Fatalf("expected app field, got %v", entry["app"])
	}

	buf.Reset()
	l.WithField("app", "other").Info("hello")
	entry = nil
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json entry: %v", err)
	}
	if entry["app"] != "other" {
		t.Fatalf("expected explicit app field to win, got %v", entry["app"])
	}
}
