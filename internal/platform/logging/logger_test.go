package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf).Named("predictor").With("session_id", "s-1")

	logger.Info("prediction settled", "home", "BOS", "seq", 3, "error", errors.New("boom"))

	var line map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("unmarshal log line: %v (raw=%s)", err, buf.String())
	}
	if line["msg"] != "prediction settled" {
		t.Fatalf("unexpected msg: %v", line["msg"])
	}
	if line["logger"] != "predictor" {
		t.Fatalf("unexpected logger name: %v", line["logger"])
	}
	if line["session_id"] != "s-1" || line["home"] != "BOS" {
		t.Fatalf("missing fields: %v", line)
	}
	if line["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", line["error"])
	}
	if caller, _ := line["caller"].(string); !strings.HasPrefix(caller, "logging/logger_test.go") {
		t.Fatalf("expected caller to point at the test, got %q", caller)
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelWarn, &buf)

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %s", buf.String())
	}

	logger.Warn("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("expected warn line, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": LevelDebug,
		"warn":  LevelWarn,
		"error": LevelError,
		"":      LevelInfo,
		"noise": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", in, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	logger.With("k", "v").Warn("still no panic")
}
