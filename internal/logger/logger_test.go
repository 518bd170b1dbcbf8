package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)

	log.Debug("hidden %d", 1)
	log.Info("hidden too")
	log.Warn("careful %s", "now")
	log.Error("broken")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug/info should be suppressed at default level, got %q", out)
	}
	if !strings.Contains(out, "WARN] careful now") {
		t.Fatalf("missing warn line in %q", out)
	}
	if !strings.Contains(out, "ERROR] broken") {
		t.Fatalf("missing error line in %q", out)
	}
}

func TestLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true, false).Debug("walking %s", "src")
	if !strings.Contains(buf.String(), "DEBUG] walking src") {
		t.Fatalf("verbose logger dropped debug line: %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, false)

	log.SetLevel("none")
	log.Error("silenced")
	if buf.Len() != 0 {
		t.Fatalf("level none should print nothing, got %q", buf.String())
	}

	log.SetLevel("bogus")
	if log.Level() != LevelNone {
		t.Fatalf("unknown level changed the logger to %v", log.Level())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"off":     LevelNone,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		if !ok || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseLevel("loud"); ok {
		t.Error("ParseLevel accepted an unknown level")
	}
}
