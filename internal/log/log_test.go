package log

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelInfo)
	})

	SetLevel(LevelWarn)
	Info("hidden", "k", 1)
	Warn("shown", "day", 30)

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("info line written at warn level: %q", got)
	}
	if !strings.Contains(got, "shown") || !strings.Contains(got, "day=30") {
		t.Errorf("warn line missing or malformed: %q", got)
	}
}

func TestErrorIncludesErr(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	Error("write failed", errors.New("disk full"), "path", "out.ics")

	got := buf.String()
	for _, want := range []string{"level=ERROR", "write failed", `err="disk full"`, "path=out.ics"} {
		if !strings.Contains(got, want) {
			t.Errorf("log line %q missing %q", got, want)
		}
	}
}
