package util

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(3) // debug level
	l.SetOutput(&buf)

	l.Error("e")
	l.Warn("w")
	l.Info("i")
	l.Verbose("v")
	l.Debug("d")

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), output)
	}

	// Debug verbosity prefixes each line with "HH:MM:SS.mmm ".
	want := []string{"[ERR] e", "[WRN] w", "[INF] i", "[VRB] v", "[DBG] d"}
	for i, w := range want {
		if !strings.HasSuffix(lines[i], " "+w) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], w)
		}
	}
}

func TestLogger_Filtering(t *testing.T) {
	tests := []struct {
		verbosity int
		want      []string
	}{
		{0, []string{"[ERR]"}},
		{1, []string{"[ERR]", "[WRN]", "[INF]"}},
		{2, []string{"[ERR]", "[WRN]", "[INF]", "[VRB]"}},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		l := NewLogger(tt.verbosity)
		l.SetOutput(&buf)

		l.Error("x")
		l.Warn("x")
		l.Info("x")
		l.Verbose("x")
		l.Debug("x")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != len(tt.want) {
			t.Errorf("verbosity %d: got %d lines, want %d:\n%s",
				tt.verbosity, len(lines), len(tt.want), buf.String())
			continue
		}
		for i, prefix := range tt.want {
			if !strings.HasPrefix(lines[i], prefix) {
				t.Errorf("verbosity %d line %d = %q, want prefix %q", tt.verbosity, i, lines[i], prefix)
			}
		}
	}
}

func TestLogger_Timestamps(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(3)
	l.SetOutput(&buf)

	l.Info("test")

	re := regexp.MustCompile(`^\d\d:\d\d:\d\d\.\d{3} \[INF\] test\n$`)
	if !re.MatchString(buf.String()) {
		t.Errorf("expected timestamp prefix, got %q", buf.String())
	}
	if l.Level() != LogDebug {
		t.Errorf("Level() = %d, want %d", l.Level(), LogDebug)
	}
}

func TestLogger_NoTimestampsBelowDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(2)
	l.SetOutput(&buf)

	l.Verbose("tick")
	if buf.String() != "[VRB] tick\n" {
		t.Errorf("got %q, want %q", buf.String(), "[VRB] tick\n")
	}
}
