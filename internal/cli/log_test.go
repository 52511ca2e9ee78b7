package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/wqcharts/bizchart/pkg/config"
)

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("layout details")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("layout details")
	if !strings.Contains(buf.String(), "layout details") {
		t.Errorf("debug line missing after SetLogLevel(LogDebug): %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, LogInfo)).done("Rendered chart.toml")

	if !regexp.MustCompile(`Rendered chart\.toml \(\d+(\.\d+)?m?s\)`).MatchString(buf.String()) {
		t.Errorf("progress line = %q, want message with elapsed time", buf.String())
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without a logger should return log.Default()")
	}

	logger := newLogger(&bytes.Buffer{}, LogInfo)
	if got := loggerFromContext(withLogger(context.Background(), logger)); got != logger {
		t.Error("loggerFromContext did not return the attached logger")
	}
}

func TestDrawSVGLogsPasses(t *testing.T) {
	ch, err := config.Parse([]byte(testChart))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		level log.Level
		want  bool
	}{
		{"debug level shows layout and draw", LogDebug, true},
		{"info level stays quiet", LogInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			drawSVG(ch, newLogger(&buf, tt.level), frameOpts{})

			out := buf.String()
			for _, pass := range []string{"Layout", "Draw"} {
				if got := strings.Contains(out, pass); got != tt.want {
					t.Errorf("%s logged = %v, want %v\n%s", pass, got, tt.want, out)
				}
			}
		})
	}
}

func TestRenderDebugLogging(t *testing.T) {
	input := writeChart(t)
	out := filepath.Join(t.TempDir(), "frame.svg")

	var logs bytes.Buffer
	root := New(&logs, LogDebug).RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"render", input, "-o", out, "--no-cache"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render error: %v", err)
	}

	for _, want := range []string{"Loaded", "Layout", "Draw", "Rendered"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("debug log missing %q:\n%s", want, logs.String())
		}
	}
}
