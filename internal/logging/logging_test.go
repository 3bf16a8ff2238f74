package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		verbosity int
		want      zerolog.Level
	}{
		{"default", "", 0, zerolog.WarnLevel},
		{"explicit", "error", 0, zerolog.ErrorLevel},
		{"case insensitive", " INFO ", 0, zerolog.InfoLevel},
		{"unknown falls back", "chatty", 0, zerolog.WarnLevel},
		{"one step", "", 1, zerolog.InfoLevel},
		{"two steps", "", 2, zerolog.DebugLevel},
		{"clamped at trace", "debug", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.level, tt.verbosity); got != tt.want {
				t.Errorf("ParseLevel(%q, %d) = %v, want %v", tt.level, tt.verbosity, got, tt.want)
			}
		})
	}
}

func TestSetup_WritesComponentField(t *testing.T) {
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	Setup(zerolog.InfoLevel, &buf)

	logger := GetLogger("watcher")
	logger.Info().Msg("watching")
	logger.Debug().Msg("hidden")

	out := buf.String()
	if !strings.Contains(out, "watching") {
		t.Errorf("output %q does not contain message", out)
	}
	if !strings.Contains(out, "component=watcher") {
		t.Errorf("output %q does not contain component field", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("output %q contains debug message at info level", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output %q contains colour codes for a non-terminal writer", out)
	}
}
