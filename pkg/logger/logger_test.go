package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/target-inventory/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":    slog.LevelDebug,
		"Debug":    slog.LevelDebug,
		" warn ":   slog.LevelWarn,
		"warning":  slog.LevelWarn,
		"ERROR":    slog.LevelError,
		"info":     slog.LevelInfo,
		"":         slog.LevelInfo,
		"trace":    slog.LevelInfo,
		"critical": slog.LevelInfo,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, logger.ParseLevel(input))
		})
	}
}

func TestNew_WritesToStderr(t *testing.T) {
	t.Parallel()

	l := logger.New("warn", "json")
	require.NotNil(t, l)
	assert.False(t, l.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, l.Enabled(t.Context(), slog.LevelWarn))
}

func TestNewWithWriter_JSONRecord(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"json", "JSON"} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger.NewWithWriter(&buf, "info", format).
				Warn("watch check failed", "watch", "Falcon", "store_id", "3991", "onhand", 0)

			var rec map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
			assert.Equal(t, "WARN", rec["level"])
			assert.Equal(t, "watch check failed", rec["msg"])
			assert.Equal(t, "Falcon", rec["watch"])
			assert.Equal(t, "3991", rec["store_id"])
			assert.InDelta(t, 0, rec["onhand"], 0)
		})
	}
}

func TestNewWithWriter_TextRecord(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"text", "", "logfmt"} {
		t.Run("format="+format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger.NewWithWriter(&buf, "debug", format).
				Debug("location registry loaded", "count", 1962)

			out := buf.String()
			assert.Contains(t, out, "level=DEBUG")
			assert.Contains(t, out, `msg="location registry loaded"`)
			assert.Contains(t, out, "count=1962")
		})
	}
}

func TestNewWithWriter_Threshold(t *testing.T) {
	t.Parallel()

	emit := func(l *slog.Logger) {
		l.Debug("fetching ship locations")
		l.Info("starting server")
		l.Warn("daily API limit reached")
		l.Error("scheduled watch cycle failed")
	}

	tests := []struct {
		level string
		want  []string
		skip  []string
	}{
		{
			level: "debug",
			want:  []string{"fetching ship locations", "starting server", "daily API limit reached"},
		},
		{
			level: "info",
			want:  []string{"starting server", "scheduled watch cycle failed"},
			skip:  []string{"fetching ship locations"},
		},
		{
			level: "error",
			want:  []string{"scheduled watch cycle failed"},
			skip:  []string{"starting server", "daily API limit reached"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			emit(logger.NewWithWriter(&buf, tt.level, "text"))

			for _, msg := range tt.want {
				assert.Contains(t, buf.String(), msg)
			}
			for _, msg := range tt.skip {
				assert.NotContains(t, buf.String(), msg)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	l := logger.Discard()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))
	l.Error("dropped")
}
