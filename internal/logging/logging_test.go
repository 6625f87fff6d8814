package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithPath_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "empty defaults to info", level: "", want: zerolog.InfoLevel},
		{name: "invalid defaults to info", level: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newLoggerWithPath(Config{Level: tt.level}, &bytes.Buffer{})
			assert.Equal(t, tt.want, result.Logger.GetLevel())
			assert.False(t, result.UsingFile)
		})
	}
}

func TestNewLoggerWithPath_JSON(t *testing.T) {
	var buf bytes.Buffer
	result := newLoggerWithPath(Config{Level: "info", Format: FormatJSON}, &buf)

	logger := ComponentLogger(result.Logger, "fset")
	logger.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "fset", entry["component"])
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fastset.log")
	result := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON, Output: OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	require.True(t, result.UsingFile)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Msg("to file")
	require.NoError(t, result.Close())
	require.NoError(t, result.Close(), "second close is a no-op")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewLoggerWithPath_FileFallback(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	var buf bytes.Buffer
	result := newLoggerWithPath(Config{Output: OutputFile, File: filepath.Join(blocker, "x.log")}, &buf)

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
}

func TestFromContext(t *testing.T) {
	t.Run("without logger is disabled", func(t *testing.T) {
		l := FromContext(context.Background())
		assert.Equal(t, zerolog.Disabled, l.GetLevel())
	})

	t.Run("adds trace id", func(t *testing.T) {
		var buf bytes.Buffer
		base := zerolog.New(&buf)
		ctx := ContextWithTraceID(base.WithContext(context.Background()), "trace-1")

		l := FromContext(ctx)
		l.Info().Msg("x")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "trace-1", entry["trace_id"])
	})
}

func TestTraceID(t *testing.T) {
	id := NewTraceID()
	_, err := ulid.Parse(id)
	require.NoError(t, err)

	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))
	assert.NotEqual(t, id, GetOrGenerateTraceID(ctx))

	ctx = ContextWithTraceID(ctx, id)
	assert.Equal(t, id, TraceIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/fastset.log")
	PrintFallbackWarning(&buf, "permission denied")

	assert.Contains(t, buf.String(), "Logging to /tmp/fastset.log")
	assert.Contains(t, buf.String(), "permission denied")
}
