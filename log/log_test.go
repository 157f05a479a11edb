package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sstlang/sst/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		"error level":   {input: "error", expected: slog.LevelError},
		"warn level":    {input: "warn", expected: slog.LevelWarn},
		"warning level": {input: "warning", expected: slog.LevelWarn},
		"info level":    {input: "info", expected: slog.LevelInfo},
		"debug level":   {input: "debug", expected: slog.LevelDebug},
		"mixed case":    {input: "DEBUG", expected: slog.LevelDebug},
		"unknown":       {input: "trace", wantErr: true},
		"empty":         {input: "", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetLevel(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		expected log.Format
		wantErr  bool
	}{
		"json":    {input: "json", expected: log.FormatJSON},
		"text":    {input: "text", expected: log.FormatText},
		"mixed":   {input: "JSON", expected: log.FormatJSON},
		"unknown": {input: "xml", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.GetFormat(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, log.ErrUnknownLogFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNewHandlerFromStrings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	h, err := log.NewHandlerFromStrings(&buf, "info", "json")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("hello", "n", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestNewHandlerFromStringsInvalid(t *testing.T) {
	t.Parallel()

	_, err := log.NewHandlerFromStrings(&bytes.Buffer{}, "bogus", "json")
	require.ErrorIs(t, err, log.ErrInvalidArgument)
	require.ErrorIs(t, err, log.ErrUnknownLogLevel)
}
