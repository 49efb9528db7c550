package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disrupted/dprint-plugin-markdown/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"warning", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"DEBUG", log.DebugLevel, false},
		{" Info ", log.InfoLevel, false},
		{"verbose", log.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			got, err := logging.ParseLevel(tt.level)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	assert.Equal(t, log.DebugLevel, logging.New("debug").GetLevel())
	assert.Equal(t, log.InfoLevel, logging.New("invalid").GetLevel(), "invalid level falls back to info")
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "debug")

	logger.Debug("parsed", logging.FieldPath, "a.md", logging.FieldNodes, 3)

	out := buf.String()
	assert.Contains(t, out, logging.Prefix)
	assert.Contains(t, out, "parsed")
	assert.Contains(t, out, "path=a.md")
	assert.Contains(t, out, "nodes=3")
}

func TestNewWithWriter_FiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetLevel(t *testing.T) {
	// Not parallel: modifies the default logger.
	original := logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	logging.SetDefault(logging.New("info"))

	require.NoError(t, logging.SetLevel("debug"))
	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())

	require.Error(t, logging.SetLevel("loud"))
	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel(), "unknown level leaves the level unchanged")
}

func TestContext(t *testing.T) {
	// Not parallel: reads the default logger.
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "info")

	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))

	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))

	//nolint:staticcheck // nil context is part of the contract
	assert.Same(t, logging.Default(), logging.FromContext(nil))

	logging.FromContext(ctx).Info("through context")
	assert.True(t, strings.Contains(buf.String(), "through context"))
}
