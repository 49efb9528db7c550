package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disrupted/dprint-plugin-markdown/internal/ui/pretty"
	"github.com/disrupted/dprint-plugin-markdown/pkg/config"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	// With color disabled, styles should return unmodified text
	for _, rendered := range []string{
		styles.Block.Render("test"),
		styles.Inline.Render("test"),
		styles.Failure.Render("test"),
		styles.Enumerator.Render("test"),
	} {
		assert.Equal(t, "test", rendered)
	}
}

func TestNewStyles_ColorEnabled(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	// Lipgloss may not emit ANSI codes without a TTY, so only check that
	// the text survives.
	assert.Contains(t, styles.Block.Render("x"), "x")
	assert.Contains(t, styles.Range.Render("x"), "x")
	assert.Contains(t, styles.Success.Render("x"), "x")
}

func TestIsColorEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	tests := []struct {
		name string
		mode config.ColorMode
		want bool
	}{
		{"always", config.ColorAlways, true},
		{"never", config.ColorNever, false},
		{"auto with non-TTY", config.ColorAuto, false},
		{"empty defaults to auto", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pretty.IsColorEnabled(tt.mode, &buf))
		})
	}
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	// Even with a TTY, NO_COLOR should disable colors
	assert.False(t, pretty.IsColorEnabled(config.ColorAuto, os.Stdout))
	assert.True(t, pretty.IsColorEnabled(config.ColorAlways, os.Stdout), "always wins over NO_COLOR")
}

func TestTerminalWidth_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, pretty.DefaultWidth, pretty.TerminalWidth(&buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	assert.Equal(t, pretty.DefaultWidth, pretty.TerminalWidth(f))
}
