package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disrupted/dprint-plugin-markdown/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.FlavorGFM, cfg.Flavor)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.True(t, config.Enabled(cfg.Parser.FrontMatter))
	assert.True(t, config.Enabled(cfg.Parser.Footnotes))
	assert.True(t, config.Enabled(cfg.Dump.Text))
	assert.Equal(t, []string{".md", ".markdown"}, cfg.Check.Extensions)
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	assert.True(t, config.Enabled(nil))
	assert.True(t, config.Enabled(config.Bool(true)))
	assert.False(t, config.Enabled(config.Bool(false)))
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies pointers and slices", func(t *testing.T) {
		t.Parallel()

		original := config.NewConfig()
		original.Check.Exclude = []string{"vendor/**"}
		original.Check.Jobs = 4
		original.Dump.Raw = true

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)

		*clone.Parser.FrontMatter = false
		clone.Check.Exclude[0] = "changed"
		clone.Check.Extensions[0] = ".txt"

		assert.True(t, *original.Parser.FrontMatter)
		assert.Equal(t, "vendor/**", original.Check.Exclude[0])
		assert.Equal(t, ".md", original.Check.Extensions[0])
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var cfg *config.Config
		data, err := cfg.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("omits CLI-only fields", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.Check.Jobs = 8
		cfg.Dump.Raw = true

		data, err := cfg.ToYAML()
		require.NoError(t, err)

		out := string(data)
		assert.Contains(t, out, "flavor: gfm")
		assert.Contains(t, out, "front_matter: true")
		assert.NotContains(t, out, "jobs")
		assert.NotContains(t, out, "raw")
	})

	t.Run("header", func(t *testing.T) {
		t.Parallel()

		data, err := (&config.Config{Flavor: config.FlavorCommonMark}).ToYAMLWithHeader("# resolved")
		require.NoError(t, err)
		assert.Equal(t, "# resolved\n\nflavor: commonmark\n", string(data))
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses nested sections", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte(`
flavor: commonmark
color: never
parser:
  footnotes: false
dump:
  width: 60
check:
  exclude: ["vendor/**"]
  max_bytes: 1024
`))
		require.NoError(t, err)
		assert.Equal(t, config.FlavorCommonMark, cfg.Flavor)
		assert.Equal(t, config.ColorNever, cfg.Color)
		require.NotNil(t, cfg.Parser.Footnotes)
		assert.False(t, *cfg.Parser.Footnotes)
		assert.Nil(t, cfg.Parser.FrontMatter, "unset toggles stay nil")
		assert.Equal(t, 60, cfg.Dump.Width)
		assert.Equal(t, []string{"vendor/**"}, cfg.Check.Exclude)
		assert.Equal(t, int64(1024), cfg.Check.MaxBytes)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte("  \n"))
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("flavour: gfm\n"))
		require.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		original := config.NewConfig()
		original.Check.Exclude = []string{"docs/**"}

		data, err := original.ToYAML()
		require.NoError(t, err)

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, original, parsed)
	})
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(config.Template())
	require.NoError(t, err)

	defaults := config.NewConfig()
	assert.Equal(t, defaults.Flavor, cfg.Flavor)
	assert.Equal(t, defaults.Check.Extensions, cfg.Check.Extensions)
	assert.True(t, config.Enabled(cfg.Dump.DetectLanguage))
}
