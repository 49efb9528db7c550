package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/disrupted/dprint-plugin-markdown/pkg/config"
)

// EnvPrefix is the prefix for all environment overrides.
const EnvPrefix = "MDAST_"

// envVar binds one environment variable to a config field.
type envVar struct {
	suffix string
	help   string
	apply  func(cfg *config.Config, value string) error
}

//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{"FLAVOR", "Markdown flavor: commonmark or gfm", func(cfg *config.Config, v string) error {
		cfg.Flavor = config.Flavor(v)
		return nil
	}},
	{"COLOR", "Styled output: auto, always, or never", func(cfg *config.Config, v string) error {
		cfg.Color = config.ColorMode(v)
		return nil
	}},
	{"FRONT_MATTER", "Parse YAML front matter: true or false", boolField(func(c *config.Config) **bool {
		return &c.Parser.FrontMatter
	})},
	{"FOOTNOTES", "Parse footnotes: true or false", boolField(func(c *config.Config) **bool {
		return &c.Parser.Footnotes
	})},
	{"DUMP_TEXT", "Show source previews in dumps: true or false", boolField(func(c *config.Config) **bool {
		return &c.Dump.Text
	})},
	{"DETECT_LANGUAGE", "Guess code block languages: true or false", boolField(func(c *config.Config) **bool {
		return &c.Dump.DetectLanguage
	})},
	{"WIDTH", "Preview width (0 = terminal)", func(cfg *config.Config, v string) error {
		n, err := strconv.Atoi(v)
		cfg.Dump.Width = n
		return err
	}},
	{"EXTENSIONS", "Comma-separated Markdown extensions", func(cfg *config.Config, v string) error {
		cfg.Check.Extensions = splitList(v)
		return nil
	}},
	{"EXCLUDE", "Comma-separated exclude patterns", func(cfg *config.Config, v string) error {
		cfg.Check.Exclude = splitList(v)
		return nil
	}},
	{"JOBS", "Number of parallel workers (0 = auto)", func(cfg *config.Config, v string) error {
		n, err := strconv.Atoi(v)
		cfg.Check.Jobs = n
		return err
	}},
	{"MAX_BYTES", "Largest file to read (0 = unlimited)", func(cfg *config.Config, v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		cfg.Check.MaxBytes = n
		return err
	}},
}

func boolField(field func(*config.Config) **bool) func(*config.Config, string) error {
	return func(cfg *config.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(cfg) = config.Bool(b)
		return nil
	}
}

// LoadFromEnv applies MDAST_* overrides from the process environment.
func LoadFromEnv(cfg *config.Config) error {
	return loadEnv(cfg, os.Getenv)
}

func loadEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}

	for _, ev := range envVars {
		name := EnvPrefix + ev.suffix
		value := strings.TrimSpace(getenv(name))
		if value == "" {
			continue
		}
		if err := ev.apply(cfg, value); err != nil {
			return fmt.Errorf("invalid value for %s: %q: %w", name, value, err)
		}
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ListEnvVars returns the supported variables and their descriptions,
// sorted by name.
func ListEnvVars() [][2]string {
	out := make([][2]string, 0, len(envVars))
	for _, ev := range envVars {
		out = append(out, [2]string{EnvPrefix + ev.suffix, ev.help})
	}
	slices.SortFunc(out, func(a, b [2]string) int { return strings.Compare(a[0], b[0]) })
	return out
}
