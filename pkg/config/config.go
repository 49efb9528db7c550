// Package config defines the configuration types for the mdast tools.
// These are plain data structures; discovery and merging live in
// internal/configloader.
package config

// Flavor specifies the Markdown flavor to use for parsing.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParserConfig toggles the producer's extensions. Nil means enabled.
type ParserConfig struct {
	FrontMatter *bool `yaml:"front_matter,omitempty"`
	Footnotes   *bool `yaml:"footnotes,omitempty"`
}

// DumpConfig controls the tree dump.
type DumpConfig struct {
	// Text shows a preview of each node's source text. Nil means enabled.
	Text *bool `yaml:"text,omitempty"`

	// DetectLanguage guesses a language for untagged code blocks.
	// Nil means enabled.
	DetectLanguage *bool `yaml:"detect_language,omitempty"`

	// Width caps preview lines. 0 uses the terminal width.
	Width int `yaml:"width,omitempty"`

	// Raw prints Go syntax instead of the styled tree.
	Raw bool `yaml:"-"`
}

// CheckConfig controls multi-file runs.
type CheckConfig struct {
	// Extensions select Markdown files in directory walks.
	Extensions []string `yaml:"extensions,omitempty"`

	// Exclude lists glob patterns to skip.
	Exclude []string `yaml:"exclude,omitempty"`

	FollowSymlinks bool `yaml:"follow_symlinks,omitempty"`

	// MaxBytes rejects larger files. 0 means unlimited.
	MaxBytes int64 `yaml:"max_bytes,omitempty"`

	// Jobs is the worker count. 0 means one per CPU.
	Jobs int `yaml:"-"`
}

// Config is the root configuration structure.
type Config struct {
	Flavor Flavor       `yaml:"flavor,omitempty"`
	Color  ColorMode    `yaml:"color,omitempty"`
	Parser ParserConfig `yaml:"parser,omitempty"`
	Dump   DumpConfig   `yaml:"dump,omitempty"`
	Check  CheckConfig  `yaml:"check,omitempty"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Flavor: FlavorGFM,
		Color:  ColorAuto,
		Parser: ParserConfig{
			FrontMatter: Bool(true),
			Footnotes:   Bool(true),
		},
		Dump: DumpConfig{
			Text:           Bool(true),
			DetectLanguage: Bool(true),
		},
		Check: CheckConfig{
			Extensions: []string{".md", ".markdown"},
		},
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Enabled dereferences an optional toggle, treating nil as true.
func Enabled(b *bool) bool {
	return b == nil || *b
}
