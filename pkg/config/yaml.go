package config

import (
	"bytes"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// YAMLIndent is the indentation used when serializing.
const YAMLIndent = 2

// ToYAML serializes the configuration. CLI-only fields are omitted.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration after a comment header.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	body, err := c.ToYAML()
	if err != nil || header == "" {
		return body, err
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(body)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration. Unknown keys are rejected.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return cfg, nil
}

// Clone returns a deep copy, CLI-only fields included.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Parser = ParserConfig{
		FrontMatter: cloneBool(c.Parser.FrontMatter),
		Footnotes:   cloneBool(c.Parser.Footnotes),
	}
	clone.Dump.Text = cloneBool(c.Dump.Text)
	clone.Dump.DetectLanguage = cloneBool(c.Dump.DetectLanguage)
	clone.Check.Extensions = slices.Clone(c.Check.Extensions)
	clone.Check.Exclude = slices.Clone(c.Check.Exclude)

	return &clone
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	return Bool(*b)
}
