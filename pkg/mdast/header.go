package mdast

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YamlHeader is the YAML front matter block at the top of a file.
// The range covers both "---" delimiter lines; Value holds only the
// YAML document between them.
type YamlHeader struct {
	Range
	Value string
}

// Decode unmarshals the front matter into v.
func (h *YamlHeader) Decode(v any) error {
	if err := yaml.Unmarshal([]byte(h.Value), v); err != nil {
		return fmt.Errorf("decode yaml header: %w", err)
	}
	return nil
}
