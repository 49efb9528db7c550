package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

func TestYamlHeader_Decode(t *testing.T) {
	t.Parallel()

	header := &mdast.YamlHeader{Value: "title: Hello\ntags: [a, b]\n"}

	var meta struct {
		Title string   `yaml:"title"`
		Tags  []string `yaml:"tags"`
	}
	require.NoError(t, header.Decode(&meta))
	assert.Equal(t, "Hello", meta.Title)
	assert.Equal(t, []string{"a", "b"}, meta.Tags)
}

func TestYamlHeader_DecodeInvalid(t *testing.T) {
	t.Parallel()

	header := &mdast.YamlHeader{Value: "title: [unclosed\n"}

	var meta map[string]any
	err := header.Decode(&meta)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode yaml header")
}
