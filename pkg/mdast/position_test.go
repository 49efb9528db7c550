package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

func TestRange_Basics(t *testing.T) {
	t.Parallel()

	r := mdast.Range{Start: 3, End: 8}
	assert.Equal(t, 5, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(7))
	assert.False(t, r.Contains(8))
	assert.False(t, r.Contains(2))
	assert.True(t, r.ContainsRange(mdast.Range{Start: 3, End: 8}))
	assert.True(t, r.ContainsRange(mdast.Range{Start: 5, End: 5}))
	assert.False(t, r.ContainsRange(mdast.Range{Start: 2, End: 4}))
	assert.Equal(t, mdast.Range{Start: 1, End: 8}, r.Cover(mdast.Range{Start: 1, End: 2}))
	assert.Equal(t, "[3, 8)", r.String())
	assert.True(t, mdast.Range{Start: 4, End: 4}.IsEmpty())
}

func TestRange_Text(t *testing.T) {
	t.Parallel()

	source := "# Héllo"
	ctx := mdast.NewContext(source)

	assert.Equal(t, source, mdast.Range{Start: 0, End: len(source)}.Text(ctx))
	assert.Equal(t, "Héllo", mdast.Range{Start: 2, End: len(source)}.Text(ctx))
	assert.Empty(t, mdast.Range{Start: 1, End: 1}.Text(ctx))
	assert.Empty(t, mdast.Range{Start: len(source), End: len(source)}.Text(ctx))
	assert.Equal(t, len(source), ctx.Len())
	assert.Equal(t, source, ctx.Source())
}

func TestRange_InvalidPanics(t *testing.T) {
	t.Parallel()

	ctx := mdast.NewContext("# Héllo")

	tests := []struct {
		name   string
		r      mdast.Range
		reason string
	}{
		{"end past source", mdast.Range{Start: 0, End: 100}, "out of bounds"},
		{"negative start", mdast.Range{Start: -1, End: 2}, "out of bounds"},
		{"start after end", mdast.Range{Start: 4, End: 2}, "start after end"},
		{"splits a character", mdast.Range{Start: 0, End: 4}, "not on a character boundary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				recovered := recover()
				require.NotNil(t, recovered)
				rangeErr, ok := recovered.(*mdast.RangeError)
				require.True(t, ok, "panic value %T", recovered)
				assert.Equal(t, tt.reason, rangeErr.Reason)
				assert.Equal(t, tt.r, rangeErr.Range)
				assert.Contains(t, rangeErr.Error(), tt.reason)
			}()

			_ = tt.r.Text(ctx)
		})
	}
}
