package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDecls = `package sample

type Range struct{ Start, End int }

type Leaf struct {
	Range
	Value string
}

type Box struct {
	Range
	Lid      *Leaf
	Children []Node
	Leaves   []*Leaf
}

type notAKind struct {
	Value string
}

type Wrapper struct {
	Range
	Children []Node
}
`

func TestCollectKinds(t *testing.T) {
	t.Parallel()

	decl, err := collectKinds("sample.go", []byte(sampleDecls))
	require.NoError(t, err)

	assert.Equal(t, "sample", decl.Package)
	require.Len(t, decl.Kinds, 3)
	assert.Equal(t, "Leaf", decl.Kinds[0].Name)
	assert.Equal(t, "Box", decl.Kinds[1].Name)
	assert.Equal(t, "Wrapper", decl.Kinds[2].Name)

	assert.Empty(t, decl.Kinds[0].Children)
	assert.Equal(t, []childField{
		{Name: "Lid", Shape: shapeKindPtr},
		{Name: "Children", Shape: shapeNodeSlice},
		{Name: "Leaves", Shape: shapeKindSlice},
	}, decl.Kinds[1].Children)
	assert.True(t, isSingleSlice(decl.Kinds[2].Children))
}

func TestCollectKinds_NoKinds(t *testing.T) {
	t.Parallel()

	_, err := collectKinds("empty.go", []byte("package empty\n\ntype T struct{}\n"))
	require.ErrorIs(t, err, errNoKinds)
}

func TestRender_ProducesValidGo(t *testing.T) {
	t.Parallel()

	decl, err := collectKinds("sample.go", []byte(sampleDecls))
	require.NoError(t, err)

	out, err := render(decl)
	require.NoError(t, err)

	src := string(out)
	assert.True(t, strings.HasPrefix(src, "// Code generated by gennode from sample.go; DO NOT EDIT."))
	assert.Contains(t, src, "KindLeaf Kind = iota")
	assert.Contains(t, src, "const KindCount = 3")
	assert.Contains(t, src, "func (n *Wrapper) ChildNodes() []Node { return n.Children }")
	assert.Contains(t, src, "func (*Leaf) ChildNodes() []Node { return nil }")
	assert.Contains(t, src, "VisitBox(n *Box)")
	assert.Contains(t, src, "case *Wrapper:")

	_, err = parser.ParseFile(token.NewFileSet(), "out.go", out, parser.AllErrors)
	require.NoError(t, err)
}

func TestRun_WritesOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "nodes.go")
	output := filepath.Join(dir, "nodes_gen.go")
	require.NoError(t, os.WriteFile(input, []byte(sampleDecls), 0o600))

	require.NoError(t, run(input, output))

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(out), "KindBox")
}

// TestGeneratedFileInSync checks that the committed nodes_gen.go declares
// exactly the kinds found in nodes.go, in the same order.
func TestGeneratedFileInSync(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile(filepath.Join("..", "..", "nodes.go"))
	require.NoError(t, err)

	decl, err := collectKinds("nodes.go", src)
	require.NoError(t, err)

	var want []string
	for _, k := range decl.Kinds {
		want = append(want, "Kind"+k.Name)
	}

	assert.Equal(t, want, generatedKindConstants(t, filepath.Join("..", "..", "nodes_gen.go")))
}

func generatedKindConstants(t *testing.T, path string) []string {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.SkipObjectResolution)
	require.NoError(t, err)

	var names []string
	for _, d := range file.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			for _, name := range spec.(*ast.ValueSpec).Names {
				if name.Name != "KindCount" {
					names = append(names, name.Name)
				}
			}
		}
	}
	return names
}
