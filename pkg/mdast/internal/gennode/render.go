package main

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"text/template"
)

var tmpl = template.Must(template.New("nodes").Funcs(template.FuncMap{
	"base":   filepath.Base,
	"single": isSingleSlice,
}).Parse(`// Code generated by gennode from {{base .Source}}; DO NOT EDIT.

package {{.Package}}

import "fmt"

// Node kinds, one per node struct, in declaration order.
const (
{{- range $i, $k := .Kinds}}
	Kind{{$k.Name}}{{if eq $i 0}} Kind = iota{{end}}
{{- end}}
)

// KindCount is the number of node kinds.
const KindCount = {{len .Kinds}}

var kindNames = [KindCount]string{
{{- range .Kinds}}
	Kind{{.Name}}: "{{.Name}}",
{{- end}}
}
{{range .Kinds}}
// Kind returns Kind{{.Name}}.
func (*{{.Name}}) Kind() Kind { return Kind{{.Name}} }

func (*{{.Name}}) node() {}
{{if not .Children}}
// ChildNodes returns nil; {{.Name}} has no children.
func (*{{.Name}}) ChildNodes() []Node { return nil }
{{else if single .Children}}
// ChildNodes returns the children in document order.
func (n *{{.Name}}) ChildNodes() []Node { return n.{{(index .Children 0).Name}} }
{{else}}
// ChildNodes returns the children in document order.
func (n *{{.Name}}) ChildNodes() []Node {
	var children []Node
{{- range .Children}}
{{- if eq .Shape 0}}
	children = append(children, n.{{.Name}}...)
{{- else if eq .Shape 1}}
	if n.{{.Name}} != nil {
		children = append(children, n.{{.Name}})
	}
{{- else}}
	for _, child := range n.{{.Name}} {
		children = append(children, child)
	}
{{- end}}
{{- end}}
	return children
}
{{end}}
{{- end}}
// Visitor has one method per node kind. Implementations that miss a kind
// do not compile.
type Visitor interface {
{{- range .Kinds}}
	Visit{{.Name}}(n *{{.Name}})
{{- end}}
}

// Visit calls the method of v that matches the concrete type of n.
func Visit(n Node, v Visitor) {
	switch n := n.(type) {
{{- range .Kinds}}
	case *{{.Name}}:
		v.Visit{{.Name}}(n)
{{- end}}
	default:
		panic(fmt.Sprintf("mdast: unhandled node type %T", n))
	}
}
`))

func isSingleSlice(fields []childField) bool {
	return len(fields) == 1 && fields[0].Shape == shapeNodeSlice
}

// render executes the template and gofmts the result.
func render(decl *declaration) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, decl); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return out, nil
}
