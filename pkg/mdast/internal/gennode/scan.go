package main

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// rangeType is the embedded type that marks a struct as a node kind.
const rangeType = "Range"

// fieldShape classifies a struct field that holds child nodes.
type fieldShape int

const (
	shapeNodeSlice fieldShape = iota // []Node
	shapeKindPtr                     // *SomeKind
	shapeKindSlice                   // []*SomeKind
)

type childField struct {
	Name  string
	Shape fieldShape
}

type kindDecl struct {
	Name     string
	Children []childField
}

// declaration is everything the template needs.
type declaration struct {
	Package string
	Source  string
	Kinds   []kindDecl
}

var errNoKinds = errors.New("no struct embedding Range found")

// collectKinds parses src and returns the node kinds in declaration order.
func collectKinds(filename string, src []byte) (*declaration, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	structs := make(map[string]*ast.StructType)
	var order []string

	for _, d := range file.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := typeSpec.Type.(*ast.StructType)
			if !ok || !embedsRange(st) {
				continue
			}
			structs[typeSpec.Name.Name] = st
			order = append(order, typeSpec.Name.Name)
		}
	}

	if len(order) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, errNoKinds)
	}

	decl := &declaration{
		Package: file.Name.Name,
		Source:  filename,
	}
	for _, name := range order {
		decl.Kinds = append(decl.Kinds, kindDecl{
			Name:     name,
			Children: childFields(structs[name], structs),
		})
	}

	return decl, nil
}

func embedsRange(st *ast.StructType) bool {
	for _, field := range st.Fields.List {
		if len(field.Names) != 0 {
			continue
		}
		if ident, ok := field.Type.(*ast.Ident); ok && ident.Name == rangeType {
			return true
		}
	}
	return false
}

// childFields returns the fields of st that hold nodes, in field order.
func childFields(st *ast.StructType, kinds map[string]*ast.StructType) []childField {
	var fields []childField

	for _, field := range st.Fields.List {
		shape, ok := classify(field.Type, kinds)
		if !ok {
			continue
		}
		for _, name := range field.Names {
			fields = append(fields, childField{Name: name.Name, Shape: shape})
		}
	}

	return fields
}

func classify(expr ast.Expr, kinds map[string]*ast.StructType) (fieldShape, bool) {
	switch typ := expr.(type) {
	case *ast.ArrayType:
		if typ.Len != nil {
			return 0, false
		}
		if ident, ok := typ.Elt.(*ast.Ident); ok && ident.Name == "Node" {
			return shapeNodeSlice, true
		}
		if star, ok := typ.Elt.(*ast.StarExpr); ok && isKind(star.X, kinds) {
			return shapeKindSlice, true
		}
	case *ast.StarExpr:
		if isKind(typ.X, kinds) {
			return shapeKindPtr, true
		}
	}
	return 0, false
}

func isKind(expr ast.Expr, kinds map[string]*ast.StructType) bool {
	ident, ok := expr.(*ast.Ident)
	if !ok {
		return false
	}
	_, found := kinds[ident.Name]
	return found
}
