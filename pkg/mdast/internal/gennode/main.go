// Command gennode generates the Node plumbing for the mdast package.
//
// It reads the node declarations file, treats every struct type that embeds
// Range as a node kind, and writes the Kind enumeration, the Node methods of
// each kind, the Visitor interface and the Visit dispatcher. Keeping all of
// these derived from one list means a kind cannot be added to the union
// without also being handled everywhere else.
//
// Usage:
//
//	go run ./internal/gennode -input nodes.go -output nodes_gen.go
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	input := flag.String("input", "nodes.go", "file declaring the node kinds")
	output := flag.String("output", "nodes_gen.go", "file to write")
	flag.Parse()

	if err := run(*input, *output); err != nil {
		fmt.Fprintf(os.Stderr, "gennode: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output string) error {
	src, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	decl, err := collectKinds(input, src)
	if err != nil {
		return err
	}

	generated, err := render(decl)
	if err != nil {
		return err
	}

	//nolint:gosec // generated source is meant to be world-readable
	if err := os.WriteFile(output, generated, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	return nil
}
