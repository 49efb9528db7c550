//go:build stave

package main

import (
	"bytes"
	"cmp"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const (
	binary    = "bin/mdast"
	mainPkg   = "./cmd/mdast"
	generated = "pkg/mdast/nodes_gen.go"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"g":   Generate,
	"t":   Test.Default,
	"l":   Lint.Default,
	"c":   Check,
	"i":   Install,
	"fmt": Lint.Fmt,
	"bc":  Bench.Corpus,
}

// Namespace types group related targets.
type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
)

// Build compiles bin/mdast with version info when sources changed.
func Build() error {
	st.Deps(Generate)
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, mainPkg)
}

// Generate rewrites the node kinds, methods and visitor when the node
// declarations or the generator changed.
func Generate() error {
	regen, err := target.Dir(generated, "pkg/mdast/nodes.go", "pkg/mdast/internal/gennode")
	if err != nil {
		return err
	}
	if !regen {
		return nil
	}
	fmt.Println("Generating", generated)
	return sh.RunV("go", "generate", "./pkg/mdast/...")
}

// Check formats, lints and tests.
func Check() {
	st.SerialDeps(Generate, Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes build and coverage output.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install installs mdast into $GOBIN.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Deps downloads and tidies modules.
func Deps() error {
	if err := sh.RunV("go", "mod", "download"); err != nil {
		return err
	}
	return sh.RunV("go", "mod", "tidy")
}

// Coverage writes coverage.html from a full test run.
func Coverage() error {
	st.Deps(Test.Default)
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Default runs the race-enabled suite with coverage, printing failures only.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails")
}

// Verbose runs the suite printing every test.
func (Test) Verbose() error {
	return gotestsum("standard-verbose")
}

// Fuzz runs each fuzz target for $FUZZTIME (default 30s).
func (Test) Fuzz() error {
	fuzztime := cmp.Or(os.Getenv("FUZZTIME"), "30s")
	targets := []struct{ pkg, name string }{
		{"./pkg/parser/goldmark", "FuzzParse"},
		{"./pkg/parser/goldmark", "FuzzParseGFM"},
		{"./pkg/fsutil", "FuzzReadFileCheckModified"},
	}
	for _, t := range targets {
		fmt.Printf("Fuzzing %s %s for %s\n", t.pkg, t.name, fuzztime)
		if err := sh.RunV("go", "test", "-run=^$", "-fuzz=^"+t.name+"$", "-fuzztime="+fuzztime, t.pkg); err != nil {
			return err
		}
	}
	return nil
}

func gotestsum(format string) error {
	procs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), fmt.Sprint(min(runtime.NumCPU(), 4)))
	return sh.RunV("go",
		"tool", "gotestsum",
		"-f", format,
		"--",
		"-race",
		"-p", procs,
		"-parallel", procs,
		"./...",
		"-coverprofile=coverage.out",
		"-covermode=atomic",
	)
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// CI runs golangci-lint without fixing anything.
func (Lint) CI() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck fails when gofmt would change a file.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s\nrun 'stave lint:fmt'", out)
	}
	return nil
}

// Vet runs go vet.
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Gate runs every check CI runs, in order.
func (CI) Gate() error {
	st.SerialDeps(
		CI.GenCheck,
		Lint.FmtCheck,
		Lint.Vet,
		Lint.CI,
		Build,
		Test.Default,
		CI.ModTidy,
		CI.Cross,
	)
	fmt.Println("✓ CI gate passed")
	return nil
}

// ModTidy fails when go mod tidy changes go.mod or go.sum.
func (CI) ModTidy() error {
	return unchangedBy([]string{"go.mod", "go.sum"}, "go", "mod", "tidy")
}

// GenCheck fails when go generate changes the committed node file.
func (CI) GenCheck() error {
	return unchangedBy([]string{generated}, "go", "generate", "./pkg/mdast/...")
}

// Cross builds for every release platform with cgo off.
func (CI) Cross() error {
	platforms := []string{
		"linux/amd64", "linux/arm64",
		"darwin/amd64", "darwin/arm64",
		"windows/amd64", "windows/arm64",
		"freebsd/amd64", "openbsd/amd64",
	}
	for _, platform := range platforms {
		goos, goarch, _ := strings.Cut(platform, "/")
		env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}
		if err := sh.RunWith(env, "go", "build", "-o", os.DevNull, mainPkg); err != nil {
			return fmt.Errorf("build %s: %w", platform, err)
		}
	}
	return nil
}

// Default runs the Go benchmarks.
func (Bench) Default() error {
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./...")
}

// Corpus checks every Markdown file under $MDAST_CORPUS (default: the
// repository) with a fresh build and prints the summary block.
func (Bench) Corpus() error {
	st.Deps(Build)
	corpus := cmp.Or(os.Getenv("MDAST_CORPUS"), ".")
	start := time.Now()
	err := sh.RunV(binary, "check", "--format", "summary", corpus)
	fmt.Printf("%s checked in %s\n", corpus, time.Since(start).Round(time.Millisecond))
	return err
}

// unchangedBy runs a command and fails if it rewrote any of files.
func unchangedBy(files []string, cmd string, args ...string) error {
	before := make([][]byte, len(files))
	for i, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		before[i] = data
	}

	if err := sh.RunV(cmd, args...); err != nil {
		return err
	}

	for i, name := range files {
		after, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if !bytes.Equal(before[i], after) {
			return fmt.Errorf("%s changed after '%s %s'; commit the result", name, cmd, strings.Join(args, " "))
		}
	}
	return nil
}

func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags injects version, commit and build date into main.
func ldflags() string {
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev"),
		cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none"),
		time.Now().UTC().Format(time.RFC3339),
	)
}
