package cli_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/disrupted/dprint-plugin-markdown/internal/cli"
	"github.com/disrupted/dprint-plugin-markdown/internal/configloader"
	"github.com/disrupted/dprint-plugin-markdown/pkg/fsutil"
	"github.com/disrupted/dprint-plugin-markdown/pkg/parser/goldmark"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test-version"})

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}
	if cmd.Use != "mdast" {
		t.Errorf("expected Use to be 'mdast', got %q", cmd.Use)
	}
	if cmd.Short == "" || cmd.Long == "" {
		t.Error("expected Short and Long descriptions to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{})

	for _, path := range [][]string{
		{"dump"},
		{"check"},
		{"config"},
		{"config", "show"},
		{"config", "init"},
		{"config", "env"},
		{"version"},
	} {
		sub, _, err := cmd.Find(path)
		if err != nil {
			t.Errorf("expected subcommand %v to exist, got error: %v", path, err)
			continue
		}
		if want := path[len(path)-1]; sub.Name() != want {
			t.Errorf("expected subcommand name %q, got %q", want, sub.Name())
		}
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{})

	tests := map[string][]string{
		"dump":  {"raw", "no-text", "no-detect", "width"},
		"check": {"format", "jobs", "exclude", "ext", "follow-symlinks", "max-bytes", "no-context", "compact", "verbose"},
	}

	for name, flags := range tests {
		sub, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Fatalf("%s command not found: %v", name, err)
		}
		for _, flag := range flags {
			if sub.Flags().Lookup(flag) == nil {
				t.Errorf("expected flag %q on %s command", flag, name)
			}
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{})

	for _, name := range []string{"debug", "config", "color", "flavor"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected global flag %q to exist", name)
		}
	}

	if got := cmd.PersistentFlags().Lookup("flavor").DefValue; got != "gfm" {
		t.Errorf("expected flavor default gfm, got %q", got)
	}
}

func TestDumpRequiresArgs(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	dump, _, err := cmd.Find([]string{"dump"})
	if err != nil {
		t.Fatalf("dump command not found: %v", err)
	}

	if err := dump.Args(dump, nil); err == nil {
		t.Error("dump should reject an empty argument list")
	}
	if err := dump.Args(dump, []string{"a.md", "docs/"}); err != nil {
		t.Errorf("dump should accept several paths, got error: %v", err)
	}
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"check failed", fmt.Errorf("dump: %w", cli.ErrCheckFailed), cli.ExitCheckFailed},
		{"usage", &cli.UsageError{Err: errors.New("bad flag")}, cli.ExitInvalidUsage},
		{"config", fmt.Errorf("%w: broken", cli.ErrConfig), cli.ExitConfigError},
		{"config not found", configloader.ErrConfigNotFound, cli.ExitConfigError},
		{"validation", &configloader.ValidationError{Field: "flavor"}, cli.ExitConfigError},
		{"too large", fmt.Errorf("read: %w", fsutil.ErrTooLarge), cli.ExitIOError},
		{"missing path", fmt.Errorf("stat x.md: %w", fs.ErrNotExist), cli.ExitIOError},
		{"invalid utf-8", fmt.Errorf("%w: %w", cli.ErrCheckFailed, goldmark.ErrInvalidUTF8), cli.ExitDataError},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCodeFromError(tt.err); got != tt.want {
				t.Errorf("ExitCodeFromError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
