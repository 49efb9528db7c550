// Command mdast parses Markdown into the formatter's syntax tree, prints
// trees and checks their range invariants.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/disrupted/dprint-plugin-markdown/internal/cli"
	"github.com/disrupted/dprint-plugin-markdown/internal/logging"
)

// Set with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // ldflags targets
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.BuildInfo{Version: version, Commit: commit, Date: date})

	err := root.ExecuteContext(ctx)
	// Failed checks are already in the report.
	if err != nil && !errors.Is(err, cli.ErrCheckFailed) {
		logging.Default().Error("mdast failed", logging.FieldError, err)
	}
	return cli.ExitCodeFromError(err)
}
