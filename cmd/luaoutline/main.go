// Package main is the entry point for the luaoutline CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/luaoutline/internal/cli"
	"github.com/yaklabco/luaoutline/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Unresolved symbols are already in the report.
		if !errors.Is(err, cli.ErrUnresolved) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCode(err)
	}

	return cli.ExitSuccess
}
