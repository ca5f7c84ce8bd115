package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yaklabco/luaoutline/internal/cli"
	"github.com/yaklabco/luaoutline/pkg/runner"
	"github.com/yaklabco/luaoutline/pkg/symbols"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test-version", Commit: "test-commit", Date: "test-date"}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "luaoutline" {
		t.Errorf("expected Use to be 'luaoutline', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"resolve", "batch", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestRootCommandGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"debug", "config", "log-level", "format", "jobs", "color", "parser", "no-cache", "require-lua", "no-head", "compact"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag %q", name)
		}
	}
}

func TestResolveCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	resolveCmd, _, err := cmd.Find([]string{"resolve"})
	if err != nil {
		t.Fatalf("resolve command not found: %v", err)
	}

	for _, name := range []string{"symbols", "name", "range", "kind", "symbol"} {
		if resolveCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag %q on resolve", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"test-version", "test-commit", "test-date", "parser="} {
		if !strings.Contains(output, want) {
			t.Errorf("expected version output to contain %q, got %q", want, output)
		}
	}
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Usage:", "Available Commands:", "resolve", "batch", "--no-cache"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected help to contain %q", want)
		}
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"unresolved", cli.ErrUnresolved, cli.ExitUnresolved},
		{"usage", fmt.Errorf("%w: bad flag", cli.ErrUsage), cli.ExitInvalidUsage},
		{"invalid input", errors.Join(cli.ErrInvalidInput, errors.New("bad manifest")), cli.ExitDataError},
		{"io", fmt.Errorf("read: %w", cli.ErrIO), cli.ExitIOError},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		want   int
	}{
		{"nil result", nil, cli.ExitSuccess},
		{"clean run", &runner.Result{Stats: runner.Stats{SymbolsTotal: 2, SymbolsResolved: 2}}, cli.ExitSuccess},
		{"unresolved symbol", &runner.Result{Stats: runner.Stats{SymbolsFailed: 1}}, cli.ExitUnresolved},
		{
			"unreadable file",
			&runner.Result{
				Files: []runner.FileOutcome{{Path: "a.lua", Error: errors.New("read source: missing")}},
				Stats: runner.Stats{FilesErrored: 1},
			},
			cli.ExitIOError,
		},
		{
			"bad symbol file",
			&runner.Result{
				Files: []runner.FileOutcome{{Path: "a.lua", Error: fmt.Errorf("syms.json: %w", symbols.ErrInvalidSymbols)}},
				Stats: runner.Stats{FilesErrored: 1},
			},
			cli.ExitDataError,
		},
		{
			"rejected non-Lua file",
			&runner.Result{
				Files: []runner.FileOutcome{{Path: "a.py", Error: runner.ErrNotLua}},
				Stats: runner.Stats{FilesErrored: 1},
			},
			cli.ExitUnresolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCodeFromResult(tt.result); got != tt.want {
				t.Errorf("ExitCodeFromResult() = %d, want %d", got, tt.want)
			}
		})
	}
}
