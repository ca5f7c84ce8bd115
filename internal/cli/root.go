// Package cli provides the Cobra command structure for luaoutline.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/luaoutline/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	debug      bool
	configPath string
	logLevel   string
	format     string
	jobs       int
	color      string
	parser     string
	noCache    bool
	requireLua bool
	noHead     bool
	compact    bool
}

// NewRootCommand creates the root luaoutline command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "luaoutline",
		Short: "Split Lua symbols into head and body ranges",
		Long: `luaoutline refines the rough symbol ranges reported by a symbol provider
into a head (the signature, such as "foo(a, b)") and a body (everything a
reader can fold away) for each Lua construct.

Boundaries come from a tree-sitter syntax tree when one is available, and
from a token-level scan of the source otherwise.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	// Global flags.
	persistent := rootCmd.PersistentFlags()
	persistent.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	persistent.StringVar(&flags.configPath, "config", "", "path to config file")
	persistent.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	persistent.StringVar(&flags.format, "format", "text", "output format: text, json, yaml, summary")
	persistent.IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	persistent.StringVar(&flags.color, "color", "auto", "colorize output: auto, always, never")
	persistent.StringVar(&flags.parser, "parser", "", "structural parser: treesitter, none")
	persistent.BoolVar(&flags.noCache, "no-cache", false, "disable the parsed tree cache")
	persistent.BoolVar(&flags.requireLua, "require-lua", false, "reject inputs not detected as Lua")
	persistent.BoolVar(&flags.noHead, "no-head", false, "omit head text from output")
	persistent.BoolVar(&flags.compact, "compact", false, "use compact JSON output")

	// Add subcommands.
	rootCmd.AddCommand(newResolveCommand(flags))
	rootCmd.AddCommand(newBatchCommand(flags))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}
