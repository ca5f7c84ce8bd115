package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/luaoutline/internal/configloader"
	"github.com/yaklabco/luaoutline/internal/logging"
	"github.com/yaklabco/luaoutline/pkg/config"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new luaoutline configuration file",
		Long: `Create a new .luaoutline.yml configuration file in the current directory
holding the default settings, each with a short comment.

Examples:
  luaoutline init                     Create .luaoutline.yml
  luaoutline init --force             Overwrite an existing file (saved as .bak)
  luaoutline init --output custom.yml Write to a custom file path`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing configuration file, keeping a .bak copy")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output file path (default: "+configloader.ProjectConfigFiles[0]+")")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.ProjectConfigFiles[0]
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	backupPath, err := configloader.WriteConfig(ctx, config.NewConfig(), absPath, flags.force)
	if err != nil {
		return errors.Join(ErrIO, err)
	}
	if backupPath != "" {
		logger.Warn("replaced existing file", logging.FieldOutput, backupPath)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("environment variables override file settings", logging.FieldEnv, configloader.SortedEnvVars())

	return nil
}
