package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/luaoutline/internal/configloader"
	"github.com/yaklabco/luaoutline/internal/logging"
	"github.com/yaklabco/luaoutline/pkg/config"
	"github.com/yaklabco/luaoutline/pkg/reporter"
	"github.com/yaklabco/luaoutline/pkg/runner"
)

// session is the loaded state shared by resolve and batch.
type session struct {
	cfg     *config.Config
	logger  *log.Logger
	workDir string
}

// cliConfig collects the configuration values set explicitly by flags.
func cliConfig(cmd *cobra.Command, flags *globalFlags) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("parser") {
		cfg.Parser = config.ParserName(flags.parser)
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if changed("color") {
		cfg.Color = config.ColorMode(flags.color)
	}
	if changed("require-lua") {
		requireLua := flags.requireLua
		cfg.RequireLua = &requireLua
	}

	return cfg
}

// newSession loads configuration, applies logging settings, and returns a
// context carrying the configured logger.
func newSession(cmd *cobra.Command, flags *globalFlags) (context.Context, *session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return ctx, nil, fmt.Errorf("get working directory: %w", errors.Join(ErrIO, err))
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: flags.configPath,
		CLIConfig:    cliConfig(cmd, flags),
	})
	if err != nil {
		return ctx, nil, errors.Join(ErrInvalidInput, errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config
	if flags.noCache {
		cfg.CacheSize = 0
	}

	if cfg.LogLevel != "" && !flags.debug {
		logging.SetLevel(cfg.LogLevel)
	}
	logger := logging.Default()

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldParser, cfg.Parser,
		logging.FieldCacheSize, cfg.CacheSize,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldFormat, cfg.Format,
	)

	return logging.WithLogger(ctx, logger), &session{cfg: cfg, logger: logger, workDir: workDir}, nil
}

// execute resolves requests and reports the result on the command's output.
func (s *session) execute(ctx context.Context, cmd *cobra.Command, flags *globalFlags, requests []runner.Request) error {
	service, err := runner.NewService(s.cfg, s.logger)
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}

	s.logger.Debug("starting run",
		logging.FieldFiles, len(requests),
		logging.FieldWorkingDir, s.workDir,
		logging.FieldJobs, s.cfg.Jobs,
	)

	result, err := runner.New(service).Run(ctx, requests, runner.Options{
		Jobs:       s.cfg.Jobs,
		RequireLua: s.cfg.RequiresLua(),
	})
	if err != nil {
		return errors.Join(errors.New("run failed"), err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      s.cfg.Format,
		Color:       string(s.cfg.Color),
		ShowHead:    !flags.noHead,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  s.workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", errors.Join(ErrIO, err))
	}

	s.logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldSymbolsResolved, result.Stats.SymbolsResolved,
		logging.FieldSymbolsFailed, result.Stats.SymbolsFailed,
	)

	return resultError(result)
}
