package cli

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/yaklabco/luaoutline/pkg/runner"
)

func newBatchCommand(global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch MANIFEST",
		Short: "Resolve symbols across the files listed in a manifest",
		Long: `Resolve symbols across many files in parallel.

The manifest is a YAML (or JSON) file listing each source file together with
its symbols, either inline or in a separate symbol file. Relative paths are
taken from the manifest's directory.

  files:
    - path: init.lua
      symbols_file: init.symbols.json
    - path: util.lua
      symbols:
        - name: trim
          name_range: 3:15-3:19
          range: 3:0-5:3

Examples:
  luaoutline batch outline.yml
  luaoutline batch outline.yml --jobs 4 --format json`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0], global)
		},
	}

	return cmd
}

func runBatch(cmd *cobra.Command, manifestPath string, global *globalFlags) error {
	ctx, sess, err := newSession(cmd, global)
	if err != nil {
		return err
	}

	requests, err := runner.LoadManifest(ctx, manifestPath)
	if err != nil {
		switch {
		case errors.Is(err, runner.ErrInvalidManifest):
			return errors.Join(ErrInvalidInput, err)
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
			return errors.Join(ErrIO, err)
		default:
			return err
		}
	}

	return sess.execute(ctx, cmd, global, requests)
}
