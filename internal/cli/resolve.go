package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/luaoutline/pkg/boundary"
	"github.com/yaklabco/luaoutline/pkg/fsutil"
	"github.com/yaklabco/luaoutline/pkg/runner"
	"github.com/yaklabco/luaoutline/pkg/source"
	"github.com/yaklabco/luaoutline/pkg/symbols"
)

// errInteractiveStdin is returned when "-" is given but stdin is a terminal.
var errInteractiveStdin = errors.New("refusing to read source from an interactive terminal; pipe a file or pass a path")

type resolveFlags struct {
	symbolsFile string
	name        string
	nameRange   string
	fullRange   string
	kind        string
}

func newResolveCommand(global *globalFlags) *cobra.Command {
	flags := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Resolve the head and body of symbols in one file",
		Long:  resolveLongDescription,
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args[0], global, flags)
		},
	}

	cmd.Flags().StringVar(&flags.symbolsFile, "symbols", "",
		"symbol file: an LSP documentSymbol JSON array or a YAML/JSON symbol list")
	cmd.Flags().StringVar(&flags.nameRange, "name", "", "name range of a single symbol (L:C-L:C)")
	cmd.Flags().StringVar(&flags.fullRange, "range", "", "overall range of the symbol given by --name (L:C-L:C)")
	cmd.Flags().StringVar(&flags.kind, "kind", "", "kind of the symbol given by --name")
	cmd.Flags().StringVar(&flags.name, "symbol", "", "label for the symbol given by --name (default: the name text)")

	return cmd
}

const resolveLongDescription = `Resolve the head and body ranges of the symbols in one Lua file.

Symbols come from a symbol file (--symbols), from a single range given on
the command line (--name and optionally --range), or both. Ranges are
zero-based "line:column" pairs with byte columns. Pass "-" as FILE to read
the source from standard input.

Examples:
  luaoutline resolve init.lua --symbols init.symbols.json
  luaoutline resolve init.lua --name 0:9-0:12 --range 0:0-2:3
  cat init.lua | luaoutline resolve - --name 0:9-0:12
  luaoutline resolve init.lua --symbols syms.yml --format json`

func runResolve(cmd *cobra.Command, path string, global *globalFlags, flags *resolveFlags) error {
	if flags.symbolsFile == "" && flags.nameRange == "" {
		return fmt.Errorf("%w: one of --symbols or --name is required", ErrUsage)
	}
	if flags.nameRange == "" && (flags.fullRange != "" || flags.kind != "" || flags.name != "") {
		return fmt.Errorf("%w: --range, --kind, and --symbol require --name", ErrUsage)
	}

	ctx, sess, err := newSession(cmd, global)
	if err != nil {
		return err
	}

	content, err := readSource(ctx, cmd, path)
	if err != nil {
		return err
	}

	request := runner.Request{Path: path, Content: content, SymbolsFile: flags.symbolsFile}

	if flags.nameRange != "" {
		sym, err := flags.symbol(source.NewDocument(path, content))
		if err != nil {
			return errors.Join(ErrInvalidInput, err)
		}
		request.Symbols = []boundary.RoughSymbol{sym}
	}

	return sess.execute(ctx, cmd, global, []runner.Request{request})
}

// symbol builds the symbol described by the --name family of flags. Without
// --symbol, the text under the name range labels it.
func (f *resolveFlags) symbol(doc *source.Document) (boundary.RoughSymbol, error) {
	entry := symbols.Entry{Name: f.name, Kind: f.kind, NameRange: f.nameRange, Range: f.fullRange}
	sym, err := entry.Symbol()
	if err != nil {
		return boundary.RoughSymbol{}, err
	}

	if sym.Name == "" {
		if span, ok := doc.SpanOf(sym.NameRange); ok {
			sym.Name = string(doc.Slice(span))
		}
	}

	return sym, nil
}

// readSource reads path, or standard input when path is "-".
func readSource(ctx context.Context, cmd *cobra.Command, path string) ([]byte, error) {
	if path != runner.StdinPath {
		content, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("read source: %w", errors.Join(ErrIO, err))
		}
		return content, nil
	}

	stdin := cmd.InOrStdin()
	if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return nil, fmt.Errorf("%w: %w", ErrUsage, errInteractiveStdin)
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", errors.Join(ErrIO, err))
	}
	return content, nil
}
