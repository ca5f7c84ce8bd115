package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/luaoutline/internal/ui/pretty"
	"github.com/yaklabco/luaoutline/pkg/runner"
	"github.com/yaklabco/luaoutline/pkg/source"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to resolve."))
		}
		return 0, nil
	}

	for idx, file := range result.Files {
		if idx > 0 {
			fmt.Fprintln(r.bw)
		}

		path := displayPath(file.Path, r.opts.WorkingDir)
		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Symbols)))

		var doc *source.Document
		if r.opts.ShowHead {
			doc = file.Document
		}
		for _, sym := range file.Symbols {
			fmt.Fprint(r.bw, r.styles.FormatSymbol(sym, doc))
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return result.Stats.SymbolsFailed, nil
}
