package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/luaoutline/internal/ui/pretty"
	"github.com/yaklabco/luaoutline/pkg/runner"
)

// SummaryReporter writes only aggregate statistics.
type SummaryReporter struct {
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No files to resolve."))
		return 0, nil
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
	return result.Stats.SymbolsFailed, nil
}
