package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/luaoutline/internal/logging"
	"github.com/yaklabco/luaoutline/pkg/boundary"
	"github.com/yaklabco/luaoutline/pkg/fsutil"
	"github.com/yaklabco/luaoutline/pkg/langdetect"
	"github.com/yaklabco/luaoutline/pkg/source"
	"github.com/yaklabco/luaoutline/pkg/symbols"
)

// StdinPath labels a request read from standard input.
const StdinPath = "-"

// Runner orchestrates multi-file resolution using a boundary.Service.
type Runner struct {
	// Service resolves the symbols of one document.
	Service *boundary.Service
}

// New creates a new Runner with the given service.
func New(service *boundary.Service) *Runner {
	return &Runner{Service: service}
}

type job struct {
	index int
	req   Request
}

type indexedOutcome struct {
	index   int
	outcome FileOutcome
}

// Run resolves every request concurrently.
// It returns one FileOutcome per processed request, in request order, and
// aggregate stats. A failing file or symbol never stops the others; only
// context cancellation ends the run early.
func (r *Runner) Run(ctx context.Context, requests []Request, opts Options) (*Result, error) {
	result := &Result{
		Files: make([]FileOutcome, 0, len(requests)),
		Stats: newStats(),
	}
	result.Stats.FilesRequested = len(requests)

	if len(requests) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	jobs = min(jobs, len(requests))

	logging.FromContext(ctx).Debug("resolving",
		logging.FieldFiles, len(requests),
		logging.FieldJobs, jobs,
	)

	workCh := make(chan job)
	outCh := make(chan indexedOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for idx, req := range requests {
			select {
			case <-ctx.Done():
				return
			case workCh <- job{index: idx, req: req}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers may complete out of order.
	outcomes := make(map[int]FileOutcome, len(requests))
	for out := range outCh {
		outcomes[out.index] = out.outcome
	}

	for idx := range requests {
		if outcome, ok := outcomes[idx]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	logging.FromContext(ctx).Debug("resolved",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldSymbolsResolved, result.Stats.SymbolsResolved,
		logging.FieldSymbolsFailed, result.Stats.SymbolsFailed,
	)

	return result, nil
}

// worker processes requests from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan job, outCh chan<- indexedOutcome, opts Options) {
	for work := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome, err := r.process(ctx, work.req, opts)
		if err != nil {
			outcome.Error = err
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- indexedOutcome{index: work.index, outcome: outcome}:
		}
	}
}

// process loads one request and resolves its symbols.
func (r *Runner) process(ctx context.Context, req Request, opts Options) (FileOutcome, error) {
	outcome := FileOutcome{Path: req.Path}
	ctx = logging.WithFields(ctx, logging.FieldPath, req.Path)

	content := req.Content
	if content == nil {
		data, err := fsutil.ReadFile(ctx, req.Path)
		if err != nil {
			return outcome, fmt.Errorf("read source: %w", err)
		}
		content = data
	}

	doc := source.NewDocument(req.Path, content)
	outcome.Document = doc

	detectPath := req.Path
	if detectPath == StdinPath {
		detectPath = ""
	}
	outcome.Language = langdetect.Detect(detectPath, content)
	if outcome.Language != langdetect.LangLua {
		if opts.RequireLua {
			return outcome, fmt.Errorf("%w (detected %s)", ErrNotLua, outcome.Language)
		}
		logging.FromContext(ctx).Debug("input not detected as Lua", logging.FieldLanguage, outcome.Language)
	}

	syms := req.Symbols
	if req.SymbolsFile != "" {
		data, err := fsutil.ReadFile(ctx, req.SymbolsFile)
		if err != nil {
			return outcome, fmt.Errorf("read symbols: %w", err)
		}
		decoded, err := symbols.Decode(doc, data)
		if err != nil {
			return outcome, fmt.Errorf("%s: %w", req.SymbolsFile, err)
		}
		syms = append(append([]boundary.RoughSymbol(nil), syms...), decoded...)
	}

	results, err := r.Service.ResolveAll(ctx, doc, syms)
	outcome.Symbols = results
	if err != nil {
		return outcome, err
	}

	return outcome, nil
}
