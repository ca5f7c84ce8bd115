package runner

import (
	"github.com/yaklabco/luaoutline/pkg/boundary"
	"github.com/yaklabco/luaoutline/pkg/source"
)

// FileOutcome holds the resolution results for one request.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Language is the detected language of the file.
	Language string

	// Document is the loaded source. Nil if the file could not be read.
	Document *source.Document

	// Symbols holds one result per requested symbol, in request order.
	Symbols []boundary.SymbolResult

	// Error is set if the file could not be processed.
	Error error
}

// Resolved returns the number of symbols that resolved.
func (o FileOutcome) Resolved() int {
	count := 0
	for _, sym := range o.Symbols {
		if sym.OK() {
			count++
		}
	}
	return count
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesRequested is the number of requests in the run.
	FilesRequested int

	// FilesProcessed is the number of files successfully loaded and resolved.
	FilesProcessed int

	// FilesErrored is the number of files that could not be processed.
	FilesErrored int

	// SymbolsTotal is the number of symbols attempted.
	SymbolsTotal int

	// SymbolsResolved is the number of symbols that resolved.
	SymbolsResolved int

	// SymbolsFailed is the number of symbols that did not resolve.
	SymbolsFailed int

	// ResolvedByStrategy counts resolved symbols per strategy name.
	ResolvedByStrategy map[string]int

	// FailedByKind counts failed symbols per boundary.ErrorKind.
	FailedByKind map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each request, in request order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file or symbol failed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0 || r.Stats.SymbolsFailed > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		ResolvedByStrategy: make(map[string]int),
		FailedByKind:       make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++

	for _, sym := range outcome.Symbols {
		r.Stats.SymbolsTotal++
		if sym.OK() {
			r.Stats.SymbolsResolved++
			r.Stats.ResolvedByStrategy[sym.Boundary.Strategy]++
			continue
		}
		r.Stats.SymbolsFailed++
		r.Stats.FailedByKind[boundary.ErrorKind(sym.Err)]++
	}
}
