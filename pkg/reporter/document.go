package reporter

import (
	"github.com/yaklabco/luaoutline/pkg/boundary"
	"github.com/yaklabco/luaoutline/pkg/runner"
	"github.com/yaklabco/luaoutline/pkg/source"
)

// documentVersion identifies the layout of the structured output.
const documentVersion = "1.0.0"

// Document is the top-level structure of the json and yaml formats.
type Document struct {
	Version string       `json:"version" yaml:"version"`
	Files   []FileEntry  `json:"files" yaml:"files"`
	Summary SummaryEntry `json:"summary" yaml:"summary"`
}

// FileEntry represents a single file's results.
type FileEntry struct {
	Path     string        `json:"path" yaml:"path"`
	Language string        `json:"language,omitempty" yaml:"language,omitempty"`
	Symbols  []SymbolEntry `json:"symbols" yaml:"symbols"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// SymbolEntry represents one symbol and its resolved boundary.
// Head, Body, and Strategy are absent when the symbol failed.
type SymbolEntry struct {
	Name       string               `json:"name" yaml:"name"`
	Kind       string               `json:"kind,omitempty" yaml:"kind,omitempty"`
	NameRange  source.Range         `json:"name_range" yaml:"name_range"`
	Range      source.Range         `json:"range" yaml:"range"`
	Head       *source.Range        `json:"head,omitempty" yaml:"head,omitempty"`
	Body       *source.Range        `json:"body,omitempty" yaml:"body,omitempty"`
	HeadText   string               `json:"head_text,omitempty" yaml:"head_text,omitempty"`
	Strategy   string               `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Attributes []boundary.Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Error      string               `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind  string               `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

// SummaryEntry contains aggregate statistics.
type SummaryEntry struct {
	FilesRequested  int            `json:"files_requested" yaml:"files_requested"`
	FilesProcessed  int            `json:"files_processed" yaml:"files_processed"`
	FilesErrored    int            `json:"files_errored" yaml:"files_errored"`
	SymbolsTotal    int            `json:"symbols_total" yaml:"symbols_total"`
	SymbolsResolved int            `json:"symbols_resolved" yaml:"symbols_resolved"`
	SymbolsFailed   int            `json:"symbols_failed" yaml:"symbols_failed"`
	ByStrategy      map[string]int `json:"by_strategy" yaml:"by_strategy"`
	FailedByKind    map[string]int `json:"failed_by_kind" yaml:"failed_by_kind"`
}

// BuildDocument converts a run result into the structured output form.
func BuildDocument(result *runner.Result, opts Options) *Document {
	doc := &Document{
		Version: documentVersion,
		Files:   make([]FileEntry, 0),
		Summary: SummaryEntry{
			ByStrategy:   make(map[string]int),
			FailedByKind: make(map[string]int),
		},
	}
	if result == nil {
		return doc
	}

	doc.Files = make([]FileEntry, 0, len(result.Files))
	for _, file := range result.Files {
		entry := FileEntry{
			Path:     displayPath(file.Path, opts.WorkingDir),
			Language: file.Language,
			Symbols:  make([]SymbolEntry, 0, len(file.Symbols)),
		}
		if file.Error != nil {
			entry.Error = file.Error.Error()
		}
		for _, sym := range file.Symbols {
			entry.Symbols = append(entry.Symbols, symbolEntry(sym, file.Document, opts.ShowHead))
		}
		doc.Files = append(doc.Files, entry)
	}

	stats := result.Stats
	doc.Summary.FilesRequested = stats.FilesRequested
	doc.Summary.FilesProcessed = stats.FilesProcessed
	doc.Summary.FilesErrored = stats.FilesErrored
	doc.Summary.SymbolsTotal = stats.SymbolsTotal
	doc.Summary.SymbolsResolved = stats.SymbolsResolved
	doc.Summary.SymbolsFailed = stats.SymbolsFailed
	for name, count := range stats.ResolvedByStrategy {
		doc.Summary.ByStrategy[name] = count
	}
	for name, count := range stats.FailedByKind {
		doc.Summary.FailedByKind[name] = count
	}

	return doc
}

func symbolEntry(result boundary.SymbolResult, src *source.Document, withHead bool) SymbolEntry {
	entry := SymbolEntry{
		Name:      result.Symbol.Name,
		Kind:      result.Symbol.Kind,
		NameRange: result.Symbol.NameRange,
		Range:     result.Symbol.Range,
	}

	if !result.OK() {
		entry.Error = result.Err.Error()
		entry.ErrorKind = boundary.ErrorKind(result.Err)
		return entry
	}

	res := result.Boundary
	head, body := res.Head, res.Body
	entry.Head = &head
	entry.Body = &body
	entry.Strategy = res.Strategy
	entry.Attributes = res.Attributes

	if withHead && src != nil {
		if span, ok := src.SpanOf(head); ok {
			entry.HeadText = string(src.Slice(span))
		}
	}

	return entry
}
