// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Configuration fields.
	FieldParser    = "parser"
	FieldCacheSize = "cache_size"
	FieldJobs      = "jobs"
	FieldFormat    = "format"
	FieldEnv       = "env"

	// Resolution fields.
	FieldSymbol   = "symbol"
	FieldSymbols  = "symbols"
	FieldStrategy = "strategy"
	FieldLanguage = "language"

	// Statistics fields.
	FieldFilesProcessed  = "files_processed"
	FieldSymbolsResolved = "symbols_resolved"
	FieldSymbolsFailed   = "symbols_failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
