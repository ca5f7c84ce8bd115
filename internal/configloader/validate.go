package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/luaoutline/internal/logging"
	"github.com/yaklabco/luaoutline/pkg/config"
	"github.com/yaklabco/luaoutline/pkg/parser/treesitter"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the name of the invalid field (e.g., "parser").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
// Empty fields are accepted so partial file layers validate.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}
	fail := func(field string, value any, format string, args ...any) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if cfg.Parser != "" && !cfg.Parser.IsValid() {
		fail("parser", cfg.Parser, "invalid parser %q; must be one of: treesitter, none", cfg.Parser)
	}

	if cfg.Parser == config.ParserTreeSitter && !treesitter.Available {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "parser",
			Value:   cfg.Parser,
			Message: "tree-sitter parser is not available in this build; using the heuristic resolver only",
		})
	}

	if cfg.CacheSize < 0 {
		fail("cache_size", cfg.CacheSize, "cache_size must be >= 0 (0 disables the cache)")
	}

	if cfg.LogLevel != "" && !logging.ValidLevel(cfg.LogLevel) {
		fail("log_level", cfg.LogLevel, "invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel)
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		fail("format", cfg.Format, "invalid format %q; must be one of: text, json, yaml, summary", cfg.Format)
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		fail("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}

	if cfg.Jobs < 0 {
		fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
