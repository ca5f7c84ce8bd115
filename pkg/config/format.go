package config

import (
	"fmt"
	"strings"
)

// OutputFormat specifies the output format for resolved boundaries.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatSummary:
		return true
	default:
		return false
	}
}

// ColorMode controls when output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a format name, ignoring case.
func ParseOutputFormat(name string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(name)))
	if !format.IsValid() {
		return "", fmt.Errorf("unknown format %q (expected text, json, yaml, or summary)", name)
	}
	return format, nil
}
