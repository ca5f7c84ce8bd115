package symbols

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/luaoutline/pkg/source"
)

// ParseRange parses "line:column-line:column" (zero-based, byte columns).
// A single "line:column" yields an empty range at that position.
func ParseRange(text string) (source.Range, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return source.Range{}, fmt.Errorf("%w: empty range", ErrInvalidSymbols)
	}

	startText, endText, hasEnd := strings.Cut(text, "-")

	start, err := ParsePosition(startText)
	if err != nil {
		return source.Range{}, err
	}

	end := start
	if hasEnd {
		if end, err = ParsePosition(endText); err != nil {
			return source.Range{}, err
		}
	}

	rng := source.Range{Start: start, End: end}
	if !rng.IsValid() {
		return source.Range{}, fmt.Errorf("%w: range %q ends before it starts", ErrInvalidSymbols, text)
	}

	return rng, nil
}

// ParsePosition parses "line:column".
func ParsePosition(text string) (source.Position, error) {
	lineText, colText, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok {
		return source.Position{}, fmt.Errorf("%w: position %q is not line:column", ErrInvalidSymbols, text)
	}

	line, err := strconv.Atoi(lineText)
	if err != nil || line < 0 {
		return source.Position{}, fmt.Errorf("%w: bad line in %q", ErrInvalidSymbols, text)
	}

	col, err := strconv.Atoi(colText)
	if err != nil || col < 0 {
		return source.Position{}, fmt.Errorf("%w: bad column in %q", ErrInvalidSymbols, text)
	}

	return source.Position{Line: line, Column: col}, nil
}
