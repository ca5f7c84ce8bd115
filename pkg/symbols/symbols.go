// Package symbols loads rough symbol locations produced by symbol providers.
//
// Two input shapes are accepted:
//   - an LSP textDocument/documentSymbol result (a JSON array of DocumentSymbol),
//     whose UTF-16 character offsets are converted to byte columns;
//   - a symbol list in YAML or JSON, with "line:column-line:column" byte ranges.
package symbols

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go.lsp.dev/protocol"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/luaoutline/pkg/boundary"
	"github.com/yaklabco/luaoutline/pkg/source"
)

// ErrInvalidSymbols is returned when symbol input cannot be decoded.
var ErrInvalidSymbols = errors.New("invalid symbol input")

// Entry is one symbol in the YAML/JSON list format.
type Entry struct {
	Name      string `json:"name" yaml:"name"`
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty"`
	NameRange string `json:"name_range" yaml:"name_range"`
	Range     string `json:"range,omitempty" yaml:"range,omitempty"`
}

// Symbol converts the entry into a rough symbol. An empty Range leaves the
// overall range zero.
func (e Entry) Symbol() (boundary.RoughSymbol, error) {
	nameRange, err := ParseRange(e.NameRange)
	if err != nil {
		return boundary.RoughSymbol{}, fmt.Errorf("symbol %q name_range: %w", e.Name, err)
	}

	sym := boundary.RoughSymbol{Name: e.Name, Kind: e.Kind, NameRange: nameRange}
	if e.Range != "" {
		if sym.Range, err = ParseRange(e.Range); err != nil {
			return boundary.RoughSymbol{}, fmt.Errorf("symbol %q range: %w", e.Name, err)
		}
	}

	return sym, nil
}

// EntryFor formats a rough symbol as a list entry.
func EntryFor(sym boundary.RoughSymbol) Entry {
	return Entry{
		Name:      sym.Name,
		Kind:      sym.Kind,
		NameRange: sym.NameRange.String(),
		Range:     sym.Range.String(),
	}
}

// Decode reads symbol input for doc, detecting the LSP shape by its
// "selectionRange" fields and otherwise reading the list format (either a bare
// list or a mapping with a "symbols" key).
func Decode(doc *source.Document, data []byte) ([]boundary.RoughSymbol, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' && bytes.Contains(trimmed, []byte(`"selectionRange"`)) {
		var docSymbols []protocol.DocumentSymbol
		if err := json.Unmarshal(trimmed, &docSymbols); err != nil {
			return nil, fmt.Errorf("%w: documentSymbol: %w", ErrInvalidSymbols, err)
		}
		return FromDocumentSymbols(doc, docSymbols), nil
	}

	entries, err := decodeEntries(trimmed)
	if err != nil {
		return nil, err
	}

	return EntriesToSymbols(entries)
}

// EntriesToSymbols converts list entries, failing on the first malformed one.
func EntriesToSymbols(entries []Entry) ([]boundary.RoughSymbol, error) {
	syms := make([]boundary.RoughSymbol, 0, len(entries))
	for _, entry := range entries {
		sym, err := entry.Symbol()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSymbols, err)
		}
		syms = append(syms, sym)
	}
	return syms, nil
}

func decodeEntries(data []byte) ([]Entry, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSymbols, err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	var entries []Entry
	switch doc := node.Content[0]; doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&entries); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSymbols, err)
		}
	case yaml.MappingNode:
		var wrapper struct {
			Symbols []Entry `yaml:"symbols"`
		}
		if err := doc.Decode(&wrapper); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSymbols, err)
		}
		entries = wrapper.Symbols
	default:
		return nil, fmt.Errorf("%w: expected a list of symbols", ErrInvalidSymbols)
	}

	return entries, nil
}

// FromDocumentSymbols flattens an LSP symbol tree in pre-order and converts
// every range to byte positions in doc.
func FromDocumentSymbols(doc *source.Document, docSymbols []protocol.DocumentSymbol) []boundary.RoughSymbol {
	var out []boundary.RoughSymbol

	var visit func(list []protocol.DocumentSymbol)
	visit = func(list []protocol.DocumentSymbol) {
		for _, sym := range list {
			out = append(out, boundary.RoughSymbol{
				Name:      sym.Name,
				Kind:      kindName(sym.Kind),
				NameRange: rangeFromLSP(doc, sym.SelectionRange),
				Range:     rangeFromLSP(doc, sym.Range),
			})
			visit(sym.Children)
		}
	}
	visit(docSymbols)

	return out
}

func rangeFromLSP(doc *source.Document, rng protocol.Range) source.Range {
	return source.Range{
		Start: positionFromLSP(doc, rng.Start),
		End:   positionFromLSP(doc, rng.End),
	}
}

// positionFromLSP converts a UTF-16 character offset into a byte column.
// Offsets past the end of the line clamp to the line length.
func positionFromLSP(doc *source.Document, pos protocol.Position) source.Position {
	line := int(pos.Line)
	return source.Position{Line: line, Column: UTF16ToByteColumn(doc.LineText(line), int(pos.Character))}
}

// UTF16ToByteColumn returns the byte offset in line of the given number of
// UTF-16 code units.
func UTF16ToByteColumn(line []byte, units int) int {
	col := 0
	for col < len(line) && units > 0 {
		r, size := utf8.DecodeRune(line[col:])
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		units -= n
		col += size
	}
	return col
}

// kindNames maps LSP SymbolKind values to names.
//
//nolint:gochecknoglobals // lookup table
var kindNames = map[int]string{
	1:  "file",
	2:  "module",
	3:  "namespace",
	4:  "package",
	5:  "class",
	6:  "method",
	7:  "property",
	8:  "field",
	9:  "constructor",
	10: "enum",
	11: "interface",
	12: "function",
	13: "variable",
	14: "constant",
	15: "string",
	16: "number",
	17: "boolean",
	18: "array",
	19: "object",
	20: "key",
	21: "null",
	22: "enum-member",
	23: "struct",
	24: "event",
	25: "operator",
	26: "type-parameter",
}

func kindName(kind protocol.SymbolKind) string {
	if name, ok := kindNames[int(kind)]; ok {
		return name
	}
	return fmt.Sprintf("kind-%d", int(kind))
}
