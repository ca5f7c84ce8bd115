package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/luaoutline/pkg/boundary"
	"github.com/yaklabco/luaoutline/pkg/source"
)

// maxHeadPreview is the widest head snippet shown under a symbol.
const maxHeadPreview = 72

// FormatSymbol formats one symbol outcome for terminal output. doc supplies the
// head snippet and may be nil.
func (s *Styles) FormatSymbol(result boundary.SymbolResult, doc *source.Document) string {
	var builder strings.Builder

	sym := result.Symbol
	parts := []string{
		s.Location.Render(sym.NameRange.Start.String()),
		s.Symbol.Render(sym.Name),
	}
	if sym.Kind != "" {
		parts = append(parts, s.Kind.Render(sym.Kind))
	}

	if !result.OK() {
		parts = append(parts, s.Error.Render("error")+" "+result.Err.Error())
		builder.WriteString("  " + strings.Join(parts, "  ") + "\n")
		return builder.String()
	}

	res := result.Boundary
	parts = append(parts, s.Strategy.Render("("+res.Strategy+")"))
	builder.WriteString("  " + strings.Join(parts, "  ") + "\n")

	builder.WriteString(fmt.Sprintf("    %s %s  %s %s\n",
		s.Dim.Render("head"), s.Head.Render(res.Head.String()),
		s.Dim.Render("body"), s.Body.Render(res.Body.String()),
	))

	if preview := HeadPreview(doc, res.Head); preview != "" {
		builder.WriteString("    " + s.Dim.Render("|") + " " + s.Head.Render(preview) + "\n")
	}

	return builder.String()
}

// HeadPreview returns the first line of the head text, shortened to fit a
// terminal line. Returns "" when doc is nil or the range is empty.
func HeadPreview(doc *source.Document, head source.Range) string {
	if doc == nil {
		return ""
	}
	span, ok := doc.SpanOf(head)
	if !ok || span.IsEmpty() {
		return ""
	}

	text := string(doc.Slice(span))
	if idx := strings.IndexAny(text, "\r\n"); idx >= 0 {
		text = text[:idx] + " ..."
	}
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) > maxHeadPreview {
		text = string(runes[:maxHeadPreview-3]) + "..."
	}

	return text
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, symbolCount int) string {
	header := s.FilePath.Render(path)
	if symbolCount > 0 {
		word := "symbols"
		if symbolCount == 1 {
			word = "symbol"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", symbolCount, word))
	}
	return header
}

// FormatFileError formats a file that could not be processed.
func (s *Styles) FormatFileError(path string, err error) string {
	return s.FilePath.Render(path) + "  " + s.Error.Render("error") + " " + err.Error() + "\n"
}
