package source

import "fmt"

// Span is a half-open byte range in the document content.
type Span struct {
	// Start is the byte index where the span begins (inclusive).
	Start int

	// End is the byte index where the span ends (exclusive).
	End int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if the given offset is within this span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Position is a zero-based line and byte column.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Compare returns -1, 0, or +1 ordering p relative to other lexicographically.
func (p Position) Compare(other Position) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	default:
		return 0
	}
}

// String formats the position as line:column.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is an ordered, half-open pair of positions.
type Range struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// IsValid returns true if start <= end and neither position is negative.
func (r Range) IsValid() bool {
	if r.Start.Line < 0 || r.Start.Column < 0 || r.End.Line < 0 || r.End.Column < 0 {
		return false
	}
	return r.Start.Compare(r.End) <= 0
}

// IsEmpty returns true if the range covers no text.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// String formats the range as start-end.
func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// PositionAt converts a byte offset to a position, clamping to the document bounds.
func (d *Document) PositionAt(offset int) Position {
	offset = d.ClampOffset(offset)
	line := d.LineOf(offset)

	return Position{Line: line, Column: offset - d.Lines[line].StartOffset}
}

// Offset converts a position to a byte offset.
// Returns (offset, true) on success, or (0, false) if the position lies outside the
// document. A column may point just past the last byte of its line.
func (d *Document) Offset(pos Position) (int, bool) {
	if pos.Line < 0 || pos.Line >= len(d.Lines) || pos.Column < 0 {
		return 0, false
	}

	info := d.Lines[pos.Line]
	offset := info.StartOffset + pos.Column
	if offset > info.lastOffset() {
		return 0, false
	}

	return offset, true
}

// ClampedOffset converts a position to an offset, clamping out-of-range lines and
// columns to the nearest valid offset.
func (d *Document) ClampedOffset(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(d.Lines) {
		return len(d.Content)
	}

	info := d.Lines[pos.Line]
	offset := info.StartOffset + max(pos.Column, 0)

	return min(offset, info.lastOffset())
}

// lastOffset is the largest offset a position on this line may address: the final
// newline byte, or the end of content for the last line.
func (l LineInfo) lastOffset() int {
	if l.NewlineStart < l.EndOffset {
		return l.EndOffset - 1
	}
	return l.EndOffset
}

// RangeOf converts a span to a range, clamping to the document.
func (d *Document) RangeOf(span Span) Range {
	span = d.ClampSpan(span)
	return Range{Start: d.PositionAt(span.Start), End: d.PositionAt(span.End)}
}

// SpanOf converts a range to a span.
// Returns false if either end lies outside the document or the range is inverted.
func (d *Document) SpanOf(r Range) (Span, bool) {
	start, ok := d.Offset(r.Start)
	if !ok {
		return Span{}, false
	}
	end, ok := d.Offset(r.End)
	if !ok || end < start {
		return Span{}, false
	}
	return Span{Start: start, End: end}, true
}
