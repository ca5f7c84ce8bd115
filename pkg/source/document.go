// Package source provides the line-addressable text buffer used by boundary
// resolution. A Document is an immutable snapshot of a file:
// - the raw content bytes
// - line metadata for position <-> offset conversion
//
// Positions are zero-based and count bytes within the line.
package source

// Document is an immutable view of a source file at a specific time.
type Document struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	// There is always at least one line, even for empty content.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewDocument creates a Document from content and builds its line index.
// The content is copied so later mutation by the caller cannot change the snapshot.
func NewDocument(path string, content []byte) *Document {
	cp := make([]byte, len(content))
	copy(cp, content)

	return &Document{
		Path:    path,
		Content: cp,
		Lines:   BuildLines(cp),
	}
}

// Text returns the full document text.
func (d *Document) Text() string {
	return string(d.Content)
}

// Len returns the document length in bytes.
func (d *Document) Len() int {
	return len(d.Content)
}

// Slice returns the bytes covered by span, clamped to the document.
func (d *Document) Slice(span Span) []byte {
	span = d.ClampSpan(span)
	return d.Content[span.Start:span.End]
}

// ClampOffset clamps offset to [0, Len()].
func (d *Document) ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(d.Content) {
		return len(d.Content)
	}
	return offset
}

// ClampSpan clamps both ends of span to the document and orders them.
func (d *Document) ClampSpan(span Span) Span {
	start := d.ClampOffset(span.Start)
	end := d.ClampOffset(span.End)
	if end < start {
		end = start
	}
	return Span{Start: start, End: end}
}
