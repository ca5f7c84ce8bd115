package source

import (
	"bytes"
	"sort"
)

// BuildLines constructs line metadata from file content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
// The result always holds at least one line.
func BuildLines(content []byte) []LineInfo {
	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char != '\n' {
			continue
		}

		newlineStart := idx
		if idx > lineStart && content[idx-1] == '\r' {
			newlineStart = idx - 1
		}

		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	// Last line (may be empty, may not have a trailing newline).
	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return lines
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// LineText returns the content of a zero-based line, excluding the newline.
// Returns nil if the line number is out of range.
func (d *Document) LineText(line int) []byte {
	if line < 0 || line >= len(d.Lines) {
		return nil
	}

	info := d.Lines[line]
	return d.Content[info.StartOffset:info.NewlineStart]
}

// LineOf returns the zero-based line containing offset, clamped to the document.
func (d *Document) LineOf(offset int) int {
	offset = d.ClampOffset(offset)

	lineIdx := sort.Search(len(d.Lines), func(i int) bool {
		return d.Lines[i].EndOffset > offset
	})
	if lineIdx >= len(d.Lines) {
		lineIdx = len(d.Lines) - 1
	}

	return lineIdx
}

// LineStart returns the offset of the first byte of a zero-based line.
func (d *Document) LineStart(line int) int {
	if line <= 0 {
		return 0
	}
	if line >= len(d.Lines) {
		return len(d.Content)
	}
	return d.Lines[line].StartOffset
}

// Indentation returns the leading spaces and tabs of a zero-based line.
func (d *Document) Indentation(line int) []byte {
	text := d.LineText(line)
	trimmed := bytes.TrimLeft(text, " \t")
	return text[:len(text)-len(trimmed)]
}

// RestOfLineBlank reports whether the bytes from offset to the end of its line
// are all spaces or tabs. The second result is false when nothing follows
// offset on that line.
func (d *Document) RestOfLineBlank(offset int) (blank, nonEmpty bool) {
	offset = d.ClampOffset(offset)
	info := d.Lines[d.LineOf(offset)]
	if offset >= info.NewlineStart {
		return true, false
	}

	rest := d.Content[offset:info.NewlineStart]
	return len(bytes.TrimLeft(rest, " \t")) == 0, true
}
