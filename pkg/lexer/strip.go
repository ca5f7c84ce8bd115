package lexer

// StripComments returns a copy of src of identical length in which every byte of
// a line or block comment is replaced by a space. Newline bytes inside comments
// are kept so line structure is preserved. A leading "#" line (shebang) is
// blanked the same way. Comment markers inside strings are left untouched. An
// unterminated block comment blanks to the end of input.
func StripComments(src []byte) []byte {
	out := make([]byte, len(src))
	copy(out, src)

	start := 0
	if len(src) > 0 && src[0] == '#' {
		start = len(src)
		for idx, char := range src {
			if char == '\n' {
				start = idx
				break
			}
		}
		blank(out, 0, start)
	}

	scanner := NewScanner(src, start)
	for {
		tok := scanner.Next()
		if tok.Kind == TokEOF {
			return out
		}
		if tok.Kind.IsComment() {
			blank(out, tok.Start, tok.End)
		}
	}
}

func blank(out []byte, start, end int) {
	for idx := start; idx < end; idx++ {
		if out[idx] != '\n' && out[idx] != '\r' {
			out[idx] = ' '
		}
	}
}
