package lexer

// Scanner walks src left to right yielding significant tokens. Whitespace is
// skipped; strings, raw literals, and comments are consumed as single tokens.
type Scanner struct {
	src []byte
	pos int
}

// NewScanner returns a scanner positioned at offset, clamped to src.
func NewScanner(src []byte, offset int) *Scanner {
	s := &Scanner{src: src}
	s.Seek(offset)
	return s
}

// Pos returns the offset of the next byte to be scanned.
func (s *Scanner) Pos() int {
	return s.pos
}

// Seek moves the scanner to offset, clamped to src.
func (s *Scanner) Seek(offset int) {
	s.pos = min(max(offset, 0), len(s.src))
}

// Next returns the next significant token, or a TokEOF token at the end of input.
func (s *Scanner) Next() Token {
	for {
		tok := TokenAt(s.src, s.pos)
		s.pos = tok.End
		if tok.Kind != TokSpace {
			return tok
		}
	}
}

// NextCode returns the next word, number, or symbol token, skipping literals and
// comments, or a TokEOF token at the end of input.
func (s *Scanner) NextCode() Token {
	for {
		tok := s.Next()
		if tok.Kind == TokEOF || tok.Kind.IsCode() {
			return tok
		}
	}
}

// FindKeyword returns the first word token in [from, to) that equals one of
// words. Words inside literals and comments never match.
func FindKeyword(src []byte, from, to int, words ...string) (Token, bool) {
	to = min(to, len(src))
	scanner := NewScanner(src, from)

	for {
		tok := scanner.NextCode()
		if tok.Kind == TokEOF || tok.End > to {
			return Token{}, false
		}
		if tok.Kind != TokWord {
			continue
		}
		for _, w := range words {
			if tok.Is(src, w) {
				return tok, true
			}
		}
	}
}

// FindSymbol returns the offset of the first code byte c in [from, to), skipping
// literals and comments.
func FindSymbol(src []byte, from, to int, c byte) (int, bool) {
	to = min(to, len(src))
	scanner := NewScanner(src, from)

	for {
		tok := scanner.NextCode()
		if tok.Kind == TokEOF || tok.End > to {
			return 0, false
		}
		if tok.IsSymbol(src, c) {
			return tok.Start, true
		}
	}
}
