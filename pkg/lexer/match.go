package lexer

//nolint:gochecknoglobals // lookup table
var closers = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
}

// MatchDelimiter returns the offset of the delimiter closing the one at open.
// Nested delimiters of the same kind are counted; strings, raw literals, and
// comments are skipped whole so delimiters inside them never count. Returns
// false if src[open] is not an opening delimiter or the input ends first.
func MatchDelimiter(src []byte, open int) (int, bool) {
	if open < 0 || open >= len(src) {
		return 0, false
	}

	opener := src[open]
	closer, ok := closers[opener]
	if !ok || Classify(src, open) != TokSymbol {
		return 0, false
	}

	depth := 1
	scanner := NewScanner(src, open+1)
	for {
		tok := scanner.NextCode()
		switch {
		case tok.Kind == TokEOF:
			return 0, false
		case tok.IsSymbol(src, opener):
			depth++
		case tok.IsSymbol(src, closer):
			depth--
			if depth == 0 {
				return tok.Start, true
			}
		}
	}
}
