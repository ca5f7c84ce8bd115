package lexer

// Classify names the token that begins at offset.
func Classify(src []byte, offset int) TokenKind {
	if offset < 0 || offset >= len(src) {
		return TokEOF
	}

	char := src[offset]
	switch {
	case isSpace(char):
		return TokSpace
	case char == '"' || char == '\'':
		return TokString
	case char == '-' && offset+1 < len(src) && src[offset+1] == '-':
		if _, ok := longBracketLevel(src, offset+2); ok {
			return TokBlockComment
		}
		return TokLineComment
	case char == '[':
		if _, ok := longBracketLevel(src, offset); ok {
			return TokLongString
		}
		return TokSymbol
	case isWordStart(char):
		return TokWord
	case isDigit(char):
		return TokNumber
	case char == '.' && offset+1 < len(src) && isDigit(src[offset+1]):
		return TokNumber
	default:
		return TokSymbol
	}
}

// TokenAt classifies the token that begins at offset and returns its extent.
func TokenAt(src []byte, offset int) Token {
	kind := Classify(src, offset)

	var end int
	switch kind {
	case TokEOF:
		return Token{Kind: TokEOF, Start: len(src), End: len(src)}
	case TokSpace:
		end = offset
		for end < len(src) && isSpace(src[end]) {
			end++
		}
	case TokString:
		end = SkipString(src, offset)
	case TokLongString:
		end = SkipLongBracket(src, offset)
	case TokLineComment, TokBlockComment:
		end = SkipComment(src, offset)
	case TokWord:
		end = offset
		for end < len(src) && isWordChar(src[end]) {
			end++
		}
	case TokNumber:
		end = skipNumber(src, offset)
	case TokSymbol:
		end = offset + 1
	}

	return Token{Kind: kind, Start: offset, End: end}
}

// SkipString returns the offset just past the quoted string starting at offset.
// A backslash escapes the following byte, so an escaped quote never closes the
// string. An unescaped newline or the end of input ends an unterminated string.
func SkipString(src []byte, offset int) int {
	quote := src[offset]
	idx := offset + 1

	for idx < len(src) {
		switch src[idx] {
		case '\\':
			idx += 2
		case quote:
			return idx + 1
		case '\n':
			return idx
		default:
			idx++
		}
	}

	return len(src)
}

// SkipLongBracket returns the offset just past the long bracket literal opening at
// offset. The close must carry the same number of '=' as the open. An
// unterminated literal runs to the end of input. If no long bracket opens at
// offset, offset is returned unchanged.
func SkipLongBracket(src []byte, offset int) int {
	level, ok := longBracketLevel(src, offset)
	if !ok {
		return offset
	}

	// Skip "[", the '=' run, and "[".
	idx := offset + level + 2

	for idx < len(src) {
		if src[idx] != ']' {
			idx++
			continue
		}

		run := 0
		for idx+1+run < len(src) && src[idx+1+run] == '=' {
			run++
		}
		if run == level && idx+1+run < len(src) && src[idx+1+run] == ']' {
			return idx + run + 2
		}
		idx++
	}

	return len(src)
}

// SkipComment returns the offset just past the comment starting at offset.
// A line comment stops before its newline. A block comment ends after its
// matching close bracket, or at the end of input when unterminated.
func SkipComment(src []byte, offset int) int {
	body := offset + 2
	if _, ok := longBracketLevel(src, body); ok {
		return SkipLongBracket(src, body)
	}

	for idx := body; idx < len(src); idx++ {
		if src[idx] == '\n' {
			return idx
		}
	}

	return len(src)
}

// longBracketLevel reports whether "[", zero or more '=', "[" begins at offset
// and returns the number of '='.
func longBracketLevel(src []byte, offset int) (int, bool) {
	if offset >= len(src) || src[offset] != '[' {
		return 0, false
	}

	level := 0
	for idx := offset + 1; idx < len(src); idx++ {
		switch src[idx] {
		case '=':
			level++
		case '[':
			return level, true
		default:
			return 0, false
		}
	}

	return 0, false
}

func skipNumber(src []byte, offset int) int {
	hex := offset+1 < len(src) && src[offset] == '0' && (src[offset+1] == 'x' || src[offset+1] == 'X')

	idx := offset + 1
	for idx < len(src) {
		char := src[idx]
		switch {
		case isWordChar(char) || char == '.':
			idx++
		case (char == '+' || char == '-') && isExponent(src[idx-1], hex):
			idx++
		default:
			return idx
		}
	}
	return idx
}

func isExponent(char byte, hex bool) bool {
	if hex {
		return char == 'p' || char == 'P'
	}
	return char == 'e' || char == 'E'
}

func isSpace(char byte) bool {
	return char == ' ' || char == '\t' || char == '\n' || char == '\r' || char == '\f' || char == '\v'
}

func isDigit(char byte) bool {
	return char >= '0' && char <= '9'
}

func isWordStart(char byte) bool {
	return char == '_' || (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || char >= 0x80
}

func isWordChar(char byte) bool {
	return isWordStart(char) || isDigit(char)
}
