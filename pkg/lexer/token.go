// Package lexer implements the comment- and string-aware scanning primitives
// used by boundary resolution: classifying the token at an offset, skipping
// literals atomically, blanking comments, and matching delimiters.
//
// All functions work on byte offsets into the original content and never
// change its length, so offsets computed here are valid against the source.
package lexer

// TokenKind classifies what begins at an offset.
type TokenKind uint8

const (
	// TokEOF marks the end of input.
	TokEOF TokenKind = iota
	// TokSpace is a run of whitespace.
	TokSpace
	// TokString is a quoted string literal ("..." or '...').
	TokString
	// TokLongString is a raw multi-line literal ([[...]], [==[...]==]).
	TokLongString
	// TokLineComment is a -- comment running to the end of the line.
	TokLineComment
	// TokBlockComment is a --[[...]] comment, possibly multi-line.
	TokBlockComment
	// TokWord is an identifier or keyword.
	TokWord
	// TokNumber is a numeric literal.
	TokNumber
	// TokSymbol is a single punctuation byte.
	TokSymbol
)

//nolint:gochecknoglobals // lookup table
var tokenKindNames = [...]string{
	TokEOF:          "eof",
	TokSpace:        "space",
	TokString:       "string",
	TokLongString:   "long-string",
	TokLineComment:  "line-comment",
	TokBlockComment: "block-comment",
	TokWord:         "word",
	TokNumber:       "number",
	TokSymbol:       "symbol",
}

// String returns the kind name.
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

// IsComment reports whether the kind is either comment form.
func (k TokenKind) IsComment() bool {
	return k == TokLineComment || k == TokBlockComment
}

// IsLiteral reports whether the kind is either string form.
func (k TokenKind) IsLiteral() bool {
	return k == TokString || k == TokLongString
}

// IsCode reports whether the kind can carry syntax (words, numbers, symbols).
func (k TokenKind) IsCode() bool {
	return k == TokWord || k == TokNumber || k == TokSymbol
}

// Token is a classified half-open byte range [Start, End).
type Token struct {
	Kind  TokenKind
	Start int
	End   int
}

// Text returns the bytes of the token within src.
func (t Token) Text(src []byte) []byte {
	return src[t.Start:t.End]
}

// Is reports whether the token is the word w.
func (t Token) Is(src []byte, w string) bool {
	return t.Kind == TokWord && t.End-t.Start == len(w) && string(src[t.Start:t.End]) == w
}

// IsSymbol reports whether the token is the single punctuation byte c.
func (t Token) IsSymbol(src []byte, c byte) bool {
	return t.Kind == TokSymbol && src[t.Start] == c
}
