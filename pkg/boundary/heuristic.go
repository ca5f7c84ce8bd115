package boundary

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yaklabco/luaoutline/pkg/lexer"
	"github.com/yaklabco/luaoutline/pkg/source"
)

//nolint:gochecknoglobals // keyword sets
var (
	// bodyKeywords end a head textually.
	bodyKeywords = []string{"do", "then", "repeat"}

	// headKeywords introduce a construct head.
	headKeywords = []string{"function", "if", "elseif", "else", "for", "while", "repeat"}
)

// HeuristicResolver resolves boundaries by scanning comment-stripped text.
// It needs no parse tree and tolerates malformed source.
//
// Closing keywords at depth zero are matched by indentation against the line
// holding the symbol name. Unconventionally indented code can mis-resolve.
type HeuristicResolver struct{}

// NewHeuristicResolver creates a heuristic resolver.
func NewHeuristicResolver() *HeuristicResolver {
	return &HeuristicResolver{}
}

// Name implements Strategy.
func (r *HeuristicResolver) Name() string {
	return StrategyHeuristic
}

// Resolve implements Strategy.
func (r *HeuristicResolver) Resolve(_ context.Context, doc *source.Document, sym RoughSymbol) (ResolvedBoundary, error) {
	nameStart, okStart := doc.Offset(sym.NameRange.Start)
	nameEnd, okEnd := doc.Offset(sym.NameRange.End)
	if !okStart || !okEnd || nameEnd < nameStart {
		return ResolvedBoundary{}, fmt.Errorf("%w: invalid name range %s", ErrHeadUnresolvable, sym.NameRange)
	}

	rangeStart := doc.ClampedOffset(sym.Range.Start)
	rangeEnd := doc.ClampedOffset(sym.Range.End)
	if rangeEnd <= rangeStart || nameStart < rangeStart {
		rangeStart, rangeEnd = nameStart, doc.Len()
	}

	stripped := source.NewDocument(doc.Path, lexer.StripComments(doc.Content))
	scan := &scan{doc: stripped, src: stripped.Content}

	headEnd := scan.headEnd(nameStart, nameEnd, rangeStart, rangeEnd)

	bodyStart := headEnd
	if blank, nonEmpty := stripped.RestOfLineBlank(headEnd); blank && nonEmpty {
		bodyStart = stripped.Lines[stripped.LineOf(headEnd)].EndOffset
	}

	bodyEnd, ok := scan.bodyEnd(bodyStart, stripped.Indentation(stripped.LineOf(nameStart)))
	if !ok {
		return ResolvedBoundary{}, fmt.Errorf("%w: no terminator for %q after %s",
			ErrBodyUnresolvable, sym.Name, doc.PositionAt(bodyStart))
	}

	return newBoundary(doc,
		source.Span{Start: nameStart, End: headEnd},
		source.Span{Start: bodyStart, End: bodyEnd},
		StrategyHeuristic,
	)
}

// scan holds the comment-stripped text for one resolution.
type scan struct {
	doc *source.Document
	src []byte
}

// headEnd tries each head-end search in order; the last never fails.
func (s *scan) headEnd(nameStart, nameEnd, rangeStart, rangeEnd int) int {
	if end, ok := s.parenHead(nameEnd, rangeStart); ok {
		return end
	}
	if end, ok := s.parenHead(rangeStart, rangeStart); ok {
		return end
	}
	if end, ok := s.functionHead(rangeStart, rangeEnd); ok {
		return end
	}

	lineEnd := s.doc.Lines[s.doc.LineOf(nameStart)].NewlineStart
	if tok, ok := lexer.FindKeyword(s.src, nameStart, lineEnd, bodyKeywords...); ok {
		return tok.End
	}
	if end, ok := s.conditionHead(rangeStart, rangeEnd, lineEnd); ok {
		return end
	}

	return nameEnd
}

// conditionHead handles a loop or clause condition that continues past the
// name line: the head runs to the do or then closing that condition. The
// opening keyword must sit on the name line, before lineEnd.
func (s *scan) conditionHead(rangeStart, rangeEnd, lineEnd int) (int, bool) {
	tok, ok := lexer.FindKeyword(s.src, rangeStart, rangeEnd, headKeywords...)
	if !ok || tok.Start >= lineEnd {
		return 0, false
	}

	closer := ""
	switch {
	case tok.Is(s.src, "while"), tok.Is(s.src, "for"):
		closer = "do"
	case tok.Is(s.src, "if"), tok.Is(s.src, "elseif"):
		closer = "then"
	default:
		return 0, false
	}

	end, ok := lexer.FindKeyword(s.src, tok.End, rangeEnd, closer)
	if !ok {
		return 0, false
	}
	return end.End, true
}

// parenHead finds a "(" on the line of from, before any body keyword, and
// returns the offset past its matching ")". A "do" or "then" later on the
// closing line extends the head unless the parentheses belong to a function.
func (s *scan) parenHead(from, rangeStart int) (int, bool) {
	line := s.doc.LineOf(from)
	scanner := lexer.NewScanner(s.src, from)

	for {
		tok := scanner.NextCode()
		if tok.Kind == lexer.TokEOF || s.doc.LineOf(tok.Start) != line {
			return 0, false
		}
		if isAnyWord(s.src, tok, bodyKeywords) {
			return 0, false
		}
		if tok.IsSymbol(s.src, '(') {
			return s.closeHead(tok.Start, rangeStart)
		}
	}
}

// functionHead matches the parameter list of a "function" keyword that is the
// first head keyword in the symbol range.
func (s *scan) functionHead(rangeStart, rangeEnd int) (int, bool) {
	tok, ok := lexer.FindKeyword(s.src, rangeStart, rangeEnd, headKeywords...)
	if !ok || !tok.Is(s.src, "function") {
		return 0, false
	}

	open, ok := lexer.FindSymbol(s.src, tok.End, rangeEnd, '(')
	if !ok {
		return 0, false
	}

	return s.closeHead(open, rangeStart)
}

func (s *scan) closeHead(open, rangeStart int) (int, bool) {
	closeParen, ok := lexer.MatchDelimiter(s.src, open)
	if !ok {
		return 0, false
	}
	end := closeParen + 1

	from := min(rangeStart, s.doc.LineStart(s.doc.LineOf(open)))
	if _, isFunction := lexer.FindKeyword(s.src, from, open, "function"); isFunction {
		return end, true
	}

	lineEnd := s.doc.Lines[s.doc.LineOf(closeParen)].NewlineStart
	if tok, ok := lexer.FindKeyword(s.src, end, lineEnd, "do", "then"); ok {
		return tok.End, true
	}

	return end, true
}

// bodyEnd counts block depth from offset and returns the offset past the
// terminator that closes the construct at depth zero.
func (s *scan) bodyEnd(offset int, headIndent []byte) (int, bool) {
	scanner := lexer.NewScanner(s.src, offset)

	depth := 0
	pendingDo := 0
	var prev lexer.Token

	for tok := scanner.NextCode(); tok.Kind != lexer.TokEOF; tok = scanner.NextCode() {
		if tok.Kind != lexer.TokWord {
			prev = tok
			continue
		}

		switch string(tok.Text(s.src)) {
		case "function", "repeat":
			depth++
		case "if":
			if !s.continuesElse(prev, tok) {
				depth++
			}
		case "for", "while":
			depth++
			pendingDo++
		case "do":
			if pendingDo > 0 {
				pendingDo--
			} else {
				depth++
			}
		case "end", "until":
			if depth > 0 {
				depth--
				break
			}
			if bytes.Equal(s.doc.Indentation(s.doc.LineOf(tok.Start)), headIndent) {
				return tok.End, true
			}
		}

		prev = tok
	}

	return 0, false
}

// continuesElse reports whether an "if" directly follows "else" on the same line.
func (s *scan) continuesElse(prev, tok lexer.Token) bool {
	return prev.Is(s.src, "else") && s.doc.LineOf(prev.Start) == s.doc.LineOf(tok.Start)
}

func isAnyWord(src []byte, tok lexer.Token, words []string) bool {
	for _, w := range words {
		if tok.Is(src, w) {
			return true
		}
	}
	return false
}
