package boundary

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/luaoutline/pkg/lexer"
	"github.com/yaklabco/luaoutline/pkg/source"
	"github.com/yaklabco/luaoutline/pkg/syntax"
)

// unknownHeadWidth is the head length used for constructs the tree could not decode.
const unknownHeadWidth = 10

// StructuralResolver resolves boundaries from a parse tree.
type StructuralResolver struct {
	parser Parser
}

// NewStructuralResolver creates a resolver backed by parser. A nil parser makes
// every call fail with ErrParserUnavailable.
func NewStructuralResolver(parser Parser) *StructuralResolver {
	return &StructuralResolver{parser: parser}
}

// Name implements Strategy.
func (r *StructuralResolver) Name() string {
	return StrategyStructural
}

// Resolve implements Strategy.
func (r *StructuralResolver) Resolve(
	ctx context.Context,
	doc *source.Document,
	sym RoughSymbol,
) (result ResolvedBoundary, err error) {
	if r == nil || r.parser == nil {
		return ResolvedBoundary{}, ErrParserUnavailable
	}

	defer func() {
		if rec := recover(); rec != nil {
			result = ResolvedBoundary{}
			err = fmt.Errorf("%w: panic: %v", ErrParseFailed, rec)
		}
	}()

	tree, err := r.parser.Parse(ctx, doc.Content)
	switch {
	case errors.Is(err, ErrParserUnavailable):
		return ResolvedBoundary{}, err
	case err != nil:
		return ResolvedBoundary{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
	case tree == nil || tree.Root == nil:
		return ResolvedBoundary{}, fmt.Errorf("%w: empty tree", ErrParseFailed)
	}

	offset, ok := doc.Offset(sym.NameRange.Start)
	if !ok {
		return ResolvedBoundary{}, fmt.Errorf("%w: name start %s outside document", ErrNodeNotFound, sym.NameRange.Start)
	}

	node := syntax.Innermost(tree.Root, offset)
	if node == nil {
		return ResolvedBoundary{}, fmt.Errorf("%w at %s", ErrNodeNotFound, sym.NameRange.Start)
	}

	head, body, err := split(doc.Content, node, offset)
	if err != nil {
		return ResolvedBoundary{}, fmt.Errorf("%s: %w", node.Kind, err)
	}

	return newBoundary(doc, doc.ClampSpan(head), doc.ClampSpan(body), StrategyStructural)
}

// split dispatches on the construct kind and returns its head and body spans.
func split(src []byte, node *syntax.Node, offset int) (source.Span, source.Span, error) {
	switch node.Kind {
	case syntax.KindFunctionDeclaration, syntax.KindFunctionExpression:
		return splitFunction(src, node)
	case syntax.KindFunctionAssignment:
		return splitAssignment(src, node)
	case syntax.KindConditional:
		return splitConditional(src, node, offset)
	case syntax.KindNumericFor, syntax.KindGenericFor, syntax.KindWhile:
		return splitLoop(src, node)
	case syntax.KindRepeat:
		return splitKeyword(node, len("repeat"))
	case syntax.KindUnknown:
		return splitKeyword(node, unknownHeadWidth)
	case syntax.KindChunk, syntax.KindConditionalClause:
		return source.Span{}, source.Span{}, ErrNodeNotFound
	default:
		return source.Span{}, source.Span{}, fmt.Errorf("%w: kind %d", ErrNodeNotFound, node.Kind)
	}
}

func splitFunction(src []byte, node *syntax.Node) (source.Span, source.Span, error) {
	start := node.Span.Start
	if node.Ident != nil {
		start = node.Ident.Start
	}

	headEnd, err := paramsEnd(src, start, node.Span.End)
	if err != nil {
		return source.Span{}, source.Span{}, err
	}

	return source.Span{Start: start, End: headEnd}, source.Span{Start: headEnd, End: node.Span.End}, nil
}

func splitAssignment(src []byte, node *syntax.Node) (source.Span, source.Span, error) {
	start := node.Span.Start
	if node.Ident != nil {
		start = node.Ident.Start
	}

	fn := node.Span
	if node.Function != nil {
		fn = *node.Function
	}

	headEnd, err := paramsEnd(src, fn.Start, fn.End)
	if err != nil {
		return source.Span{}, source.Span{}, err
	}

	return source.Span{Start: start, End: headEnd}, source.Span{Start: headEnd, End: fn.End}, nil
}

// paramsEnd returns the offset just past the ")" closing the first "(" in [from, to).
func paramsEnd(src []byte, from, to int) (int, error) {
	open, ok := lexer.FindSymbol(src, from, to, '(')
	if !ok {
		return 0, fmt.Errorf("%w: no parameter list", ErrHeadUnresolvable)
	}

	closeParen, ok := lexer.MatchDelimiter(src, open)
	if !ok {
		return 0, fmt.Errorf("%w: unterminated parameter list", ErrHeadUnresolvable)
	}

	return closeParen + 1, nil
}

func splitConditional(src []byte, node *syntax.Node, offset int) (source.Span, source.Span, error) {
	clause := node
	if clauses := node.Clauses(); len(clauses) > 0 {
		clause = clauses[0]
		for _, candidate := range clauses {
			if candidate.Contains(offset) {
				clause = candidate
				break
			}
		}
	}

	limit := clause.Span.End
	if clause.Body != nil {
		limit = clause.Body.Start
	}

	var headEnd int
	if tok, ok := lexer.FindKeyword(src, clause.Span.Start, limit, "then"); ok {
		headEnd = tok.End
	} else if clause.Condition != nil {
		headEnd = clause.Condition.End
	} else if tok, ok := lexer.FindKeyword(src, clause.Span.Start, limit, "else"); ok {
		headEnd = tok.End
	} else {
		return source.Span{}, source.Span{}, fmt.Errorf("%w: clause has no then keyword", ErrHeadUnresolvable)
	}

	return source.Span{Start: clause.Span.Start, End: headEnd}, source.Span{Start: headEnd, End: node.Span.End}, nil
}

func splitLoop(src []byte, node *syntax.Node) (source.Span, source.Span, error) {
	tok, ok := lexer.FindKeyword(src, node.Span.Start, node.Span.End, "do")
	if !ok {
		return source.Span{}, source.Span{}, fmt.Errorf("%w: loop has no do keyword", ErrHeadUnresolvable)
	}

	return source.Span{Start: node.Span.Start, End: tok.End}, source.Span{Start: tok.End, End: node.Span.End}, nil
}

func splitKeyword(node *syntax.Node, width int) (source.Span, source.Span, error) {
	headEnd := min(node.Span.Start+width, node.Span.End)
	return source.Span{Start: node.Span.Start, End: headEnd}, source.Span{Start: headEnd, End: node.Span.End}, nil
}
