package boundary_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/luaoutline/pkg/boundary"
	"github.com/yaklabco/luaoutline/pkg/source"
	"github.com/yaklabco/luaoutline/pkg/syntax"
)

// symbolFor builds a rough symbol whose name range covers the given whole-word
// occurrence of needle and whose overall range runs from the start of that line
// to the end of the document.
func symbolFor(t *testing.T, doc *source.Document, needle string, occurrence int) boundary.RoughSymbol {
	t.Helper()

	text := doc.Text()
	offset := -1
	from := 0
	for seen := 0; seen <= occurrence; {
		idx := strings.Index(text[from:], needle)
		require.GreaterOrEqual(t, idx, 0, "needle %q occurrence %d", needle, occurrence)
		offset = from + idx
		from = offset + 1
		if isWordByte(text, offset-1) || (isWordByte(needle, len(needle)-1) && isWordByte(text, offset+len(needle))) {
			continue
		}
		seen++
	}

	lineStart := doc.LineStart(doc.LineOf(offset))

	return boundary.RoughSymbol{
		Name:      needle,
		NameRange: doc.RangeOf(source.Span{Start: offset, End: offset + len(needle)}),
		Range:     doc.RangeOf(source.Span{Start: lineStart, End: doc.Len()}),
	}
}

func isWordByte(s string, idx int) bool {
	if idx < 0 || idx >= len(s) {
		return false
	}
	c := s[idx]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// texts returns the head and body text of a resolved boundary.
func texts(t *testing.T, doc *source.Document, result boundary.ResolvedBoundary) (string, string) {
	t.Helper()

	head, ok := doc.SpanOf(result.Head)
	require.True(t, ok, "head range %s", result.Head)
	body, ok := doc.SpanOf(result.Body)
	require.True(t, ok, "body range %s", result.Body)

	return string(doc.Slice(head)), string(doc.Slice(body))
}

// parserFunc adapts a function to boundary.Parser.
type parserFunc func(ctx context.Context, content []byte) (*syntax.Tree, error)

func (f parserFunc) Parse(ctx context.Context, content []byte) (*syntax.Tree, error) {
	return f(ctx, content)
}

// fixedParser always returns tree.
func fixedParser(tree *syntax.Tree) boundary.Parser {
	return parserFunc(func(context.Context, []byte) (*syntax.Tree, error) {
		return tree, nil
	})
}

// failingParser always returns err.
func failingParser(err error) boundary.Parser {
	return parserFunc(func(context.Context, []byte) (*syntax.Tree, error) {
		return nil, err
	})
}

func spanPtr(start, end int) *source.Span {
	return &source.Span{Start: start, End: end}
}

// spanOf returns the span of the given occurrence of needle in text.
func spanOf(t *testing.T, text, needle string, occurrence int) source.Span {
	t.Helper()

	from := 0
	offset := -1
	for range occurrence + 1 {
		idx := strings.Index(text[from:], needle)
		require.GreaterOrEqual(t, idx, 0, "needle %q occurrence %d", needle, occurrence)
		offset = from + idx
		from = offset + len(needle)
	}

	return source.Span{Start: offset, End: offset + len(needle)}
}

// tree wraps nodes under a chunk root covering n bytes.
func tree(n int, nodes ...*syntax.Node) *syntax.Tree {
	root := syntax.NewChunk(n)
	for _, node := range nodes {
		syntax.AppendChild(root, node)
	}
	return &syntax.Tree{Root: root}
}
