//go:build cgo

package treesitter

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/lua"

	"github.com/yaklabco/luaoutline/pkg/syntax"
)

// Available reports whether the grammar is linked into this build.
const Available = true

// ErrSyntax is returned when the grammar reports error or missing nodes.
var ErrSyntax = errors.New("lua syntax error")

// Parser parses Lua with tree-sitter. It is safe for concurrent use; each call
// uses its own tree-sitter parser.
type Parser struct {
	language *sitter.Language
}

// New creates a Parser for the Lua grammar.
func New() *Parser {
	return &Parser{language: lua.GetLanguage()}
}

// Parse implements boundary.Parser.
func (p *Parser) Parse(ctx context.Context, content []byte) (*syntax.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.language)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("tree-sitter parse: %w: no root node", ErrSyntax)
	}
	if root.HasError() {
		return nil, fmt.Errorf("tree-sitter parse: %w", ErrSyntax)
	}

	conv := &converter{src: content}
	chunk := syntax.NewChunk(len(content))
	conv.children(root, chunk)

	return &syntax.Tree{Root: chunk}, nil
}
