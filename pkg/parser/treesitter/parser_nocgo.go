//go:build !cgo

package treesitter

import (
	"context"

	"github.com/yaklabco/luaoutline/pkg/boundary"
	"github.com/yaklabco/luaoutline/pkg/syntax"
)

// Available reports whether the grammar is linked into this build.
const Available = false

// Parser is a placeholder that never parses.
type Parser struct{}

// New returns a parser that always reports the grammar as unavailable.
func New() *Parser {
	return &Parser{}
}

// Parse implements boundary.Parser.
func (p *Parser) Parse(context.Context, []byte) (*syntax.Tree, error) {
	return nil, boundary.ErrParserUnavailable
}
