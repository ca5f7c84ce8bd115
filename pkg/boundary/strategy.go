package boundary

import (
	"context"

	"github.com/yaklabco/luaoutline/pkg/source"
	"github.com/yaklabco/luaoutline/pkg/syntax"
)

// Parser builds a construct tree for Lua content.
//
// The boundary package defines this interface so parser implementations
// (e.g., parser/treesitter) stay optional. Implementations must not mutate
// content and must return ErrParserUnavailable, possibly wrapped, when they
// cannot parse at all in this build.
type Parser interface {
	Parse(ctx context.Context, content []byte) (*syntax.Tree, error)
}

// Strategy is one route for resolving a rough symbol into a boundary.
type Strategy interface {
	// Name identifies the strategy in results and logs.
	Name() string

	// Resolve computes the boundary of the construct named by sym.
	Resolve(ctx context.Context, doc *source.Document, sym RoughSymbol) (ResolvedBoundary, error)
}
