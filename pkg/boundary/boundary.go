// Package boundary computes the head and body ranges of Lua constructs.
//
// A caller supplies a document and a rough symbol location (a name range and an
// overall range from an external symbol provider). The Service first tries a
// structural route driven by a parse tree and falls back to a text scanner
// when no tree is available or the tree cannot place the symbol.
package boundary

import (
	"fmt"

	"github.com/yaklabco/luaoutline/pkg/source"
)

// Strategy names reported in ResolvedBoundary.Strategy.
const (
	StrategyStructural = "structural"
	StrategyHeuristic  = "heuristic"
)

// RoughSymbol is the coarse symbol location supplied by a symbol provider.
type RoughSymbol struct {
	// Name is the symbol name as reported by the provider.
	Name string `json:"name" yaml:"name"`

	// Kind is the provider's symbol kind, informational only.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// NameRange is the selection range covering the symbol's name.
	NameRange source.Range `json:"name_range" yaml:"name_range"`

	// Range is the overall declared range of the symbol.
	Range source.Range `json:"range" yaml:"range"`
}

// Attribute is an annotation on a resolved construct. None are produced yet.
type Attribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// ResolvedBoundary is the head/body split of one construct.
type ResolvedBoundary struct {
	Head       source.Range `json:"head" yaml:"head"`
	Body       source.Range `json:"body" yaml:"body"`
	Attributes []Attribute  `json:"attributes" yaml:"attributes"`

	// Strategy names the route that produced the result.
	Strategy string `json:"strategy" yaml:"strategy"`
}

// Contiguous reports whether the body begins exactly where the head ends.
func (b ResolvedBoundary) Contiguous() bool {
	return b.Head.End == b.Body.Start
}

// newBoundary converts offset spans into a ResolvedBoundary, rejecting
// negative-length results.
func newBoundary(doc *source.Document, head, body source.Span, strategy string) (ResolvedBoundary, error) {
	if head.Start < 0 || head.End < head.Start || head.End > doc.Len() {
		return ResolvedBoundary{}, fmt.Errorf("%w: head span %d-%d", ErrHeadUnresolvable, head.Start, head.End)
	}
	if body.Start < head.End || body.End < body.Start || body.End > doc.Len() {
		return ResolvedBoundary{}, fmt.Errorf("%w: body span %d-%d", ErrBodyUnresolvable, body.Start, body.End)
	}

	return ResolvedBoundary{
		Head:       doc.RangeOf(head),
		Body:       doc.RangeOf(body),
		Attributes: []Attribute{},
		Strategy:   strategy,
	}, nil
}
