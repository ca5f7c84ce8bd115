// Package syntax defines the construct tree produced by structural parsers.
//
// The tree keeps only the Lua constructs that boundary resolution understands
// (functions, conditionals, loops, repeat blocks). Every other statement is
// flattened away, so a construct's children are the constructs nested inside it.
package syntax

import "github.com/yaklabco/luaoutline/pkg/source"

// Kind classifies a construct node.
type Kind uint8

// Construct kinds.
const (
	// KindChunk is the root of every tree.
	KindChunk Kind = iota

	// KindFunctionDeclaration is "function name(...) ... end", including local functions.
	KindFunctionDeclaration
	// KindFunctionAssignment is "target = function(...) ... end", including local declarations.
	KindFunctionAssignment
	// KindFunctionExpression is an anonymous "function(...) ... end" in any other position.
	KindFunctionExpression

	// KindConditional is a whole "if ... end" statement; its clauses are children.
	KindConditional
	// KindConditionalClause is one if, elseif, or else clause of a conditional.
	KindConditionalClause

	// KindNumericFor is "for i = a, b do ... end".
	KindNumericFor
	// KindGenericFor is "for k, v in explist do ... end".
	KindGenericFor
	// KindWhile is "while cond do ... end".
	KindWhile
	// KindRepeat is "repeat ... until cond".
	KindRepeat

	// KindUnknown is a construct the parser recognised but could not decode.
	KindUnknown
)

//nolint:gochecknoglobals // lookup table
var kindNames = [...]string{
	KindChunk:               "chunk",
	KindFunctionDeclaration: "function-declaration",
	KindFunctionAssignment:  "function-expression-assignment",
	KindFunctionExpression:  "function-expression",
	KindConditional:         "conditional-statement",
	KindConditionalClause:   "conditional-clause",
	KindNumericFor:          "numeric-for",
	KindGenericFor:          "generic-for",
	KindWhile:               "while-loop",
	KindRepeat:              "repeat-until",
	KindUnknown:             "unknown",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsConstruct returns true for kinds that can enclose a symbol on their own.
// The chunk root and individual conditional clauses cannot.
func (k Kind) IsConstruct() bool {
	return k != KindChunk && k != KindConditionalClause
}

// Node is a single construct in the tree.
type Node struct {
	// Kind identifies what type of construct this is.
	Kind Kind

	// Span covers the whole construct, up to and including its terminator.
	Span source.Span

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Ident is the declared name or assignment target, when present.
	Ident *source.Span

	// Condition is the condition expression of a clause or while/repeat loop.
	Condition *source.Span

	// Params is the parameter list including its parentheses, for function kinds.
	Params *source.Span

	// Body is the block governed by the construct, when the parser reports one.
	Body *source.Span

	// Function is the function expression of a KindFunctionAssignment.
	Function *source.Span
}

// NewNode creates a detached node of the given kind and span.
func NewNode(kind Kind, span source.Span) *Node {
	return &Node{Kind: kind, Span: span}
}

// NewChunk creates a tree root covering n bytes.
func NewChunk(n int) *Node {
	return NewNode(KindChunk, source.Span{Start: 0, End: n})
}

// AppendChild appends child to parent, detaching it from any previous parent.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// RemoveChild detaches child from parent.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}

	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}

// Children returns the direct children in source order.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Clauses returns the conditional clauses of a KindConditional node.
func (n *Node) Clauses() []*Node {
	var clauses []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Kind == KindConditionalClause {
			clauses = append(clauses, child)
		}
	}
	return clauses
}

// Contains reports whether offset lies within the node span.
func (n *Node) Contains(offset int) bool {
	return n.Span.Contains(offset)
}

// Tree is a parsed construct tree for one document version.
type Tree struct {
	Root *Node
}
