//go:build cgo

package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/luaoutline/pkg/source"
	"github.com/yaklabco/luaoutline/pkg/syntax"
)

// Node types of the tree-sitter Lua grammar. Keywords are named nodes; the
// block of a statement is hidden, so its statements are direct children.
const (
	typeFunctionStatement   = "function_statement"
	typeFunction            = "function"
	typeFunctionBodyParen   = "function_body_paren"
	typeFunctionEnd         = "function_end"
	typeVariableDeclaration = "variable_declaration"
	typeIf                  = "if_statement"
	typeIfStart             = "if_start"
	typeIfThen              = "if_then"
	typeIfElseif            = "if_elseif"
	typeIfElse              = "if_else"
	typeIfEnd               = "if_end"
	typeFor                 = "for_statement"
	typeForStart            = "for_start"
	typeForGeneric          = "for_generic"
	typeForDo               = "for_do"
	typeForEnd              = "for_end"
	typeWhile               = "while_statement"
	typeWhileStart          = "while_start"
	typeWhileDo             = "while_do"
	typeWhileEnd            = "while_end"
	typeRepeat              = "repeat_statement"
	typeRepeatStart         = "repeat_start"
	typeRepeatUntil         = "repeat_until"

	fieldName  = "name"
	fieldValue = "value"
)

// converter turns a tree-sitter tree into a syntax tree, keeping only constructs.
// Node spans in this grammar may begin with the whitespace before the token, so
// every span is trimmed on the left against src.
type converter struct {
	src []byte
}

// children converts every child of node, attaching constructs to parent.
func (c *converter) children(node *sitter.Node, parent *syntax.Node) {
	for idx := range int(node.ChildCount()) {
		if child := node.Child(idx); child != nil {
			c.node(child, parent)
		}
	}
}

// node converts one tree-sitter node. Non-construct nodes are flattened so their
// descendants attach to parent.
func (c *converter) node(node *sitter.Node, parent *syntax.Node) {
	switch node.Type() {
	case typeFunctionStatement:
		c.function(node, node.ChildByFieldName(fieldName), syntax.KindFunctionDeclaration, parent)
	case typeFunction:
		c.function(node, nil, syntax.KindFunctionExpression, parent)
	case typeVariableDeclaration:
		c.declaration(node, parent)
	case typeIf:
		c.conditional(node, parent)
	case typeFor:
		c.forLoop(node, parent)
	case typeWhile:
		c.loop(node, syntax.KindWhile, typeWhileStart, typeWhileDo, typeWhileEnd, parent)
	case typeRepeat:
		c.repeat(node, parent)
	default:
		c.children(node, parent)
	}
}

// function emits a function construct. A function without a parameter list
// cannot be split and is emitted as KindUnknown.
func (c *converter) function(node, name *sitter.Node, kind syntax.Kind, parent *syntax.Node) {
	out := syntax.NewNode(kind, c.span(node))
	if name != nil {
		out.Ident = c.spanPtr(name)
	}
	c.fillFunction(out, node)
	if out.Params == nil {
		out.Kind = syntax.KindUnknown
	}

	syntax.AppendChild(parent, out)
	c.children(node, out)
}

// fillFunction sets Params and Body from the parentheses, body and end of the
// function node fn.
func (c *converter) fillFunction(out *syntax.Node, fn *sitter.Node) {
	var open, closeParen, end *sitter.Node
	for idx := range int(fn.ChildCount()) {
		child := fn.Child(idx)
		if child == nil {
			continue
		}
		switch child.Type() {
		case typeFunctionBodyParen:
			if open == nil {
				open = child
			} else {
				closeParen = child
			}
		case typeFunctionEnd:
			end = child
		}
	}
	if open == nil || closeParen == nil {
		return
	}

	params := source.Span{Start: c.start(open), End: int(closeParen.EndByte())}
	out.Params = &params

	body := source.Span{Start: params.End, End: int(fn.EndByte())}
	if end != nil {
		body.End = c.start(end)
	}
	out.Body = &body
}

// declaration emits a KindFunctionAssignment when the first assigned value is a
// function, as in "local f = function() end" or "M.f = function() end".
// Anything else is flattened.
func (c *converter) declaration(node *sitter.Node, parent *syntax.Node) {
	target := node.ChildByFieldName(fieldName)
	value := node.ChildByFieldName(fieldValue)
	if target == nil || value == nil || value.Type() != typeFunction {
		c.children(node, parent)
		return
	}

	out := syntax.NewNode(syntax.KindFunctionAssignment, c.span(node))
	out.Ident = c.spanPtr(target)
	out.Function = c.spanPtr(value)
	c.fillFunction(out, value)
	syntax.AppendChild(parent, out)

	for idx := range int(node.ChildCount()) {
		child := node.Child(idx)
		switch {
		case child == nil:
		case child.Equal(value):
			c.children(value, out)
		default:
			c.node(child, out)
		}
	}
}

// conditional emits the statement and one clause per if, elseif, and else
// keyword. The grammar keeps all parts flat under the statement, so a clause
// runs from its keyword to the next clause keyword or the closing end.
func (c *converter) conditional(node *sitter.Node, parent *syntax.Node) {
	statement := syntax.NewNode(syntax.KindConditional, c.span(node))
	syntax.AppendChild(parent, statement)

	var (
		clause    *syntax.Node
		condStart = -1
		condEnd   int
	)
	closeClause := func(end int) {
		if clause == nil {
			return
		}
		clause.Span.End = end
		if clause.Body == nil {
			clause.Body = &source.Span{Start: end, End: end}
		}
		clause.Body.End = end
	}

	for idx := range int(node.ChildCount()) {
		child := node.Child(idx)
		if child == nil {
			continue
		}

		switch child.Type() {
		case typeIfStart, typeIfElseif, typeIfElse:
			closeClause(c.start(child))
			clause = syntax.NewNode(syntax.KindConditionalClause, source.Span{Start: c.start(child), End: statement.Span.End})
			syntax.AppendChild(statement, clause)
			condStart = -1
			if child.Type() == typeIfElse {
				kwEnd := int(child.EndByte())
				clause.Body = &source.Span{Start: kwEnd, End: kwEnd}
			}
		case typeIfThen:
			if clause != nil {
				if condStart >= 0 {
					clause.Condition = &source.Span{Start: condStart, End: condEnd}
				}
				thenEnd := int(child.EndByte())
				clause.Body = &source.Span{Start: thenEnd, End: thenEnd}
			}
		case typeIfEnd:
			closeClause(c.start(child))
			clause = nil
		default:
			switch {
			case clause == nil:
				c.node(child, statement)
			case clause.Body == nil:
				if condStart < 0 {
					condStart = c.start(child)
				}
				condEnd = int(child.EndByte())
				c.node(child, clause)
			default:
				c.node(child, clause)
			}
		}
	}
	closeClause(statement.Span.End)
}

// forLoop tells numeric from generic loops by their clause node.
func (c *converter) forLoop(node *sitter.Node, parent *syntax.Node) {
	kind := syntax.KindNumericFor
	for idx := range int(node.ChildCount()) {
		if child := node.Child(idx); child != nil && child.Type() == typeForGeneric {
			kind = syntax.KindGenericFor
			break
		}
	}
	c.loop(node, kind, typeForStart, typeForDo, typeForEnd, parent)
}

// loop emits a construct whose condition sits between the start and do
// keywords and whose body runs from do to end.
func (c *converter) loop(node *sitter.Node, kind syntax.Kind, startType, doType, endType string, parent *syntax.Node) {
	out := syntax.NewNode(kind, c.span(node))

	condStart, condEnd, bodyStart := -1, 0, -1
	for idx := range int(node.ChildCount()) {
		child := node.Child(idx)
		if child == nil {
			continue
		}
		switch child.Type() {
		case startType:
		case doType:
			bodyStart = int(child.EndByte())
		case endType:
			if bodyStart >= 0 {
				out.Body = &source.Span{Start: bodyStart, End: c.start(child)}
			}
		default:
			if bodyStart < 0 {
				if condStart < 0 {
					condStart = c.start(child)
				}
				condEnd = int(child.EndByte())
			}
		}
	}
	if condStart >= 0 {
		out.Condition = &source.Span{Start: condStart, End: condEnd}
	}

	syntax.AppendChild(parent, out)
	c.children(node, out)
}

// repeat emits a repeat-until loop; its condition follows the until keyword.
func (c *converter) repeat(node *sitter.Node, parent *syntax.Node) {
	out := syntax.NewNode(syntax.KindRepeat, c.span(node))

	bodyStart, condStart := -1, -1
	for idx := range int(node.ChildCount()) {
		child := node.Child(idx)
		if child == nil {
			continue
		}
		switch child.Type() {
		case typeRepeatStart:
			bodyStart = int(child.EndByte())
		case typeRepeatUntil:
			if bodyStart >= 0 {
				out.Body = &source.Span{Start: bodyStart, End: c.start(child)}
			}
			condStart = int(child.EndByte())
		}
	}
	if condStart >= 0 && condStart < out.Span.End {
		cond := source.Span{Start: condStart, End: out.Span.End}
		cond.Start = c.trimLeft(cond.Start, cond.End)
		out.Condition = &cond
	}

	syntax.AppendChild(parent, out)
	c.children(node, out)
}

// start returns the first non-blank offset of node.
func (c *converter) start(node *sitter.Node) int {
	return c.trimLeft(int(node.StartByte()), int(node.EndByte()))
}

func (c *converter) trimLeft(start, end int) int {
	end = min(end, len(c.src))
	for start < end {
		switch c.src[start] {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			start++
		default:
			return start
		}
	}
	return start
}

func (c *converter) span(node *sitter.Node) source.Span {
	return source.Span{Start: c.start(node), End: int(node.EndByte())}
}

func (c *converter) spanPtr(node *sitter.Node) *source.Span {
	span := c.span(node)
	return &span
}
