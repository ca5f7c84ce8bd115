// Package treesitter implements boundary.Parser with the tree-sitter Lua grammar.
//
// The grammar is linked through cgo. Builds without cgo still compile this
// package, but Parse then reports boundary.ErrParserUnavailable and resolution
// runs on the heuristic route only.
package treesitter

// Name is the parser name used in configuration.
const Name = "treesitter"
