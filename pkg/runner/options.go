// Package runner resolves construct boundaries across many files.
package runner

import (
	"errors"

	"github.com/yaklabco/luaoutline/pkg/boundary"
)

// ErrNotLua is reported for inputs rejected by RequireLua.
var ErrNotLua = errors.New("input is not Lua source")

// Request names one file and the rough symbols to resolve in it.
type Request struct {
	// Path is the file path. It labels the output even when Content is set.
	Path string

	// Content is the source text. When nil, Path is read from disk.
	Content []byte

	// Symbols are resolved in order.
	Symbols []boundary.RoughSymbol

	// SymbolsFile is decoded against the loaded document and appended to
	// Symbols. It may hold either symbol input format.
	SymbolsFile string
}

// Options controls multi-file resolution behavior.
type Options struct {
	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// RequireLua fails files whose language is not detected as Lua.
	RequireLua bool
}
