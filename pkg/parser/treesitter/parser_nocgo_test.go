//go:build !cgo

package treesitter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/luaoutline/pkg/boundary"
	"github.com/yaklabco/luaoutline/pkg/parser/treesitter"
)

func TestParse_Unavailable(t *testing.T) {
	t.Parallel()

	assert.False(t, treesitter.Available)

	tree, err := treesitter.New().Parse(context.Background(), []byte("function f() end"))
	require.ErrorIs(t, err, boundary.ErrParserUnavailable)
	assert.Nil(t, tree)
}
