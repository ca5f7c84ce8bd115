package boundary_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/luaoutline/pkg/boundary"
	"github.com/yaklabco/luaoutline/pkg/syntax"
)

func countingParser(calls *atomic.Int32, err error) boundary.Parser {
	return parserFunc(func(_ context.Context, content []byte) (*syntax.Tree, error) {
		calls.Add(1)
		if err != nil {
			return nil, err
		}
		return tree(len(content)), nil
	})
}

func TestCachingParser_HitsOnIdenticalContent(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	cache, err := boundary.NewCachingParser(countingParser(&calls, nil), 4)
	require.NoError(t, err)

	first, err := cache.Parse(context.Background(), []byte("x = 1"))
	require.NoError(t, err)
	second, err := cache.Parse(context.Background(), []byte("x = 1"))
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, cache.Len())
}

func TestCachingParser_MissesOnChangedContent(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	cache, err := boundary.NewCachingParser(countingParser(&calls, nil), 4)
	require.NoError(t, err)

	first, err := cache.Parse(context.Background(), []byte("x = 1"))
	require.NoError(t, err)
	second, err := cache.Parse(context.Background(), []byte("x = 2"))
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, int32(2), calls.Load())

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestCachingParser_DoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	errBroken := errors.New("broken")
	cache, err := boundary.NewCachingParser(countingParser(&calls, errBroken), 0)
	require.NoError(t, err)

	for range 2 {
		_, err := cache.Parse(context.Background(), []byte("x ="))
		require.ErrorIs(t, err, errBroken)
	}

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 0, cache.Len())
}

func TestCachingParser_Evicts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	cache, err := boundary.NewCachingParser(countingParser(&calls, nil), 1)
	require.NoError(t, err)

	for _, content := range []string{"a", "b", "a"} {
		_, err := cache.Parse(context.Background(), []byte(content))
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 1, cache.Len())
}
