package boundary

import (
	"context"
	"crypto/sha256"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/yaklabco/luaoutline/pkg/syntax"
)

// DefaultCacheSize is the number of trees kept by a CachingParser when no size is given.
const DefaultCacheSize = 64

// CachingParser memoizes parse trees by content hash. A tree is only returned
// for byte-identical content, so edits always reparse. Failed parses are not
// cached. Cached trees are shared and must be treated as read-only.
type CachingParser struct {
	next  Parser
	cache *lru.Cache[[sha256.Size]byte, *syntax.Tree]
}

// NewCachingParser wraps next with an LRU cache of size trees.
// A size <= 0 selects DefaultCacheSize.
func NewCachingParser(next Parser, size int) (*CachingParser, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[[sha256.Size]byte, *syntax.Tree](size)
	if err != nil {
		return nil, fmt.Errorf("create tree cache: %w", err)
	}

	return &CachingParser{next: next, cache: cache}, nil
}

// Parse implements Parser.
func (c *CachingParser) Parse(ctx context.Context, content []byte) (*syntax.Tree, error) {
	key := sha256.Sum256(content)
	if tree, ok := c.cache.Get(key); ok {
		return tree, nil
	}

	tree, err := c.next.Parse(ctx, content)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, tree)
	return tree, nil
}

// Len returns the number of cached trees.
func (c *CachingParser) Len() int {
	return c.cache.Len()
}

// Purge drops every cached tree.
func (c *CachingParser) Purge() {
	c.cache.Purge()
}
