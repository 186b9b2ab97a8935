package cache

import (
	"testing"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefetchCache_GetSet(t *testing.T) {
	c := NewPrefetchCache(4, time.Minute)

	_, ok := c.Get("category=men")
	assert.False(t, ok)

	c.Set("category=men", models.FilterResponse{Total: 3, Pages: 2})
	got, ok := c.Get("category=men")
	require.True(t, ok)
	assert.EqualValues(t, 3, got.Total)
}

func TestPrefetchCache_Expires(t *testing.T) {
	c := NewPrefetchCache(4, 20*time.Millisecond)
	c.Set("k", models.FilterResponse{Total: 1})

	assert.Eventually(t, func() bool {
		_, ok := c.Get("k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestPrefetchCache_SizeBound(t *testing.T) {
	c := NewPrefetchCache(2, time.Minute)
	c.Set("a", models.FilterResponse{Total: 1})
	c.Set("b", models.FilterResponse{Total: 2})

	// touch a so b is the least recently used
	_, _ = c.Get("a")
	c.Set("c", models.FilterResponse{Total: 3})

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestPrefetchCache_Invalidate(t *testing.T) {
	c := NewPrefetchCache(0, 0)
	c.Set("a", models.FilterResponse{})
	c.Invalidate()
	assert.Equal(t, 0, c.Len())
}
