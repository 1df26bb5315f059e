package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCacheRoundTrip(t *testing.T) {
	c := NewTTLCache()
	c.Set("k", 42, time.Minute)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestTTLCacheMiss(t *testing.T) {
	c := NewTTLCache()
	_, ok := c.Get("absent")
	assert.False(t, ok)
}

func TestTTLCacheExpiry(t *testing.T) {
	now := time.Now()
	c := NewTTLCache()
	c.now = func() time.Time { return now }

	c.Set("k", "v", 2*time.Minute)
	_, ok := c.Get("k")
	require.True(t, ok)

	// Just before expiry the entry is still valid.
	now = now.Add(2*time.Minute - time.Second)
	_, ok = c.Get("k")
	assert.True(t, ok)

	// Past expiry the entry is gone and stays gone.
	now = now.Add(2 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestTTLCacheNonPositiveTTLStoresNothing(t *testing.T) {
	c := NewTTLCache()
	c.Set("k", "v", 0)
	c.Set("k2", "v", -time.Second)
	assert.Equal(t, 0, c.Len())
}

func TestTTLCacheOverwriteRefreshesExpiry(t *testing.T) {
	now := time.Now()
	c := NewTTLCache()
	c.now = func() time.Time { return now }

	c.Set("k", "old", time.Minute)
	now = now.Add(50 * time.Second)
	c.Set("k", "new", time.Minute)
	now = now.Add(30 * time.Second)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestNopNeverStores(t *testing.T) {
	var c Cache = Nop{}
	c.Set("k", "v", time.Hour)
	_, ok := c.Get("k")
	assert.False(t, ok)
}
