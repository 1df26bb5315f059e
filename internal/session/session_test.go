package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesToggleIdempotentPair(t *testing.T) {
	f := NewFavorites()
	assert.True(t, f.Toggle("bitcoin"))
	assert.True(t, f.Contains("bitcoin"))
	assert.False(t, f.Toggle("bitcoin"))
	assert.False(t, f.Contains("bitcoin"), "toggle twice returns membership to its original state")
}

func TestFavoritesSorted(t *testing.T) {
	f := NewFavorites()
	f.Toggle("ethereum")
	f.Toggle("bitcoin")
	f.Toggle("dogecoin")
	assert.Equal(t, []string{"bitcoin", "dogecoin", "ethereum"}, f.Sorted())
}

func TestStoreCreatesAndReusesSessions(t *testing.T) {
	store := NewStore()
	a := store.Get("sid-a")
	require.NotNil(t, a)
	require.NotNil(t, a.Ledger)
	require.NotNil(t, a.Favorites)

	assert.Same(t, a, store.Get("sid-a"))

	b := store.Get("sid-b")
	assert.NotSame(t, a, b, "sessions are never shared")

	a.Favorites.Toggle("bitcoin")
	assert.False(t, b.Favorites.Contains("bitcoin"))
}

func TestNewIDUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
	assert.Len(t, NewID(), 32)
}
