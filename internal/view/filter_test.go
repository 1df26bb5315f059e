package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-api/pkg/market"
)

var filterBatch = []market.AssetRecord{
	{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc"},
	{ID: "ethereum", Name: "Ethereum", Symbol: "eth"},
	{ID: "tether", Name: "Tether", Symbol: "usdt"},
	{ID: "bitcoin-cash", Name: "Bitcoin Cash", Symbol: "bch"},
}

func TestFilterByName(t *testing.T) {
	got := Filter(filterBatch, "bitcoin")
	require.Len(t, got, 2)
	assert.Equal(t, "bitcoin", got[0].ID)
	assert.Equal(t, "bitcoin-cash", got[1].ID, "relative order is preserved")
}

func TestFilterBySymbol(t *testing.T) {
	got := Filter(filterBatch, "USDT")
	require.Len(t, got, 1)
	assert.Equal(t, "tether", got[0].ID)
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(filterBatch, "ETHER")
	require.Len(t, got, 2) // Ethereum and Tether both contain "ether"
	assert.Equal(t, "ethereum", got[0].ID)
	assert.Equal(t, "tether", got[1].ID)
}

func TestFilterWhitespaceQueryReturnsBatchUnchanged(t *testing.T) {
	got := Filter(filterBatch, "  ")
	assert.Equal(t, filterBatch, got)
	assert.Len(t, got, len(filterBatch))
}

func TestFilterNoMatchIsEmptyNotNilError(t *testing.T) {
	got := Filter(filterBatch, "zebra")
	assert.Empty(t, got)
}
