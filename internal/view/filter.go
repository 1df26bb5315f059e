package view

import (
	"strings"

	"timeline-api/pkg/market"
)

// Filter returns the subsequence of batch whose name or symbol contains the
// query, case-insensitively. A blank or whitespace-only query returns the
// batch unchanged. Relative order is always preserved; an empty result is a
// legitimate empty state, not an error.
func Filter(batch []market.AssetRecord, query string) []market.AssetRecord {
	search := strings.ToLower(strings.TrimSpace(query))
	if search == "" {
		return batch
	}

	matched := make([]market.AssetRecord, 0, len(batch))
	for _, rec := range batch {
		if strings.Contains(strings.ToLower(rec.Name), search) ||
			strings.Contains(strings.ToLower(rec.Symbol), search) {
			matched = append(matched, rec)
		}
	}
	return matched
}
