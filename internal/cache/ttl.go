package cache

import (
	"time"

	"timeline-api/internal/config"
)

// TTLSet normalises cache TTLs from config into time.Duration values.
type TTLSet struct {
	Batch   time.Duration
	Prices  time.Duration
	History time.Duration
}

// NewTTLSet converts config TTLs (in seconds) into durations. Zero picks the
// built-in default for that endpoint; negative resolves to 0, which disables
// caching on stores that skip non-positive lifetimes.
func NewTTLSet(cfg config.CacheTTL) TTLSet {
	return TTLSet{
		Batch:   durationOrDefault(cfg.Batch, 2*time.Minute),
		Prices:  durationOrDefault(cfg.Prices, 2*time.Minute),
		History: durationOrDefault(cfg.History, 5*time.Minute),
	}
}

func durationOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds < 0 {
		return 0
	}
	if seconds == 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
