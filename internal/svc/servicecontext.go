package svc

import (
	"log"

	"timeline-api/internal/cache"
	"timeline-api/internal/config"
	"timeline-api/internal/session"
	marketpkg "timeline-api/pkg/market"
	"timeline-api/pkg/market/providers/coingecko"
)

type ServiceContext struct {
	Config config.Config

	// Cache is the time-bounded memoization store shared by the market
	// providers; substitute cache.Nop{} to force live fetches.
	Cache cache.Cache

	MarketProviders map[string]marketpkg.Provider
	Market          marketpkg.Provider

	// Sessions owns all per-browser state (portfolio, favorites).
	Sessions *session.Store
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{
		Config:   c,
		Cache:    cache.NewTTLCache(),
		Sessions: session.NewStore(),
	}

	if c.Market.Value == nil {
		log.Fatal("market config section is required")
	}
	providers, err := c.Market.Value.BuildProviders()
	if err != nil {
		log.Fatalf("failed to build market providers: %v", err)
	}
	ttls := cache.NewTTLSet(c.TTL)
	for _, provider := range providers {
		if cg, ok := provider.(*coingecko.Provider); ok {
			cg.SetCache(svc.Cache)
			cg.SetTTLs(ttls.Batch, ttls.Prices, ttls.History)
		}
	}
	svc.MarketProviders = providers

	name := c.Market.Value.Default
	if name == "" {
		log.Fatal("market config must name a default provider")
	}
	svc.Market = providers[name]

	return svc
}
