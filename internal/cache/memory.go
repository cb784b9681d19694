package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

// MemoryCache is an in-process ItineraryCache backed by go-cache.
type MemoryCache struct {
	store *gocache.Cache
}

var _ ItineraryCache = (*MemoryCache)(nil)

func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(defaultTTL, 10*time.Minute),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*types.ItineraryResponse, bool) {
	cached, found := c.store.Get(key)
	if !found {
		return nil, false
	}
	itinerary, ok := cached.(*types.ItineraryResponse)
	if !ok {
		return nil, false
	}
	return itinerary, true
}

func (c *MemoryCache) Set(_ context.Context, key string, value *types.ItineraryResponse, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}
