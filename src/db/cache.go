package db

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"

	"fraudwatch-server/src/models"
)

// Cache names accepted by Clear.
const (
	CardholderCache = "cardholders"
	DateRangeCache  = "date_ranges"
)

// keyGroup remembers which keys belong to a cache so they can be dropped together.
type keyGroup struct {
	sync.RWMutex
	m map[string]struct{}
}

func (g *keyGroup) add(key string) {
	g.Lock()
	g.m[key] = struct{}{}
	g.Unlock()
}

func (g *keyGroup) drain() []string {
	g.Lock()
	defer g.Unlock()
	keys := make([]string, 0, len(g.m))
	for k := range g.m {
		keys = append(keys, k)
	}
	g.m = make(map[string]struct{})
	return keys
}

// Cache holds lookup data for the dashboard filters. Transaction rows are
// never cached; every report reads them fresh.
type Cache struct {
	store  *ristretto.Cache
	ttl    time.Duration
	groups map[string]*keyGroup
}

func NewCache(ttl time.Duration) (*Cache, error) {
	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	return &Cache{
		store: store,
		ttl:   ttl,
		groups: map[string]*keyGroup{
			CardholderCache: {m: make(map[string]struct{})},
			DateRangeCache:  {m: make(map[string]struct{})},
		},
	}, nil
}

func (c *Cache) set(group, key string, value interface{}) {
	c.groups[group].add(key)
	c.store.SetWithTTL(key, value, 1, c.ttl)
	c.store.Wait()
}

func (c *Cache) GetCardholders() ([]models.Cardholder, bool) {
	v, ok := c.store.Get(CardholderCache)
	if !ok {
		return nil, false
	}
	holders, ok := v.([]models.Cardholder)
	return holders, ok
}

func (c *Cache) SetCardholders(holders []models.Cardholder) {
	c.set(CardholderCache, CardholderCache, holders)
}

func dateRangeKey(cardholderID *int64) string {
	if cardholderID == nil {
		return DateRangeCache + ":all"
	}
	return fmt.Sprintf("%s:%d", DateRangeCache, *cardholderID)
}

func (c *Cache) GetDateRange(cardholderID *int64) (models.DateRange, bool) {
	v, ok := c.store.Get(dateRangeKey(cardholderID))
	if !ok {
		return models.DateRange{}, false
	}
	r, ok := v.(models.DateRange)
	return r, ok
}

func (c *Cache) SetDateRange(cardholderID *int64, r models.DateRange) {
	c.set(DateRangeCache, dateRangeKey(cardholderID), r)
}

// Clear drops every entry of the named cache.
func (c *Cache) Clear(name string) error {
	g, ok := c.groups[name]
	if !ok {
		return fmt.Errorf("unknown cache %q", name)
	}
	for _, key := range g.drain() {
		c.store.Del(key)
	}
	return nil
}

func (c *Cache) Close() {
	c.store.Close()
}
