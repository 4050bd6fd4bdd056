package common

import (
	"sync"
	"time"

	"github.com/robaho/fixed"
)

// QuoteCache holds the last observed quote and trade for one symbol. Exactly
// one cache exists per symbol, acquired through a QuoteCacheProvider.
type QuoteCache struct {
	mu sync.Mutex

	bidPrice fixed.Fixed
	bidSize  fixed.Fixed
	askPrice fixed.Fixed
	askSize  fixed.Fixed

	lastPrice fixed.Fixed
	lastSize  fixed.Fixed

	updated time.Time
}

func (c *QuoteCache) SetQuote(bidPrice, bidSize, askPrice, askSize fixed.Fixed) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bidPrice, c.bidSize = bidPrice, bidSize
	c.askPrice, c.askSize = askPrice, askSize
	c.updated = time.Now()
}

func (c *QuoteCache) SetTrade(price fixed.Fixed, size fixed.Fixed) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastPrice, c.lastSize = price, size
	c.updated = time.Now()
}

func (c *QuoteCache) Bid() (fixed.Fixed, fixed.Fixed) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bidPrice, c.bidSize
}

func (c *QuoteCache) Ask() (fixed.Fixed, fixed.Fixed) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.askPrice, c.askSize
}

func (c *QuoteCache) Last() (fixed.Fixed, fixed.Fixed) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastPrice, c.lastSize
}

// Price returns the last trade price, falling back to the quote midpoint.
func (c *QuoteCache) Price() fixed.Fixed {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lastPrice.Equal(fixed.ZERO) {
		return c.lastPrice
	}
	if c.bidPrice.Equal(fixed.ZERO) || c.askPrice.Equal(fixed.ZERO) {
		return fixed.ZERO
	}
	return c.bidPrice.Add(c.askPrice).Div(fixed.NewF(2))
}

func (c *QuoteCache) Updated() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updated
}

// caches are keyed by full symbol identity, instruments of different types
// may share a display value without sharing prices
type cacheKey struct {
	value   string
	market  string
	secType SecurityType
}

// QuoteCacheProvider hands out the per-symbol QuoteCache instances. GetOrCreate
// is idempotent, callers always share the same cache for a symbol.
type QuoteCacheProvider struct {
	sync.RWMutex
	caches map[cacheKey]*QuoteCache
}

func NewQuoteCacheProvider() *QuoteCacheProvider {
	return &QuoteCacheProvider{caches: make(map[cacheKey]*QuoteCache)}
}

func (p *QuoteCacheProvider) GetOrCreate(symbol Symbol) *QuoteCache {
	key := cacheKey{symbol.Value(), symbol.Market(), symbol.Type()}

	p.RLock()
	c, ok := p.caches[key]
	p.RUnlock()
	if ok {
		return c
	}

	p.Lock()
	defer p.Unlock()

	if c, ok := p.caches[key]; ok {
		return c
	}
	c = &QuoteCache{}
	p.caches[key] = c
	return c
}

func (p *QuoteCacheProvider) Len() int {
	p.RLock()
	defer p.RUnlock()
	return len(p.caches)
}
