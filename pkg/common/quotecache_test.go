package common

import (
	"testing"

	"github.com/robaho/fixed"
)

func TestQuoteCacheProviderIdempotent(t *testing.T) {
	p := NewQuoteCacheProvider()
	ibm := NewSymbol("IBM", "NYSE", Equity)
	c1 := p.GetOrCreate(ibm)
	c2 := p.GetOrCreate(ibm)
	if c1 != c2 {
		t.Error("provider should return the same cache per symbol")
	}
	if p.GetOrCreate(NewSymbol("MSFT", "NYSE", Equity)) == c1 {
		t.Error("distinct symbols should have distinct caches")
	}
	if p.Len() != 2 {
		t.Error("expected 2 caches", p.Len())
	}
}

func TestQuoteCacheKeyedBySymbolIdentity(t *testing.T) {
	p := NewQuoteCacheProvider()
	spot := p.GetOrCreate(NewSymbol("ETHUSD", "coinbase", Crypto))
	future := p.GetOrCreate(NewSymbol("ETHUSD", "coinbase", CryptoFuture))
	if spot == future {
		t.Error("instruments sharing a display value must not share a cache")
	}
	if p.GetOrCreate(NewSymbol("ETHUSD", "kraken", Crypto)) == spot {
		t.Error("distinct markets must not share a cache")
	}
}

func TestQuoteCachePrice(t *testing.T) {
	var c QuoteCache

	if !c.Price().Equal(fixed.ZERO) {
		t.Error("empty cache should price at zero")
	}

	c.SetQuote(fixed.NewS("99"), fixed.NewS("10"), fixed.NewS("101"), fixed.NewS("10"))
	if !c.Price().Equal(fixed.NewS("100")) {
		t.Error("expected quote midpoint", c.Price())
	}

	c.SetTrade(fixed.NewS("100.5"), fixed.NewS("5"))
	if !c.Price().Equal(fixed.NewS("100.5")) {
		t.Error("last trade should win", c.Price())
	}
	price, size := c.Last()
	if !price.Equal(fixed.NewS("100.5")) || !size.Equal(fixed.NewS("5")) {
		t.Error("wrong last trade", price, size)
	}
	if c.Updated().IsZero() {
		t.Error("update time should be set")
	}
}
