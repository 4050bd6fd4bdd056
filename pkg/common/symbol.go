package common

import (
	"strings"
)

type SecurityType string

const (
	Base         SecurityType = "base"
	Equity       SecurityType = "equity"
	Option       SecurityType = "option"
	IndexOption  SecurityType = "index-option"
	FutureOption SecurityType = "future-option"
	Future       SecurityType = "future"
	Forex        SecurityType = "forex"
	Cfd          SecurityType = "cfd"
	Index        SecurityType = "index"
	Crypto       SecurityType = "crypto"
	CryptoFuture SecurityType = "crypto-future"
)

// SecurityTypes returns every recognized security type tag.
func SecurityTypes() []SecurityType {
	return []SecurityType{
		Base, Equity, Option, IndexOption, FutureOption, Future,
		Forex, Cfd, Index, Crypto, CryptoFuture,
	}
}

// Symbol identifies an instrument on a market. Symbols are immutable,
// derivatives carry a reference to their underlying symbol.
type Symbol struct {
	value      string
	market     string
	secType    SecurityType
	underlying *Symbol
}

func NewSymbol(value string, market string, secType SecurityType) Symbol {
	return Symbol{value: value, market: market, secType: secType}
}

func NewDerivativeSymbol(value string, market string, secType SecurityType, underlying Symbol) Symbol {
	u := underlying
	return Symbol{value: value, market: market, secType: secType, underlying: &u}
}

func (s Symbol) Value() string {
	return s.value
}
func (s Symbol) Market() string {
	return s.market
}
func (s Symbol) Type() SecurityType {
	return s.secType
}
func (s Symbol) Underlying() (Symbol, bool) {
	if s.underlying == nil {
		return Symbol{}, false
	}
	return *s.underlying, true
}
func (s Symbol) String() string {
	return string(s.secType) + ":" + s.value
}

// TryDecomposePair splits a symbol value into its base and quote currency codes.
// Forex values encode BASE+QUOTE with a 3-letter base code, the quote is
// whatever follows it. Everything else matches on the properties quote currency
// being a proper suffix of the value, e.g. BTCUSD with quote currency USD.
// Failure is a normal outcome for types with no natural currency pair.
func TryDecomposePair(symbol Symbol, props SymbolProperties) (base string, quote string, ok bool) {
	v := symbol.Value()
	if symbol.Type() == Forex {
		if len(v) <= 3 {
			return "", "", false
		}
		return v[:3], v[3:], true
	}
	quote = props.QuoteCurrency
	if quote == "" || !strings.HasSuffix(v, quote) || len(v) <= len(quote) {
		return "", "", false
	}
	return strings.TrimSuffix(v, quote), quote, true
}
