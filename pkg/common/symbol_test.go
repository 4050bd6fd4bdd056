package common

import (
	"testing"
)

func TestSymbol(t *testing.T) {
	s := NewSymbol("IBM", "NYSE", Equity)
	if s.Value() != "IBM" || s.Market() != "NYSE" || s.Type() != Equity {
		t.Error("wrong symbol fields", s)
	}
	if _, ok := s.Underlying(); ok {
		t.Error("equity should not have an underlying")
	}

	o := NewDerivativeSymbol("IBM 260116C00300000", "NYSE", Option, s)
	u, ok := o.Underlying()
	if !ok {
		t.Fatal("option should have an underlying")
	}
	if u.Value() != "IBM" {
		t.Error("wrong underlying", u)
	}
}

func TestDecomposeForexPair(t *testing.T) {
	s := NewSymbol("EURUSD", "FXCM", Forex)
	base, quote, ok := TryDecomposePair(s, DefaultSymbolProperties("USD"))
	if !ok {
		t.Fatal("forex pair should decompose")
	}
	if base != "EUR" || quote != "USD" {
		t.Error("wrong decomposition", base, quote)
	}

	bad := NewSymbol("EUR", "FXCM", Forex)
	if _, _, ok := TryDecomposePair(bad, DefaultSymbolProperties("USD")); ok {
		t.Error("short forex value should not decompose")
	}

	// the quote is whatever follows the 3-letter base code
	long := NewSymbol("USDMXNX", "FXCM", Forex)
	base, quote, ok = TryDecomposePair(long, DefaultSymbolProperties("USD"))
	if !ok || base != "USD" || quote != "MXNX" {
		t.Error("wrong decomposition", base, quote, ok)
	}
}

func TestDecomposeQuoteSuffix(t *testing.T) {
	s := NewSymbol("BTCUSD", "coinbase", Crypto)
	base, quote, ok := TryDecomposePair(s, DefaultSymbolProperties("USD"))
	if !ok {
		t.Fatal("crypto pair should decompose")
	}
	if base != "BTC" || quote != "USD" {
		t.Error("wrong decomposition", base, quote)
	}
}

func TestDecomposeFailureIsNormal(t *testing.T) {
	s := NewSymbol("IBM", "NYSE", Equity)
	if _, _, ok := TryDecomposePair(s, DefaultSymbolProperties("USD")); ok {
		t.Error("equity symbol should not decompose into a currency pair")
	}
	// value equal to the quote currency has no base portion
	s = NewSymbol("USD", "NYSE", Index)
	if _, _, ok := TryDecomposePair(s, DefaultSymbolProperties("USD")); ok {
		t.Error("value without a base portion should not decompose")
	}
}

func TestSecurityTypesComplete(t *testing.T) {
	types := SecurityTypes()
	if len(types) != 11 {
		t.Error("expected 11 security types, have", len(types))
	}
	seen := make(map[SecurityType]bool)
	for _, st := range types {
		if seen[st] {
			t.Error("duplicate security type", st)
		}
		seen[st] = true
	}
}
