package securities

import (
	"github.com/shopspring/decimal"

	"github.com/robaho/go-securities/pkg/common"
)

// Security is a fully initialized tradable instrument. Securities are built by
// a SecurityFactory and mutated afterward by the initializer and trading logic.
type Security interface {
	Symbol() common.Symbol
	Type() common.SecurityType
	Hours() common.MarketHours
	Properties() common.SymbolProperties
	QuoteCash() *common.Cash
	CashBook() *common.CashBook
	Cache() *common.QuoteCache
	// Underlying is nil except for derivatives built with one
	Underlying() Security

	IsTradable() bool
	SetTradable(tradable bool)
	Leverage() decimal.Decimal
	SetLeverage(leverage decimal.Decimal)
	PriceVariation() PriceVariationModel
	SetPriceVariation(model PriceVariationModel)
	Subscriptions() common.SubscriptionSet
	AddSubscriptions(configs ...*common.SubscriptionConfig)
}

// security is the state common to every variant, it is also the fallback
// variant for unrecognized type tags.
type security struct {
	symbol     common.Symbol
	hours      common.MarketHours
	props      common.SymbolProperties
	quoteCash  *common.Cash
	book       *common.CashBook
	cache      *common.QuoteCache
	underlying Security

	tradable      bool
	leverage      decimal.Decimal
	priceModel    PriceVariationModel
	subscriptions common.SubscriptionSet
}

func (s *security) Symbol() common.Symbol {
	return s.symbol
}
func (s *security) Type() common.SecurityType {
	return s.symbol.Type()
}
func (s *security) Hours() common.MarketHours {
	return s.hours
}
func (s *security) Properties() common.SymbolProperties {
	return s.props
}
func (s *security) QuoteCash() *common.Cash {
	return s.quoteCash
}
func (s *security) CashBook() *common.CashBook {
	return s.book
}
func (s *security) Cache() *common.QuoteCache {
	return s.cache
}
func (s *security) Underlying() Security {
	return s.underlying
}
func (s *security) IsTradable() bool {
	return s.tradable
}
func (s *security) SetTradable(tradable bool) {
	s.tradable = tradable
}
func (s *security) Leverage() decimal.Decimal {
	return s.leverage
}
func (s *security) SetLeverage(leverage decimal.Decimal) {
	s.leverage = leverage
}
func (s *security) PriceVariation() PriceVariationModel {
	return s.priceModel
}
func (s *security) SetPriceVariation(model PriceVariationModel) {
	s.priceModel = model
}
func (s *security) Subscriptions() common.SubscriptionSet {
	return s.subscriptions
}
func (s *security) AddSubscriptions(configs ...*common.SubscriptionConfig) {
	s.subscriptions = append(s.subscriptions, configs...)
}
func (s *security) String() string {
	return string(s.symbol.Type()) + ":" + s.symbol.Value()
}

type Equity struct {
	security
	// PrimaryExchange is UnknownExchange when no provider is configured
	PrimaryExchange string
}

type Option struct {
	security
	contractProps common.OptionProperties
}

// ContractProperties returns the option specialization of the symbol
// properties, including the contract unit of trade.
func (o *Option) ContractProperties() common.OptionProperties {
	return o.contractProps
}

type IndexOption struct {
	Option
}

type FutureOption struct {
	Option
}

type Future struct {
	security
}

type Forex struct {
	security
	baseCash *common.Cash
}

// BaseCash is the ledger entry for the pair's base currency.
func (f *Forex) BaseCash() *common.Cash {
	return f.baseCash
}

type Cfd struct {
	security
}

type Index struct {
	security
}

type Crypto struct {
	security
	baseCash *common.Cash
}

func (c *Crypto) BaseCash() *common.Cash {
	return c.baseCash
}

type CryptoFuture struct {
	Crypto
}
