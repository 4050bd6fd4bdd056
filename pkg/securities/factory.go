package securities

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/robaho/go-securities/pkg/common"
)

// UnknownExchange is the primary exchange assigned to equities when no
// provider is configured.
const UnknownExchange = "unknown"

// PrimaryExchangeProvider resolves the listing exchange of an equity. It is an
// optional capability, absence is not an error.
type PrimaryExchangeProvider interface {
	PrimaryExchange(symbol common.Symbol) string
}

var PropertiesNotFound = errors.New("symbol not found in symbol properties database")

// BuildOptions are the per-build adjustments a caller may request.
type BuildOptions struct {
	// Leverage overrides whatever the initializer set, zero leaves it alone
	Leverage decimal.Decimal
	// Register adds the symbol (and an option's underlying symbol) to the registry
	Register bool
	// Underlying is attached to derivative securities
	Underlying Security
}

// SecurityFactory assembles securities: it bootstraps the cash book, resolves
// market hours and symbol properties, acquires the per-symbol quote cache,
// dispatches on the security type and runs the post-construction sequence.
//
// A single build is synchronous and performs no locking of its own, callers
// must not run concurrent builds for the same symbol. Builds for distinct
// symbols may run concurrently, the shared collaborators are synchronized.
type SecurityFactory struct {
	book        *common.CashBook
	hours       *common.MarketHoursDatabase
	props       *common.SymbolPropertiesDatabase
	caches      *common.QuoteCacheProvider
	registry    *common.SymbolRegistry
	exchanges   PrimaryExchangeProvider
	initializer SecurityInitializer
	live        atomic.Bool
}

func NewSecurityFactory(
	book *common.CashBook,
	hours *common.MarketHoursDatabase,
	props *common.SymbolPropertiesDatabase,
	caches *common.QuoteCacheProvider,
	registry *common.SymbolRegistry,
) *SecurityFactory {
	return &SecurityFactory{
		book:     book,
		hours:    hours,
		props:    props,
		caches:   caches,
		registry: registry,
	}
}

// SetPrimaryExchangeProvider configures the optional equity listing-exchange
// lookup.
func (f *SecurityFactory) SetPrimaryExchangeProvider(p PrimaryExchangeProvider) {
	f.exchanges = p
}

// SetInitializer configures the post-construction initializer.
func (f *SecurityFactory) SetInitializer(i SecurityInitializer) {
	f.initializer = i
}

// SetLive toggles live trading mode. Live equities always get the raw-price
// aware variation model regardless of their data normalization.
func (f *SecurityFactory) SetLive(live bool) {
	f.live.Store(live)
}

func (f *SecurityFactory) IsLive() bool {
	return f.live.Load()
}

// Build constructs the security for symbol with the given subscription set.
// Any collaborator failure aborts the build, no partially constructed
// security is returned.
func (f *SecurityFactory) Build(symbol common.Symbol, subscriptions common.SubscriptionSet, opts BuildOptions) (Security, error) {
	market, value, secType := symbol.Market(), symbol.Value(), symbol.Type()

	// currency bootstrap: every cash entry the security references must exist
	// in the book before the security does
	quoteCurrency := f.book.AccountCurrency()
	if secType == common.Forex {
		_, quote, ok := common.TryDecomposePair(symbol, common.SymbolProperties{})
		if !ok {
			return nil, errors.Errorf("invalid forex symbol %s, expected concatenated base and quote codes", value)
		}
		quoteCurrency = quote
	}
	// crypto quote currencies cannot be guessed, the properties entry must exist
	if secType == common.Crypto && !f.props.Contains(market, value, secType) {
		return nil, errors.Wrapf(PropertiesNotFound, "symbol %s market %s", value, market)
	}
	props := f.props.Get(market, value, secType, quoteCurrency)
	quoteCash := f.book.EnsureCash(props.QuoteCurrency)

	var baseCash *common.Cash
	if secType != common.Cfd {
		if base, _, ok := common.TryDecomposePair(symbol, props); ok {
			baseCash = f.book.EnsureCash(base)
		}
	}

	hours, err := f.hours.Get(market, value, secType)
	if err != nil {
		return nil, err
	}

	cache := f.caches.GetOrCreate(symbol)

	base := security{
		symbol:     symbol,
		hours:      hours,
		props:      props,
		quoteCash:  quoteCash,
		book:       f.book,
		cache:      cache,
		underlying: opts.Underlying,
		tradable:   true,
		leverage:   decimal.NewFromInt(1),
		priceModel: NewStandardPriceVariation(),
	}

	var sec Security
	switch secType {
	case common.Equity:
		primary := UnknownExchange
		if f.exchanges != nil {
			primary = f.exchanges.PrimaryExchange(symbol)
		}
		sec = &Equity{security: base, PrimaryExchange: primary}
	case common.Option:
		sec = &Option{security: base, contractProps: common.NewOptionProperties(props)}
	case common.IndexOption:
		sec = &IndexOption{Option{security: base, contractProps: common.NewOptionProperties(props)}}
	case common.FutureOption:
		// future options trade the underlying future directly, unit of trade 1
		cp := common.NewOptionProperties(props)
		cp.SetUnitOfTrade(decimal.NewFromInt(1))
		sec = &FutureOption{Option{security: base, contractProps: cp}}
	case common.Future:
		sec = &Future{security: base}
	case common.Forex:
		if baseCash == nil {
			return nil, errors.Errorf("unable to decompose %s into base and quote currencies", value)
		}
		sec = &Forex{security: base, baseCash: baseCash}
	case common.Cfd:
		sec = &Cfd{security: base}
	case common.Index:
		sec = &Index{security: base}
	case common.Crypto:
		if baseCash == nil {
			return nil, errors.Errorf("unable to decompose %s into base and quote currencies", value)
		}
		sec = &Crypto{security: base, baseCash: baseCash}
	case common.CryptoFuture:
		if baseCash == nil {
			return nil, errors.Errorf("unable to decompose %s into base and quote currencies", value)
		}
		sec = &CryptoFuture{Crypto{security: base, baseCash: baseCash}}
	default:
		// unrecognized tags fall back to the base variant
		s := base
		sec = &s
	}

	if opts.Register && f.registry != nil {
		f.registry.Set(value, symbol)
		switch secType {
		case common.Option, common.IndexOption, common.FutureOption:
			if u, ok := symbol.Underlying(); ok {
				f.registry.Set(u.Value(), u)
			}
		}
	}

	// post-construction sequence, later steps override earlier ones
	sec.SetTradable(!subscriptions.IsInternalFeed())
	sec.AddSubscriptions(subscriptions...)
	if f.initializer != nil {
		f.initializer.Initialize(sec)
	}
	if !opts.Leverage.IsZero() {
		sec.SetLeverage(opts.Leverage)
	}
	if (f.live.Load() || subscriptions.HasRawNormalization()) && secType == common.Equity {
		sec.SetPriceVariation(NewEquityRawPriceVariation())
	}

	return sec, nil
}
