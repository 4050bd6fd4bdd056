package common

import (
	"sort"
	"strings"
	"sync"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Cash is a single currency entry in a CashBook: the amount held and the last
// known conversion rate into the account currency. Securities hold non-owning
// pointers to these entries, the book owns them.
type Cash struct {
	currency       string
	Amount         decimal.Decimal
	ConversionRate decimal.Decimal
}

func (c *Cash) Currency() string {
	return c.currency
}

// ValueInAccountCurrency returns the amount converted at the last known rate.
func (c *Cash) ValueInAccountCurrency() decimal.Decimal {
	return c.Amount.Mul(c.ConversionRate)
}

func (c *Cash) String() string {
	cur := money.GetCurrency(c.currency)
	if cur == nil {
		return c.currency + " " + c.Amount.String()
	}
	return cur.Formatter().Format(c.Amount.Shift(int32(cur.Fraction)).IntPart())
}

// CashBook is the currency ledger for a trading session. There is at most one
// Cash entry per currency code, every security trading in a currency shares it.
type CashBook struct {
	sync.RWMutex
	accountCurrency string
	entries         map[string]*Cash
}

func NewCashBook(accountCurrency string) *CashBook {
	accountCurrency = strings.ToUpper(accountCurrency)
	book := &CashBook{
		accountCurrency: accountCurrency,
		entries:         make(map[string]*Cash),
	}
	// the account currency converts to itself at par
	book.entries[accountCurrency] = &Cash{
		currency:       accountCurrency,
		Amount:         decimal.Zero,
		ConversionRate: decimal.NewFromInt(1),
	}
	return book
}

func (b *CashBook) AccountCurrency() string {
	return b.accountCurrency
}

func (b *CashBook) TryGet(currency string) (*Cash, bool) {
	b.RLock()
	defer b.RUnlock()

	c, ok := b.entries[strings.ToUpper(currency)]
	return c, ok
}

// Add inserts an entry for currency, replacing any existing one.
func (b *CashBook) Add(currency string, amount decimal.Decimal, conversionRate decimal.Decimal) *Cash {
	b.Lock()
	defer b.Unlock()

	c := &Cash{currency: strings.ToUpper(currency), Amount: amount, ConversionRate: conversionRate}
	b.entries[c.currency] = c
	return c
}

// EnsureCash returns the entry for currency, lazily creating a zero-balance,
// zero-rate entry on first reference.
func (b *CashBook) EnsureCash(currency string) *Cash {
	currency = strings.ToUpper(currency)

	b.Lock()
	defer b.Unlock()

	if c, ok := b.entries[currency]; ok {
		return c
	}
	c := &Cash{currency: currency, Amount: decimal.Zero, ConversionRate: decimal.Zero}
	b.entries[currency] = c
	return c
}

func (b *CashBook) Currencies() []string {
	b.RLock()
	defer b.RUnlock()

	var codes []string
	for code := range b.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (b *CashBook) Len() int {
	b.RLock()
	defer b.RUnlock()

	return len(b.entries)
}

func (b *CashBook) String() string {
	b.RLock()
	defer b.RUnlock()

	var codes []string
	for code := range b.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var s = "cashbook:"
	for i, code := range codes {
		if i > 0 {
			s += ","
		}
		s += " " + b.entries[code].String()
	}
	return s
}
