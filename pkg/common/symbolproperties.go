package common

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// SymbolProperties are the static per-market facts about an instrument.
type SymbolProperties struct {
	Description        string
	QuoteCurrency      string
	ContractMultiplier decimal.Decimal
	TickSize           decimal.Decimal
	LotSize            decimal.Decimal
}

// DefaultSymbolProperties is used when the database has no entry, with the
// quote currency determined by the caller.
func DefaultSymbolProperties(quoteCurrency string) SymbolProperties {
	return SymbolProperties{
		QuoteCurrency:      quoteCurrency,
		ContractMultiplier: decimal.NewFromInt(1),
		TickSize:           decimal.RequireFromString("0.01"),
		LotSize:            decimal.NewFromInt(1),
	}
}

// OptionProperties specialize SymbolProperties for the option family. The
// contract unit of trade starts at the contract multiplier (100 for listed
// equity options) and can be overridden, future options trade in units of 1.
type OptionProperties struct {
	SymbolProperties
	unitOfTrade decimal.Decimal
}

func NewOptionProperties(p SymbolProperties) OptionProperties {
	return OptionProperties{SymbolProperties: p, unitOfTrade: p.ContractMultiplier}
}

func (p OptionProperties) UnitOfTrade() decimal.Decimal {
	return p.unitOfTrade
}

func (p *OptionProperties) SetUnitOfTrade(unit decimal.Decimal) {
	p.unitOfTrade = unit
}

type propertiesKey struct {
	market  string
	symbol  string
	secType SecurityType
}

// SymbolPropertiesDatabase resolves SymbolProperties by (market, symbol, type).
// A row may use the wildcard symbol "*" to cover every symbol on a market.
type SymbolPropertiesDatabase struct {
	sync.RWMutex
	entries map[propertiesKey]SymbolProperties
}

func NewSymbolPropertiesDatabase() *SymbolPropertiesDatabase {
	return &SymbolPropertiesDatabase{entries: make(map[propertiesKey]SymbolProperties)}
}

func (db *SymbolPropertiesDatabase) Put(market string, symbol string, secType SecurityType, props SymbolProperties) {
	db.Lock()
	defer db.Unlock()

	db.entries[propertiesKey{market, symbol, secType}] = props
}

func (db *SymbolPropertiesDatabase) lookup(market string, symbol string, secType SecurityType) (SymbolProperties, bool) {
	db.RLock()
	defer db.RUnlock()

	if p, ok := db.entries[propertiesKey{market, symbol, secType}]; ok {
		return p, true
	}
	p, ok := db.entries[propertiesKey{market, "*", secType}]
	return p, ok
}

// Contains reports whether an entry (exact or wildcard) exists.
func (db *SymbolPropertiesDatabase) Contains(market string, symbol string, secType SecurityType) bool {
	_, ok := db.lookup(market, symbol, secType)
	return ok
}

// Get resolves properties, falling back to defaults with the supplied quote
// currency when no row matches.
func (db *SymbolPropertiesDatabase) Get(market string, symbol string, secType SecurityType, defaultQuoteCurrency string) SymbolProperties {
	if p, ok := db.lookup(market, symbol, secType); ok {
		if p.QuoteCurrency == "" {
			p.QuoteCurrency = defaultQuoteCurrency
		}
		return p
	}
	return DefaultSymbolProperties(defaultQuoteCurrency)
}

// Load reads rows from a comma-separated file, see configs/symbol_properties.csv
// for the format:
//
//	market,symbol,type,description,quote_currency,multiplier,tick_size,lot_size
//
// Comment lines start with // or #. Malformed rows are skipped with a warning.
func (db *SymbolPropertiesDatabase) Load(filepath string) error {
	inputFile, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer inputFile.Close()

	scanner := bufio.NewScanner(inputFile)
	for scanner.Scan() {
		s := scanner.Text()
		if strings.HasPrefix(s, "//") || strings.HasPrefix(s, "#") || s == "" {
			continue
		}
		parts := strings.Split(s, ",")
		if len(parts) != 8 {
			log.WithField("row", s).Warn("skipping malformed symbol properties row")
			continue
		}
		props := SymbolProperties{
			Description:        strings.TrimSpace(parts[3]),
			QuoteCurrency:      strings.ToUpper(strings.TrimSpace(parts[4])),
			ContractMultiplier: NewDecimal(parts[5]),
			TickSize:           NewDecimal(parts[6]),
			LotSize:            NewDecimal(parts[7]),
		}
		market := strings.TrimSpace(parts[0])
		symbol := strings.TrimSpace(parts[1])
		secType := SecurityType(strings.TrimSpace(parts[2]))
		db.Put(market, symbol, secType, props)
	}
	return scanner.Err()
}
