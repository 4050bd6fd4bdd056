package securities

import (
	"github.com/shopspring/decimal"

	"github.com/robaho/go-securities/pkg/common"
)

// PriceVariationModel determines the minimum price movement for an instrument
// at a given price.
type PriceVariationModel interface {
	MinimumVariation(props common.SymbolProperties, price decimal.Decimal) decimal.Decimal
}

type standardVariation struct{}

func (standardVariation) MinimumVariation(props common.SymbolProperties, price decimal.Decimal) decimal.Decimal {
	return props.TickSize
}

// NewStandardPriceVariation returns the default model, quoting in the
// configured tick size at any price.
func NewStandardPriceVariation() PriceVariationModel {
	return standardVariation{}
}

var (
	oneDollar     = decimal.NewFromInt(1)
	subDollarTick = decimal.RequireFromString("0.0001")
)

type equityRawVariation struct{}

func (equityRawVariation) MinimumVariation(props common.SymbolProperties, price decimal.Decimal) decimal.Decimal {
	// raw sub-dollar equity prices move in hundredths of a cent
	if price.LessThan(oneDollar) {
		return subDollarTick
	}
	return props.TickSize
}

// NewEquityRawPriceVariation returns the raw-price-aware model used for
// equities trading live or subscribed to raw data.
func NewEquityRawPriceVariation() PriceVariationModel {
	return equityRawVariation{}
}
