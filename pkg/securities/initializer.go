package securities

import (
	"github.com/shopspring/decimal"

	"github.com/robaho/go-securities/pkg/common"
)

// SecurityInitializer customizes a freshly built security, e.g. seeding
// leverage, fee or slippage defaults. It runs after subscriptions are attached
// and before any caller leverage override.
type SecurityInitializer interface {
	Initialize(security Security)
}

// InitializerFunc adapts a function to the SecurityInitializer interface.
type InitializerFunc func(security Security)

func (f InitializerFunc) Initialize(security Security) {
	f(security)
}

// StandardInitializer applies per-type leverage defaults.
type StandardInitializer struct {
	Leverage map[common.SecurityType]decimal.Decimal
}

// NewStandardInitializer reads leverage defaults from settings keys of the
// form "leverage.<type>", e.g. leverage.equity=2.
func NewStandardInitializer(props common.Properties) *StandardInitializer {
	i := &StandardInitializer{Leverage: make(map[common.SecurityType]decimal.Decimal)}
	for _, t := range common.SecurityTypes() {
		l := props.GetDecimal("leverage."+string(t), decimal.Zero)
		if !l.IsZero() {
			i.Leverage[t] = l
		}
	}
	return i
}

func (i *StandardInitializer) Initialize(security Security) {
	if l, ok := i.Leverage[security.Type()]; ok {
		security.SetLeverage(l)
	}
}
