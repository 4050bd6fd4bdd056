package securities

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/robaho/go-securities/pkg/common"
)

func TestStandardInitializer(t *testing.T) {
	settings, err := common.NewPropertiesFromReader(strings.NewReader(`
leverage.equity = 2
leverage.forex = 50
`))
	if err != nil {
		t.Fatal(err)
	}
	init := NewStandardInitializer(settings)

	fx := newFixture()
	fx.factory.SetInitializer(init)

	equity := common.NewSymbol("IBM", "NYSE", common.Equity)
	sec, err := fx.factory.Build(equity, adjustedSubs(equity), BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !sec.Leverage().Equal(decimal.NewFromInt(2)) {
		t.Error("equity leverage default expected", sec.Leverage())
	}

	future := common.NewSymbol("ESZ6", "GLOBEX", common.Future)
	sec, err = fx.factory.Build(future, adjustedSubs(future), BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	// no default configured, securities start at 1x
	if !sec.Leverage().Equal(decimal.NewFromInt(1)) {
		t.Error("unconfigured type keeps 1x leverage", sec.Leverage())
	}
}
