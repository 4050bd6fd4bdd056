package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/VividCortex/gohistogram"
	log "github.com/sirupsen/logrus"

	"github.com/robaho/go-securities/pkg/common"
	"github.com/robaho/go-securities/pkg/securities"
)

func main() {
	props := flag.String("props", "configs/secbuilder_settings", "set the settings file")
	symbols := flag.String("symbols", "configs/symbols.txt", "set the symbol universe file")
	hoursFile := flag.String("hours", "configs/market_hours.yaml", "set the market hours file")
	spFile := flag.String("sp", "configs/symbol_properties.csv", "set the symbol properties file")
	live := flag.Bool("live", false, "enable live trading mode")
	leverage := flag.String("leverage", "", "override leverage on every build")
	raw := flag.Bool("raw", false, "subscribe with raw data normalization")

	flag.Parse()

	p, err := common.NewProperties(*props)
	if err != nil {
		log.Fatal("unable to load settings ", err)
	}

	hours := common.NewMarketHoursDatabase()
	if err := hours.Load(*hoursFile); err != nil {
		log.Fatal("unable to load market hours ", err)
	}
	sp := common.NewSymbolPropertiesDatabase()
	if err := sp.Load(*spFile); err != nil {
		log.Fatal("unable to load symbol properties ", err)
	}
	registry := common.NewSymbolRegistry()
	if err := registry.Load(*symbols); err != nil {
		log.Fatal("unable to load symbols ", err)
	}

	book := common.NewCashBook(p.GetString("account.currency", "USD"))
	caches := common.NewQuoteCacheProvider()

	factory := securities.NewSecurityFactory(book, hours, sp, caches, registry)
	factory.SetInitializer(securities.NewStandardInitializer(p))
	factory.SetLive(*live || p.GetBool("live", false))

	normalization := common.Adjusted
	if *raw {
		normalization = common.Raw
	}

	var opts securities.BuildOptions
	if *leverage != "" {
		opts.Leverage = common.NewDecimal(*leverage)
	}

	h := gohistogram.NewHistogram(50)
	built := 0

	for _, value := range registry.Values() {
		symbol, _ := registry.Get(value)
		subs := common.SubscriptionSet{common.NewSubscription(symbol, common.Minute, normalization)}

		now := time.Now()
		sec, err := factory.Build(symbol, subs, opts)
		if err != nil {
			log.WithField("symbol", value).Error("build failed ", err)
			continue
		}
		h.Add(float64(time.Since(now).Nanoseconds()))
		built++

		log.WithFields(log.Fields{
			"symbol":   symbol.Value(),
			"market":   symbol.Market(),
			"type":     symbol.Type(),
			"quote":    sec.QuoteCash().Currency(),
			"leverage": sec.Leverage(),
			"tradable": sec.IsTradable(),
			"open":     sec.Hours().IsOpen(time.Now()),
		}).Info("built security")
	}

	fmt.Println(book)
	fmt.Printf("built %d securities, %d currencies, avg %dus 99%% %dus\n",
		built, book.Len(), int(h.Mean()/1000.0), int(h.Quantile(.99)/1000.0))
}
