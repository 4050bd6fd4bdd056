package common

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Session is a single trading session within a day, open and close are
// offsets from midnight local to the market.
type Session struct {
	Open  time.Duration
	Close time.Duration
}

// MarketHours describes when an instrument trades. The zero value is closed
// every day; AlwaysOpenHours covers 24/7 markets.
type MarketHours struct {
	Market     string
	Timezone   string
	Sessions   map[time.Weekday]Session
	AlwaysOpen bool

	loc *time.Location
}

func AlwaysOpenHours(market string) MarketHours {
	return MarketHours{Market: market, Timezone: "UTC", AlwaysOpen: true, loc: time.UTC}
}

func (h MarketHours) Location() *time.Location {
	if h.loc != nil {
		return h.loc
	}
	return time.UTC
}

// IsOpen reports whether the market trades at t. A session with close before
// open is an overnight session wrapping past midnight, e.g. 17:00-16:00.
func (h MarketHours) IsOpen(t time.Time) bool {
	if h.AlwaysOpen {
		return true
	}
	local := t.In(h.Location())
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, h.Location())
	offset := local.Sub(midnight)

	if s, ok := h.Sessions[local.Weekday()]; ok {
		if s.Close > s.Open {
			if offset >= s.Open && offset < s.Close {
				return true
			}
		} else if offset >= s.Open {
			return true
		}
	}
	// overnight session started the previous day
	prev := (local.Weekday() + 6) % 7
	if s, ok := h.Sessions[prev]; ok && s.Close < s.Open && offset < s.Close {
		return true
	}
	return false
}

type hoursKey struct {
	market  string
	symbol  string
	secType SecurityType
}

var HoursNotFound = errors.New("no market hours entry configured")

// MarketHoursDatabase resolves MarketHours by (market, symbol, type). Lookup
// tries the exact symbol first, then the market-wide wildcard row, then the
// market-wide row for any type. A miss is a configuration error.
type MarketHoursDatabase struct {
	sync.RWMutex
	entries map[hoursKey]MarketHours
}

func NewMarketHoursDatabase() *MarketHoursDatabase {
	return &MarketHoursDatabase{entries: make(map[hoursKey]MarketHours)}
}

func (db *MarketHoursDatabase) Put(market string, symbol string, secType SecurityType, hours MarketHours) {
	db.Lock()
	defer db.Unlock()

	db.entries[hoursKey{market, symbol, secType}] = hours
}

func (db *MarketHoursDatabase) Get(market string, symbol string, secType SecurityType) (MarketHours, error) {
	db.RLock()
	defer db.RUnlock()

	for _, key := range []hoursKey{
		{market, symbol, secType},
		{market, "*", secType},
		{market, "*", ""},
	} {
		if h, ok := db.entries[key]; ok {
			return h, nil
		}
	}
	return MarketHours{}, errors.Wrapf(HoursNotFound, "market %s symbol %s type %s", market, symbol, secType)
}

type yamlSession struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

type yamlHoursEntry struct {
	Market     string                 `yaml:"market"`
	Symbol     string                 `yaml:"symbol"`
	Type       string                 `yaml:"type"`
	Timezone   string                 `yaml:"timezone"`
	AlwaysOpen bool                   `yaml:"always_open"`
	Sessions   map[string]yamlSession `yaml:"sessions"`
}

type yamlHoursFile struct {
	Entries []yamlHoursEntry `yaml:"entries"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Load reads market hours entries from a YAML file, see
// configs/market_hours.yaml for the format.
func (db *MarketHoursDatabase) Load(filepath string) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	var file yamlHoursFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.Wrapf(err, "parsing %s", filepath)
	}

	for _, e := range file.Entries {
		hours := MarketHours{
			Market:     e.Market,
			Timezone:   e.Timezone,
			AlwaysOpen: e.AlwaysOpen,
			Sessions:   make(map[time.Weekday]Session),
		}
		if e.Timezone != "" {
			loc, err := time.LoadLocation(e.Timezone)
			if err != nil {
				return errors.Wrapf(err, "market %s", e.Market)
			}
			hours.loc = loc
		}
		for day, s := range e.Sessions {
			wd, ok := weekdays[strings.ToLower(day)]
			if !ok {
				return errors.Errorf("market %s: unknown weekday %s", e.Market, day)
			}
			open, err := parseClock(s.Open)
			if err != nil {
				return errors.Wrapf(err, "market %s %s open", e.Market, day)
			}
			closeAt, err := parseClock(s.Close)
			if err != nil {
				return errors.Wrapf(err, "market %s %s close", e.Market, day)
			}
			hours.Sessions[wd] = Session{Open: open, Close: closeAt}
		}
		symbol := e.Symbol
		if symbol == "" {
			symbol = "*"
		}
		db.Put(e.Market, symbol, SecurityType(e.Type), hours)
	}
	return nil
}

// parseClock parses "HH:MM" into an offset from midnight.
func parseClock(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, errors.Errorf("invalid time of day %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, errors.Errorf("invalid time of day %q", s)
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, errors.Errorf("invalid time of day %q", s)
	}
	if hour < 0 || hour > 24 || min < 0 || min > 59 || (hour == 24 && min != 0) {
		return 0, errors.Errorf("invalid time of day %q", s)
	}
	return time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute, nil
}
