package common

import (
	"github.com/google/uuid"
)

type Resolution string

const (
	Tick   Resolution = "tick"
	Second Resolution = "second"
	Minute Resolution = "minute"
	Hour   Resolution = "hour"
	Daily  Resolution = "daily"
)

type DataNormalization string

const (
	Adjusted DataNormalization = "adjusted"
	Raw      DataNormalization = "raw"
)

// SubscriptionConfig describes one data feed for a symbol. InternalFeed marks
// data pulled for internal computation rather than requested by the user.
type SubscriptionConfig struct {
	ID            uuid.UUID
	Symbol        Symbol
	Resolution    Resolution
	Normalization DataNormalization
	InternalFeed  bool
}

func NewSubscription(symbol Symbol, resolution Resolution, normalization DataNormalization) *SubscriptionConfig {
	return &SubscriptionConfig{
		ID:            uuid.New(),
		Symbol:        symbol,
		Resolution:    resolution,
		Normalization: normalization,
	}
}

func NewInternalSubscription(symbol Symbol, resolution Resolution, normalization DataNormalization) *SubscriptionConfig {
	c := NewSubscription(symbol, resolution, normalization)
	c.InternalFeed = true
	return c
}

// SubscriptionSet is the ordered collection of feeds driving one symbol.
type SubscriptionSet []*SubscriptionConfig

// IsInternalFeed reports whether the set is internal-only: non-empty and every
// config marked internal.
func (s SubscriptionSet) IsInternalFeed() bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if !c.InternalFeed {
			return false
		}
	}
	return true
}

// HasRawNormalization reports whether any config requests raw data.
func (s SubscriptionSet) HasRawNormalization() bool {
	for _, c := range s {
		if c.Normalization == Raw {
			return true
		}
	}
	return false
}
