package common

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NewDecimal parses s into a decimal, returning zero on any parse failure.
func NewDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(strings.TrimSpace(s))
	return d
}

func ParseInt(s string) int {
	i, _ := strconv.Atoi(strings.TrimSpace(s))
	return i
}

func ToFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
