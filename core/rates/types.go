// Package rates holds the static duty rate configuration for every supported
// jurisdiction. Tables are plain values: Default returns a fresh copy on each
// call, so callers can never mutate the configuration another caller sees.
package rates

import (
	"strings"

	"github.com/shopspring/decimal"

	"import-duty/core/bracket"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGEL Currency = "GEL"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// FuelType is the closed set of fuel labels a multiplier exists for
type FuelType string

const (
	FuelPetrol FuelType = "Petrol"
	FuelDiesel FuelType = "Diesel"
)

// FuelTypes returns the known fuel types in stable order
func FuelTypes() []FuelType {
	return []FuelType{FuelPetrol, FuelDiesel}
}

// ParseFuelType matches a label case-insensitively against the known fuel types.
func ParseFuelType(s string) (FuelType, bool) {
	for _, f := range FuelTypes() {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f, true
		}
	}
	return "", false
}

// Bracket is one age bracket of a rate table
type Bracket struct {
	bracket.Bound

	// Rate is the per-cc rate for this bracket
	Rate decimal.Decimal
}

// Table is an ordered list of age brackets, ascending by upper bound
type Table []Bracket

// Bounds returns the bracket list used by the resolver
func (t Table) Bounds() []bracket.Bound {
	out := make([]bracket.Bound, len(t))
	for i, b := range t {
		out[i] = b.Bound
	}
	return out
}

// Rate returns the rate stored under key
func (t Table) Rate(key string) (decimal.Decimal, bool) {
	for _, b := range t {
		if b.Key == key {
			return b.Rate, true
		}
	}
	return decimal.Zero, false
}

// Lookup resolves ageYears to its bracket and returns the key and rate.
func (t Table) Lookup(ageYears int) (string, decimal.Decimal) {
	key := bracket.Resolve(ageYears, t.Bounds())
	rate, _ := t.Rate(key)
	return key, rate
}

func (t Table) clone() Table {
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// FuelMultipliers maps a fuel type to a dimensionless factor (> 0)
type FuelMultipliers map[FuelType]decimal.Decimal

// Lookup returns the multiplier for fuel
func (m FuelMultipliers) Lookup(fuel FuelType) (decimal.Decimal, bool) {
	v, ok := m[fuel]
	return v, ok
}

func (m FuelMultipliers) clone() FuelMultipliers {
	out := make(FuelMultipliers, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ExciseStep is a two-level per-liter excise rule keyed on engine capacity.
// It is deliberately coarser than the age brackets and kept apart from them.
type ExciseStep struct {
	// ThresholdLiters splits the two levels; capacity >= threshold uses AtOrAbove
	ThresholdLiters decimal.Decimal

	// Below is the EUR-per-liter rate under the threshold
	Below decimal.Decimal

	// AtOrAbove is the EUR-per-liter rate at or above the threshold
	AtOrAbove decimal.Decimal
}

// RateFor returns the per-liter excise rate for an engine capacity
func (e ExciseStep) RateFor(liters decimal.Decimal) decimal.Decimal {
	if liters.LessThan(e.ThresholdLiters) {
		return e.Below
	}
	return e.AtOrAbove
}

// ConversionRates are fixed currency conversion factors
type ConversionRates struct {
	// EURToUSD converts euro amounts to US dollars
	EURToUSD decimal.Decimal

	// USDToGEL converts US dollars to Georgian lari
	USDToGEL decimal.Decimal
}

// GeorgiaRates is the Georgia configuration: a single per-cc table in GEL
type GeorgiaRates struct {
	Brackets Table
	Currency Currency
}

// UkraineRates is the Ukraine configuration
type UkraineRates struct {
	// Brackets holds the base per-cc rate in EUR
	Brackets Table

	// Fuel holds the multiplier applied to the base duty
	Fuel FuelMultipliers

	// Excise is the per-liter excise rule in EUR
	Excise ExciseStep

	// VATRate is applied to price + base duty + excise
	VATRate decimal.Decimal

	// Currency is the result currency
	Currency Currency
}

// Schedule is the complete rate configuration
type Schedule struct {
	// Version identifies the table set, e.g. "builtin" or a file path
	Version    string
	Georgia    GeorgiaRates
	Ukraine    UkraineRates
	Conversion ConversionRates
}

// Clone returns a deep copy of the schedule
func (s Schedule) Clone() Schedule {
	out := s
	out.Georgia.Brackets = s.Georgia.Brackets.clone()
	out.Ukraine.Brackets = s.Ukraine.Brackets.clone()
	out.Ukraine.Fuel = s.Ukraine.Fuel.clone()
	return out
}
