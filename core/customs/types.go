// Package customs computes import duty for supported jurisdictions.
//
// Calculators are pure functions of a rate schedule and an input record.
// Invalid numeric input (zero, negative, NaN, infinite) yields a zero Result
// rather than an error: an interactive form that is not filled in yet is the
// common case. Values the engine cannot price at all, such as an unknown fuel
// type, are reported as typed errors.
//
// Amounts are whole units held in an int64. A Georgia duty too large for that
// range soft-fails to the zero Result; Ukraine reports ErrAmountOutOfRange.
package customs

import (
	"import-duty/core/rates"
	"import-duty/internal/errors"
)

// Jurisdiction identifies a supported customs jurisdiction
type Jurisdiction string

const (
	Georgia Jurisdiction = "georgia"
	Ukraine Jurisdiction = "ukraine"
)

// Jurisdictions returns the supported jurisdictions in stable order
func Jurisdictions() []Jurisdiction {
	return []Jurisdiction{Georgia, Ukraine}
}

// ErrUnknownFuelType is returned for a fuel type with no configured multiplier.
// Match it with errors.Is.
var ErrUnknownFuelType = errors.Input("unknown fuel type")

// ErrAmountOutOfRange is returned when a charge or total would not fit in an int64.
var ErrAmountOutOfRange = errors.Input("amount out of range")

// GeorgiaInput is the input record for Georgia
type GeorgiaInput struct {
	EngineCapacityLiters float64 `json:"engineCapacityLiters"`
	AgeYears             int     `json:"ageYears"`
}

// UkraineInput is the input record for Ukraine
type UkraineInput struct {
	PriceUSD             float64        `json:"priceUsd"`
	EngineCapacityLiters float64        `json:"engineCapacityLiters"`
	FuelType             rates.FuelType `json:"fuelType"`
	AgeYears             int            `json:"ageYears"`
}

// Breakdown itemises a result whose formula decomposes into named charges
type Breakdown struct {
	BaseDuty int64 `json:"baseDuty"`
	Excise   int64 `json:"excise"`
	VAT      int64 `json:"vat"`
}

// Sum returns BaseDuty + Excise + VAT
func (b Breakdown) Sum() int64 {
	return b.BaseDuty + b.Excise + b.VAT
}

// Result is the outcome of a calculation, in whole units of Currency
type Result struct {
	Jurisdiction Jurisdiction   `json:"jurisdiction"`
	Currency     rates.Currency `json:"currency"`
	Total        int64          `json:"total"`
	Breakdown    *Breakdown     `json:"breakdown,omitempty"`

	// Bracket is the resolved age bracket key; empty for a zero result
	Bracket string `json:"bracket,omitempty"`
}

// IsZero reports whether the result carries no charge
func (r Result) IsZero() bool {
	return r.Total == 0 && r.Breakdown == nil
}
