package customs

import (
	"github.com/shopspring/decimal"

	"import-duty/internal/errors"
)

// Ukraine computes base duty, excise and VAT in USD.
//
//	base   = round(cc * bracketRate * fuelMultiplier * EUR->USD)
//	excise = round(liters * exciseRate * EUR->USD)
//	vat    = round((price + base + excise) * vatRate)
//	total  = base + excise + vat
//
// Non-positive numeric input returns a zero result with a nil error. A fuel
// type without a configured multiplier returns ErrUnknownFuelType. Input
// large enough to push any charge or the total past the int64 range returns
// ErrAmountOutOfRange.
func (c *Calculator) Ukraine(in UkraineInput) (Result, error) {
	u := c.schedule.Ukraine
	zero := Result{Jurisdiction: Ukraine, Currency: u.Currency}

	if !positive(in.PriceUSD) || !positive(in.EngineCapacityLiters) || in.AgeYears <= 0 {
		return zero, nil
	}

	multiplier, ok := u.Fuel.Lookup(in.FuelType)
	if !ok {
		return zero, errors.Wrap(errors.TypeInput, "cannot price ukraine import", ErrUnknownFuelType).
			WithContext("fuelType", string(in.FuelType))
	}

	eurToUSD := c.schedule.Conversion.EURToUSD
	liters := decimal.NewFromFloat(in.EngineCapacityLiters)
	cc := cubicCentimeters(liters)

	key, ageRate := u.Brackets.Lookup(in.AgeYears)
	baseEUR := cc.Mul(ageRate).Mul(multiplier)
	base := baseEUR.Mul(eurToUSD).Round(0)

	exciseEUR := liters.Mul(u.Excise.RateFor(liters))
	excise := exciseEUR.Mul(eurToUSD).Round(0)

	taxable := decimal.NewFromFloat(in.PriceUSD).Add(base).Add(excise)
	vat := taxable.Mul(u.VATRate).Round(0)

	// every charge is non-negative, so a total in range bounds each part
	if _, ok := whole(base.Add(excise).Add(vat)); !ok {
		return zero, errors.Wrap(errors.TypeInput, "cannot price ukraine import", ErrAmountOutOfRange).
			WithContext("priceUsd", in.PriceUSD).
			WithContext("engineCapacityLiters", in.EngineCapacityLiters)
	}

	breakdown := &Breakdown{BaseDuty: base.IntPart(), Excise: excise.IntPart(), VAT: vat.IntPart()}
	return Result{
		Jurisdiction: Ukraine,
		Currency:     u.Currency,
		Total:        breakdown.Sum(),
		Breakdown:    breakdown,
		Bracket:      key,
	}, nil
}
