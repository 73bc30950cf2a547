package customs

import (
	"github.com/shopspring/decimal"
)

// Georgia computes the flat Georgia duty: cc * per-cc rate of the age bracket,
// rounded to whole lari. No breakdown is produced. A duty beyond the int64
// range yields the zero result.
func (c *Calculator) Georgia(in GeorgiaInput) Result {
	g := c.schedule.Georgia
	zero := Result{Jurisdiction: Georgia, Currency: g.Currency}

	if !positive(in.EngineCapacityLiters) || in.AgeYears <= 0 {
		return zero
	}

	cc := cubicCentimeters(decimal.NewFromFloat(in.EngineCapacityLiters))
	key, rate := g.Brackets.Lookup(in.AgeYears)

	total, ok := whole(cc.Mul(rate))
	if !ok {
		return zero
	}

	return Result{
		Jurisdiction: Georgia,
		Currency:     g.Currency,
		Total:        total,
		Bracket:      key,
	}
}
