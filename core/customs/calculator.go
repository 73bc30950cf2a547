package customs

import (
	"math"

	"github.com/shopspring/decimal"

	"import-duty/core/rates"
)

var (
	ccPerLiter = decimal.NewFromInt(1000)
	maxAmount  = decimal.NewFromInt(math.MaxInt64)
	builtin    = NewCalculator(rates.Default())
)

// Calculator prices inputs against one rate schedule. It holds no mutable
// state and is safe for concurrent use.
type Calculator struct {
	schedule rates.Schedule
}

// NewCalculator creates a calculator over a copy of schedule.
// The schedule is expected to have passed Validate.
func NewCalculator(schedule rates.Schedule) *Calculator {
	return &Calculator{schedule: schedule.Clone()}
}

// Schedule returns a copy of the calculator's rate schedule
func (c *Calculator) Schedule() rates.Schedule {
	return c.schedule.Clone()
}

// CalculateGeorgiaCustoms prices in against the built-in rate schedule
func CalculateGeorgiaCustoms(in GeorgiaInput) Result {
	return builtin.Georgia(in)
}

// CalculateUkraineCustoms prices in against the built-in rate schedule
func CalculateUkraineCustoms(in UkraineInput) (Result, error) {
	return builtin.Ukraine(in)
}

// positive reports whether v is a finite number > 0
func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// cubicCentimeters converts liters to whole cubic centimeters
func cubicCentimeters(liters decimal.Decimal) decimal.Decimal {
	return liters.Mul(ccPerLiter).Round(0)
}

// whole rounds to the nearest whole unit, halves away from zero.
// ok is false when the rounded amount does not fit in an int64.
func whole(d decimal.Decimal) (n int64, ok bool) {
	r := d.Round(0)
	if r.GreaterThan(maxAmount) || r.LessThan(maxAmount.Neg()) {
		return 0, false
	}
	return r.IntPart(), true
}
