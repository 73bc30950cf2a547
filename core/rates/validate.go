package rates

import (
	stderrors "errors"

	"github.com/shopspring/decimal"

	"import-duty/core/bracket"
	"import-duty/internal/errors"
)

// Validate checks every table in the schedule. A schedule that fails here is a
// configuration defect and must not reach a calculator.
func (s Schedule) Validate() error {
	var errs []error

	if err := s.Georgia.Brackets.Validate("georgia"); err != nil {
		errs = append(errs, err)
	}
	if s.Georgia.Currency == "" {
		errs = append(errs, errors.RateTable("georgia: currency is empty"))
	}

	u := s.Ukraine
	if err := u.Brackets.Validate("ukraine"); err != nil {
		errs = append(errs, err)
	}
	for _, f := range FuelTypes() {
		m, ok := u.Fuel.Lookup(f)
		if !ok {
			errs = append(errs, errors.RateTable("ukraine: no multiplier for fuel type %q", f))
			continue
		}
		if !m.IsPositive() {
			errs = append(errs, errors.RateTable("ukraine: multiplier for %q must be > 0, got %s", f, m))
		}
	}
	if !u.Excise.ThresholdLiters.IsPositive() {
		errs = append(errs, errors.RateTable("ukraine: excise threshold must be > 0"))
	}
	if !u.Excise.Below.IsPositive() || !u.Excise.AtOrAbove.IsPositive() {
		errs = append(errs, errors.RateTable("ukraine: excise rates must be > 0"))
	}
	if u.Excise.AtOrAbove.LessThan(u.Excise.Below) {
		errs = append(errs, errors.RateTable("ukraine: excise rate above threshold is lower than below it"))
	}
	if u.VATRate.IsNegative() || u.VATRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		errs = append(errs, errors.RateTable("ukraine: vat rate must be in [0, 1), got %s", u.VATRate))
	}
	if u.Currency == "" {
		errs = append(errs, errors.RateTable("ukraine: currency is empty"))
	}

	if !s.Conversion.EURToUSD.IsPositive() {
		errs = append(errs, errors.RateTable("conversion: EUR->USD must be > 0"))
	}
	if !s.Conversion.USDToGEL.IsPositive() {
		errs = append(errs, errors.RateTable("conversion: USD->GEL must be > 0"))
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Wrap(errors.TypeRateTable, "invalid rate schedule", stderrors.Join(errs...))
}

// Validate checks that brackets are ascending, contiguous from age 1, end in a
// single unbounded bracket, and carry positive rates that never decrease with age.
func (t Table) Validate(name string) error {
	if len(t) == 0 {
		return errors.RateTable("%s: no brackets", name)
	}

	seen := make(map[string]bool, len(t))
	prevUpTo := 0
	prevRate := decimal.Zero
	for i, b := range t {
		last := i == len(t)-1

		if b.Key == "" {
			return errors.RateTable("%s: bracket %d has an empty key", name, i)
		}
		if seen[b.Key] {
			return errors.RateTable("%s: duplicate bracket key %q", name, b.Key)
		}
		seen[b.Key] = true

		switch {
		case b.UpTo == bracket.Unbounded && !last:
			return errors.RateTable("%s: unbounded bracket %q must be last", name, b.Key)
		case b.UpTo != bracket.Unbounded && last:
			return errors.RateTable("%s: last bracket %q must be unbounded", name, b.Key)
		case b.UpTo < 0:
			return errors.RateTable("%s: bracket %q has negative bound %d", name, b.Key, b.UpTo)
		case b.UpTo != bracket.Unbounded && b.UpTo <= prevUpTo:
			return errors.RateTable("%s: bracket %q bound %d does not exceed %d", name, b.Key, b.UpTo, prevUpTo)
		}

		if !b.Rate.IsPositive() {
			return errors.RateTable("%s: bracket %q rate must be > 0, got %s", name, b.Key, b.Rate)
		}
		if b.Rate.LessThan(prevRate) {
			return errors.RateTable("%s: bracket %q rate %s is lower than the previous bracket", name, b.Key, b.Rate)
		}

		prevUpTo = b.UpTo
		prevRate = b.Rate
	}
	return nil
}
