// Package bracket maps a vehicle age onto the age bracket of a rate table.
//
// Brackets are listed in ascending order of their inclusive upper bound. The
// first bound that is >= the age wins; a final Unbounded entry catches every
// age above the explicit bounds.
package bracket

import "strconv"

// Unbounded marks the catch-all final bracket
const Unbounded = 0

// Bound is one entry of a bracket list
type Bound struct {
	// UpTo is the inclusive upper age in whole years (Unbounded = no limit)
	UpTo int

	// Key is the rate table key for this bracket
	Key string
}

// Georgia brackets: 1-3, 4-7, 8+
var georgia = []Bound{
	{UpTo: 3, Key: "0-3"},
	{UpTo: 7, Key: "3-7"},
	{UpTo: Unbounded, Key: "7+"},
}

// Ukraine brackets: 1-3, 4-5, 6-8, 9+
var ukraine = []Bound{
	{UpTo: 3, Key: "0-3"},
	{UpTo: 5, Key: "3-5"},
	{UpTo: 8, Key: "5-8"},
	{UpTo: Unbounded, Key: "8+"},
}

// GeorgiaBounds returns the Georgia bracket list
func GeorgiaBounds() []Bound {
	return clone(georgia)
}

// UkraineBounds returns the Ukraine bracket list
func UkraineBounds() []Bound {
	return clone(ukraine)
}

// Resolve returns the key of the bracket containing ageYears.
// Callers validate ageYears > 0 beforehand. If bounds has no Unbounded
// entry and ageYears exceeds every bound, the last key is returned.
func Resolve(ageYears int, bounds []Bound) string {
	if len(bounds) == 0 {
		return ""
	}
	for _, b := range bounds {
		if b.UpTo == Unbounded || ageYears <= b.UpTo {
			return b.Key
		}
	}
	return bounds[len(bounds)-1].Key
}

// Label renders a bound as a human-readable age range given the previous bound.
func Label(prevUpTo int, b Bound) string {
	if b.UpTo == Unbounded {
		return strconv.Itoa(prevUpTo+1) + "+"
	}
	return strconv.Itoa(prevUpTo+1) + "-" + strconv.Itoa(b.UpTo)
}

func clone(in []Bound) []Bound {
	out := make([]Bound, len(in))
	copy(out, in)
	return out
}
