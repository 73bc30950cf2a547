package rates

import (
	"github.com/shopspring/decimal"

	"import-duty/core/bracket"
)

// BuiltinVersion is the version label of the compiled-in tables
const BuiltinVersion = "builtin"

var builtin = Schedule{
	Version: BuiltinVersion,
	Georgia: GeorgiaRates{
		Brackets: table(bracket.GeorgiaBounds(), map[string]string{
			"0-3": "0.20",
			"3-7": "0.50",
			"7+":  "1.00",
		}),
		Currency: CurrencyGEL,
	},
	Ukraine: UkraineRates{
		Brackets: table(bracket.UkraineBounds(), map[string]string{
			"0-3": "50",
			"3-5": "60",
			"5-8": "75",
			"8+":  "100",
		}),
		Fuel: FuelMultipliers{
			FuelPetrol: decimal.RequireFromString("1.0"),
			FuelDiesel: decimal.RequireFromString("1.1"),
		},
		Excise: ExciseStep{
			ThresholdLiters: decimal.RequireFromString("3.0"),
			Below:           decimal.RequireFromString("50"),
			AtOrAbove:       decimal.RequireFromString("100"),
		},
		VATRate:  decimal.RequireFromString("0.20"),
		Currency: CurrencyUSD,
	},
	Conversion: ConversionRates{
		EURToUSD: decimal.RequireFromString("1.1"),
		USDToGEL: decimal.RequireFromString("2.7"),
	},
}

// Default returns a copy of the compiled-in rate schedule
func Default() Schedule {
	return builtin.Clone()
}

func table(bounds []bracket.Bound, values map[string]string) Table {
	t := make(Table, 0, len(bounds))
	for _, b := range bounds {
		t = append(t, Bracket{Bound: b, Rate: decimal.RequireFromString(values[b.Key])})
	}
	return t
}
