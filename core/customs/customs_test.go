package customs

import (
	stderrors "errors"
	"math"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"import-duty/core/rates"
	"import-duty/internal/errors"
)

func TestCalculateGeorgiaCustoms(t *testing.T) {
	tests := []struct {
		name        string
		input       GeorgiaInput
		wantTotal   int64
		wantBracket string
	}{
		{
			name:        "new car, 3.0L",
			input:       GeorgiaInput{EngineCapacityLiters: 3.0, AgeYears: 2},
			wantTotal:   600,
			wantBracket: "0-3",
		},
		{
			name:        "mid age, 2.0L",
			input:       GeorgiaInput{EngineCapacityLiters: 2.0, AgeYears: 5},
			wantTotal:   1000,
			wantBracket: "3-7",
		},
		{
			name:        "old car, 4.0L",
			input:       GeorgiaInput{EngineCapacityLiters: 4.0, AgeYears: 10},
			wantTotal:   4000,
			wantBracket: "7+",
		},
		{
			name:        "bracket edge at 3 years",
			input:       GeorgiaInput{EngineCapacityLiters: 1.6, AgeYears: 3},
			wantTotal:   320,
			wantBracket: "0-3",
		},
		{
			name:        "bracket edge at 8 years",
			input:       GeorgiaInput{EngineCapacityLiters: 1.6, AgeYears: 8},
			wantTotal:   1600,
			wantBracket: "7+",
		},
		{
			name:        "rounds to whole lari",
			input:       GeorgiaInput{EngineCapacityLiters: 1.3333, AgeYears: 1},
			wantTotal:   267,
			wantBracket: "0-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateGeorgiaCustoms(tt.input)
			if got.Total != tt.wantTotal {
				t.Errorf("total: got %d, want %d", got.Total, tt.wantTotal)
			}
			if got.Bracket != tt.wantBracket {
				t.Errorf("bracket: got %q, want %q", got.Bracket, tt.wantBracket)
			}
			if got.Breakdown != nil {
				t.Errorf("georgia must not produce a breakdown, got %+v", got.Breakdown)
			}
			if got.Currency != rates.CurrencyGEL {
				t.Errorf("currency: got %s, want GEL", got.Currency)
			}
		})
	}
}

func TestCalculateGeorgiaCustomsInvalidInput(t *testing.T) {
	inputs := []GeorgiaInput{
		{EngineCapacityLiters: 2.0, AgeYears: 0},
		{EngineCapacityLiters: 2.0, AgeYears: -1},
		{EngineCapacityLiters: 0, AgeYears: 3},
		{EngineCapacityLiters: -1.5, AgeYears: 3},
		{EngineCapacityLiters: math.NaN(), AgeYears: 3},
		{EngineCapacityLiters: math.Inf(1), AgeYears: 3},
	}

	for _, in := range inputs {
		got := CalculateGeorgiaCustoms(in)
		if got.Total != 0 || got.Breakdown != nil || got.Bracket != "" {
			t.Errorf("%+v: expected a zero result, got %+v", in, got)
		}
	}
}

func TestCalculateUkraineCustoms(t *testing.T) {
	tests := []struct {
		name  string
		input UkraineInput
		want  Breakdown
	}{
		{
			name: "petrol, 2.0L, 2 years",
			input: UkraineInput{
				PriceUSD:             10000,
				EngineCapacityLiters: 2.0,
				FuelType:             rates.FuelPetrol,
				AgeYears:             2,
			},
			// base 2000*50*1.0*1.1, excise 2.0*50*1.1, vat (10000+110000+110)*0.2
			want: Breakdown{BaseDuty: 110000, Excise: 110, VAT: 24022},
		},
		{
			name: "diesel, 3.0L hits the higher excise step",
			input: UkraineInput{
				PriceUSD:             20000,
				EngineCapacityLiters: 3.0,
				FuelType:             rates.FuelDiesel,
				AgeYears:             4,
			},
			// base 3000*60*1.1*1.1 = 217800, excise 3.0*100*1.1 = 330
			// vat (20000+217800+330)*0.2 = 47626
			want: Breakdown{BaseDuty: 217800, Excise: 330, VAT: 47626},
		},
		{
			name: "old petrol car",
			input: UkraineInput{
				PriceUSD:             5000,
				EngineCapacityLiters: 1.6,
				FuelType:             rates.FuelPetrol,
				AgeYears:             12,
			},
			// base 1600*100*1.1 = 176000, excise 1.6*50*1.1 = 88
			// vat (5000+176000+88)*0.2 = 36217.6 -> 36218
			want: Breakdown{BaseDuty: 176000, Excise: 88, VAT: 36218},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateUkraineCustoms(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Breakdown == nil {
				t.Fatal("expected a breakdown")
			}
			if *got.Breakdown != tt.want {
				t.Errorf("breakdown: got %+v, want %+v", *got.Breakdown, tt.want)
			}
			if got.Total != tt.want.Sum() {
				t.Errorf("total: got %d, want %d", got.Total, tt.want.Sum())
			}
			if got.Currency != rates.CurrencyUSD {
				t.Errorf("currency: got %s, want USD", got.Currency)
			}
		})
	}
}

func TestUkraineScenarioTotal(t *testing.T) {
	got, err := CalculateUkraineCustoms(UkraineInput{
		PriceUSD:             10000,
		EngineCapacityLiters: 2.0,
		FuelType:             rates.FuelPetrol,
		AgeYears:             2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Total != 134132 {
		t.Errorf("total: got %d, want 134132", got.Total)
	}
	if got.Bracket != "0-3" {
		t.Errorf("bracket: got %q, want 0-3", got.Bracket)
	}
}

func TestCalculateUkraineCustomsInvalidInput(t *testing.T) {
	valid := UkraineInput{PriceUSD: 10000, EngineCapacityLiters: 2.0, FuelType: rates.FuelPetrol, AgeYears: 2}

	tests := []struct {
		name   string
		mutate func(*UkraineInput)
	}{
		{"zero price", func(in *UkraineInput) { in.PriceUSD = 0 }},
		{"negative price", func(in *UkraineInput) { in.PriceUSD = -1 }},
		{"NaN price", func(in *UkraineInput) { in.PriceUSD = math.NaN() }},
		{"zero capacity", func(in *UkraineInput) { in.EngineCapacityLiters = 0 }},
		{"zero age", func(in *UkraineInput) { in.AgeYears = 0 }},
		{"invalid numbers win over unknown fuel", func(in *UkraineInput) {
			in.AgeYears = 0
			in.FuelType = "Hydrogen"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			got, err := CalculateUkraineCustoms(in)
			if err != nil {
				t.Fatalf("invalid numeric input must not error, got %v", err)
			}
			if got.Total != 0 || got.Breakdown != nil {
				t.Errorf("expected a zero result, got %+v", got)
			}
		})
	}
}

func TestCalculateUkraineCustomsUnknownFuel(t *testing.T) {
	got, err := CalculateUkraineCustoms(UkraineInput{
		PriceUSD:             10000,
		EngineCapacityLiters: 2.0,
		FuelType:             "Electric",
		AgeYears:             2,
	})
	if err == nil {
		t.Fatal("expected an error for an unknown fuel type")
	}
	if !stderrors.Is(err, ErrUnknownFuelType) {
		t.Errorf("expected ErrUnknownFuelType, got %v", err)
	}
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected INPUT_ERROR, got %v", err)
	}
	if got.Total != 0 || got.Breakdown != nil {
		t.Errorf("expected a zero result alongside the error, got %+v", got)
	}
}

func TestUkraineDecompositionIdentity(t *testing.T) {
	for _, fuel := range rates.FuelTypes() {
		for age := 1; age <= 20; age++ {
			for _, liters := range []float64{0.8, 1.4, 2.0, 2.99, 3.0, 4.7} {
				in := UkraineInput{PriceUSD: 12345.67, EngineCapacityLiters: liters, FuelType: fuel, AgeYears: age}
				got, err := CalculateUkraineCustoms(in)
				if err != nil {
					t.Fatalf("%+v: %v", in, err)
				}
				if got.Total != got.Breakdown.Sum() {
					t.Fatalf("%+v: total %d != sum of breakdown %+v", in, got.Total, *got.Breakdown)
				}
				if got.Total < 0 {
					t.Fatalf("%+v: negative total %d", in, got.Total)
				}
			}
		}
	}
}

func TestTotalNonDecreasingWithAge(t *testing.T) {
	prevGeorgia, prevUkraine := int64(0), int64(0)
	for age := 1; age <= 50; age++ {
		g := CalculateGeorgiaCustoms(GeorgiaInput{EngineCapacityLiters: 2.4, AgeYears: age})
		if g.Total < prevGeorgia {
			t.Fatalf("georgia: total dropped at age %d", age)
		}
		prevGeorgia = g.Total

		u, err := CalculateUkraineCustoms(UkraineInput{PriceUSD: 9000, EngineCapacityLiters: 2.4, FuelType: rates.FuelDiesel, AgeYears: age})
		if err != nil {
			t.Fatal(err)
		}
		if u.Total < prevUkraine {
			t.Fatalf("ukraine: total dropped at age %d", age)
		}
		prevUkraine = u.Total
	}
}

func TestCalculatorsAreDeterministic(t *testing.T) {
	g := GeorgiaInput{EngineCapacityLiters: 2.2, AgeYears: 6}
	if a, b := CalculateGeorgiaCustoms(g), CalculateGeorgiaCustoms(g); !reflect.DeepEqual(a, b) {
		t.Errorf("georgia results differ: %+v vs %+v", a, b)
	}

	u := UkraineInput{PriceUSD: 15000, EngineCapacityLiters: 2.2, FuelType: rates.FuelDiesel, AgeYears: 6}
	a, _ := CalculateUkraineCustoms(u)
	b, _ := CalculateUkraineCustoms(u)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("ukraine results differ: %+v vs %+v", a, b)
	}
}

func TestCalculatorUsesItsOwnSchedule(t *testing.T) {
	s := rates.Default()
	s.Georgia.Brackets[0].Rate = decimal.RequireFromString("0.40")
	c := NewCalculator(s)

	// mutating the caller's copy afterwards must not change the calculator
	s.Georgia.Brackets[0].Rate = decimal.RequireFromString("9")

	got := c.Georgia(GeorgiaInput{EngineCapacityLiters: 3.0, AgeYears: 2})
	if got.Total != 1200 {
		t.Errorf("total: got %d, want 1200", got.Total)
	}
	if builtinTotal := CalculateGeorgiaCustoms(GeorgiaInput{EngineCapacityLiters: 3.0, AgeYears: 2}).Total; builtinTotal != 600 {
		t.Errorf("builtin calculator changed: got %d, want 600", builtinTotal)
	}
}

func TestGeorgiaAmountRange(t *testing.T) {
	got := CalculateGeorgiaCustoms(GeorgiaInput{EngineCapacityLiters: 9e15, AgeYears: 10})
	if got.Total != 9_000_000_000_000_000_000 {
		t.Errorf("9e15L: expected 9000000000000000000, got %d", got.Total)
	}

	got = CalculateGeorgiaCustoms(GeorgiaInput{EngineCapacityLiters: 1e16, AgeYears: 10})
	if !got.IsZero() {
		t.Errorf("1e16L: expected zero result past int64 range, got %+v", got)
	}
	if got.Total < 0 {
		t.Errorf("1e16L: negative total %d", got.Total)
	}
}

func TestUkraineAmountOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		input UkraineInput
	}{
		{"huge price", UkraineInput{PriceUSD: 1e20, EngineCapacityLiters: 2.0, FuelType: rates.FuelPetrol, AgeYears: 2}},
		{"huge engine", UkraineInput{PriceUSD: 20000, EngineCapacityLiters: 1e16, FuelType: rates.FuelDiesel, AgeYears: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateUkraineCustoms(tt.input)
			if !stderrors.Is(err, ErrAmountOutOfRange) {
				t.Fatalf("expected ErrAmountOutOfRange, got %v", err)
			}
			if !errors.IsType(err, errors.TypeInput) {
				t.Errorf("expected INPUT_ERROR, got %v", err)
			}
			if got.Total != 0 || got.Breakdown != nil {
				t.Errorf("expected a zero result alongside the error, got %+v", got)
			}
		})
	}
}

func TestUkraineLargePriceInRange(t *testing.T) {
	in := UkraineInput{PriceUSD: 1e18, EngineCapacityLiters: 2.0, FuelType: rates.FuelPetrol, AgeYears: 2}
	got, err := CalculateUkraineCustoms(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Breakdown{BaseDuty: 110000, Excise: 110, VAT: 200_000_000_000_022_022}
	if *got.Breakdown != want {
		t.Errorf("expected %+v, got %+v", want, *got.Breakdown)
	}
	if got.Total != want.Sum() || got.Total < 0 {
		t.Errorf("expected total %d, got %d", want.Sum(), got.Total)
	}
}

func TestEngineCapacityRoundsToWholeCubicCentimeters(t *testing.T) {
	// 1.5cc rounds up to 2cc before the per-cc rate applies
	got, err := CalculateUkraineCustoms(UkraineInput{
		PriceUSD: 1000, EngineCapacityLiters: 0.0015, FuelType: rates.FuelPetrol, AgeYears: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Breakdown{BaseDuty: 110, Excise: 0, VAT: 222}
	if *got.Breakdown != want {
		t.Errorf("0.0015L: expected %+v, got %+v", want, *got.Breakdown)
	}

	// 0.4cc rounds down to 0cc, leaving only VAT on the price
	got, err = CalculateUkraineCustoms(UkraineInput{
		PriceUSD: 1000, EngineCapacityLiters: 0.0004, FuelType: rates.FuelPetrol, AgeYears: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = Breakdown{BaseDuty: 0, Excise: 0, VAT: 200}
	if *got.Breakdown != want {
		t.Errorf("0.0004L: expected %+v, got %+v", want, *got.Breakdown)
	}

	g := CalculateGeorgiaCustoms(GeorgiaInput{EngineCapacityLiters: 0.0004, AgeYears: 1})
	if g.Total != 0 || g.Bracket != "0-3" {
		t.Errorf("0.0004L georgia: expected 0 in bracket 0-3, got %+v", g)
	}
}
