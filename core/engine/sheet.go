package engine

import (
	"import-duty/core/bracket"
	"import-duty/core/customs"
	"import-duty/core/rates"
)

// SheetRow is one line of the published rate sheet
type SheetRow struct {
	Jurisdiction customs.Jurisdiction `json:"jurisdiction"`
	Kind         string               `json:"kind"`
	Key          string               `json:"key"`
	Applies      string               `json:"applies"`
	Rate         string               `json:"rate"`
	Unit         string               `json:"unit"`
}

// Sheet lists every rate of the engine's schedule in stable order
type Sheet struct {
	Version string     `json:"version"`
	Rows    []SheetRow `json:"rows"`
}

// RateSheet describes the engine's schedule for display
func (e *Engine) RateSheet() Sheet {
	s := e.schedule
	var rows []SheetRow

	rows = append(rows, bracketRows(customs.Georgia, s.Georgia.Brackets, string(s.Georgia.Currency)+"/cc")...)
	rows = append(rows, bracketRows(customs.Ukraine, s.Ukraine.Brackets, "EUR/cc")...)

	for _, f := range rates.FuelTypes() {
		m, _ := s.Ukraine.Fuel.Lookup(f)
		rows = append(rows, SheetRow{
			Jurisdiction: customs.Ukraine,
			Kind:         "fuel",
			Key:          string(f),
			Applies:      "base duty",
			Rate:         m.String(),
			Unit:         "x",
		})
	}

	ex := s.Ukraine.Excise
	rows = append(rows,
		SheetRow{
			Jurisdiction: customs.Ukraine,
			Kind:         "excise",
			Key:          "below",
			Applies:      "< " + ex.ThresholdLiters.String() + " L",
			Rate:         ex.Below.String(),
			Unit:         "EUR/L",
		},
		SheetRow{
			Jurisdiction: customs.Ukraine,
			Kind:         "excise",
			Key:          "at_or_above",
			Applies:      ">= " + ex.ThresholdLiters.String() + " L",
			Rate:         ex.AtOrAbove.String(),
			Unit:         "EUR/L",
		},
		SheetRow{
			Jurisdiction: customs.Ukraine,
			Kind:         "vat",
			Key:          "vat",
			Applies:      "price + duties",
			Rate:         s.Ukraine.VATRate.String(),
			Unit:         "fraction",
		},
		SheetRow{
			Kind:    "conversion",
			Key:     "eur_to_usd",
			Applies: "EUR -> USD",
			Rate:    s.Conversion.EURToUSD.String(),
			Unit:    "USD/EUR",
		},
		SheetRow{
			Kind:    "conversion",
			Key:     "usd_to_gel",
			Applies: "USD -> GEL",
			Rate:    s.Conversion.USDToGEL.String(),
			Unit:    "GEL/USD",
		},
	)

	return Sheet{Version: s.Version, Rows: rows}
}

func bracketRows(j customs.Jurisdiction, t rates.Table, unit string) []SheetRow {
	rows := make([]SheetRow, 0, len(t))
	prev := 0
	for _, b := range t {
		rows = append(rows, SheetRow{
			Jurisdiction: j,
			Kind:         "bracket",
			Key:          b.Key,
			Applies:      bracket.Label(prev, b.Bound) + " years",
			Rate:         b.Rate.String(),
			Unit:         unit,
		})
		prev = b.UpTo
	}
	return rows
}
