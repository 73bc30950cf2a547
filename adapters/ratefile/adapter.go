// Package ratefile loads rate schedule overrides from HCL or JSON files.
//
// A file only needs to name what it changes. Omitted blocks and attributes
// keep the values of the base schedule; a bracket list, when present,
// replaces the whole table for that jurisdiction. The merged schedule is
// validated before it is returned.
//
//	version = "2026-q4"
//
//	georgia {
//	  bracket "0-3" {
//	    up_to = 3
//	    rate  = 0.20
//	  }
//	  bracket "3-7" {
//	    up_to = 7
//	    rate  = 0.50
//	  }
//	  bracket "7+" {
//	    rate = 1.00
//	  }
//	}
//
//	ukraine {
//	  vat_rate = 0.20
//	  fuel "Diesel" {
//	    multiplier = 1.1
//	  }
//	  excise {
//	    threshold_liters = 3.0
//	    below            = 50
//	    at_or_above      = 100
//	  }
//	}
//
//	conversion {
//	  eur_to_usd = 1.1
//	}
package ratefile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"import-duty/core/bracket"
	"import-duty/core/rates"
	"import-duty/internal/errors"
)

// Numbers are decoded as strings so rates keep their exact decimal value.
type fileSchema struct {
	Version    string           `hcl:"version,optional"`
	Georgia    *georgiaBlock    `hcl:"georgia,block"`
	Ukraine    *ukraineBlock    `hcl:"ukraine,block"`
	Conversion *conversionBlock `hcl:"conversion,block"`
}

type bracketBlock struct {
	Key  string `hcl:"key,label"`
	UpTo *int   `hcl:"up_to,optional"`
	Rate string `hcl:"rate"`
}

type georgiaBlock struct {
	Currency string         `hcl:"currency,optional"`
	Brackets []bracketBlock `hcl:"bracket,block"`
}

type fuelBlock struct {
	Type       string `hcl:"type,label"`
	Multiplier string `hcl:"multiplier"`
}

type exciseBlock struct {
	ThresholdLiters string `hcl:"threshold_liters"`
	Below           string `hcl:"below"`
	AtOrAbove       string `hcl:"at_or_above"`
}

type ukraineBlock struct {
	Currency string         `hcl:"currency,optional"`
	VATRate  *string        `hcl:"vat_rate,optional"`
	Brackets []bracketBlock `hcl:"bracket,block"`
	Fuel     []fuelBlock    `hcl:"fuel,block"`
	Excise   *exciseBlock   `hcl:"excise,block"`
}

type conversionBlock struct {
	EURToUSD *string `hcl:"eur_to_usd,optional"`
	USDToGEL *string `hcl:"usd_to_gel,optional"`
}

// Supported reports whether path has an extension Load understands
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl", ".json":
		return true
	}
	return false
}

// Load reads path and applies it on top of base
func Load(path string, base rates.Schedule) (rates.Schedule, error) {
	if !Supported(path) {
		return rates.Schedule{}, errors.Newf(errors.TypeConfig, "rate file %s: extension must be .hcl or .json", path)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return rates.Schedule{}, errors.Config("failed to read rate file", err).WithContext("path", path)
	}

	return Decode(path, src, base)
}

// Decode parses src (HCL or JSON, chosen by the filename extension) and
// applies it on top of base.
func Decode(filename string, src []byte, base rates.Schedule) (rates.Schedule, error) {
	var f fileSchema
	if err := hclsimple.Decode(filename, src, nil, &f); err != nil {
		return rates.Schedule{}, errors.Config("failed to parse rate file", err).WithContext("path", filename)
	}

	s := base.Clone()
	s.Version = f.Version
	if s.Version == "" {
		s.Version = filepath.Base(filename)
	}

	if err := f.apply(&s); err != nil {
		return rates.Schedule{}, err
	}
	if err := s.Validate(); err != nil {
		return rates.Schedule{}, err
	}
	return s, nil
}

func (f *fileSchema) apply(s *rates.Schedule) error {
	if g := f.Georgia; g != nil {
		if g.Currency != "" {
			s.Georgia.Currency = rates.Currency(g.Currency)
		}
		if len(g.Brackets) > 0 {
			t, err := buildTable("georgia", g.Brackets)
			if err != nil {
				return err
			}
			s.Georgia.Brackets = t
		}
	}

	if u := f.Ukraine; u != nil {
		if err := u.apply(&s.Ukraine); err != nil {
			return err
		}
	}

	if c := f.Conversion; c != nil {
		if err := setDecimal(&s.Conversion.EURToUSD, c.EURToUSD, "conversion.eur_to_usd"); err != nil {
			return err
		}
		if err := setDecimal(&s.Conversion.USDToGEL, c.USDToGEL, "conversion.usd_to_gel"); err != nil {
			return err
		}
	}
	return nil
}

func (u *ukraineBlock) apply(r *rates.UkraineRates) error {
	if u.Currency != "" {
		r.Currency = rates.Currency(u.Currency)
	}
	if err := setDecimal(&r.VATRate, u.VATRate, "ukraine.vat_rate"); err != nil {
		return err
	}

	if len(u.Brackets) > 0 {
		t, err := buildTable("ukraine", u.Brackets)
		if err != nil {
			return err
		}
		r.Brackets = t
	}

	for _, fb := range u.Fuel {
		fuel, ok := rates.ParseFuelType(fb.Type)
		if !ok {
			return errors.RateTable("ukraine: unknown fuel type %q", fb.Type)
		}
		m, err := parseDecimal(fb.Multiplier, "ukraine.fuel."+fb.Type)
		if err != nil {
			return err
		}
		r.Fuel[fuel] = m
	}

	if e := u.Excise; e != nil {
		var err error
		if r.Excise.ThresholdLiters, err = parseDecimal(e.ThresholdLiters, "ukraine.excise.threshold_liters"); err != nil {
			return err
		}
		if r.Excise.Below, err = parseDecimal(e.Below, "ukraine.excise.below"); err != nil {
			return err
		}
		if r.Excise.AtOrAbove, err = parseDecimal(e.AtOrAbove, "ukraine.excise.at_or_above"); err != nil {
			return err
		}
	}
	return nil
}

func buildTable(name string, blocks []bracketBlock) (rates.Table, error) {
	t := make(rates.Table, 0, len(blocks))
	for _, b := range blocks {
		rate, err := parseDecimal(b.Rate, name+".bracket."+b.Key)
		if err != nil {
			return nil, err
		}
		upTo := bracket.Unbounded
		if b.UpTo != nil {
			if *b.UpTo <= 0 {
				return nil, errors.RateTable("%s: bracket %q up_to must be > 0", name, b.Key)
			}
			upTo = *b.UpTo
		}
		t = append(t, rates.Bracket{
			Bound: bracket.Bound{UpTo: upTo, Key: b.Key},
			Rate:  rate,
		})
	}
	return t, nil
}

func setDecimal(dst *decimal.Decimal, src *string, field string) error {
	if src == nil {
		return nil
	}
	d, err := parseDecimal(*src, field)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func parseDecimal(s, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errors.Wrap(errors.TypeRateTable, "invalid number for "+field, err)
	}
	return d, nil
}
