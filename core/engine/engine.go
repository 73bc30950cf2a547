// Package engine provides the quote API over the duty calculators.
// CLI and HTTP are thin wrappers around this engine.
package engine

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"import-duty/core/customs"
	"import-duty/core/format"
	"import-duty/core/rates"
	"import-duty/internal/errors"
)

// Engine produces quotes against one validated rate schedule.
// It is immutable after New and safe for concurrent use.
type Engine struct {
	calc     *customs.Calculator
	schedule rates.Schedule
	locale   language.Tag
	logger   *zap.Logger
}

// Config configures the engine
type Config struct {
	// Locale controls digit grouping of formatted amounts
	Locale language.Tag

	// Logger receives one debug line per quote (nil = no logging)
	Logger *zap.Logger
}

// Request is a jurisdiction-tagged calculator input. Fields a jurisdiction
// does not use are ignored.
type Request struct {
	Jurisdiction         customs.Jurisdiction `json:"jurisdiction"`
	PriceUSD             float64              `json:"priceUsd,omitempty"`
	EngineCapacityLiters float64              `json:"engineCapacityLiters"`
	FuelType             string               `json:"fuelType,omitempty"`
	AgeYears             int                  `json:"ageYears"`
}

// Quote is a calculator result with display-ready text
type Quote struct {
	customs.Result

	// TotalUSD is the total expressed in US dollars
	TotalUSD int64 `json:"totalUsd"`

	// Formatted holds the amounts rendered for display
	Formatted Formatted `json:"formatted"`

	// ScheduleVersion identifies the rate tables used
	ScheduleVersion string `json:"scheduleVersion"`
}

// Formatted holds display strings for a quote
type Formatted struct {
	Total    string `json:"total"`
	TotalUSD string `json:"totalUsd"`
	BaseDuty string `json:"baseDuty,omitempty"`
	Excise   string `json:"excise,omitempty"`
	VAT      string `json:"vat,omitempty"`
}

// New creates an engine. The schedule is validated and copied.
func New(schedule rates.Schedule, cfg Config) (*Engine, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	if cfg.Locale == language.Und {
		cfg.Locale = format.DefaultLocale
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Engine{
		calc:     customs.NewCalculator(schedule),
		schedule: schedule.Clone(),
		locale:   cfg.Locale,
		logger:   cfg.Logger,
	}, nil
}

// Schedule returns a copy of the engine's rate schedule
func (e *Engine) Schedule() rates.Schedule {
	return e.schedule.Clone()
}

// Jurisdictions returns the supported jurisdictions in stable order
func (e *Engine) Jurisdictions() []customs.Jurisdiction {
	return customs.Jurisdictions()
}

// Quote dispatches req to the calculator for its jurisdiction
func (e *Engine) Quote(req Request) (*Quote, error) {
	switch req.Jurisdiction {
	case customs.Georgia:
		return e.Georgia(customs.GeorgiaInput{
			EngineCapacityLiters: req.EngineCapacityLiters,
			AgeYears:             req.AgeYears,
		}), nil

	case customs.Ukraine:
		fuel, ok := rates.ParseFuelType(req.FuelType)
		if !ok {
			// let the calculator decide between a zero result and an error
			fuel = rates.FuelType(req.FuelType)
		}
		return e.Ukraine(customs.UkraineInput{
			PriceUSD:             req.PriceUSD,
			EngineCapacityLiters: req.EngineCapacityLiters,
			FuelType:             fuel,
			AgeYears:             req.AgeYears,
		})

	default:
		return nil, errors.NotSupported("jurisdiction", string(req.Jurisdiction))
	}
}

// Georgia quotes a Georgia import
func (e *Engine) Georgia(in customs.GeorgiaInput) *Quote {
	result := e.calc.Georgia(in)

	usd := decimal.Zero
	if result.Total > 0 {
		usd = decimal.NewFromInt(result.Total).Div(e.schedule.Conversion.USDToGEL)
	}

	q := e.quote(result, usd.Round(0).IntPart())
	e.logger.Debug("georgia quote",
		zap.Float64("engine_liters", in.EngineCapacityLiters),
		zap.Int("age_years", in.AgeYears),
		zap.String("bracket", result.Bracket),
		zap.Int64("total", result.Total),
	)
	return q
}

// Ukraine quotes a Ukraine import
func (e *Engine) Ukraine(in customs.UkraineInput) (*Quote, error) {
	result, err := e.calc.Ukraine(in)
	if err != nil {
		e.logger.Warn("ukraine quote rejected",
			zap.String("fuel_type", string(in.FuelType)),
			zap.Error(err),
		)
		return nil, err
	}

	q := e.quote(result, result.Total)
	e.logger.Debug("ukraine quote",
		zap.Float64("price_usd", in.PriceUSD),
		zap.Float64("engine_liters", in.EngineCapacityLiters),
		zap.String("fuel_type", string(in.FuelType)),
		zap.Int("age_years", in.AgeYears),
		zap.String("bracket", result.Bracket),
		zap.Int64("total", result.Total),
	)
	return q, nil
}

func (e *Engine) quote(result customs.Result, totalUSD int64) *Quote {
	q := &Quote{
		Result:          result,
		TotalUSD:        totalUSD,
		ScheduleVersion: e.schedule.Version,
		Formatted: Formatted{
			Total:    format.FormatMoney(e.locale, result.Total, result.Currency),
			TotalUSD: format.FormatMoney(e.locale, totalUSD, rates.CurrencyUSD),
		},
	}
	if b := result.Breakdown; b != nil {
		q.Formatted.BaseDuty = format.FormatMoney(e.locale, b.BaseDuty, result.Currency)
		q.Formatted.Excise = format.FormatMoney(e.locale, b.Excise, result.Currency)
		q.Formatted.VAT = format.FormatMoney(e.locale, b.VAT, result.Currency)
	}
	return q
}
