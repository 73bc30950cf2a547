package api

import (
	"import-duty/core/customs"
	"import-duty/core/engine"
)

// GeorgiaRequest is the body of POST /v1/customs/georgia.
// Missing numbers decode as zero and yield a zero quote.
type GeorgiaRequest struct {
	EngineCapacityLiters float64 `json:"engineCapacityLiters"`
	AgeYears             int     `json:"ageYears"`
}

// UkraineRequest is the body of POST /v1/customs/ukraine
type UkraineRequest struct {
	PriceUSD             float64 `json:"priceUsd"`
	EngineCapacityLiters float64 `json:"engineCapacityLiters"`
	FuelType             string  `json:"fuelType"`
	AgeYears             int     `json:"ageYears"`
}

func (r GeorgiaRequest) toEngine() engine.Request {
	return engine.Request{
		Jurisdiction:         customs.Georgia,
		EngineCapacityLiters: r.EngineCapacityLiters,
		AgeYears:             r.AgeYears,
	}
}

func (r UkraineRequest) toEngine() engine.Request {
	return engine.Request{
		Jurisdiction:         customs.Ukraine,
		PriceUSD:             r.PriceUSD,
		EngineCapacityLiters: r.EngineCapacityLiters,
		FuelType:             r.FuelType,
		AgeYears:             r.AgeYears,
	}
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Type    string                 `json:"type"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// JurisdictionsResponse is the body of GET /v1/jurisdictions
type JurisdictionsResponse struct {
	Jurisdictions []customs.Jurisdiction `json:"jurisdictions"`
	FuelTypes     []string               `json:"fuelTypes"`
}
