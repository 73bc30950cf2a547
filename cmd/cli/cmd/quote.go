package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"import-duty/core/customs"
	"import-duty/core/engine"
	"import-duty/core/rates"
)

var (
	engineLiters float64
	ageYears     int
	priceUSD     float64
	fuelType     string
)

var georgiaCmd = &cobra.Command{
	Use:   "georgia",
	Short: "Estimate Georgian customs duty",
	Long: `Estimate Georgian customs duty from engine size and vehicle age.

The duty is engine cc times the per-cc rate of the vehicle's age bracket,
in lari. Missing or non-positive values produce a zero total.

Examples:
  import-duty georgia --engine 3.0 --age 2
  import-duty georgia -e 2.0 -a 5 --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuote(cmd, engine.Request{
			Jurisdiction:         customs.Georgia,
			EngineCapacityLiters: engineLiters,
			AgeYears:             ageYears,
		})
	},
}

var ukraineCmd = &cobra.Command{
	Use:   "ukraine",
	Short: "Estimate Ukrainian customs duty, excise and VAT",
	Long: `Estimate Ukrainian import cost in US dollars.

The result itemises base duty (age bracket and fuel), excise (engine size)
and VAT on price plus duties. Missing or non-positive values produce a zero
total; an unknown fuel type is an error.

Examples:
  import-duty ukraine --price 10000 --engine 2.0 --fuel Petrol --age 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuote(cmd, engine.Request{
			Jurisdiction:         customs.Ukraine,
			PriceUSD:             priceUSD,
			EngineCapacityLiters: engineLiters,
			FuelType:             fuelType,
			AgeYears:             ageYears,
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{georgiaCmd, ukraineCmd} {
		c.Flags().Float64VarP(&engineLiters, "engine", "e", 0, "engine capacity in liters")
		c.Flags().IntVarP(&ageYears, "age", "a", 0, "vehicle age in whole years")
		rootCmd.AddCommand(c)
	}
	ukraineCmd.Flags().Float64VarP(&priceUSD, "price", "p", 0, "vehicle price in USD")
	ukraineCmd.Flags().StringVar(&fuelType, "fuel", string(rates.FuelPetrol), "fuel type (Petrol, Diesel)")
}

func runQuote(cmd *cobra.Command, req engine.Request) error {
	fm, err := formatter()
	if err != nil {
		return err
	}
	e, err := newEngine()
	if err != nil {
		return err
	}

	q, err := e.Quote(req)
	if err != nil {
		return err
	}
	return fm.RenderQuote(stdout(cmd), q)
}

func jsonEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}
