package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"import-duty/adapters/ratefile"
	"import-duty/core/engine"
	"import-duty/core/rates"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Inspect and validate rate tables",
}

var ratesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active rate schedule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fm, err := formatter()
		if err != nil {
			return err
		}
		e, err := newEngine()
		if err != nil {
			return err
		}
		return fm.RenderSheet(stdout(cmd), e.RateSheet())
	},
}

var ratesValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a rate override file without using it",
	Long: `Parse a .hcl or .json rate override file, apply it on top of the
builtin tables and run every schedule check. Prints the merged schedule on
success.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schedule, err := ratefile.Load(args[0], rates.Default())
		if err != nil {
			return err
		}

		fm, err := formatter()
		if err != nil {
			return err
		}
		e, err := engine.New(schedule, engine.Config{})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "%s: OK\n", args[0])
		return fm.RenderSheet(stdout(cmd), e.RateSheet())
	},
}

func init() {
	ratesCmd.AddCommand(ratesShowCmd)
	ratesCmd.AddCommand(ratesValidateCmd)
	rootCmd.AddCommand(ratesCmd)
}
