// Package cmd provides the CLI commands for import-duty.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"import-duty/core/engine"
	"import-duty/core/output"
	"import-duty/internal/bootstrap"
	"import-duty/internal/config"
	"import-duty/internal/logging"
)

// Version is the CLI version
const Version = "0.3.0"

var (
	cfgFile      string
	ratesFile    string
	locale       string
	outputFormat string
	verbose      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "import-duty",
	Short: "Estimate customs duty for imported cars",
	Long: `import-duty estimates the customs cost of importing a car.

Totals are deterministic approximations from fixed rate tables, not an
authoritative tax assessment.

Examples:
  import-duty georgia --engine 3.0 --age 2
  import-duty ukraine --price 10000 --engine 2.0 --fuel Petrol --age 2
  import-duty rates show --format json
  import-duty rates validate ./rates.hcl`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.import-duty.json)")
	rootCmd.PersistentFlags().StringVar(&ratesFile, "rates", "", "rate table override (.hcl or .json)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "locale for number formatting (e.g. en-US, ka-GE)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", string(output.FormatText), "output format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if ratesFile != "" {
		cfg.Rates.File = ratesFile
	}
	if locale != "" {
		cfg.Format.Locale = locale
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	logging.Debug("config loaded",
		zap.String("path", path),
		zap.String("rates", cfg.Rates.File),
		zap.String("locale", cfg.Format.Locale),
	)
	return nil
}

// newEngine builds the engine from the active configuration
func newEngine() (*engine.Engine, error) {
	return bootstrap.Engine(config.Get(), logging.Logger)
}

func formatter() (output.Formatter, error) {
	return output.Get(output.Format(outputFormat))
}

func stdout(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(stdout(cmd), "import-duty version %s\n", Version)
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := jsonEncoder(stdout(cmd))
		return enc.Encode(config.Get())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultPath()
		if len(args) > 0 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(stdout(cmd), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
