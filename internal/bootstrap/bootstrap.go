// Package bootstrap wires configuration into a ready engine.
package bootstrap

import (
	"go.uber.org/zap"

	"import-duty/adapters/ratefile"
	"import-duty/core/engine"
	"import-duty/core/format"
	"import-duty/core/rates"
	"import-duty/internal/config"
)

// Schedule returns the builtin schedule, or the configured override file
// applied on top of it.
func Schedule(cfg *config.Config) (rates.Schedule, error) {
	if cfg.Rates.File == "" {
		return rates.Default(), nil
	}
	return ratefile.Load(cfg.Rates.File, rates.Default())
}

// Engine builds an engine from cfg
func Engine(cfg *config.Config, logger *zap.Logger) (*engine.Engine, error) {
	schedule, err := Schedule(cfg)
	if err != nil {
		return nil, err
	}

	e, err := engine.New(schedule, engine.Config{
		Locale: format.ParseLocale(cfg.Format.Locale),
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Debug("rate schedule loaded",
			zap.String("version", schedule.Version),
			zap.String("file", cfg.Rates.File),
		)
	}
	return e, nil
}
