// Package cli wires configuration, logging, the store backend and the
// cobra command tree together.
package cli

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"deen/internal/backend"
	"deen/internal/config"
	"deen/internal/core"
	"deen/internal/deeds"
	applog "deen/internal/log"
)

// LoadEnvFile loads a .env file when present. Optional; errors are
// ignored silently.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the configured level
// and installs it as the process default.
func SetupLogger(cfg *config.Config) *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads the environment configuration and
// rejects invalid settings before anything touches the log file.
func LoadAndValidateConfig() (*config.Config, error) {
	LoadEnvFile()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenStore builds the configured store backend around the given
// schema. The returned cleanup is always safe to call.
func OpenStore(ctx context.Context, cfg *config.Config, logger *applog.Logger, schema core.Schema) (deeds.Store, func(), error) {
	backendCfg, err := backend.FromAppConfig(cfg, schema)
	if err != nil {
		return nil, nil, err
	}
	res, err := backend.NewFactory(logger).CreateStore(ctx, backendCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	cleanup := func() {
		if res.Cleanup == nil {
			return
		}
		if err := res.Cleanup(); err != nil {
			logger.Warn("store cleanup failed", applog.FieldError, err.Error())
		}
	}
	return res.Store, cleanup, nil
}
