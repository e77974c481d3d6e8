package backend

import (
	"fmt"

	"deen/internal/config"
	"deen/internal/core"
)

// FromAppConfig converts the application config to a backend config.
// The schema is always supplied by the caller, never defaulted here.
func FromAppConfig(appConfig *config.Config, schema core.Schema) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := Type(appConfig.Backend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.Backend)
	}

	return Config{
		Type:       backendType,
		Schema:     schema,
		CSVPath:    appConfig.CSVPath,
		SQLitePath: appConfig.SQLitePath,
	}, nil
}

// Validate validates the backend configuration.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}
	if c.Schema.Len() == 0 {
		return core.ErrEmptySchema
	}

	switch c.Type {
	case CSVBackend:
		if c.CSVPath == "" {
			return fmt.Errorf("log path is required for csv backend")
		}
	case SQLiteBackend:
		if c.SQLitePath == "" {
			return fmt.Errorf("database path is required for sqlite backend")
		}
	case MemoryBackend:
		// Nothing to validate.
	}
	return nil
}
