package backend

import (
	"context"
	"fmt"

	"deen/internal/deeds/csvlog"
	"deen/internal/deeds/memory"
	applog "deen/internal/log"
	"deen/internal/storage"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a backend factory.
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// CreateStore implements Factory.CreateStore.
func (f *DefaultFactory) CreateStore(ctx context.Context, config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case CSVBackend:
		return f.createCSV(ctx, config)
	case SQLiteBackend:
		return f.createSQLite(config)
	case MemoryBackend:
		return f.createMemory(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createCSV(ctx context.Context, config Config) (*Result, error) {
	store := csvlog.New(config.CSVPath, config.Schema, f.logger)
	if err := store.EnsureFile(ctx); err != nil {
		return nil, fmt.Errorf("initialize csv log: %w", err)
	}

	f.logger.Debug("initialized csv backend", applog.FieldPath, config.CSVPath)
	return &Result{Store: store}, nil
}

func (f *DefaultFactory) createSQLite(config Config) (*Result, error) {
	store, err := storage.NewSQLiteStore(config.SQLitePath, config.Schema, f.logger)
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite store: %w", err)
	}

	f.logger.Debug("initialized sqlite backend", applog.FieldPath, config.SQLitePath)
	return &Result{Store: store, Cleanup: store.Close}, nil
}

func (f *DefaultFactory) createMemory(config Config) (*Result, error) {
	f.logger.Debug("initialized memory backend")
	return &Result{Store: memory.New(config.Schema)}, nil
}
