package backend

import (
	"context"

	"deen/internal/core"
	"deen/internal/deeds"
)

// Type identifies a store backend.
type Type string

const (
	CSVBackend    Type = "csv"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string { return string(t) }

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case CSVBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Types returns every valid backend type.
func Types() []Type {
	return []Type{CSVBackend, SQLiteBackend, MemoryBackend}
}

// CleanupFunc releases a backend's resources.
type CleanupFunc func() error

// Result contains the store and an optional cleanup function.
type Result struct {
	Store   deeds.Store
	Cleanup CleanupFunc
}

// Config holds everything needed to build a store.
type Config struct {
	Type       Type
	Schema     core.Schema
	CSVPath    string
	SQLitePath string
}

// Factory creates stores based on configuration.
type Factory interface {
	CreateStore(ctx context.Context, config Config) (*Result, error)
}
