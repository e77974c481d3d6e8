// Package deeds defines the ports a daily-log store must satisfy.
package deeds

import (
	"context"

	"deen/internal/core"
)

// Ports for log store implementations.
type (
	// RowEnsurer idempotently creates the row for a date and returns
	// the full row set in insertion order.
	RowEnsurer interface {
		EnsureRow(ctx context.Context, date core.DateKey) ([]core.Row, error)
	}

	// FieldUpdater mutates one field of one row, creating the row
	// first if needed. LogDefault writes the field's fixed completion
	// count; SetField writes the given value verbatim.
	FieldUpdater interface {
		LogDefault(ctx context.Context, date core.DateKey, field string) error
		SetField(ctx context.Context, date core.DateKey, field, value string) error
	}

	// RowReader reads rows back. Row distinguishes an absent log
	// (core.ErrLogMissing) from an absent date (core.ErrDateNotFound).
	RowReader interface {
		Row(ctx context.Context, date core.DateKey) (core.Row, error)
		Rows(ctx context.Context) ([]core.Row, error)
	}
)

// Store is the full daily-log contract.
type Store interface {
	RowEnsurer
	FieldUpdater
	RowReader
}
