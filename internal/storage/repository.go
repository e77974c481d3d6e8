// Package storage provides a SQLite-backed daily log: the keyed-store
// alternative to the CSV file for logs that outgrow full-file rewrites.
// Rows live as (date, field, value) triples so one database schema
// serves any activity schema; insertion order is kept in log_dates.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"deen/internal/core"
	"deen/internal/deeds"
	applog "deen/internal/log"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db     *sql.DB
	schema core.Schema
	logger *applog.Logger
}

var _ deeds.Store = (*SQLiteStore)(nil)

func NewSQLiteStore(dbPath string, schema core.Schema, logger *applog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		schema: schema,
		logger: logger.WithComponent(applog.ComponentStorage),
	}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Schema returns the schema the store was built around.
func (s *SQLiteStore) Schema() core.Schema { return s.schema }

func (s *SQLiteStore) EnsureRow(ctx context.Context, date core.DateKey) ([]core.Row, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.ensureRowTx(ctx, tx, date); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit ensure row: %w", err)
	}
	return s.Rows(ctx)
}

func (s *SQLiteStore) LogDefault(ctx context.Context, date core.DateKey, field string) error {
	value, err := s.schema.DefaultValue(field)
	if err != nil {
		return err
	}
	return s.SetField(ctx, date, field, value)
}

func (s *SQLiteStore) SetField(ctx context.Context, date core.DateKey, field, value string) error {
	if _, err := s.schema.Index(field); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.ensureRowTx(ctx, tx, date); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE log_values SET value = ? WHERE date = ? AND field = ?`,
		value, date.String(), field); err != nil {
		return fmt.Errorf("update field: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update: %w", err)
	}

	s.logger.Debug("field updated",
		applog.FieldOperation, applog.OpUpdate,
		applog.FieldDate, date.String(),
		applog.FieldActivity, field,
		applog.FieldValue, value)
	return nil
}

func (s *SQLiteStore) Row(ctx context.Context, date core.DateKey) (core.Row, error) {
	var dates int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM log_dates`).Scan(&dates); err != nil {
		return core.Row{}, fmt.Errorf("count dates: %w", err)
	}
	if dates == 0 {
		return core.Row{}, core.ErrLogMissing
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT field, value FROM log_values WHERE date = ?`, date.String())
	if err != nil {
		return core.Row{}, fmt.Errorf("query row: %w", err)
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var field, value string
		if err := rows.Scan(&field, &value); err != nil {
			return core.Row{}, fmt.Errorf("scan row: %w", err)
		}
		values[field] = value
	}
	if err := rows.Err(); err != nil {
		return core.Row{}, fmt.Errorf("iterate row: %w", err)
	}
	if len(values) == 0 {
		return core.Row{}, fmt.Errorf("%w: %s", core.ErrDateNotFound, date)
	}
	return s.assemble(date, values)
}

func (s *SQLiteStore) Rows(ctx context.Context) ([]core.Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.date, v.field, v.value
		FROM log_dates d
		JOIN log_values v ON v.date = d.date
		ORDER BY d.seq`)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	var order []core.DateKey
	byDate := map[core.DateKey]map[string]string{}
	for rows.Next() {
		var date, field, value string
		if err := rows.Scan(&date, &field, &value); err != nil {
			return nil, fmt.Errorf("scan rows: %w", err)
		}
		key := core.DateKey(date)
		if _, seen := byDate[key]; !seen {
			order = append(order, key)
			byDate[key] = map[string]string{}
		}
		byDate[key][field] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	out := make([]core.Row, 0, len(order))
	for _, date := range order {
		row, err := s.assemble(date, byDate[date])
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

// ensureRowTx creates the date row with seed values if it is absent.
func (s *SQLiteStore) ensureRowTx(ctx context.Context, tx *sql.Tx, date core.DateKey) error {
	res, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO log_dates (date) VALUES (?)`, date.String())
	if err != nil {
		return fmt.Errorf("insert date: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if inserted == 0 {
		return nil
	}
	for _, f := range s.schema.Fields() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO log_values (date, field, value) VALUES (?, ?, ?)`,
			date.String(), f.Name, core.SeedValue); err != nil {
			return fmt.Errorf("seed field %s: %w", f.Name, err)
		}
	}
	s.logger.Debug("row created",
		applog.FieldOperation, applog.OpEnsureRow,
		applog.FieldDate, date.String())
	return nil
}

// assemble orders stored field values by schema position. Fields the
// schema names but the row lacks mean the stored data no longer lines
// up with the schema; that fails loudly. Extra stored fields from an
// older schema are ignored.
func (s *SQLiteStore) assemble(date core.DateKey, values map[string]string) (core.Row, error) {
	fields := s.schema.Fields()
	out := make([]string, len(fields))
	for i, f := range fields {
		v, ok := values[f.Name]
		if !ok {
			return core.Row{}, fmt.Errorf("%w: %s is missing field %s",
				core.ErrMalformedRow, date, f.Name)
		}
		out[i] = v
	}
	return core.Row{Date: date, Values: out}, nil
}
