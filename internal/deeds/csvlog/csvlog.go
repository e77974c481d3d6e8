// Package csvlog persists the daily log as a single CSV file, one row
// per date, one column per activity. Every mutation is a full read of
// the file followed by a full rewrite; at a few thousand rows this is
// a deliberate simplicity/scale tradeoff.
package csvlog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"deen/internal/core"
	"deen/internal/deeds"
	applog "deen/internal/log"
)

// Store is a CSV-backed daily log. A mutex serializes every
// read-modify-write cycle and writes go through a temp file plus
// rename, so a crash mid-write never leaves a truncated file behind.
// Concurrent processes are still not coordinated.
type Store struct {
	path   string
	schema core.Schema
	logger *applog.Logger
	mu     sync.Mutex
}

var _ deeds.Store = (*Store)(nil)

func New(path string, schema core.Schema, logger *applog.Logger) *Store {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Store{
		path:   path,
		schema: schema,
		logger: logger.WithComponent(applog.ComponentDeeds),
	}
}

// Path returns the log file location.
func (s *Store) Path() string { return s.path }

// Schema returns the schema the store was built around.
func (s *Store) Schema() core.Schema { return s.schema }

// EnsureFile writes the header row if no file exists at the path.
// An existing file is left untouched; its header is never validated
// against the schema.
func (s *Store) EnsureFile(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat log file: %w", err)
	}
	return s.writeAll(nil)
}

// EnsureRow makes sure a row for date exists, seeding a new one with
// zeros when absent, and returns the full row set in insertion order.
// Calling it twice for the same date is a no-op the second time.
func (s *Store) EnsureRow(_ context.Context, date core.DateKey) ([]core.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.ensureRowLocked(date)
	if err != nil {
		return nil, err
	}
	return core.CloneRows(rows), nil
}

// LogDefault writes the field's fixed completion count into the row
// for date, creating the row first if needed.
func (s *Store) LogDefault(ctx context.Context, date core.DateKey, field string) error {
	value, err := s.schema.DefaultValue(field)
	if err != nil {
		return err
	}
	return s.SetField(ctx, date, field, value)
}

// SetField writes value verbatim into the named field of the row for
// date, creating the row first if needed. The whole file is rewritten;
// all other rows are carried over unchanged.
func (s *Store) SetField(_ context.Context, date core.DateKey, field, value string) error {
	idx, err := s.schema.Index(field)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.ensureRowLocked(date)
	if err != nil {
		return err
	}
	for i := range rows {
		if rows[i].Date == date {
			rows[i].Values[idx] = value
			break
		}
	}
	if err := s.writeAll(rows); err != nil {
		return err
	}
	s.logger.Debug("field updated",
		applog.FieldOperation, applog.OpUpdate,
		applog.FieldDate, date.String(),
		applog.FieldActivity, field,
		applog.FieldValue, value)
	return nil
}

// Row returns the row for date. A missing file and a missing date are
// distinct outcomes: core.ErrLogMissing and core.ErrDateNotFound.
func (s *Store) Row(_ context.Context, date core.DateKey) (core.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, exists, err := s.readAll()
	if err != nil {
		return core.Row{}, err
	}
	if !exists {
		return core.Row{}, core.ErrLogMissing
	}
	for _, r := range rows {
		if r.Date == date {
			return r.Clone(), nil
		}
	}
	return core.Row{}, fmt.Errorf("%w: %s", core.ErrDateNotFound, date)
}

// Rows returns every row in insertion order. A missing file reads as
// an empty log.
func (s *Store) Rows(_ context.Context) ([]core.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, _, err := s.readAll()
	if err != nil {
		return nil, err
	}
	return core.CloneRows(rows), nil
}

func (s *Store) ensureRowLocked(date core.DateKey) ([]core.Row, error) {
	rows, _, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if r.Date == date {
			return rows, nil
		}
	}
	rows = append(rows, s.schema.SeedRow(date))
	if err := s.writeAll(rows); err != nil {
		return nil, err
	}
	s.logger.Debug("row created",
		applog.FieldOperation, applog.OpEnsureRow,
		applog.FieldDate, date.String(),
		applog.FieldRowCount, len(rows))
	return rows, nil
}

// readAll loads every data row. exists reports whether the file was
// present at all. A row whose field count does not match the schema
// fails loudly instead of silently misaligning columns.
func (s *Store) readAll() (rows []core.Row, exists bool, err error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	// Header line; its names are deliberately not checked against the
	// schema (pre-existing files win).
	if _, err := r.Read(); err == io.EOF {
		return nil, true, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("read log header: %w", err)
	}

	want := s.schema.Len() + 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("read log row: %w", err)
		}
		if len(record) != want {
			return nil, false, fmt.Errorf("%w: %q has %d fields, want %d",
				core.ErrMalformedRow, record[0], len(record), want)
		}
		rows = append(rows, core.Row{
			Date:   core.DateKey(record[0]),
			Values: append([]string(nil), record[1:]...),
		})
	}
	return rows, true, nil
}

// writeAll replaces the file contents with header plus rows, writing
// to a temp file in the same directory and renaming it into place.
func (s *Store) writeAll(rows []core.Row) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".deen-log-*")
	if err != nil {
		return fmt.Errorf("create temp log file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	if err = w.Write(s.schema.Header()); err != nil {
		return fmt.Errorf("write log header: %w", err)
	}
	for _, row := range rows {
		record := make([]string, 0, len(row.Values)+1)
		record = append(record, row.Date.String())
		record = append(record, row.Values...)
		if err = w.Write(record); err != nil {
			return fmt.Errorf("write log row %s: %w", row.Date, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("flush log file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp log file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace log file: %w", err)
	}
	return nil
}
