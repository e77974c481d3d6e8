// Package memory holds the daily log in process memory. Used by tests
// and ephemeral runs; nothing survives the process.
package memory

import (
	"context"
	"fmt"
	"sync"

	"deen/internal/core"
	"deen/internal/deeds"
)

type Store struct {
	mu     sync.Mutex
	schema core.Schema
	rows   []core.Row
}

var _ deeds.Store = (*Store)(nil)

func New(schema core.Schema) *Store {
	return &Store{schema: schema}
}

// Schema returns the schema the store was built around.
func (s *Store) Schema() core.Schema { return s.schema }

func (s *Store) EnsureRow(_ context.Context, date core.DateKey) ([]core.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLocked(date)
	return core.CloneRows(s.rows), nil
}

func (s *Store) LogDefault(ctx context.Context, date core.DateKey, field string) error {
	value, err := s.schema.DefaultValue(field)
	if err != nil {
		return err
	}
	return s.SetField(ctx, date, field, value)
}

func (s *Store) SetField(_ context.Context, date core.DateKey, field, value string) error {
	idx, err := s.schema.Index(field)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.ensureLocked(date)
	s.rows[i].Values[idx] = value
	return nil
}

func (s *Store) Row(_ context.Context, date core.DateKey) (core.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// An empty store reads like an absent log file.
	if len(s.rows) == 0 {
		return core.Row{}, core.ErrLogMissing
	}
	for _, r := range s.rows {
		if r.Date == date {
			return r.Clone(), nil
		}
	}
	return core.Row{}, fmt.Errorf("%w: %s", core.ErrDateNotFound, date)
}

func (s *Store) Rows(_ context.Context) ([]core.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.CloneRows(s.rows), nil
}

func (s *Store) ensureLocked(date core.DateKey) int {
	for i, r := range s.rows {
		if r.Date == date {
			return i
		}
	}
	s.rows = append(s.rows, s.schema.SeedRow(date))
	return len(s.rows) - 1
}
