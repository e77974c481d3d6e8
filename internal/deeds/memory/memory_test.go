package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deen/internal/core"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := core.NewSchema(core.Numeric("Tahajjud", 2), core.FreeText("Notes"))
	require.NoError(t, err)
	return New(s)
}

func TestEnsureRowSeedsAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	rows, err := s.EnsureRow(ctx, "01-01-2025")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"0", "0"}, rows[0].Values)

	require.NoError(t, s.SetField(ctx, "01-01-2025", "Notes", "kept"))
	rows, err = s.EnsureRow(ctx, "01-01-2025")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"0", "kept"}, rows[0].Values)
}

func TestUpdateSemantics(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.LogDefault(ctx, "01-01-2025", "Tahajjud"))
	require.NoError(t, s.SetField(ctx, "01-01-2025", "Notes", "Surah X"))

	row, err := s.Row(ctx, "01-01-2025")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "Surah X"}, row.Values)

	assert.ErrorIs(t, s.SetField(ctx, "01-01-2025", "Nope", "1"), core.ErrUnknownField)
	assert.ErrorIs(t, s.LogDefault(ctx, "01-01-2025", "Notes"), core.ErrNoDefault)
}

func TestDistinctNotFoundOutcomes(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Row(ctx, "01-01-2025")
	assert.ErrorIs(t, err, core.ErrLogMissing)

	_, err = s.EnsureRow(ctx, "02-01-2025")
	require.NoError(t, err)
	_, err = s.Row(ctx, "01-01-2025")
	assert.ErrorIs(t, err, core.ErrDateNotFound)
}

func TestReturnedRowsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	rows, err := s.EnsureRow(ctx, "01-01-2025")
	require.NoError(t, err)
	rows[0].Values[0] = "tampered"

	row, err := s.Row(ctx, "01-01-2025")
	require.NoError(t, err)
	assert.Equal(t, "0", row.Values[0])
}
