package csvlog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deen/internal/core"
)

func testSchema(t *testing.T) core.Schema {
	t.Helper()
	s, err := core.NewSchema(core.Numeric("Tahajjud", 2), core.FreeText("Notes"))
	require.NoError(t, err)
	return s
}

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "daily_progress.csv"), testSchema(t), nil)
}

func TestEnsureFileWritesHeaderOnce(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.EnsureFile(ctx))
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "Date,Tahajjud,Notes\n", string(data))

	// Second call must not touch an existing file.
	require.NoError(t, os.WriteFile(s.Path(), []byte("Date,Other\n"), 0o644))
	require.NoError(t, s.EnsureFile(ctx))
	data, err = os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "Date,Other\n", string(data))
}

func TestEnsureRowSeedsZeros(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	rows, err := s.EnsureRow(ctx, "01-01-2025")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, core.DateKey("01-01-2025"), rows[0].Date)
	assert.Equal(t, []string{"0", "0"}, rows[0].Values)

	got, err := s.Row(ctx, "01-01-2025")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "0"}, got.Values)
}

func TestEnsureRowIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.EnsureRow(ctx, "01-01-2025")
	require.NoError(t, err)
	require.NoError(t, s.SetField(ctx, "01-01-2025", "Notes", "Surah X"))

	rows, err := s.EnsureRow(ctx, "01-01-2025")
	require.NoError(t, err)
	require.Len(t, rows, 1, "no duplicate row may be created")
	assert.Equal(t, []string{"0", "Surah X"}, rows[0].Values, "existing values must survive")
}

func TestLogDefaultAndSetField(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.LogDefault(ctx, "01-01-2025", "Tahajjud"))
	require.NoError(t, s.SetField(ctx, "01-01-2025", "Notes", "Surah X"))

	row, err := s.Row(ctx, "01-01-2025")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "Surah X"}, row.Values)
}

func TestUpdatePreservesSiblingFieldsAndOtherRows(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.SetField(ctx, "01-01-2025", "Notes", "keep me"))
	require.NoError(t, s.LogDefault(ctx, "02-01-2025", "Tahajjud"))

	before, err := s.Row(ctx, "01-01-2025")
	require.NoError(t, err)

	// Second update on the other date, different field.
	require.NoError(t, s.SetField(ctx, "02-01-2025", "Notes", "other"))

	after, err := s.Row(ctx, "01-01-2025")
	require.NoError(t, err)
	assert.Equal(t, before.Values, after.Values, "untouched dates must not change")

	row2, err := s.Row(ctx, "02-01-2025")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "other"}, row2.Values, "first update must survive the second")
}

func TestRoundTripPreservesOrderAndValues(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	dates := []core.DateKey{"03-01-2025", "01-01-2025", "02-01-2025"}
	for i, d := range dates {
		require.NoError(t, s.SetField(ctx, d, "Notes", string(rune('a'+i))))
	}

	// A fresh store over the same file must see identical contents.
	reloaded := New(s.Path(), s.Schema(), nil)
	rows, err := reloaded.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, len(dates))
	for i, d := range dates {
		assert.Equal(t, d, rows[i].Date, "insertion order must be preserved")
		assert.Equal(t, string(rune('a'+i)), rows[i].Values[1])
	}
}

func TestLogMissingAndDateNotFoundAreDistinct(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Row(ctx, "01-01-2025")
	assert.ErrorIs(t, err, core.ErrLogMissing)

	_, err = s.EnsureRow(ctx, "02-01-2025")
	require.NoError(t, err)

	_, err = s.Row(ctx, "01-01-2025")
	assert.ErrorIs(t, err, core.ErrDateNotFound)
	assert.NotErrorIs(t, err, core.ErrLogMissing)
}

func TestUnknownFieldFailsLoudly(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	assert.ErrorIs(t, s.SetField(ctx, "01-01-2025", "Nope", "1"), core.ErrUnknownField)
	assert.ErrorIs(t, s.LogDefault(ctx, "01-01-2025", "Nope"), core.ErrUnknownField)

	// Nothing may have been written on the failure path.
	_, err := s.Row(ctx, "01-01-2025")
	assert.ErrorIs(t, err, core.ErrLogMissing)
}

func TestLogDefaultOnFreeTextFieldFails(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	assert.ErrorIs(t, s.LogDefault(ctx, "01-01-2025", "Notes"), core.ErrNoDefault)
}

func TestMalformedRowIsRejected(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	raw := "Date,Tahajjud,Notes\n01-01-2025,2\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	_, err := s.Rows(ctx)
	assert.ErrorIs(t, err, core.ErrMalformedRow)
	_, err = s.EnsureRow(ctx, "02-01-2025")
	assert.ErrorIs(t, err, core.ErrMalformedRow)
}

func TestUpdateLeavesOtherRowsByteForByteUnchanged(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.LogDefault(ctx, "01-01-2025", "Tahajjud"))
	require.NoError(t, s.SetField(ctx, "02-01-2025", "Notes", "x"))

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	require.NoError(t, s.SetField(ctx, "02-01-2025", "Notes", "y"))

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	// Only the one changed cell differs.
	assert.Equal(t, strings.TrimSuffix(string(before), "x\n")+"y\n", string(after))
}

func TestSpecScenario(t *testing.T) {
	// Schema [("Tahajjud", 2), ("Notes", free-text)]; ensure, log the
	// prayer at its count, set the note, read everything back.
	ctx := context.Background()
	s := newStore(t)

	rows, err := s.EnsureRow(ctx, "01-01-2025")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "0"}, rows[0].Values)

	require.NoError(t, s.LogDefault(ctx, "01-01-2025", "Tahajjud"))
	require.NoError(t, s.SetField(ctx, "01-01-2025", "Notes", "Surah X"))

	row, err := s.Row(ctx, "01-01-2025")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "Surah X"}, row.Values)

	v, err := row.Value(s.Schema(), "Tahajjud")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}
