package zikr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequences(t *testing.T) {
	long, short := Long(), Short()
	require.Len(t, long, 16)
	require.Len(t, short, 16)

	// Same phrases in the same order, different counts.
	for i := range long {
		assert.Equal(t, long[i].Name, short[i].Name)
	}
	assert.Equal(t, Phrase{Name: "Subhanallah", Count: 33}, long[2])
	assert.Equal(t, Phrase{Name: "Subhanallah", Count: 10}, short[2])
	assert.Equal(t, 70, long[5].Count) // Astagfirullah
}

func TestSingle(t *testing.T) {
	seq, err := Single("Subhanallah", 33)
	require.NoError(t, err)
	require.Len(t, seq, 1)
	assert.Equal(t, "Subhanallah [ x 33 ]", seq[0].Title())

	_, err = Single("Subhanallah", 0)
	assert.ErrorIs(t, err, ErrInvalidCount)
	_, err = Single("Subhanallah", -3)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestSingleOptions(t *testing.T) {
	assert.Len(t, SingleOptions(), 11)
}

func TestSessionAdvance(t *testing.T) {
	s := NewSession(Sequence{{Name: "A", Count: 2}, {Name: "B", Count: 1}})

	assert.Equal(t, "A", s.Phrase().Name)
	assert.False(t, s.Advance(), "first of two recitations does not finish the phrase")
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.Advance(), "second recitation finishes the phrase")

	assert.Equal(t, "B", s.Phrase().Name)
	assert.False(t, s.Done())
	assert.True(t, s.Advance())
	assert.True(t, s.Done())

	// Advancing past the end is a no-op.
	assert.False(t, s.Advance())
}

func TestSessionSkip(t *testing.T) {
	s := NewSession(Sequence{{Name: "A", Count: 5}, {Name: "B", Count: 1}})

	s.Advance()
	s.Skip()
	assert.Equal(t, "B", s.Phrase().Name)
	assert.Equal(t, 0, s.Count(), "count resets on skip")
	assert.Equal(t, 1, s.Skipped())

	s.Skip()
	assert.True(t, s.Done())
	s.Skip() // no-op past the end
	assert.Equal(t, 2, s.Skipped())
}
