package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deen/internal/zikr"
)

type fakeVibrator struct {
	mu     sync.Mutex
	pulses int
}

func (f *fakeVibrator) Vibrate(context.Context, time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pulses++
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func step(t *testing.T, m tea.Model, msg tea.Msg) (counterModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	cm, ok := next.(counterModel)
	require.True(t, ok)
	return cm, cmd
}

func TestCounterAdvancesAndVibratesOnPhraseCompletion(t *testing.T) {
	vib := &fakeVibrator{}
	seq := zikr.Sequence{{Name: "A", Count: 2}, {Name: "B", Count: 1}}
	m := newCounterModel(context.Background(), "Zikr", seq, vib, time.Millisecond)

	m, cmd := step(t, m, key("enter"))
	assert.Nil(t, cmd, "mid-phrase count must not vibrate")
	assert.Contains(t, m.View(), "Count: 1")

	m, cmd = step(t, m, key("enter"))
	require.NotNil(t, cmd, "phrase completion vibrates")
	cmd() // run the vibrate command
	assert.Equal(t, 1, vib.pulses)
	assert.Contains(t, m.View(), "B [ x 1 ]")
}

func TestCounterSkipVibratesAndMovesOn(t *testing.T) {
	vib := &fakeVibrator{}
	seq := zikr.Sequence{{Name: "A", Count: 99}, {Name: "B", Count: 1}}
	m := newCounterModel(context.Background(), "Zikr", seq, vib, time.Millisecond)

	m, cmd := step(t, m, key("s"))
	assert.Contains(t, m.View(), "B [ x 1 ]")
	assert.False(t, m.cancelled)
	require.NotNil(t, cmd, "skip pulses the device like a completed phrase")
	cmd()
	assert.Equal(t, 1, vib.pulses)
}

func TestCounterQuitMarksCancelled(t *testing.T) {
	seq := zikr.Sequence{{Name: "A", Count: 5}}
	m := newCounterModel(context.Background(), "Zikr", seq, nil, 0)

	m, cmd := step(t, m, key("q"))
	assert.True(t, m.cancelled)
	require.NotNil(t, cmd)
}

func TestCounterDoneView(t *testing.T) {
	seq := zikr.Sequence{{Name: "A", Count: 1}}
	m := newCounterModel(context.Background(), "Zikr", seq, nil, 0)

	m, _ = step(t, m, key("enter"))
	assert.True(t, strings.Contains(m.View(), "DONE"))
	assert.False(t, m.cancelled)
}
