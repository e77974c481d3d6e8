package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"deen/internal/ui"
	"deen/internal/zikr"
)

// Vibrator is the device feedback hook; failures are the
// implementation's problem, never the counter's.
type Vibrator interface {
	Vibrate(ctx context.Context, d time.Duration)
}

// RunCounter walks the sequence interactively. completed is false when
// the user quit before the end.
func RunCounter(ctx context.Context, title string, seq zikr.Sequence, vib Vibrator, pulse time.Duration, out io.Writer) (completed bool, err error) {
	m := newCounterModel(ctx, title, seq, vib, pulse)
	p := tea.NewProgram(m, tea.WithOutput(out))
	res, err := p.Run()
	if err != nil {
		return false, err
	}
	final, ok := res.(counterModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type %T", res)
	}
	return !final.cancelled, nil
}

type counterModel struct {
	ctx       context.Context
	title     string
	session   *zikr.Session
	vib       Vibrator
	pulse     time.Duration
	cancelled bool
}

func newCounterModel(ctx context.Context, title string, seq zikr.Sequence, vib Vibrator, pulse time.Duration) counterModel {
	return counterModel{
		ctx:     ctx,
		title:   title,
		session: zikr.NewSession(seq),
		vib:     vib,
		pulse:   pulse,
	}
}

func (m counterModel) Init() tea.Cmd {
	// Opening pulse so the device confirms the counter started.
	return m.vibrateCmd()
}

func (m counterModel) vibrateCmd() tea.Cmd {
	if m.vib == nil {
		return nil
	}
	vib, ctx, pulse := m.vib, m.ctx, m.pulse
	return func() tea.Msg {
		vib.Vibrate(ctx, pulse)
		return nil
	}
}

func (m counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "x":
		if !m.session.Done() {
			m.cancelled = true
		}
		return m, tea.Quit
	case "s":
		m.session.Skip()
		if m.session.Done() {
			return m, tea.Sequence(m.vibrateCmd(), tea.Quit)
		}
		return m, m.vibrateCmd()
	case "enter", " ":
		if m.session.Advance() {
			if m.session.Done() {
				return m, tea.Sequence(m.vibrateCmd(), tea.Quit)
			}
			return m, m.vibrateCmd()
		}
	}
	if m.session.Done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m counterModel) View() string {
	if m.session.Done() {
		return ui.Good.Render("Allhamdulillah DONE!") + "\n"
	}

	phrase := m.session.Phrase()
	i, n := m.session.Position()

	body := ui.Header.Render("--> "+phrase.Title()) + "\n" +
		fmt.Sprintf("  Count: %d", m.session.Count())

	return ui.Banner(m.title) + "\n\n" +
		body + "\n\n" +
		ui.Muted.Render(fmt.Sprintf("phrase %d/%d · enter count · s skip · q quit", i+1, n)) + "\n"
}
