package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"deen/internal/core"
	"deen/internal/deeds"
	"deen/internal/ui"
)

// RunMenu drives the interactive tracker menu until the user exits.
// completed is false when the user interrupted instead of choosing Exit.
func RunMenu(ctx context.Context, store deeds.Store, schema core.Schema, out io.Writer) (completed bool, err error) {
	m := newMenuModel(ctx, store, schema)
	p := tea.NewProgram(m, tea.WithOutput(out))
	res, err := p.Run()
	if err != nil {
		return false, err
	}
	final, ok := res.(menuModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type %T", res)
	}
	return !final.cancelled, nil
}

type menuState int

const (
	stateMenu menuState = iota
	stateDate
	stateActivity
	stateText
	stateMessage
)

type dateMode int

const (
	modeLog dateMode = iota
	modeView
)

var menuItems = []string{
	"Log a new activity",
	"View today's progress",
	"Log activity to specific day",
	"View specific day progress",
	"Exit",
}

type (
	loggedMsg struct {
		activity string
		date     core.DateKey
		err      error
	}
	progressMsg struct {
		date core.DateKey
		row  core.Row
		err  error
	}
)

type menuModel struct {
	ctx    context.Context
	store  deeds.Store
	schema core.Schema

	state     menuState
	mode      dateMode
	cursor    int
	actCursor int
	forDate   core.DateKey
	activity  string
	input     textinput.Model
	message   string
	cancelled bool
}

func newMenuModel(ctx context.Context, store deeds.Store, schema core.Schema) menuModel {
	input := textinput.New()
	input.CharLimit = 64
	return menuModel{
		ctx:    ctx,
		store:  store,
		schema: schema,
		input:  input,
	}
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) logCmd(date core.DateKey, activity string) tea.Cmd {
	return func() tea.Msg {
		return loggedMsg{activity: activity, date: date, err: m.store.LogDefault(m.ctx, date, activity)}
	}
}

func (m menuModel) setCmd(date core.DateKey, activity, value string) tea.Cmd {
	return func() tea.Msg {
		return loggedMsg{activity: activity, date: date, err: m.store.SetField(m.ctx, date, activity, value)}
	}
}

func (m menuModel) progressCmd(date core.DateKey) tea.Cmd {
	return func() tea.Msg {
		row, err := m.store.Row(m.ctx, date)
		return progressMsg{date: date, row: row, err: err}
	}
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loggedMsg:
		if msg.err != nil {
			m.message = ui.Bad.Render("Logging failed: " + msg.err.Error())
		} else {
			m.message = ui.Good.Render(fmt.Sprintf("<----- Logged %q for %s ----->", msg.activity, msg.date))
		}
		m.state = stateMessage
		return m, nil

	case progressMsg:
		switch {
		case errors.Is(msg.err, core.ErrLogMissing):
			m.message = ui.Muted.Render("No progress recorded yet.")
		case errors.Is(msg.err, core.ErrDateNotFound):
			m.message = ui.Muted.Render(fmt.Sprintf("No progress recorded for %s.", msg.date))
		case msg.err != nil:
			m.message = ui.Bad.Render("Reading progress failed: " + msg.err.Error())
		default:
			m.message = ui.RenderProgress(m.schema, msg.row)
		}
		m.state = stateMessage
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateDate:
			return m.updateDate(msg)
		case stateActivity:
			return m.updateActivity(msg)
		case stateText:
			return m.updateText(msg)
		case stateMessage:
			m.state = stateMenu
			return m, nil
		}
	}
	return m, nil
}

func (m menuModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "q":
		return m, tea.Quit
	case "enter":
		switch m.cursor {
		case 0:
			m.forDate = core.Today()
			m.actCursor = 0
			m.state = stateActivity
		case 1:
			return m, m.progressCmd(core.Today())
		case 2, 3:
			if m.cursor == 2 {
				m.mode = modeLog
			} else {
				m.mode = modeView
			}
			m.input.Placeholder = "dd-mm-yyyy (blank for today)"
			m.input.SetValue("")
			m.input.Focus()
			m.state = stateDate
		case 4:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) updateDate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateMenu
		return m, nil
	case "enter":
		raw := m.input.Value()
		date := core.Today()
		if raw != "" {
			parsed, err := core.ParseDateKey(raw)
			if err != nil {
				m.message = ui.Bad.Render("Invalid date format. Please use dd-mm-yyyy.")
				m.state = stateMessage
				return m, nil
			}
			date = parsed
		}
		m.forDate = date
		if m.mode == modeView {
			return m, m.progressCmd(date)
		}
		m.actCursor = 0
		m.state = stateActivity
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m menuModel) updateActivity(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.schema.Fields()
	switch msg.String() {
	case "esc", "q":
		m.state = stateMenu
	case "up", "k":
		if m.actCursor > 0 {
			m.actCursor--
		}
	case "down", "j":
		if m.actCursor < len(fields)-1 {
			m.actCursor++
		}
	case "enter":
		f := fields[m.actCursor]
		m.activity = f.Name
		if f.FreeText {
			m.input.Placeholder = fmt.Sprintf("Amount for %s", f.Name)
			m.input.SetValue("")
			m.input.Focus()
			m.state = stateText
			return m, nil
		}
		return m, m.logCmd(m.forDate, f.Name)
	}
	return m, nil
}

func (m menuModel) updateText(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateActivity
		return m, nil
	case "enter":
		return m, m.setCmd(m.forDate, m.activity, m.input.Value())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m menuModel) View() string {
	switch m.state {
	case stateDate:
		return ui.Banner("Namaz") + "\n\n" +
			ui.Header.Render("Enter date") + "\n" +
			m.input.View() + "\n\n" +
			ui.Muted.Render("enter confirm · esc back") + "\n"

	case stateActivity:
		s := ui.Banner("Namaz") + "\n\n" +
			ui.Header.Render(fmt.Sprintf("Choose an activity to log for %s:", m.forDate)) + "\n\n"
		for i, f := range m.schema.Fields() {
			line := "  " + f.Name
			if i == m.actCursor {
				line = ui.Selected.Render("> " + f.Name)
			}
			s += line + "\n"
		}
		return s + "\n" + ui.Muted.Render("enter log · esc back") + "\n"

	case stateText:
		return ui.Banner("Namaz") + "\n\n" +
			ui.Header.Render(fmt.Sprintf("Enter the amount for %q:", m.activity)) + "\n" +
			m.input.View() + "\n\n" +
			ui.Muted.Render("enter save · esc back") + "\n"

	case stateMessage:
		return m.message + "\n\n" + ui.Muted.Render("press any key to continue") + "\n"
	}

	s := ui.Banner("Namaz") + "\n\n"
	for i, item := range menuItems {
		line := fmt.Sprintf("  %d. %s", i+1, item)
		if i == m.cursor {
			line = ui.Selected.Render(fmt.Sprintf("> %d. %s", i+1, item))
		}
		s += line + "\n"
	}
	return s + "\n" + ui.Muted.Render("↑/↓ move · enter select · q quit") + "\n"
}
