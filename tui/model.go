// Package tui is the interactive progress display: a spinner on the current
// pipeline stage, a check mark per finished stage. Used only when stdout is a
// terminal; plain log lines cover everything else.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"timervid/pipeline"
)

type eventMsg pipeline.Event

type resultMsg struct {
	err error
}

// Model is the bubbletea model for a single pipeline run.
type Model struct {
	spin   spinner.Model
	events <-chan pipeline.Event
	result <-chan error

	current  string
	finished []string
	done     bool
	err      error
}

// New builds a Model reading stage events and the final result from the
// pipeline goroutine.
func New(events <-chan pipeline.Event, result <-chan error) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	return Model{spin: s, events: events, result: result}
}

// Err is the pipeline result, available after the program finishes.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitEvent(m.events), waitResult(m.result))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.err = fmt.Errorf("interrupted")
			return m, tea.Quit
		}
		return m, nil

	case eventMsg:
		if m.current != "" {
			m.finished = append(m.finished, m.current)
		}
		m.current = msg.Message
		return m, waitEvent(m.events)

	case resultMsg:
		if m.current != "" && msg.err == nil {
			m.finished = append(m.finished, m.current)
		}
		m.current = ""
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	s := TitleStyle.Render("timervid") + "\n"
	for _, line := range m.finished {
		s += DoneStyle.Render("✓ ") + line + "\n"
	}
	switch {
	case m.done && m.err != nil:
		s += ErrorStyle.Render("✗ "+m.err.Error()) + "\n"
	case m.done:
		s += DoneStyle.Render("done") + "\n"
	case m.current != "":
		s += m.spin.View() + m.current + "\n"
	default:
		s += m.spin.View() + InfoStyle.Render("starting...") + "\n"
	}
	return s
}

func waitEvent(ch <-chan pipeline.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(e)
	}
}

func waitResult(ch <-chan error) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{err: <-ch}
	}
}
