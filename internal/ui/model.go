package ui

import (
	"context"

	"github.com/DIMO-Network/iss-distance/services/distance"
	"github.com/DIMO-Network/iss-distance/services/report"
	"github.com/DIMO-Network/iss-distance/services/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Miles      key.Binding
	Kilometers key.Binding
	Flip       key.Binding
	Quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Miles, k.Kilometers, k.Flip, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Miles: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "miles"),
	),
	Kilometers: key.NewBinding(
		key.WithKeys("k"),
		key.WithHelp("k", "kilometers"),
	),
	Flip: key.NewBinding(
		key.WithKeys("tab", " "),
		key.WithHelp("tab/space", "switch unit"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// loadedMsg reports that the session has settled or stopped waiting.
type loadedMsg struct{}

// Model is the interactive view of one session.
type Model struct {
	ctx     context.Context
	session *session.Session
	state   session.State

	spinner spinner.Model
	help    help.Model
}

func NewModel(ctx context.Context, s *session.Session) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = spinnerStyle

	return Model{
		ctx:     ctx,
		session: s,
		state:   s.State(),
		spinner: sp,
		help:    help.New(),
	}
}

// State returns the state currently shown.
func (m Model) State() session.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m Model) load() tea.Msg {
	// The outcome is already in the session state.
	_, _ = m.session.Load(m.ctx)
	return loadedMsg{}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		// Read back from the session: a toggle may have landed after the
		// load settled.
		m.state = m.session.State()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Miles):
			m.state = m.session.Toggle(distance.Miles)
		case key.Matches(msg, keys.Kilometers):
			m.state = m.session.Toggle(distance.Kilometers)
		case key.Matches(msg, keys.Flip):
			target := distance.Miles
			if m.state.Unit == distance.Miles {
				target = distance.Kilometers
			}
			m.state = m.session.Toggle(target)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	title := titleStyle.Render("Where is the ISS?")

	if m.state.Loading {
		return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			m.spinner.View()+" Loading...",
		))
	}

	var answer string
	if m.state.Err != nil {
		answer = RenderErrorLine(m.state.Err)
	} else {
		answer = answerStyle.Render(report.Sentence(m.state))
	}

	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		coordsStyle.Render(userCoords(m.state)),
		coordsStyle.Render(satelliteCoords(m.session.Satellite())),
		answer,
		radio(m.state.Unit, func(s string) string { return unitStyle.Render(s) }),
		helpStyle.Render(m.help.View(keys)),
	))
}
