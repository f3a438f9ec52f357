package ui

import (
	"context"
	"testing"

	"github.com/DIMO-Network/iss-distance/services/distance"
	"github.com/DIMO-Network/iss-distance/services/geo"
	"github.com/DIMO-Network/iss-distance/services/position"
	"github.com/DIMO-Network/iss-distance/services/report"
	"github.com/DIMO-Network/iss-distance/services/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var iss = geo.Point{Name: "iss", ID: 25544, Latitude: 0, Longitude: 0, Altitude: 400}

func newSession(locator position.Locator) *session.Session {
	logger := zerolog.New(nil)
	return session.New(&logger, iss, position.NewProvider(locator, &logger), nil, distance.Kilometers)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(m.load())
	require.Nil(t, cmd)
	return next.(Model)
}

func TestModel_LoadingThenDistance(t *testing.T) {
	m := NewModel(context.Background(), newSession(position.StaticLocator{}))
	require.NotNil(t, m.Init())
	require.True(t, m.State().Loading)
	assert.Contains(t, m.View(), "Loading...")

	m = loaded(t, m)
	require.False(t, m.State().Loading)

	view := m.View()
	assert.NotContains(t, view, "Loading...")
	assert.Contains(t, view, "User Coords- Lat- 0 Long- 0")
	assert.Contains(t, view, "ISS Coords- Lat- 0 Long- 0")
	assert.Contains(t, view, "You are 400 km away from the ISS")
	assert.Contains(t, view, "(•) Kilometers")
}

func TestModel_UnitKeys(t *testing.T) {
	m := loaded(t, NewModel(context.Background(), newSession(position.StaticLocator{})))

	next, _ := m.Update(runes("m"))
	m = next.(Model)
	assert.Equal(t, 248.55, m.State().Distance)
	assert.Contains(t, m.View(), "You are 248.55 miles away from the ISS")
	assert.Contains(t, m.View(), "(•) Miles")

	// Same unit again is a no-op.
	next, _ = m.Update(runes("m"))
	m = next.(Model)
	assert.Equal(t, 248.55, m.State().Distance)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, distance.Kilometers, m.State().Unit)
	assert.InDelta(t, 400.0, m.State().Distance, 0.01)

	next, _ = m.Update(runes("k"))
	m = next.(Model)
	assert.Equal(t, distance.Kilometers, m.State().Unit)
}

func TestModel_ToggleBeforeLoadDelivered(t *testing.T) {
	m := NewModel(context.Background(), newSession(position.StaticLocator{}))

	msg := m.load()
	m.session.Toggle(distance.Miles)

	next, _ := m.Update(msg)
	m = next.(Model)
	assert.Equal(t, distance.Miles, m.State().Unit)
	assert.Equal(t, 248.55, m.State().Distance)
	assert.Contains(t, m.View(), "You are 248.55 miles away from the ISS")
}

func TestModel_Failure(t *testing.T) {
	m := loaded(t, NewModel(context.Background(), newSession(nil)))

	view := m.View()
	assert.Contains(t, view, position.ErrCapabilityUnavailable.Error())
	assert.Contains(t, view, "User Coords- unknown")
	assert.NotContains(t, view, "away from the ISS")
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(context.Background(), newSession(position.StaticLocator{}))

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestPlain(t *testing.T) {
	require.Equal(t, "Loading...\n", Plain(session.NewState(distance.Kilometers), iss))

	user := geo.UserPoint(51.5, -0.1)
	st := session.NewState(distance.Kilometers).LocationAcquired(user, iss, nil)
	out := Plain(st, iss)
	require.Contains(t, out, "User Coords- Lat- 51.5 Long- -0.1\n")
	require.Contains(t, out, "ISS Coords- Lat- 0 Long- 0\n")
	require.Contains(t, out, report.Sentence(st))
	require.Contains(t, out, "( ) Miles  (•) Kilometers\n")
}
