package internal

import (
	"testing"
	"time"

	"hourglass/internal/config"
	"hourglass/internal/timer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	state  timer.State
	events []timer.Event
}

func (f *fakeController) Dispatch(e timer.Event) {
	f.events = append(f.events, e)
}

func (f *fakeController) State() timer.State {
	return f.state
}

func newTestModel(t *testing.T) (*Model, *fakeController) {
	t.Helper()
	ctl := &fakeController{state: timer.State{
		Total:     timer.DefaultTotal,
		Remaining: timer.DefaultTotal,
		Timer:     timer.Ready,
	}}
	m, err := NewModel(ctl, config.Default())
	require.NoError(t, err)
	return m, ctl
}

func withState(m *Model, remaining time.Duration, ts timer.TimerState) {
	m.Update(MsgState{State: timer.State{Total: timer.DefaultTotal, Remaining: remaining, Timer: ts}})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_StartsFromControllerState(t *testing.T) {
	m, ctl := newTestModel(t)
	assert.Equal(t, ctl.state, m.State)
	assert.Nil(t, m.Init())
}

func TestNewModel_RejectsBadTheme(t *testing.T) {
	cfg := config.Default()
	cfg.Theme.Sand = "sand"
	_, err := NewModel(&fakeController{}, cfg)
	assert.Error(t, err)
}

func TestToggleKeyDependsOnState(t *testing.T) {
	tests := []struct {
		state timer.TimerState
		want  []timer.Event
	}{
		{timer.Ready, []timer.Event{timer.PlayClicked}},
		{timer.Running, []timer.Event{timer.PauseClicked}},
		{timer.Paused, []timer.Event{timer.PlayClicked}},
		{timer.Expired, nil},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			m, ctl := newTestModel(t)
			withState(m, 5*time.Second, tt.state)

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, ctl.events)
		})
	}
}

func TestEnterAndPAlsoToggle(t *testing.T) {
	m, ctl := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(runes("p"))
	assert.Equal(t, []timer.Event{timer.PlayClicked, timer.PlayClicked}, ctl.events)
}

func TestResetKey(t *testing.T) {
	m, ctl := newTestModel(t)
	withState(m, 0, timer.Expired)

	m.Update(runes("r"))
	assert.Equal(t, []timer.Event{timer.ResetClicked}, ctl.events)
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m, _ := newTestModel(t)
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestWindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 50, m.Height)
	assert.NotEmpty(t, m.View())
}

func TestDripFadesContinuously(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, 0.0, m.DripAlpha())

	withState(m, 9*time.Second, timer.Running)
	m.Update(MsgFrame{})
	first := m.DripAlpha()
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, 1.0)

	prev := first
	for i := 0; i < 90; i++ {
		m.Update(MsgFrame{})
		assert.GreaterOrEqual(t, m.DripAlpha(), prev)
		prev = m.DripAlpha()
	}
	assert.Greater(t, m.DripAlpha(), 0.95)

	withState(m, 9*time.Second, timer.Paused)
	m.Update(MsgFrame{})
	assert.Less(t, m.DripAlpha(), prev)
	assert.Greater(t, m.DripAlpha(), 0.0)

	for i := 0; i < 90; i++ {
		m.Update(MsgFrame{})
	}
	assert.Less(t, m.DripAlpha(), 0.05)
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()
	assert.Contains(t, out, "Hourglass")
	assert.Contains(t, out, "10")
	assert.Contains(t, out, "ready")
	assert.Contains(t, out, "Play")
	assert.Contains(t, out, "Reset")

	withState(m, 6500*time.Millisecond, timer.Running)
	out = m.View()
	assert.Contains(t, out, "6")
	assert.Contains(t, out, "running · 35%")
	assert.Contains(t, out, "Pause")
	assert.NotContains(t, out, "Play")

	withState(m, 0, timer.Expired)
	out = m.View()
	assert.Contains(t, out, "expired · 100%")
	assert.Contains(t, out, "Reset")
	assert.NotContains(t, out, "Play")
	assert.NotContains(t, out, "Pause")
}
