package internal

import (
	"fmt"

	"hourglass/internal/config"
	"hourglass/internal/geometry"
	"hourglass/internal/render"
	"hourglass/internal/timer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// FrameRate is how many MsgFrame per second drive the drip animation.
const FrameRate = 30

// MsgState carries a countdown snapshot into the update loop.
type MsgState struct {
	State timer.State
}

// MsgFrame advances animations by one frame.
type MsgFrame struct{}

type Controller interface {
	Dispatch(e timer.Event)
	State() timer.State
}

type Model struct {
	State  timer.State
	Width  int
	Height int

	ctl    Controller
	canvas *render.Renderer
	theme  config.ThemeConfig
	drip   fade
}

func NewModel(ctl Controller, cfg *config.Config) (*Model, error) {
	canvas, err := render.New(geometry.DefaultLayout, render.Palette{
		Frame:      cfg.Theme.Frame,
		Sand:       cfg.Theme.Sand,
		Drip:       cfg.Theme.Drip,
		Background: cfg.Theme.Background,
	}, cfg.Canvas.Columns, cfg.Canvas.Rows)
	if err != nil {
		return nil, fmt.Errorf("failed to build canvas: %w", err)
	}

	return &Model{
		State:  ctl.State(),
		ctl:    ctl,
		canvas: canvas,
		theme:  cfg.Theme,
		drip:   newFade(FrameRate),
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgState:
		m.State = msg.State
		return m, nil
	case MsgFrame:
		target := 0.0
		if m.State.Timer == timer.Running {
			target = 1
		}
		m.drip.step(target)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	}
	return m, nil
}

// DripAlpha is the current opacity of the drip line.
func (m *Model) DripAlpha() float64 {
	return m.drip.alpha
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case " ", "space", "enter", "p":
		switch {
		case m.State.Timer.CanPause():
			m.ctl.Dispatch(timer.PauseClicked)
		case m.State.Timer.CanPlay():
			m.ctl.Dispatch(timer.PlayClicked)
		}
	case "r":
		m.ctl.Dispatch(timer.ResetClicked)
	}
	return m, nil
}

// fade eases an opacity toward 0 or 1 with a critically damped spring, one
// step per frame.
type fade struct {
	spring   harmonica.Spring
	alpha    float64
	velocity float64
}

func newFade(fps int) fade {
	return fade{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)}
}

func (f *fade) step(target float64) float64 {
	f.alpha, f.velocity = f.spring.Update(f.alpha, f.velocity, target)
	f.alpha = geometry.Clamp01(f.alpha)
	return f.alpha
}
