package internal

import (
	"fmt"
	"math"
	"strings"

	"hourglass/internal/timer"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	statusStyles = map[timer.TimerState]lipgloss.Style{
		timer.Ready:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		timer.Running: lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true),
		timer.Paused:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		timer.Expired: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Margin(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func (m *Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Hourglass"),
		"",
		boxStyle.Render(m.canvas.Render(m.State.Percentage(), m.drip.alpha)),
		m.readoutView(),
		m.statusView(),
		m.buttonsView(),
		helpStyle.Render(m.helpText()),
	)

	if m.Width == 0 || m.Height == 0 {
		return body
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) readoutView() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Text)).
		Bold(true).
		Padding(1, 0, 0, 0).
		Render(m.State.DisplayTime())
}

func (m *Model) statusView() string {
	style, ok := statusStyles[m.State.Timer]
	if !ok {
		style = helpStyle
	}
	return style.Render(fmt.Sprintf("%s · %d%%", m.State.Timer, int(math.Round(m.State.Percentage()*100))))
}

// buttonsView hides the play/pause button once the countdown has expired.
func (m *Model) buttonsView() string {
	buttons := []string{buttonStyle.Render("Reset")}
	if label := m.playPauseLabel(); label != "" {
		buttons = append(buttons, buttonStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m *Model) playPauseLabel() string {
	switch m.State.Timer {
	case timer.Running:
		return "Pause"
	case timer.Ready, timer.Paused:
		return "Play"
	}
	return ""
}

func (m *Model) helpText() string {
	parts := []string{"Reset: r", "Quit: q"}
	if label := m.playPauseLabel(); label != "" {
		parts = append([]string{label + ": space"}, parts...)
	}
	return strings.Join(parts, " | ")
}
