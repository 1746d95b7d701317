package timer

import (
	"strconv"
	"time"
)

// TimerState is the countdown lifecycle phase.
type TimerState string

const (
	Ready   TimerState = "ready"
	Running TimerState = "running"
	Paused  TimerState = "paused"
	Expired TimerState = "expired"
)

func (s TimerState) String() string {
	return string(s)
}

// CanPlay reports whether Play starts the countdown from this state.
func (s TimerState) CanPlay() bool {
	return s == Ready || s == Paused
}

// CanPause reports whether Pause has a visible effect from this state.
func (s TimerState) CanPause() bool {
	return s == Running
}

// IsTerminal reports whether only Reset leaves this state.
func (s TimerState) IsTerminal() bool {
	return s == Expired
}

// State is an immutable snapshot of the countdown.
type State struct {
	Total     time.Duration
	Remaining time.Duration
	Timer     TimerState
}

func initialState(total time.Duration) State {
	return State{Total: total, Remaining: total, Timer: Ready}
}

// DisplaySeconds is the remaining time in whole seconds, rounded down.
func (s State) DisplaySeconds() int {
	if s.Remaining <= 0 {
		return 0
	}
	return int(s.Remaining / time.Second)
}

func (s State) DisplayTime() string {
	return strconv.Itoa(s.DisplaySeconds())
}

// Percentage is the elapsed fraction of Total, in [0, 1].
func (s State) Percentage() float64 {
	if s.Total <= 0 {
		return 0
	}
	p := float64(s.Total-s.Remaining) / float64(s.Total)
	return min(max(p, 0), 1)
}

// Event is a user intent coming from the presentation layer.
type Event int

const (
	PlayClicked Event = iota
	PauseClicked
	ResetClicked
)

func (e Event) String() string {
	switch e {
	case PlayClicked:
		return "play"
	case PauseClicked:
		return "pause"
	case ResetClicked:
		return "reset"
	}
	return "unknown"
}
