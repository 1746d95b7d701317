// Package timer runs the hourglass countdown: a ready/running/paused/expired
// state machine whose snapshots are broadcast to subscribers on every change.
package timer

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"hourglass/internal/clock"
	"hourglass/internal/stream"

	"github.com/google/uuid"
)

const (
	DefaultTotal = 10 * time.Second
	TickInterval = 100 * time.Millisecond
)

type Option func(*Controller)

func WithClock(c clock.Clock) Option {
	return func(ctl *Controller) {
		ctl.clock = c
	}
}

func WithLogger(l *log.Logger) Option {
	return func(ctl *Controller) {
		ctl.logger = l
	}
}

// Controller owns the countdown. At most one tick task is alive at a time;
// starting, pausing or resetting always cancels the previous one first.
type Controller struct {
	mu     sync.Mutex
	state  State
	clock  clock.Clock
	logger *log.Logger
	states *stream.Broadcaster[State]

	run    uuid.UUID
	cancel context.CancelFunc
	ticker clock.Ticker
	wg     sync.WaitGroup
}

func New(total time.Duration, opts ...Option) *Controller {
	if total <= 0 {
		total = DefaultTotal
	}
	c := &Controller{
		state:  initialState(total),
		clock:  clock.Real{},
		logger: log.New(io.Discard, "", 0),
		states: stream.New[State](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the latest snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe delivers every snapshot emitted after the call, in order,
// until cancel is called or the controller is closed.
func (c *Controller) Subscribe() (<-chan State, func()) {
	return c.states.Subscribe()
}

func (c *Controller) Dispatch(e Event) {
	switch e {
	case PlayClicked:
		c.Play()
	case PauseClicked:
		c.Pause()
	case ResetClicked:
		c.Reset()
	default:
		c.logger.Printf("timer: ignoring unknown event %d", int(e))
	}
}

// Play starts or resumes the countdown from ready or paused. It is a no-op
// in any other state.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Timer.CanPlay() {
		c.logger.Printf("timer: play ignored in state %s", c.state.Timer)
		return
	}
	c.stopLocked()

	c.state.Timer = Running
	c.states.Publish(c.state)

	ctx, cancel := context.WithCancel(context.Background())
	c.run = uuid.New()
	c.cancel = cancel
	c.ticker = c.clock.NewTicker(TickInterval)
	c.logger.Printf("timer: run %s started with %s remaining", c.run, c.state.Remaining)

	c.wg.Add(1)
	go c.loop(ctx, c.run, c.ticker)
}

// Pause cancels the tick task and freezes a running countdown.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	if c.state.Timer != Running {
		return
	}
	c.state.Timer = Paused
	c.states.Publish(c.state)
}

// Reset cancels the tick task and returns to a full, ready countdown.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.state = initialState(c.state.Total)
	c.states.Publish(c.state)
}

// Close stops the tick task, waits for it to exit and ends all subscriptions.
func (c *Controller) Close() {
	c.mu.Lock()
	c.stopLocked()
	c.mu.Unlock()

	c.wg.Wait()
	c.states.Close()
}

func (c *Controller) stopLocked() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	c.ticker.Stop()
	c.logger.Printf("timer: run %s cancelled", c.run)
	c.cancel = nil
	c.ticker = nil
	c.run = uuid.Nil
}

func (c *Controller) loop(ctx context.Context, run uuid.UUID, t clock.Ticker) {
	defer c.wg.Done()
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			if !c.tick(ctx, run) {
				return
			}
		}
	}
}

// tick applies one decrement and reports whether the task should keep going.
func (c *Controller) tick(ctx context.Context, run uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ctx.Err() != nil || c.run != run || c.state.Timer != Running {
		return false
	}

	c.state.Remaining = max(c.state.Remaining-TickInterval, 0)
	if c.state.Remaining > 0 {
		c.states.Publish(c.state)
		return true
	}

	c.state.Timer = Expired
	c.logger.Printf("timer: run %s expired", run)
	c.cancel()
	c.ticker.Stop()
	c.cancel = nil
	c.ticker = nil
	c.run = uuid.Nil
	c.states.Publish(c.state)
	return false
}
