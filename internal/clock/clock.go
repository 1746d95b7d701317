// Package clock abstracts tickers so countdowns can be driven by hand in tests.
package clock

import (
	"sync"
	"time"
)

// Clock hands out tickers.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers ticks on C until Stop is called.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Real is backed by the time package.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

func (Real) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time {
	return r.t.C
}

func (r *realTicker) Stop() {
	r.t.Stop()
}

// Manual only ticks when Tick is called. Tickers it creates are unbuffered,
// so Tick returns once every live ticker has handed its tick to a reader
// (or has been stopped).
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	tickers map[*manualTicker]struct{}
}

func NewManual(start time.Time) *Manual {
	return &Manual{
		now:     start,
		tickers: make(map[*manualTicker]struct{}),
	}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) NewTicker(d time.Duration) Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTicker{
		owner:  m,
		period: d,
		ch:     make(chan time.Time),
		done:   make(chan struct{}),
	}
	m.tickers[t] = struct{}{}
	return t
}

// Tick advances the clock by one period of each live ticker and delivers
// the tick. It blocks until every ticker has been read or stopped.
func (m *Manual) Tick() {
	m.mu.Lock()
	live := make([]*manualTicker, 0, len(m.tickers))
	for t := range m.tickers {
		live = append(live, t)
	}
	m.mu.Unlock()

	for _, t := range live {
		m.mu.Lock()
		m.now = m.now.Add(t.period)
		now := m.now
		m.mu.Unlock()

		select {
		case t.ch <- now:
		case <-t.done:
		}
	}
}

// Tickers reports how many tickers are still live.
func (m *Manual) Tickers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

type manualTicker struct {
	owner  *Manual
	period time.Duration
	ch     chan time.Time
	done   chan struct{}
	once   sync.Once
}

func (t *manualTicker) C() <-chan time.Time {
	return t.ch
}

func (t *manualTicker) Stop() {
	t.once.Do(func() {
		t.owner.mu.Lock()
		delete(t.owner.tickers, t)
		t.owner.mu.Unlock()
		close(t.done)
	})
}
