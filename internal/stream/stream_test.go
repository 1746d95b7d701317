package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

func TestPublishOrderPerSubscriber(t *testing.T) {
	b := New[int]()
	a, cancelA := b.Subscribe()
	defer cancelA()
	c, cancelC := b.Subscribe()
	defer cancelC()

	for i := 0; i < 100; i++ {
		b.Publish(i)
	}

	for i := 0; i < 100; i++ {
		assert.Equal(t, i, recv(t, a))
	}
	for i := 0; i < 100; i++ {
		assert.Equal(t, i, recv(t, c))
	}
}

func TestSubscribeOnlySeesLaterValues(t *testing.T) {
	b := New[string]()
	b.Publish("before")

	ch, cancel := b.Subscribe()
	defer cancel()
	b.Publish("after")

	assert.Equal(t, "after", recv(t, ch))
}

func TestCancelClosesChannel(t *testing.T) {
	b := New[int]()
	ch, cancel := b.Subscribe()
	require.Equal(t, 1, b.Len())

	cancel()
	assert.Equal(t, 0, b.Len())

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}

	// cancelling twice is harmless
	cancel()
}

func TestCloseEndsSubscriptions(t *testing.T) {
	b := New[int]()
	ch, _ := b.Subscribe()
	b.Close()
	b.Publish(1)

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after Close")
	}

	late, _ := b.Subscribe()
	select {
	case _, ok := <-late:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription after Close should be closed")
	}
}
