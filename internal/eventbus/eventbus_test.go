package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	mu     sync.Mutex
	events []DomainEvent
}

func (c *collector) add(e DomainEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *collector) snapshot() []DomainEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]DomainEvent, len(c.events))
	copy(out, c.events)
	return out
}

func TestPublishDeliversInOrder(t *testing.T) {
	b := New(nil)
	defer b.Close()

	c := &collector{}
	b.Subscribe(EventSelectionIndexChanged, c.add)
	b.Subscribe(EventSelectionTextChanged, c.add)

	b.Publish(SelectionIndexChangedEvent{Index: 2})
	b.Publish(SelectionTextChangedEvent{Text: "C"})

	require.Eventually(t, func() bool { return len(c.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	events := c.snapshot()
	assert.Equal(t, SelectionIndexChangedEvent{Index: 2}, events[0])
	assert.Equal(t, SelectionTextChangedEvent{Text: "C"}, events[1])
}

func TestSubscribeFiltersByType(t *testing.T) {
	b := New(nil)
	defer b.Close()

	c := &collector{}
	b.Subscribe(EventValueChanged, c.add)
	b.Publish(SelectionIndexChangedEvent{Index: 1})
	b.Publish(ValueChangedEvent{})

	require.Eventually(t, func() bool { return len(c.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, EventValueChanged, c.snapshot()[0].Type())
}

func TestUnsubscribe(t *testing.T) {
	b := New(nil)
	defer b.Close()

	first := &collector{}
	second := &collector{}
	unsubscribe := b.Subscribe(EventValueChanged, first.add)
	b.Subscribe(EventValueChanged, second.add)
	unsubscribe()

	b.Publish(ValueChangedEvent{})
	require.Eventually(t, func() bool { return len(second.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, first.snapshot())
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New(nil)
	defer b.Close()

	c := &collector{}
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, c.add)

	b.Publish(ErrorEvent{Message: "first"})
	b.Publish(ErrorEvent{Message: "second"})

	require.Eventually(t, func() bool { return len(c.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New(nil)
	c := &collector{}
	b.Subscribe(EventValueChanged, c.add)
	b.Close()
	b.Close()

	assert.NotPanics(t, func() { b.Publish(ValueChangedEvent{}) })
	assert.Empty(t, c.snapshot())
}
