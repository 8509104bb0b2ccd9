package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatchdash/internal/config"
	"dispatchdash/internal/domain"
	"dispatchdash/internal/eventbus"
	"dispatchdash/internal/eventbus/eventbustest"
)

// fakeClock schedules timers on a manual clock
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

func (c *fakeClock) schedule(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{at: c.now + d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock and fires every due timer that was not stopped
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

// FireStopped runs a stopped timer anyway, as a timer racing its Stop would
func (c *fakeClock) FireStopped() {
	c.mu.Lock()
	var stale []*fakeTimer
	for _, t := range c.timers {
		if t.stopped && !t.fired {
			t.fired = true
			stale = append(stale, t)
		}
	}
	c.mu.Unlock()

	for _, t := range stale {
		t.fn()
	}
}

type harness struct {
	svc   *Service
	clock *fakeClock
	bus   *eventbustest.Recorder
	calls []string
}

func newHarness(t *testing.T, minLength int) *harness {
	t.Helper()
	h := &harness{clock: &fakeClock{}, bus: eventbustest.NewRecorder()}
	svc, err := NewService(h.bus, domain.TableDrivers, Settings{MinLength: minLength, Debounce: 300 * time.Millisecond})
	require.NoError(t, err)
	svc.SetScheduler(h.clock.schedule)
	svc.SetSearchFunction(func(q string) { h.calls = append(h.calls, q) })
	h.svc = svc
	return h
}

func TestNewServiceValidatesSettings(t *testing.T) {
	_, err := NewService(nil, domain.TableDrivers, Settings{MinLength: -1})
	require.ErrorIs(t, err, config.ErrInvalidMinSearchLength)

	_, err = NewService(nil, domain.TableDrivers, Settings{MinLength: 3, Debounce: -time.Second})
	require.ErrorIs(t, err, config.ErrInvalidDebounce)
}

func TestRapidInputFiresOnceWithLastValue(t *testing.T) {
	h := newHarness(t, 3)

	h.svc.OnInput("a")
	h.clock.Advance(100 * time.Millisecond)
	h.svc.OnInput("ab")
	h.clock.Advance(100 * time.Millisecond)
	h.svc.OnInput("abc")
	h.clock.Advance(299 * time.Millisecond)
	assert.Empty(t, h.calls)
	assert.True(t, h.svc.Pending())

	h.clock.Advance(time.Millisecond)
	assert.Equal(t, []string{"abc"}, h.calls)
	assert.False(t, h.svc.Pending())
	assert.Equal(t, "abc", h.svc.Settled())

	events := h.bus.OfType(eventbus.EventSearchSettled)
	require.Len(t, events, 1)
	assert.Equal(t, domain.SearchSettledEvent{Table: domain.TableDrivers, Query: "abc"}, events[0])
}

func TestShortQueryNeverFires(t *testing.T) {
	h := newHarness(t, 3)

	h.svc.OnInput("ab")
	h.clock.Advance(time.Second)

	assert.Empty(t, h.calls)
	assert.False(t, h.svc.Pending())
	assert.Equal(t, "ab", h.svc.Query())
}

func TestEmptyQueryBypassesMinimumLength(t *testing.T) {
	h := newHarness(t, 3)

	h.svc.OnInput("")
	h.clock.Advance(300 * time.Millisecond)

	assert.Equal(t, []string{""}, h.calls)
}

func TestShortInputCancelsPendingQuery(t *testing.T) {
	h := newHarness(t, 3)

	h.svc.OnInput("abcd")
	h.clock.Advance(200 * time.Millisecond)
	h.svc.OnInput("ab")
	h.clock.Advance(time.Second)

	assert.Empty(t, h.calls)
}

func TestMinimumLengthCountsRunes(t *testing.T) {
	h := newHarness(t, 3)

	h.svc.OnInput("żół")
	h.clock.Advance(300 * time.Millisecond)

	assert.Equal(t, []string{"żół"}, h.calls)
}

func TestZeroMinimumLengthAcceptsAnything(t *testing.T) {
	h := newHarness(t, 0)

	h.svc.OnInput("x")
	h.clock.Advance(300 * time.Millisecond)

	assert.Equal(t, []string{"x"}, h.calls)
}

func TestSameValueDispatchesAgain(t *testing.T) {
	h := newHarness(t, 3)

	h.svc.OnInput("van")
	h.clock.Advance(300 * time.Millisecond)
	h.svc.OnInput("van")
	h.clock.Advance(300 * time.Millisecond)

	assert.Equal(t, []string{"van", "van"}, h.calls)
}

func TestCancelDropsPendingDispatch(t *testing.T) {
	h := newHarness(t, 3)

	h.svc.OnInput("harbor")
	h.svc.Cancel()
	h.clock.Advance(time.Second)
	assert.Empty(t, h.calls)

	h.svc.OnInput("harbor")
	h.clock.Advance(300 * time.Millisecond)
	assert.Equal(t, []string{"harbor"}, h.calls)
}

func TestCloseStopsTimerAndIgnoresLaterInput(t *testing.T) {
	h := newHarness(t, 3)

	h.svc.OnInput("downtown")
	h.svc.Close()
	h.clock.Advance(time.Second)
	h.svc.OnInput("riverside")
	h.clock.Advance(time.Second)

	assert.Empty(t, h.calls)
	assert.Empty(t, h.bus.Events())
	assert.False(t, h.svc.Pending())
}

func TestStaleTimerIsDiscarded(t *testing.T) {
	h := newHarness(t, 3)

	h.svc.OnInput("first")
	h.svc.OnInput("second")
	h.clock.FireStopped()
	assert.Empty(t, h.calls, "a timer that lost the race with Stop must not dispatch")

	h.clock.Advance(300 * time.Millisecond)
	assert.Equal(t, []string{"second"}, h.calls)
}

func TestRealTimerDispatches(t *testing.T) {
	svc, err := NewService(nil, domain.TableOrders, Settings{MinLength: 3, Debounce: 10 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(svc.Close)

	got := make(chan string, 4)
	svc.SetSearchFunction(func(q string) { got <- q })

	svc.OnInput("a")
	svc.OnInput("ab")
	svc.OnInput("abc")

	select {
	case q := <-got:
		assert.Equal(t, "abc", q)
	case <-time.After(time.Second):
		require.Fail(t, "debounced search did not fire")
	}
	assert.Never(t, func() bool { return len(got) > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}
