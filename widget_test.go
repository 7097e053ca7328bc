package tzclock

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queueDispatcher collects posted callbacks; the test goroutine plays the UI
// thread by draining them.
type queueDispatcher struct {
	mu    sync.Mutex
	queue []func()
}

func (q *queueDispatcher) Post(fn func()) {
	q.mu.Lock()
	q.queue = append(q.queue, fn)
	q.mu.Unlock()
}

func (q *queueDispatcher) pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}

func (q *queueDispatcher) drain() int {
	q.mu.Lock()
	fns := q.queue
	q.queue = nil
	q.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// recordingSurface counts how often a context was requested (one per render)
// and keeps the last frame.
type recordingSurface struct {
	CommandList
	renders int
}

func (s *recordingSurface) Context2D() DrawContext {
	s.renders++
	return &s.CommandList
}

type testContainer struct {
	children []*Element
	surface  Surface
}

func (c *testContainer) AppendChild(el *Element) {
	c.children = append(c.children, el)
	if c.surface == nil {
		return
	}
	el.Walk(func(e *Element) bool {
		if e.Kind == ElementCanvas {
			e.BindSurface(c.surface)
		}
		return true
	})
}

type harness struct {
	ctl       *ClockControl
	clock     *clockwork.FakeClock
	queue     *queueDispatcher
	surface   *recordingSurface
	container *testContainer
}

// fixedStart is 12:00:00 UTC in winter: New York 07:00, Tokyo 21:00.
var fixedStart = time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		ctl:     NewClockControl(opts...),
		clock:   clockwork.NewFakeClockAt(fixedStart),
		queue:   &queueDispatcher{},
		surface: &recordingSurface{},
	}
	h.container = &testContainer{surface: h.surface}
	h.ctl.Init(&Context{Dispatcher: h.queue, Clock: h.clock}, func() {}, nil, h.container)
	t.Cleanup(h.ctl.Destroy)
	return h
}

// advance moves the fake clock by one tick and runs the posted callback.
func (h *harness) advance(t *testing.T) {
	t.Helper()
	h.clock.Advance(TickInterval)
	require.Eventually(t, func() bool { return h.queue.pending() > 0 },
		time.Second, time.Millisecond, "tick was not posted")
	h.queue.drain()
}

// lastHourHand returns the end point of the hour hand in the last frame.
func lastHourHand(t *testing.T, s *recordingSurface) Vec2 {
	t.Helper()
	cmds := s.Commands()
	require.Len(t, cmds, 17)
	require.Equal(t, CommandLine, cmds[14].Type)
	return cmds[14].To
}

func TestInitBuildsView(t *testing.T) {
	h := newHarness(t)

	require.Len(t, h.container.children, 1)
	root := h.container.children[0]
	assert.Equal(t, ClassWrapper, root.Class)
	require.Equal(t, 6, root.NumChildren())

	header := root.ChildAt(0)
	assert.Equal(t, ElementDiv, header.Kind)
	assert.Equal(t, ClassHeader, header.Class)
	assert.Equal(t, "Timezone Converter", header.Text)

	assert.Equal(t, "Select Local Datetime:", root.ChildAt(1).Text)
	input := root.ChildAt(2)
	assert.Equal(t, ElementInput, input.Kind)
	assert.Equal(t, "datetime-local", input.InputType)
	assert.Equal(t, ClassDatetime, input.Class)

	assert.Equal(t, "Select City:", root.ChildAt(3).Text)
	sel := root.ChildAt(4)
	assert.Equal(t, ElementSelect, sel.Kind)
	assert.Equal(t, ClassCity, sel.Class)
	opts := sel.Options()
	require.Len(t, opts, len(Cities()))
	for i, c := range Cities() {
		assert.Equal(t, SelectOption{Value: c.Timezone, Text: c.City}, opts[i])
	}
	assert.Equal(t, 0, sel.SelectedIndex())

	cv := root.ChildAt(5)
	assert.Equal(t, ElementCanvas, cv.Kind)
	assert.Equal(t, ClassClock, cv.Class)
	assert.Equal(t, 200, cv.Width)
	assert.Equal(t, 200, cv.Height)

	assert.Equal(t, "America/New_York", h.ctl.SelectedTimezone())
	assert.True(t, h.ctl.Running())
	assert.Same(t, root, h.ctl.View())
	assert.Empty(t, h.ctl.GetOutputs())
	assert.NotNil(t, h.ctl.GetOutputs())
	assert.Zero(t, h.surface.renders, "first paint waits for the first tick")
}

func TestSelectingEachCity(t *testing.T) {
	h := newHarness(t)
	sel := h.container.children[0].FindByClass(ClassCity)

	for i, c := range Cities() {
		require.True(t, sel.SelectIndex(i))
		require.Equal(t, 1, sel.Dispatch(EventChange))
		assert.Equal(t, c.Timezone, h.ctl.SelectedTimezone(), "city %s", c.City)
	}
	assert.Equal(t, len(Cities()), h.surface.renders, "each change repaints immediately")
}

func TestCityChangeRendersSelectedZone(t *testing.T) {
	h := newHarness(t)
	sel := h.container.children[0].FindByClass(ClassCity)

	require.True(t, sel.SetValue("Asia/Tokyo"))
	sel.Dispatch(EventChange)

	// 21:00 in Tokyo: hour hand points at 9 o'clock.
	end := lastHourHand(t, h.surface)
	assert.InDelta(t, 50, end.X, 1e-9)
	assert.InDelta(t, 100, end.Y, 1e-9)
}

func TestRenderLoopFiresOncePerSecond(t *testing.T) {
	h := newHarness(t)

	for i := 0; i < 5; i++ {
		h.advance(t)
	}

	assert.Equal(t, 5, h.surface.renders)
	assert.Zero(t, h.queue.pending())

	// 12:00:05 UTC is 07:00:05 in New York.
	cmds := h.surface.Commands()
	require.Len(t, cmds, 17)
	sec := cmds[16].To
	want := PointOnFace(SecondAngle(WallClockSample{Seconds: 5}), SecondHandLength)
	assert.InDelta(t, want.X, sec.X, 1e-9)
	assert.InDelta(t, want.Y, sec.Y, 1e-9)
}

func TestDatetimeChangeRendersLiveTime(t *testing.T) {
	h := newHarness(t)
	input := h.container.children[0].FindByClass(ClassDatetime)

	require.True(t, input.SetValue("1999-12-31T03:15"))
	require.Equal(t, 1, input.Dispatch(EventChange))

	assert.Equal(t, 1, h.surface.renders)
	// Live New York time (07:00), not the typed 03:15.
	end := lastHourHand(t, h.surface)
	want := PointOnFace(HourAngle(WallClockSample{Hours: 7}), HourHandLength)
	assert.InDelta(t, want.X, end.X, 1e-9)
	assert.InDelta(t, want.Y, end.Y, 1e-9)
}

func TestImmediateRenderPrecedesNextTick(t *testing.T) {
	h := newHarness(t)
	sel := h.container.children[0].FindByClass(ClassCity)

	h.clock.Advance(TickInterval)
	require.Eventually(t, func() bool { return h.queue.pending() > 0 }, time.Second, time.Millisecond)

	// The user changes city while the tick is still queued.
	require.True(t, sel.SetValue("Asia/Tokyo"))
	sel.Dispatch(EventChange)
	assert.Equal(t, 1, h.surface.renders)

	h.queue.drain()
	assert.Equal(t, 2, h.surface.renders)
	assert.Equal(t, "Asia/Tokyo", h.ctl.SelectedTimezone())
}

func TestDestroyIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.advance(t)
	require.Equal(t, 1, h.surface.renders)

	assert.NotPanics(t, h.ctl.Destroy)
	assert.NotPanics(t, h.ctl.Destroy)
	assert.False(t, h.ctl.Running())
	assert.Nil(t, h.ctl.View())

	h.clock.Advance(5 * TickInterval)
	// Give a leaked loop a chance to post.
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, h.queue.pending(), "no tick after destroy")
	assert.Equal(t, 1, h.surface.renders)
}

func TestQueuedTickDroppedAfterDestroy(t *testing.T) {
	h := newHarness(t)
	h.clock.Advance(TickInterval)
	require.Eventually(t, func() bool { return h.queue.pending() > 0 }, time.Second, time.Millisecond)

	h.ctl.Destroy()
	h.queue.drain()
	assert.Zero(t, h.surface.renders)
}

func TestRestartKeepsSingleLoop(t *testing.T) {
	h := newHarness(t)
	first := h.ctl.loop
	h.ctl.startClock()
	require.NotSame(t, first, h.ctl.loop)
	assert.True(t, first.stopped())

	h.advance(t)
	time.Sleep(20 * time.Millisecond)
	h.queue.drain()
	assert.Equal(t, 1, h.surface.renders)
}

func TestDestroyWithoutInit(t *testing.T) {
	ctl := NewClockControl()
	assert.NotPanics(t, ctl.Destroy)
	assert.NotPanics(t, ctl.Destroy)
}

func TestInitWithoutContainer(t *testing.T) {
	var buf bytes.Buffer
	ctl := NewClockControl(WithLogger(zerolog.New(&buf)))
	ctl.Init(&Context{Dispatcher: &queueDispatcher{}}, nil, nil, nil)

	assert.False(t, ctl.Running())
	assert.Nil(t, ctl.View())
	assert.Contains(t, buf.String(), "without a container")
	assert.NotPanics(t, ctl.Destroy)
}

func TestInitWithoutDispatcher(t *testing.T) {
	surface := &recordingSurface{}
	container := &testContainer{surface: surface}
	ctl := NewClockControl()
	ctl.Init(&Context{Clock: clockwork.NewFakeClockAt(fixedStart)}, nil, nil, container)
	defer ctl.Destroy()

	assert.False(t, ctl.Running())
	sel := container.children[0].FindByClass(ClassCity)
	sel.Dispatch(EventChange)
	assert.Equal(t, 1, surface.renders, "user events still repaint")
}

type panicContainer struct{}

func (panicContainer) AppendChild(*Element) { panic("host exploded") }

func TestInitRecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	ctl := NewClockControl(WithLogger(zerolog.New(&buf)))
	assert.NotPanics(t, func() {
		ctl.Init(&Context{Dispatcher: &queueDispatcher{}}, nil, nil, panicContainer{})
	})
	assert.Contains(t, buf.String(), "host exploded")
	assert.NotPanics(t, ctl.Destroy)
}

type failingResolver struct{ calls int }

func (r *failingResolver) Sample(time.Time, string) (WallClockSample, error) {
	r.calls++
	return WallClockSample{}, ErrUnknownZone
}

func TestResolverFailureSkipsRender(t *testing.T) {
	var buf bytes.Buffer
	res := &failingResolver{}
	h := newHarness(t, WithResolver(res), WithLogger(zerolog.New(&buf)))

	h.advance(t)
	h.advance(t)

	assert.Equal(t, 2, res.calls)
	assert.Zero(t, h.surface.renders)
	assert.Contains(t, buf.String(), "skipping render")
}

func TestRenderWithoutSurfaceIsSilent(t *testing.T) {
	queue := &queueDispatcher{}
	clock := clockwork.NewFakeClockAt(fixedStart)
	container := &testContainer{}
	ctl := NewClockControl()
	ctl.Init(&Context{Dispatcher: queue, Clock: clock}, nil, nil, container)
	defer ctl.Destroy()

	clock.Advance(TickInterval)
	require.Eventually(t, func() bool { return queue.pending() > 0 }, time.Second, time.Millisecond)
	assert.NotPanics(t, func() { queue.drain() })
}

func TestUpdateViewIsNoop(t *testing.T) {
	h := newHarness(t)
	h.ctl.UpdateView(&Context{Parameters: map[string]any{"ignored": 1}})
	assert.Equal(t, "America/New_York", h.ctl.SelectedTimezone())
	assert.Zero(t, h.surface.renders)
}

func TestControlIDsAreUnique(t *testing.T) {
	a, b := NewClockControl(), NewClockControl()
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}
