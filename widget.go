package tzclock

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Class names referenced by the control's view. Hosts style elements by these.
const (
	ClassWrapper  = "timezone-converter"
	ClassHeader   = "timezone-converter-header"
	ClassLabel    = "timezone-converter-label"
	ClassDatetime = "datetime-input"
	ClassCity     = "city-dropdown"
	ClassClock    = "analog-clock"
)

// InputTypeDatetimeLocal is the input type of the datetime field.
const InputTypeDatetimeLocal = "datetime-local"

// DatetimeLayout is the value format of a datetime-local input.
const DatetimeLayout = "2006-01-02T15:04"

// Option configures a ClockControl.
type Option func(*ClockControl)

// WithLogger sets the control's logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *ClockControl) { c.log = l }
}

// WithResolver replaces the zone resolver.
func WithResolver(r ZoneResolver) Option {
	return func(c *ClockControl) { c.resolver = r }
}

// ClockControl is an analog clock showing the current time of a city picked
// from a fixed list. It implements StandardControl.
//
// The clock always shows "now" in the selected zone. Editing the datetime
// field only triggers an immediate repaint; its value is never read.
type ClockControl struct {
	id       string
	log      zerolog.Logger
	resolver ZoneResolver

	clock               clockwork.Clock
	dispatcher          Dispatcher
	notifyOutputChanged func()

	root          *Element
	datetimeInput *Element
	cityDropdown  *Element
	canvas        *Element

	selectedTimezone string
	loop             *renderLoop
}

var _ StandardControl = (*ClockControl)(nil)

// NewClockControl creates a control. Nothing is built until the host calls Init.
func NewClockControl(opts ...Option) *ClockControl {
	c := &ClockControl{
		id:       uuid.NewString(),
		log:      zerolog.Nop(),
		resolver: NewLocationResolver(),
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Str("control_id", c.id).Logger()
	return c
}

// ID returns the control's instance id, used to correlate log lines.
func (c *ClockControl) ID() string {
	return c.id
}

// Init builds the view, mounts it into container, selects the first city and
// starts the 1 Hz render loop. The first tick paints the face.
func (c *ClockControl) Init(ctx *Context, notifyOutputChanged func(), _ State, container Container) {
	defer c.recoverFault("init")

	if container == nil {
		c.log.Error().Msg("init called without a container")
		return
	}
	c.notifyOutputChanged = notifyOutputChanged
	if ctx != nil {
		if ctx.Clock != nil {
			c.clock = ctx.Clock
		}
		c.dispatcher = ctx.Dispatcher
	}

	c.buildView()
	container.AppendChild(c.root)

	c.selectedTimezone = DefaultTimezone()

	c.datetimeInput.AddEventListener(EventChange, c.guard("datetime-change", c.updateClock))
	c.cityDropdown.AddEventListener(EventChange, c.guard("city-change", c.onCityChange))

	c.startClock()

	c.log.Info().Str("timezone", c.selectedTimezone).Msg("clock control initialized")
}

// buildView composes the element tree once.
func (c *ClockControl) buildView() {
	root := NewDiv(ClassWrapper, "")
	root.AddChild(NewDiv(ClassHeader, "Timezone Converter"))

	root.AddChild(NewLabel(ClassLabel, "Select Local Datetime:"))
	c.datetimeInput = NewInput(ClassDatetime, InputTypeDatetimeLocal)
	root.AddChild(c.datetimeInput)

	root.AddChild(NewLabel(ClassLabel, "Select City:"))
	opts := make([]SelectOption, 0, len(cityTable))
	for _, e := range cityTable {
		opts = append(opts, SelectOption{Value: e.Timezone, Text: e.City})
	}
	c.cityDropdown = NewSelect(ClassCity, opts)
	root.AddChild(c.cityDropdown)

	c.canvas = NewCanvas(ClassClock, CanvasWidth, CanvasHeight)
	root.AddChild(c.canvas)

	c.root = root
}

// onCityChange stores the dropdown's value as the active zone and repaints.
func (c *ClockControl) onCityChange() {
	zone := c.cityDropdown.Value()
	if !IsListedTimezone(zone) {
		c.log.Warn().Str("timezone", zone).Msg("ignoring selection outside the city list")
		return
	}
	c.selectedTimezone = zone
	c.log.Debug().Str("timezone", zone).Msg("city changed")
	c.updateClock()
}

// updateClock samples now in the active zone and repaints immediately.
func (c *ClockControl) updateClock() {
	c.render(c.clock.Now())
}

// startClock replaces any running loop with a fresh 1 Hz loop.
func (c *ClockControl) startClock() {
	c.stopClock()
	if c.dispatcher == nil {
		c.log.Warn().Msg("host has no dispatcher, periodic updates disabled")
		return
	}
	c.loop = startRenderLoop(c.clock, TickInterval, c.dispatcher, c.tick)
}

func (c *ClockControl) stopClock() {
	if c.loop == nil {
		return
	}
	c.loop.Stop()
	c.loop = nil
}

// tick runs on the UI thread. Ticks from a replaced or stopped loop are dropped.
func (c *ClockControl) tick(l *renderLoop) {
	defer c.recoverFault("tick")
	if l != c.loop || l.stopped() {
		return
	}
	c.render(c.clock.Now())
}

func (c *ClockControl) render(now time.Time) {
	s, err := c.resolver.Sample(now, c.selectedTimezone)
	if err != nil {
		c.log.Warn().Err(err).Str("timezone", c.selectedTimezone).Msg("skipping render")
		return
	}
	if !RenderSurface(c.canvas, s) {
		c.log.Debug().Msg("canvas has no 2d context")
	}
}

// UpdateView is a no-op: the control consumes no bound inputs.
func (c *ClockControl) UpdateView(_ *Context) {
	defer c.recoverFault("update-view")
	c.log.Debug().Msg("update view")
}

// GetOutputs returns an empty record; the control is display-only.
func (c *ClockControl) GetOutputs() Outputs {
	return Outputs{}
}

// Destroy stops the render loop and disposes the view. Safe to call more than
// once, and after a failed Init.
func (c *ClockControl) Destroy() {
	defer c.recoverFault("destroy")
	c.stopClock()
	if c.root != nil {
		c.root.Dispose()
		c.root = nil
		c.log.Info().Msg("clock control destroyed")
	}
}

// SelectedTimezone returns the active zone, or "" before Init.
func (c *ClockControl) SelectedTimezone() string {
	return c.selectedTimezone
}

// Running reports whether the render loop is active.
func (c *ClockControl) Running() bool {
	return c.loop != nil
}

// View returns the mounted element tree, or nil before Init and after Destroy.
func (c *ClockControl) View() *Element {
	return c.root
}

// guard wraps an event handler so a panic is logged instead of reaching the host.
func (c *ClockControl) guard(name string, fn func()) func() {
	return func() {
		defer c.recoverFault(name)
		fn()
	}
}

func (c *ClockControl) recoverFault(op string) {
	if r := recover(); r != nil {
		c.log.Error().Err(fmt.Errorf("panic: %v", r)).Str("op", op).Msg("recovered from control fault")
	}
}
