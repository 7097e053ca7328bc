// Package host runs a tzclock control in a desktop window. It plays the part
// of the page: it owns the element tree the control mounts, rasterizes canvas
// elements, turns keyboard and mouse input into change events and serializes
// the control's timer callbacks onto the game loop.
package host

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/phanxgames/tzclock"
)

// Options configures a Runtime.
type Options struct {
	Title         string
	Scale         float64
	ShowFPS       bool
	ScreenshotDir string
	Script        *Script

	// Style defaults to DefaultStyle.
	Style *Style

	// Clock defaults to the real clock.
	Clock clockwork.Clock

	Logger zerolog.Logger
}

// Runtime is an ebiten.Game hosting a single control. It implements
// tzclock.Container for mounting and tzclock.Dispatcher for timer callbacks.
type Runtime struct {
	opts  Options
	log   zerolog.Logger
	clock clockwork.Clock
	style Style
	font  *Font

	mu     sync.Mutex
	posted []func()

	control  tzclock.StandardControl
	body     *tzclock.Element
	surfaces map[*tzclock.Element]*ImageSurface
	boxes    []Box
	width    float64
	height   float64
	focus    *tzclock.Element
	ring     *focusRing

	shots    screenshotter
	script   *Script
	fps      *fpsOverlay
	quitting bool
}

var (
	_ ebiten.Game        = (*Runtime)(nil)
	_ tzclock.Container  = (*Runtime)(nil)
	_ tzclock.Dispatcher = (*Runtime)(nil)
	_ scriptTarget       = (*Runtime)(nil)
)

// New creates a Runtime. Nothing is mounted yet.
func New(opts Options) (*Runtime, error) {
	font, err := DefaultFont()
	if err != nil {
		return nil, err
	}
	r := &Runtime{
		opts:     opts,
		log:      opts.Logger,
		clock:    opts.Clock,
		font:     font,
		body:     tzclock.NewDiv("host-body", ""),
		surfaces: make(map[*tzclock.Element]*ImageSurface),
		script:   opts.Script,
	}
	if r.clock == nil {
		r.clock = clockwork.NewRealClock()
	}
	if opts.Style != nil {
		r.style = *opts.Style
	} else {
		r.style = DefaultStyle()
	}
	if r.opts.Scale <= 0 {
		r.opts.Scale = 1
	}
	r.ring = newFocusRing(r.style.Field.Border.Color(), r.style.Header.Color.Color())
	if opts.ShowFPS {
		r.fps = newFPSOverlay()
	}
	r.shots = screenshotter{dir: opts.ScreenshotDir, now: r.clock.Now, log: r.log}
	if r.shots.dir == "" {
		r.shots.dir = "screenshots"
	}
	r.relayout()
	return r, nil
}

// Post implements tzclock.Dispatcher. fn runs during the next Update. Post
// never blocks and is safe from any goroutine.
func (r *Runtime) Post(fn func()) {
	r.mu.Lock()
	r.posted = append(r.posted, fn)
	r.mu.Unlock()
}

// drain runs every posted callback in order and returns how many ran.
// Callbacks posted while draining run on the next call.
func (r *Runtime) drain() int {
	r.mu.Lock()
	fns := r.posted
	r.posted = nil
	r.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// AppendChild implements tzclock.Container. Canvas elements in the subtree
// get an offscreen surface of their declared size.
func (r *Runtime) AppendChild(el *tzclock.Element) {
	r.body.AddChild(el)
	el.Walk(func(e *tzclock.Element) bool {
		if e.Kind == tzclock.ElementCanvas && r.surfaces[e] == nil {
			s := NewImageSurface(max(e.Width, 1), max(e.Height, 1), r.font)
			e.BindSurface(s)
			r.surfaces[e] = s
		}
		return true
	})
	r.relayout()
}

// Mount initializes ctl against this runtime.
func (r *Runtime) Mount(ctl tzclock.StandardControl) {
	r.control = ctl
	ctx := &tzclock.Context{Dispatcher: r, Clock: r.clock}
	ctl.Init(ctx, r.outputsChanged, tzclock.State{}, r)
	r.log.Info().Int("elements", len(r.boxes)).Msg("control mounted")
}

// Unmount destroys the mounted control and releases its surfaces. Callbacks
// still queued are dropped.
func (r *Runtime) Unmount() {
	if r.control == nil {
		return
	}
	r.control.Destroy()
	r.control = nil

	r.mu.Lock()
	dropped := len(r.posted)
	r.posted = nil
	r.mu.Unlock()

	for e, s := range r.surfaces {
		s.Dispose()
		delete(r.surfaces, e)
	}
	for r.body.NumChildren() > 0 {
		r.body.ChildAt(0).RemoveFromParent()
	}
	r.focus = nil
	r.ring.Reset()
	r.relayout()
	r.log.Info().Int("dropped_callbacks", dropped).Msg("control unmounted")
}

func (r *Runtime) outputsChanged() {
	if r.control == nil {
		return
	}
	r.log.Debug().Interface("outputs", r.control.GetOutputs()).Msg("outputs changed")
}

func (r *Runtime) relayout() {
	r.boxes, r.width, r.height = Layout(r.body, r.style)
}

// Size returns the logical window size in pixels.
func (r *Runtime) Size() (w, h int) {
	return max(int(math.Ceil(r.width)), 1), max(int(math.Ceil(r.height)), 1)
}

// Quit asks the runtime to stop after pending screenshots are written.
func (r *Runtime) Quit() {
	r.quitting = true
}

// Screenshot queues a capture of the next frame.
func (r *Runtime) Screenshot(label string) {
	r.shots.Queue(label)
}

// PendingScreenshots returns the number of queued captures.
func (r *Runtime) PendingScreenshots() int {
	return r.shots.Pending()
}

// Update implements ebiten.Game.
func (r *Runtime) Update() error {
	if ebiten.IsWindowBeingClosed() {
		r.Quit()
	}

	r.drain()

	if !r.quitting {
		r.handleInput()
		if r.script != nil {
			if err := r.script.step(r); err != nil {
				r.log.Error().Err(err).Msg("script failed")
				r.Quit()
			} else if r.script.Done() && r.shots.Pending() == 0 {
				r.log.Info().Msg("script finished")
				r.script = nil
			}
		}
	}
	r.ring.Update(1 / float32(max(ebiten.TPS(), 1)))
	if r.fps != nil {
		r.fps.update()
	}

	if r.quitting && r.shots.Pending() == 0 {
		r.Unmount()
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (r *Runtime) Draw(screen *ebiten.Image) {
	screen.Fill(r.style.Background.Color())
	for i := range r.boxes {
		r.drawBox(screen, &r.boxes[i])
	}
	if r.fps != nil {
		r.fps.draw(screen)
	}
	r.shots.flush(screen)
}

// Layout implements ebiten.Game.
func (r *Runtime) Layout(_, _ int) (int, int) {
	return r.Size()
}

// Run mounts ctl in a new window and blocks until the window closes or a
// script quits. The control is destroyed before Run returns.
func Run(ctl tzclock.StandardControl, opts Options) error {
	r, err := New(opts)
	if err != nil {
		return err
	}
	r.Mount(ctl)
	defer r.Unmount()

	w, h := r.Size()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(float64(w)*r.opts.Scale), int(float64(h)*r.opts.Scale))
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
