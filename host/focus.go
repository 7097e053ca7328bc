package host

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/tzclock"
)

// focusFadeSeconds is how long a field border takes to change color when it
// gains or loses focus.
const focusFadeSeconds = 0.15

// colorTween animates a color channel by channel. Call Update each frame.
type colorTween struct {
	tweens [4]*gween.Tween
	value  tzclock.Color
	Done   bool
}

func newColorTween(from, to tzclock.Color, duration float32, fn ease.TweenFunc) *colorTween {
	return &colorTween{
		tweens: [4]*gween.Tween{
			gween.New(float32(from.R), float32(to.R), duration, fn),
			gween.New(float32(from.G), float32(to.G), duration, fn),
			gween.New(float32(from.B), float32(to.B), duration, fn),
			gween.New(float32(from.A), float32(to.A), duration, fn),
		},
		value: from,
	}
}

// Update advances the tween by dt seconds and returns the current color.
func (t *colorTween) Update(dt float32) tzclock.Color {
	if t.Done {
		return t.value
	}
	var ch [4]float64
	done := true
	for i, tw := range t.tweens {
		v, finished := tw.Update(dt)
		ch[i] = float64(v)
		if !finished {
			done = false
		}
	}
	t.value = tzclock.Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	t.Done = done
	return t.value
}

// focusRing tracks the border color of every field, fading between the idle
// and focused colors as focus moves.
type focusRing struct {
	idle, active tzclock.Color
	current      map[*tzclock.Element]tzclock.Color
	fades        map[*tzclock.Element]*colorTween
}

func newFocusRing(idle, active tzclock.Color) *focusRing {
	return &focusRing{
		idle:    idle,
		active:  active,
		current: make(map[*tzclock.Element]tzclock.Color),
		fades:   make(map[*tzclock.Element]*colorTween),
	}
}

// SetFocus starts fades from the old focus to the new one. Either may be nil.
func (f *focusRing) SetFocus(prev, next *tzclock.Element) {
	if prev == next {
		return
	}
	if prev != nil {
		f.fadeTo(prev, f.idle)
	}
	if next != nil {
		f.fadeTo(next, f.active)
	}
}

func (f *focusRing) fadeTo(e *tzclock.Element, to tzclock.Color) {
	f.fades[e] = newColorTween(f.Color(e), to, focusFadeSeconds, ease.OutQuad)
}

// Update advances every running fade by dt seconds.
func (f *focusRing) Update(dt float32) {
	for e, tw := range f.fades {
		f.current[e] = tw.Update(dt)
		if tw.Done {
			delete(f.fades, e)
		}
	}
}

// Color returns the border color of e right now.
func (f *focusRing) Color(e *tzclock.Element) tzclock.Color {
	if c, ok := f.current[e]; ok {
		return c
	}
	return f.idle
}

// Reset forgets every element, e.g. after an unmount.
func (f *focusRing) Reset() {
	clear(f.current)
	clear(f.fades)
}
