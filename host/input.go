package host

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/tzclock"
)

// handleInput maps this frame's keyboard and mouse input onto the mounted
// elements. Must be called from Update.
func (r *Runtime) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		r.stepSelect(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		r.stepSelect(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		r.touchDatetime()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		r.Screenshot("manual")
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		r.clickAt(float64(x), float64(y))
	}
}

// clickAt activates the element under (x, y). Clicking a select advances to
// the next option; clicking an input stamps the current time into it.
func (r *Runtime) clickAt(x, y float64) {
	b := HitTest(r.boxes, x, y)
	if b == nil {
		r.setFocus(nil)
		return
	}
	r.setFocus(b.Element)
	switch b.Element.Kind {
	case tzclock.ElementSelect:
		r.cycle(b.Element, 1)
	case tzclock.ElementInput:
		r.stamp(b.Element)
	}
}

// setFocus moves keyboard focus to el. Only fields take focus.
func (r *Runtime) setFocus(el *tzclock.Element) {
	if el != nil && el.Kind != tzclock.ElementInput && el.Kind != tzclock.ElementSelect {
		el = nil
	}
	r.ring.SetFocus(r.focus, el)
	r.focus = el
}

// stepSelect moves the first select's choice by delta, wrapping around.
func (r *Runtime) stepSelect(delta int) {
	if sel := r.find(tzclock.ElementSelect); sel != nil {
		r.cycle(sel, delta)
	}
}

func (r *Runtime) cycle(sel *tzclock.Element, delta int) {
	n := len(sel.Options())
	if n == 0 {
		return
	}
	i := ((sel.SelectedIndex()+delta)%n + n) % n
	if sel.SelectIndex(i) {
		sel.Dispatch(tzclock.EventChange)
	}
}

// touchDatetime stamps the current local minute into the first datetime input.
func (r *Runtime) touchDatetime() {
	if in := r.findInput(tzclock.InputTypeDatetimeLocal); in != nil {
		r.stamp(in)
	}
}

func (r *Runtime) stamp(in *tzclock.Element) {
	if in.InputType == tzclock.InputTypeDatetimeLocal {
		in.SetValue(r.clock.Now().Format(tzclock.DatetimeLayout))
	}
	in.Dispatch(tzclock.EventChange)
}

// SelectCity picks the option labeled city in the first select and fires
// its change event.
func (r *Runtime) SelectCity(city string) error {
	sel := r.find(tzclock.ElementSelect)
	if sel == nil {
		return fmt.Errorf("no select element mounted")
	}
	for i, opt := range sel.Options() {
		if opt.Text == city {
			sel.SelectIndex(i)
			sel.Dispatch(tzclock.EventChange)
			return nil
		}
	}
	return fmt.Errorf("no option labeled %q", city)
}

// SetDatetime writes value into the first datetime input and fires its
// change event. An empty value means the current local minute.
func (r *Runtime) SetDatetime(value string) error {
	in := r.findInput(tzclock.InputTypeDatetimeLocal)
	if in == nil {
		return fmt.Errorf("no datetime input mounted")
	}
	if value == "" {
		value = r.clock.Now().Format(tzclock.DatetimeLayout)
	}
	in.SetValue(value)
	in.Dispatch(tzclock.EventChange)
	return nil
}

func (r *Runtime) find(kind tzclock.ElementKind) *tzclock.Element {
	var found *tzclock.Element
	r.body.Walk(func(e *tzclock.Element) bool {
		if found != nil {
			return false
		}
		if e.Kind == kind {
			found = e
			return false
		}
		return true
	})
	return found
}

func (r *Runtime) findInput(inputType string) *tzclock.Element {
	var found *tzclock.Element
	r.body.Walk(func(e *tzclock.Element) bool {
		if found != nil {
			return false
		}
		if e.Kind == tzclock.ElementInput && e.InputType == inputType {
			found = e
			return false
		}
		return true
	})
	return found
}
