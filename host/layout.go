package host

import (
	"math"

	"github.com/phanxgames/tzclock"
)

// textRowFactor converts a font size to the height of a text row.
const textRowFactor = 1.5

// Box is an element placed in window coordinates.
type Box struct {
	Element *tzclock.Element
	Bounds  tzclock.Rect
}

// Layout stacks the visible elements under root in document order, one per
// row. Divs without text are treated as containers and take no row. It
// returns the boxes and the size of the window needed to show them.
func Layout(root *tzclock.Element, st Style) (boxes []Box, width, height float64) {
	inner := st.FieldWidth
	root.Walk(func(e *tzclock.Element) bool {
		if e.Kind == tzclock.ElementCanvas {
			inner = math.Max(inner, float64(e.Width))
		}
		return true
	})

	y := st.Padding
	root.Walk(func(e *tzclock.Element) bool {
		h, w, ok := rowSize(e, st, inner)
		if !ok {
			return true
		}
		x := st.Padding + (inner-w)/2
		boxes = append(boxes, Box{Element: e, Bounds: tzclock.Rect{X: x, Y: y, Width: w, Height: h}})
		y += h + st.Spacing
		return true
	})
	if len(boxes) > 0 {
		y -= st.Spacing
	}
	return boxes, inner + 2*st.Padding, y + st.Padding
}

func rowSize(e *tzclock.Element, st Style, inner float64) (h, w float64, ok bool) {
	switch e.Kind {
	case tzclock.ElementDiv:
		if e.Text == "" {
			return 0, 0, false
		}
		return st.Header.Size * textRowFactor, inner, true
	case tzclock.ElementLabel:
		return st.Label.Size * textRowFactor, inner, true
	case tzclock.ElementInput, tzclock.ElementSelect:
		return st.FieldHeight, st.FieldWidth, true
	case tzclock.ElementCanvas:
		return float64(e.Height), float64(e.Width), true
	}
	return 0, 0, false
}

// HitTest returns the topmost box containing (x, y), or nil.
func HitTest(boxes []Box, x, y float64) *Box {
	for i := len(boxes) - 1; i >= 0; i-- {
		if boxes[i].Bounds.Contains(x, y) {
			return &boxes[i]
		}
	}
	return nil
}
