package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/tzclock"
)

// fieldInset is the horizontal text padding inside input and select boxes.
const fieldInset = 8

// datetimePlaceholder is shown by an empty datetime input.
const datetimePlaceholder = "mm/dd/yyyy --:--"

func (r *Runtime) drawBox(screen *ebiten.Image, b *Box) {
	e, rc := b.Element, b.Bounds
	switch e.Kind {
	case tzclock.ElementDiv:
		r.drawLine(screen, e.Text, rc, rc.X, r.style.Header)
	case tzclock.ElementLabel:
		r.drawLine(screen, e.Text, rc, rc.X, r.style.Label)
	case tzclock.ElementInput:
		r.drawField(screen, e, rc)
		txt, c := e.Value(), r.style.Field.Color
		if txt == "" && e.InputType == tzclock.InputTypeDatetimeLocal {
			txt, c = datetimePlaceholder, r.style.Field.Placeholder
		}
		r.drawLine(screen, txt, rc, rc.X+fieldInset, TextStyle{Size: r.style.Field.Size, Color: c})
	case tzclock.ElementSelect:
		r.drawField(screen, e, rc)
		txt := ""
		if i := e.SelectedIndex(); i >= 0 {
			txt = e.Options()[i].Text
		}
		r.drawLine(screen, txt, rc, rc.X+fieldInset, TextStyle{Size: r.style.Field.Size, Color: r.style.Field.Color})
		r.drawChevron(screen, rc)
	case tzclock.ElementCanvas:
		s := r.surfaces[e]
		if s == nil || s.Image() == nil {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(rc.X, rc.Y)
		screen.DrawImage(s.Image(), op)
	}
}

// drawLine draws a single line of text vertically centered in rc.
func (r *Runtime) drawLine(screen *ebiten.Image, s string, rc tzclock.Rect, x float64, ts TextStyle) {
	if s == "" {
		return
	}
	lh := r.font.LineHeight(ts.Size)
	baseline := rc.Y + (rc.Height-lh)/2 + r.font.Ascent(ts.Size)
	drawText(screen, r.font, s, x, baseline, ts.Size, ts.Color.Color())
}

func (r *Runtime) drawField(screen *ebiten.Image, e *tzclock.Element, rc tzclock.Rect) {
	fs := r.style.Field
	x, y, w, h := float32(rc.X), float32(rc.Y), float32(rc.Width), float32(rc.Height)
	vector.DrawFilledRect(screen, x, y, w, h, fs.Background.Color(), false)
	vector.StrokeRect(screen, x, y, w, h, float32(fs.BorderWidth), r.ring.Color(e), false)
}

// drawChevron draws the dropdown arrow at the right end of a select.
func (r *Runtime) drawChevron(screen *ebiten.Image, rc tzclock.Rect) {
	cx := float32(rc.X + rc.Width - fieldInset - 4)
	cy := float32(rc.Y + rc.Height/2)
	c := r.style.Field.Color.Color()
	vector.StrokeLine(screen, cx-4, cy-2, cx, cy+2, 1.5, c, true)
	vector.StrokeLine(screen, cx, cy+2, cx+4, cy-2, 1.5, c, true)
}
