package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/tzclock"
)

// ImageSurface rasterizes draw calls onto an offscreen image. It is both the
// Surface bound to a canvas element and the DrawContext it hands out.
type ImageSurface struct {
	img  *ebiten.Image
	font *Font
}

var (
	_ tzclock.Surface     = (*ImageSurface)(nil)
	_ tzclock.DrawContext = (*ImageSurface)(nil)
)

// NewImageSurface allocates a w×h image. font may be nil, in which case text
// calls are dropped.
func NewImageSurface(w, h int, font *Font) *ImageSurface {
	return &ImageSurface{img: ebiten.NewImage(w, h), font: font}
}

// Image returns the backing image.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

// Context2D implements tzclock.Surface.
func (s *ImageSurface) Context2D() tzclock.DrawContext {
	if s == nil || s.img == nil {
		return nil
	}
	return s
}

// Clear implements tzclock.DrawContext.
func (s *ImageSurface) Clear() {
	s.img.Clear()
}

// Circle implements tzclock.DrawContext.
func (s *ImageSurface) Circle(center tzclock.Vec2, radius float64, fill, stroke tzclock.Color, strokeWidth float64) {
	cx, cy, r := float32(center.X), float32(center.Y), float32(radius)
	vector.DrawFilledCircle(s.img, cx, cy, r, fill, true)
	if strokeWidth > 0 {
		vector.StrokeCircle(s.img, cx, cy, r, float32(strokeWidth), stroke, true)
	}
}

// Text implements tzclock.DrawContext. pos is the left end of the baseline.
func (s *ImageSurface) Text(str string, pos tzclock.Vec2, size float64, c tzclock.Color) {
	if s.font == nil {
		return
	}
	drawText(s.img, s.font, str, pos.X, pos.Y, size, c)
}

// Line implements tzclock.DrawContext.
func (s *ImageSurface) Line(from, to tzclock.Vec2, width float64, c tzclock.Color) {
	vector.StrokeLine(s.img,
		float32(from.X), float32(from.Y),
		float32(to.X), float32(to.Y),
		float32(width), c, true)
}

// Dispose releases the backing image.
func (s *ImageSurface) Dispose() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}

// drawText draws str with its baseline-left corner at (x, y).
func drawText(dst *ebiten.Image, f *Font, str string, x, y, size float64, c tzclock.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-f.Ascent(size))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = f.LineHeight(size)
	text.Draw(dst, str, f.Face(size), op)
}
