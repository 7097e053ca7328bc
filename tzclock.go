package tzclock

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a drawing backend.
type Color struct {
	R, G, B, A float64
}

// RGBA implements color.Color (premultiplied, 16-bit per channel).
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

// Hex returns the color as a "#rrggbb" string, ignoring alpha.
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]float64{c.R, c.G, c.B} {
		b := uint8(clamp01(v)*255 + 0.5)
		buf[1+i*2] = digits[b>>4]
		buf[2+i*2] = digits[b&0x0f]
	}
	return string(buf)
}

// RGB builds an opaque Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// ColorWhite is the clock face fill.
var ColorWhite = Color{1, 1, 1, 1}

var _ color.Color = Color{}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point in canvas units. The origin is the top-left corner and
// Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in canvas units.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Canvas geometry and palette of the clock face.
const (
	CanvasWidth  = 200
	CanvasHeight = 200

	FaceRadius       = 90.0
	FaceBorderWidth  = 3.0
	MarkerRadius     = 75.0
	MarkerOffsetX    = -5.0
	MarkerOffsetY    = 5.0
	MarkerFontSize   = 16.0
	HourHandLength   = 50.0
	HourHandWidth    = 6.0
	MinuteHandLength = 70.0
	MinuteHandWidth  = 4.0
	SecondHandLength = 80.0
	SecondHandWidth  = 2.0
)

// FaceCenter is the center of the clock face.
var FaceCenter = Vec2{X: CanvasWidth / 2, Y: CanvasHeight / 2}

var (
	// ColorAccent strokes the face border (#0078d7).
	ColorAccent = RGB(0x00, 0x78, 0xd7)
	// ColorInk draws numerals and hands (#333333).
	ColorInk = RGB(0x33, 0x33, 0x33)
)
