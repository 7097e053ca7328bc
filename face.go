package tzclock

import "strconv"

// RenderFace paints a full clock face for s onto dc. The canvas is cleared
// first, so repeated calls with the same sample leave the same result.
//
// Order: clear, face disc, numerals 1-12, hour hand, minute hand, second hand.
func RenderFace(dc DrawContext, s WallClockSample) {
	dc.Clear()

	dc.Circle(FaceCenter, FaceRadius, ColorWhite, ColorAccent, FaceBorderWidth)

	for i := 1; i <= 12; i++ {
		dc.Text(strconv.Itoa(i), MarkerPosition(i), MarkerFontSize, ColorInk)
	}

	for _, h := range Hands(s) {
		dc.Line(FaceCenter, h.End(), h.Width, ColorInk)
	}
}

// RenderSurface paints s onto surface. It does nothing when the surface is
// nil or has no 2D context.
func RenderSurface(surface Surface, s WallClockSample) bool {
	if surface == nil {
		return false
	}
	dc := surface.Context2D()
	if dc == nil {
		return false
	}
	RenderFace(dc, s)
	return true
}
