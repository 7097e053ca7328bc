package tzclock

import "math"

// HandKind identifies one of the three clock hands.
type HandKind uint8

const (
	HandHour   HandKind = iota // short, thick, advances smoothly with minutes
	HandMinute                 // advances smoothly with seconds
	HandSecond                 // jumps once per second
)

// String returns the lowercase hand name.
func (k HandKind) String() string {
	switch k {
	case HandHour:
		return "hour"
	case HandMinute:
		return "minute"
	case HandSecond:
		return "second"
	default:
		return "unknown"
	}
}

// Hand is a single clock hand ready to be stroked from FaceCenter.
type Hand struct {
	Kind   HandKind
	Length float64
	Width  float64
	Angle  float64 // radians clockwise from 12 o'clock
}

// End returns the tip of the hand in canvas coordinates.
func (h Hand) End() Vec2 {
	return PointOnFace(h.Angle, h.Length)
}

// HourAngle is (hours mod 12)·π/6 + minutes·π/360.
func HourAngle(s WallClockSample) float64 {
	return float64(s.Hours%12)*(math.Pi/6) + float64(s.Minutes)*math.Pi/360
}

// MinuteAngle is minutes·π/30 + seconds·π/1800.
func MinuteAngle(s WallClockSample) float64 {
	return float64(s.Minutes)*math.Pi/30 + float64(s.Seconds)*math.Pi/1800
}

// SecondAngle is seconds·π/30.
func SecondAngle(s WallClockSample) float64 {
	return float64(s.Seconds) * math.Pi / 30
}

// Hands returns the hour, minute and second hands for s, in drawing order.
func Hands(s WallClockSample) [3]Hand {
	return [3]Hand{
		{Kind: HandHour, Length: HourHandLength, Width: HourHandWidth, Angle: HourAngle(s)},
		{Kind: HandMinute, Length: MinuteHandLength, Width: MinuteHandWidth, Angle: MinuteAngle(s)},
		{Kind: HandSecond, Length: SecondHandLength, Width: SecondHandWidth, Angle: SecondAngle(s)},
	}
}

// PointOnFace returns the point at distance r from FaceCenter along a clock
// angle. Angle 0 points at 12 o'clock and grows clockwise.
func PointOnFace(angle, r float64) Vec2 {
	return Vec2{
		X: FaceCenter.X + r*math.Cos(angle-math.Pi/2),
		Y: FaceCenter.Y + r*math.Sin(angle-math.Pi/2),
	}
}

// MarkerPosition returns the anchor of numeral i (1-12), including the
// numeral offset that visually centers the glyph on its ring position.
func MarkerPosition(i int) Vec2 {
	angle := float64(i)*math.Pi/6 - math.Pi/2
	return Vec2{
		X: FaceCenter.X + math.Cos(angle)*MarkerRadius + MarkerOffsetX,
		Y: FaceCenter.Y + math.Sin(angle)*MarkerRadius + MarkerOffsetY,
	}
}
