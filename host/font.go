package host

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is a TrueType face source with faces cached per size.
type Font struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadFont parses TrueType or OpenType data.
func LoadFont(ttfData []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("host: failed to parse TTF data: %w", err)
	}
	return &Font{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

// DefaultFont loads Go Regular.
func DefaultFont() (*Font, error) {
	return LoadFont(goregular.TTF)
}

// Face returns the face for size, creating it on first use.
func (f *Font) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Font) Ascent(size float64) float64 {
	return f.Face(size).Metrics().HAscent
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight(size float64) float64 {
	m := f.Face(size).Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// MeasureString returns the width and height of a single line of s.
func (f *Font) MeasureString(s string, size float64) (width, height float64) {
	return text.Measure(s, f.Face(size), f.LineHeight(size))
}
