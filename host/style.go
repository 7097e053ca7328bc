package host

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/tzclock"
)

//go:embed style.yaml
var defaultStyleYAML []byte

// HexColor is a tzclock.Color that reads from "#rrggbb" in YAML.
type HexColor tzclock.Color

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseHex(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = HexColor(parsed)
	return nil
}

// Color returns the underlying tzclock.Color.
func (c HexColor) Color() tzclock.Color {
	return tzclock.Color(c)
}

// ParseHex parses "#rrggbb" (the leading # is optional) into an opaque color.
func ParseHex(s string) (tzclock.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return tzclock.Color{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return tzclock.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return tzclock.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// TextStyle is the size and color of a run of text.
type TextStyle struct {
	Size  float64  `yaml:"size"`
	Color HexColor `yaml:"color"`
}

// FieldStyle describes input and select boxes.
type FieldStyle struct {
	Size        float64  `yaml:"size"`
	Color       HexColor `yaml:"color"`
	Placeholder HexColor `yaml:"placeholder"`
	Background  HexColor `yaml:"background"`
	Border      HexColor `yaml:"border"`
	BorderWidth float64  `yaml:"border_width"`
}

// Style is the host's stylesheet, keyed loosely on the control's class names.
type Style struct {
	Background  HexColor   `yaml:"background"`
	Padding     float64    `yaml:"padding"`
	Spacing     float64    `yaml:"spacing"`
	FieldWidth  float64    `yaml:"field_width"`
	FieldHeight float64    `yaml:"field_height"`
	Header      TextStyle  `yaml:"header"`
	Label       TextStyle  `yaml:"label"`
	Field       FieldStyle `yaml:"field"`
}

// DefaultStyle returns the embedded stylesheet.
func DefaultStyle() Style {
	s, err := ParseStyle(defaultStyleYAML)
	if err != nil {
		panic("host: embedded style: " + err.Error())
	}
	return s
}

// ParseStyle reads a stylesheet. Keys missing from data are zero, so callers
// usually overlay onto DefaultStyle via MergeStyle.
func ParseStyle(data []byte) (Style, error) {
	var s Style
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, fmt.Errorf("parse style: %w", err)
	}
	return s, nil
}

// MergeStyle decodes data on top of base, keeping base values for keys data
// does not set.
func MergeStyle(base Style, data []byte) (Style, error) {
	if err := yaml.Unmarshal(data, &base); err != nil {
		return Style{}, fmt.Errorf("parse style: %w", err)
	}
	return base, nil
}
