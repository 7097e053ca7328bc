package tzclock

// DrawContext is the 2D drawing API the clock face is painted with. It mirrors
// the subset of an HTML canvas context the face needs.
type DrawContext interface {
	// Clear erases the whole drawing area to transparent.
	Clear()
	// Circle fills a circle with fill, then strokes its outline with stroke.
	// A zero strokeWidth skips the outline.
	Circle(center Vec2, radius float64, fill, stroke Color, strokeWidth float64)
	// Text draws s with its baseline-left corner at pos.
	Text(s string, pos Vec2, size float64, c Color)
	// Line strokes a straight segment.
	Line(from, to Vec2, width float64, c Color)
}

// Surface is something a DrawContext can be obtained from, such as a canvas
// element. Context2D returns nil when no context is available.
type Surface interface {
	Context2D() DrawContext
}

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandClear  CommandType = iota // erase the drawing area
	CommandCircle                    // filled and stroked circle
	CommandText                      // text run
	CommandLine                      // stroked segment
)

// String returns the lowercase command name.
func (t CommandType) String() string {
	switch t {
	case CommandClear:
		return "clear"
	case CommandCircle:
		return "circle"
	case CommandText:
		return "text"
	case CommandLine:
		return "line"
	default:
		return "unknown"
	}
}

// DrawCommand is a single recorded drawing instruction. Only the fields that
// apply to Type are set.
type DrawCommand struct {
	Type CommandType

	// Circle
	Center      Vec2
	Radius      float64
	Fill        Color
	StrokeWidth float64

	// Text
	Text string
	Size float64

	// Line (From/To) and text anchor (From)
	From, To Vec2
	Width    float64

	// Stroke color for circles and lines, fill color for text.
	Color Color
}

// CommandList is a DrawContext that records commands instead of rasterizing
// them. Clear discards everything recorded so far, so the list always holds
// exactly what is visible since the last clear.
type CommandList struct {
	commands []DrawCommand
}

// NewCommandList creates an empty list with room for a full clock face.
func NewCommandList() *CommandList {
	return &CommandList{commands: make([]DrawCommand, 0, 17)}
}

// Commands returns the recorded commands. The returned slice MUST NOT be mutated.
func (l *CommandList) Commands() []DrawCommand {
	return l.commands
}

// Len returns the number of recorded commands.
func (l *CommandList) Len() int {
	return len(l.commands)
}

// Context2D implements Surface, so a CommandList can stand in for a canvas.
func (l *CommandList) Context2D() DrawContext {
	return l
}

// Clear implements DrawContext.
func (l *CommandList) Clear() {
	l.commands = l.commands[:0]
	l.commands = append(l.commands, DrawCommand{Type: CommandClear})
}

// Circle implements DrawContext.
func (l *CommandList) Circle(center Vec2, radius float64, fill, stroke Color, strokeWidth float64) {
	l.commands = append(l.commands, DrawCommand{
		Type:        CommandCircle,
		Center:      center,
		Radius:      radius,
		Fill:        fill,
		Color:       stroke,
		StrokeWidth: strokeWidth,
	})
}

// Text implements DrawContext.
func (l *CommandList) Text(s string, pos Vec2, size float64, c Color) {
	l.commands = append(l.commands, DrawCommand{
		Type:  CommandText,
		Text:  s,
		From:  pos,
		Size:  size,
		Color: c,
	})
}

// Line implements DrawContext.
func (l *CommandList) Line(from, to Vec2, width float64, c Color) {
	l.commands = append(l.commands, DrawCommand{
		Type:  CommandLine,
		From:  from,
		To:    to,
		Width: width,
		Color: c,
	})
}
