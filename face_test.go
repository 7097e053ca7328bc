package tzclock

import (
	"reflect"
	"strconv"
	"testing"
)

func TestRenderFaceCommandOrder(t *testing.T) {
	l := NewCommandList()
	RenderFace(l, WallClockSample{Hours: 10, Minutes: 10, Seconds: 30})

	cmds := l.Commands()
	// clear + disc + 12 numerals + 3 hands
	if len(cmds) != 17 {
		t.Fatalf("commands = %d, want 17", len(cmds))
	}
	if cmds[0].Type != CommandClear {
		t.Errorf("cmds[0] = %v, want clear", cmds[0].Type)
	}

	disc := cmds[1]
	if disc.Type != CommandCircle {
		t.Fatalf("cmds[1] = %v, want circle", disc.Type)
	}
	if disc.Center != (Vec2{100, 100}) || disc.Radius != 90 {
		t.Errorf("disc at %v r=%v, want (100,100) r=90", disc.Center, disc.Radius)
	}
	if disc.Fill != ColorWhite || disc.Color.Hex() != "#0078d7" || disc.StrokeWidth != 3 {
		t.Errorf("disc style = fill %v stroke %s width %v", disc.Fill, disc.Color.Hex(), disc.StrokeWidth)
	}

	for i := 1; i <= 12; i++ {
		c := cmds[1+i]
		if c.Type != CommandText {
			t.Fatalf("cmds[%d] = %v, want text", 1+i, c.Type)
		}
		if c.Text != strconv.Itoa(i) {
			t.Errorf("numeral %d text = %q", i, c.Text)
		}
		if c.From != MarkerPosition(i) {
			t.Errorf("numeral %d at %v, want %v", i, c.From, MarkerPosition(i))
		}
		if c.Size != 16 || c.Color.Hex() != "#333333" {
			t.Errorf("numeral %d style = size %v color %s", i, c.Size, c.Color.Hex())
		}
	}

	widths := []float64{6, 4, 2}
	for i, w := range widths {
		c := cmds[14+i]
		if c.Type != CommandLine {
			t.Fatalf("cmds[%d] = %v, want line", 14+i, c.Type)
		}
		if c.From != FaceCenter {
			t.Errorf("hand %d starts at %v, want center", i, c.From)
		}
		if c.Width != w {
			t.Errorf("hand %d width = %v, want %v", i, c.Width, w)
		}
	}
}

func TestRenderFaceHandEndpoints(t *testing.T) {
	l := NewCommandList()
	// 03:00:45 -> hour hand right, second hand left.
	RenderFace(l, WallClockSample{Hours: 3, Minutes: 0, Seconds: 45})
	cmds := l.Commands()

	hour := cmds[14].To
	if !approxEqual(hour.X, 150) || !approxEqual(hour.Y, 100) {
		t.Errorf("hour hand end = %v, want (150, 100)", hour)
	}
	sec := cmds[16].To
	if !approxEqual(sec.X, 20) || !approxEqual(sec.Y, 100) {
		t.Errorf("second hand end = %v, want (20, 100)", sec)
	}
}

func TestRenderFaceIdempotent(t *testing.T) {
	s := WallClockSample{Hours: 7, Minutes: 42, Seconds: 5}
	l := NewCommandList()

	RenderFace(l, s)
	first := append([]DrawCommand(nil), l.Commands()...)

	RenderFace(l, s)
	second := l.Commands()

	if !reflect.DeepEqual(first, second) {
		t.Error("second render differs from the first")
	}
}

func TestRenderFaceReplacesPreviousFrame(t *testing.T) {
	l := NewCommandList()
	RenderFace(l, WallClockSample{Hours: 1})
	RenderFace(l, WallClockSample{Hours: 2})

	fresh := NewCommandList()
	RenderFace(fresh, WallClockSample{Hours: 2})

	if !reflect.DeepEqual(l.Commands(), fresh.Commands()) {
		t.Error("frame carries state from the previous render")
	}
}

type nilContextSurface struct{ calls int }

func (s *nilContextSurface) Context2D() DrawContext {
	s.calls++
	return nil
}

func TestRenderSurfaceWithoutContext(t *testing.T) {
	s := &nilContextSurface{}
	if RenderSurface(s, WallClockSample{}) {
		t.Error("RenderSurface should report false without a context")
	}
	if s.calls != 1 {
		t.Errorf("Context2D calls = %d, want 1", s.calls)
	}
	if RenderSurface(nil, WallClockSample{}) {
		t.Error("RenderSurface(nil) should report false")
	}
}

func TestRenderSurfaceCommandList(t *testing.T) {
	l := NewCommandList()
	if !RenderSurface(l, WallClockSample{}) {
		t.Fatal("RenderSurface should draw onto a command list")
	}
	if l.Len() != 17 {
		t.Errorf("Len() = %d, want 17", l.Len())
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := map[CommandType]string{
		CommandClear:    "clear",
		CommandCircle:   "circle",
		CommandText:     "text",
		CommandLine:     "line",
		CommandType(99): "unknown",
	}
	for ct, want := range tests {
		if got := ct.String(); got != want {
			t.Errorf("CommandType(%d).String() = %q, want %q", ct, got, want)
		}
	}
}
