package host

import (
	"testing"

	"github.com/phanxgames/tzclock"
)

func testTree() *tzclock.Element {
	root := tzclock.NewDiv("wrapper", "")
	root.AddChild(tzclock.NewDiv("header", "Title"))
	root.AddChild(tzclock.NewLabel("label", "Pick:"))
	root.AddChild(tzclock.NewInput("dt", tzclock.InputTypeDatetimeLocal))
	root.AddChild(tzclock.NewSelect("sel", []tzclock.SelectOption{{Value: "a", Text: "A"}}))
	root.AddChild(tzclock.NewCanvas("cv", 200, 200))
	return root
}

func TestLayoutStacksRows(t *testing.T) {
	st := DefaultStyle()
	boxes, w, h := Layout(testTree(), st)

	if len(boxes) != 5 {
		t.Fatalf("boxes = %d, want 5 (wrapper takes no row)", len(boxes))
	}
	wantKinds := []tzclock.ElementKind{
		tzclock.ElementDiv, tzclock.ElementLabel, tzclock.ElementInput,
		tzclock.ElementSelect, tzclock.ElementCanvas,
	}
	for i, k := range wantKinds {
		if boxes[i].Element.Kind != k {
			t.Errorf("boxes[%d] kind = %v, want %v", i, boxes[i].Element.Kind.Tag(), k.Tag())
		}
	}

	// Rows never overlap and are separated by Spacing.
	for i := 1; i < len(boxes); i++ {
		prev, cur := boxes[i-1].Bounds, boxes[i].Bounds
		if got := cur.Y - (prev.Y + prev.Height); got != st.Spacing {
			t.Errorf("gap before row %d = %v, want %v", i, got, st.Spacing)
		}
	}

	if boxes[0].Bounds.Y != st.Padding {
		t.Errorf("first row at y=%v, want %v", boxes[0].Bounds.Y, st.Padding)
	}
	cv := boxes[4].Bounds
	if cv.Width != 200 || cv.Height != 200 {
		t.Errorf("canvas box = %vx%v, want 200x200", cv.Width, cv.Height)
	}
	// 240-wide column: the canvas is centered in it.
	if cv.X != st.Padding+20 {
		t.Errorf("canvas x = %v, want %v", cv.X, st.Padding+20)
	}
	if w != 240+2*st.Padding {
		t.Errorf("width = %v, want %v", w, 240+2*st.Padding)
	}
	if h != cv.Y+cv.Height+st.Padding {
		t.Errorf("height = %v, want %v", h, cv.Y+cv.Height+st.Padding)
	}
}

func TestLayoutWideCanvasWidensColumn(t *testing.T) {
	root := tzclock.NewDiv("", "")
	root.AddChild(tzclock.NewCanvas("cv", 300, 100))
	_, w, _ := Layout(root, DefaultStyle())
	if w != 300+32 {
		t.Errorf("width = %v, want 332", w)
	}
}

func TestLayoutEmpty(t *testing.T) {
	st := DefaultStyle()
	boxes, _, h := Layout(tzclock.NewDiv("", ""), st)
	if len(boxes) != 0 {
		t.Errorf("boxes = %d, want 0", len(boxes))
	}
	if h != 2*st.Padding {
		t.Errorf("height = %v, want %v", h, 2*st.Padding)
	}
}

func TestHitTest(t *testing.T) {
	boxes, _, _ := Layout(testTree(), DefaultStyle())
	sel := boxes[3].Bounds

	got := HitTest(boxes, sel.X+1, sel.Y+1)
	if got == nil || got.Element.Kind != tzclock.ElementSelect {
		t.Errorf("HitTest inside select = %v", got)
	}
	if HitTest(boxes, 1, 1) != nil {
		t.Error("HitTest in the padding should miss")
	}
}
