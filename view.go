package tzclock

import "sync/atomic"

// ElementKind selects what an Element represents in the host's view.
type ElementKind uint8

const (
	ElementDiv    ElementKind = iota // block with optional text
	ElementLabel                     // caption for the control that follows it
	ElementInput                     // single-value text-like input
	ElementSelect                    // closed list of options
	ElementCanvas                    // fixed-size drawing surface
)

// Tag returns the HTML-style tag name of the kind.
func (k ElementKind) Tag() string {
	switch k {
	case ElementDiv:
		return "div"
	case ElementLabel:
		return "label"
	case ElementInput:
		return "input"
	case ElementSelect:
		return "select"
	case ElementCanvas:
		return "canvas"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of element event.
type EventType uint8

const (
	EventChange EventType = iota // fires after the element's value was changed by the user
)

// SelectOption is one entry of a select element.
type SelectOption struct {
	Value string
	Text  string
}

var elementIDCounter atomic.Uint32

func nextElementID() uint32 {
	return elementIDCounter.Add(1)
}

// Element is a node of the declarative view a control hands to its host.
// A single flat struct is used for every kind; fields that do not apply to
// Kind stay zero.
//
// Elements are not safe for concurrent use. Hosts mutate them (SetValue,
// Dispatch) on their UI thread only.
type Element struct {
	ID        uint32
	Kind      ElementKind
	Class     string
	Text      string
	InputType string // ElementInput only, e.g. "datetime-local"
	Width     int    // ElementCanvas only
	Height    int    // ElementCanvas only

	Parent   *Element
	children []*Element

	options  []SelectOption
	selected int
	value    string

	listeners  []listener
	nextListen uint32

	surface  Surface
	disposed bool
}

type listener struct {
	id    uint32
	event EventType
	fn    func()
}

func newElement(kind ElementKind, class string) *Element {
	return &Element{ID: nextElementID(), Kind: kind, Class: class}
}

// NewDiv creates a block element with optional text content.
func NewDiv(class, text string) *Element {
	e := newElement(ElementDiv, class)
	e.Text = text
	return e
}

// NewLabel creates a text label.
func NewLabel(class, text string) *Element {
	e := newElement(ElementLabel, class)
	e.Text = text
	return e
}

// NewInput creates an input element of the given input type with an empty value.
func NewInput(class, inputType string) *Element {
	e := newElement(ElementInput, class)
	e.InputType = inputType
	return e
}

// NewSelect creates a select element. The first option is selected.
func NewSelect(class string, options []SelectOption) *Element {
	e := newElement(ElementSelect, class)
	e.options = append([]SelectOption(nil), options...)
	e.selected = -1
	if len(e.options) > 0 {
		e.selected = 0
		e.value = e.options[0].Value
	}
	return e
}

// NewCanvas creates a drawing surface of width x height units. It has no 2D
// context until the host binds one with BindSurface.
func NewCanvas(class string, width, height int) *Element {
	e := newElement(ElementCanvas, class)
	e.Width = width
	e.Height = height
	return e
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("tzclock: cannot add nil child")
	}
	if isAncestor(child, e) {
		panic("tzclock: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("tzclock: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// ChildAt returns the child at the given index.
func (e *Element) ChildAt(index int) *Element {
	return e.children[index]
}

// Walk calls fn for e and every descendant, depth-first in document order.
// Returning false from fn skips that element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// FindByClass returns the first element in document order whose Class equals
// class, or nil.
func (e *Element) FindByClass(class string) *Element {
	var found *Element
	e.Walk(func(n *Element) bool {
		if found != nil {
			return false
		}
		if n.Class == class {
			found = n
			return false
		}
		return true
	})
	return found
}

// --- Values ---

// Value returns the current value of an input or select element.
func (e *Element) Value() string {
	return e.value
}

// SetValue changes the value of an input or select element without firing
// events. A select only accepts one of its option values and keeps its
// current option if that option already carries v; otherwise the first
// option with value v is selected. Other kinds have no value. It reports
// whether the value was accepted.
func (e *Element) SetValue(v string) bool {
	switch e.Kind {
	case ElementInput:
		e.value = v
		return true
	case ElementSelect:
		i := e.optionIndex(v)
		if i < 0 {
			return false
		}
		if e.value != v {
			e.selected = i
		}
		e.value = v
		return true
	default:
		return false
	}
}

// Options returns a copy of a select element's options.
func (e *Element) Options() []SelectOption {
	return append([]SelectOption(nil), e.options...)
}

// SelectedIndex returns the index of the selected option, or -1 for
// non-select elements and empty selects. Options may share a value, so the
// index is tracked separately from Value.
func (e *Element) SelectedIndex() int {
	if e.Kind != ElementSelect {
		return -1
	}
	return e.selected
}

// SelectIndex selects the option at index i without firing events.
func (e *Element) SelectIndex(i int) bool {
	if e.Kind != ElementSelect || i < 0 || i >= len(e.options) {
		return false
	}
	e.selected = i
	e.value = e.options[i].Value
	return true
}

func (e *Element) optionIndex(v string) int {
	for i, o := range e.options {
		if o.Value == v {
			return i
		}
	}
	return -1
}

// --- Events ---

// ListenerHandle allows removing a registered event listener.
type ListenerHandle struct {
	id uint32
	el *Element
}

// Remove unregisters the listener so it no longer fires.
func (h ListenerHandle) Remove() {
	if h.el == nil {
		return
	}
	ls := h.el.listeners
	for i := range ls {
		if ls[i].id == h.id {
			copy(ls[i:], ls[i+1:])
			ls[len(ls)-1] = listener{}
			h.el.listeners = ls[:len(ls)-1]
			return
		}
	}
}

// AddEventListener registers fn for events of type t on this element.
func (e *Element) AddEventListener(t EventType, fn func()) ListenerHandle {
	e.nextListen++
	id := e.nextListen
	e.listeners = append(e.listeners, listener{id: id, event: t, fn: fn})
	return ListenerHandle{id: id, el: e}
}

// Dispatch fires an event of type t on this element and returns the number of
// listeners invoked. Listeners added or removed during dispatch take effect
// from the next dispatch.
func (e *Element) Dispatch(t EventType) int {
	if e.disposed || len(e.listeners) == 0 {
		return 0
	}
	ls := append([]listener(nil), e.listeners...)
	n := 0
	for _, l := range ls {
		if l.event == t {
			l.fn()
			n++
		}
	}
	return n
}

// --- Canvas ---

// BindSurface attaches the host's drawing surface to a canvas element.
func (e *Element) BindSurface(s Surface) {
	if e.Kind != ElementCanvas {
		return
	}
	e.surface = s
}

// Context2D implements Surface. It returns nil for nil or disposed elements,
// non-canvas elements, and canvases without a bound surface.
func (e *Element) Context2D() DrawContext {
	if e == nil || e.disposed || e.Kind != ElementCanvas || e.surface == nil {
		return nil
	}
	return e.surface.Context2D()
}

// --- Disposal ---

// Dispose removes this element from its parent, drops its listeners and
// surface, and recursively disposes all descendants.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.listeners = nil
	e.surface = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// isAncestor reports whether candidate is an ancestor of (or equal to) el.
func isAncestor(candidate, el *Element) bool {
	for p := el; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
