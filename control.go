package tzclock

import "github.com/jonboulle/clockwork"

// Dispatcher runs callbacks on the host's UI thread in submission order.
// Post must not block and must be safe to call from any goroutine.
type Dispatcher interface {
	Post(fn func())
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(fn func())

// Post implements Dispatcher.
func (f DispatcherFunc) Post(fn func()) { f(fn) }

// Context is what the host hands a control on Init and UpdateView.
type Context struct {
	// Dispatcher delivers timer callbacks onto the UI thread. Without one the
	// control still renders on user events but runs no periodic updates.
	Dispatcher Dispatcher
	// Clock is the host's time source. Nil means the real clock.
	Clock clockwork.Clock
	// Parameters holds bound input properties. The clock control has none.
	Parameters map[string]any
}

// Container is the host-owned mount point a control attaches its view to.
type Container interface {
	AppendChild(el *Element)
}

// State is the host's saved-state dictionary passed to Init.
type State map[string]string

// Outputs is the set of bound output properties a control reports.
type Outputs map[string]any

// StandardControl is the lifecycle contract between a host runtime and a
// control. All methods are called on the host's UI thread. Implementations
// must not panic into the host.
type StandardControl interface {
	// Init builds and attaches the control's view and starts its work.
	Init(ctx *Context, notifyOutputChanged func(), state State, container Container)
	// UpdateView is called when bound inputs change.
	UpdateView(ctx *Context)
	// GetOutputs returns the current output values.
	GetOutputs() Outputs
	// Destroy releases every resource. It may be called more than once and
	// after a failed Init.
	Destroy()
}
