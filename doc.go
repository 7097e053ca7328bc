// Package tzclock is an embeddable analog clock control that shows the
// current time of a city picked from a fixed list.
//
// The control is host-agnostic. A host runtime mounts it through the
// [StandardControl] lifecycle and supplies a [Container] for its view, a
// [Dispatcher] for its UI thread and a clock:
//
//	ctl := tzclock.NewClockControl(tzclock.WithLogger(logger))
//	ctl.Init(&tzclock.Context{
//		Dispatcher: host,
//		Clock:      clockwork.NewRealClock(),
//	}, func() {}, nil, host)
//	defer ctl.Destroy()
//
// # View
//
// Init builds a small declarative tree of [Element] values: a header, a
// datetime input, a city select and a 200x200 canvas. Hosts lay the tree out,
// style it by class name, forward user edits with [Element.SetValue] followed
// by [Element.Dispatch], and bind a drawing [Surface] to the canvas with
// [Element.BindSurface].
//
// # Rendering
//
// [RenderFace] paints the face, numerals and the three hands onto any
// [DrawContext]. A [CommandList] records the drawing instead of rasterizing it,
// which is what the tests use. The host package provides an Ebitengine-backed
// surface.
//
// # Timing
//
// A 1 Hz render loop keeps the clock live. Its ticks are posted to the host's
// Dispatcher, so all control code runs on one thread and a user-triggered
// repaint always lands before the next tick.
package tzclock
