// Package windowing defines the boundary between a compositor and the host
// windowing system.
//
// # Overview
//
// windowing is the contract layer of the GoGPU stack that decouples a
// compositor's event-driven control loop from any concrete platform toolkit.
// It provides two things:
//
//   - A closed event taxonomy: the complete set of events a host window can
//     deliver to the compositor (input, geometry, navigation, lifecycle).
//   - The Window capability contract: the single interface a compositor holds
//     to query and control the host window, implemented once per platform.
//
// # Event Flow
//
// A platform backend observes native events, translates them into taxonomy
// values and pushes them into a Queue. The compositor drains the queue on its
// own goroutine, one event at a time, and calls back into the Window contract
// as needed. Background work wakes a blocked drain through an EventLoopWaker,
// which is safe to invoke from any goroutine at any time.
//
// Dispatch is exhaustive by construction: every Event carries a Dispatch
// method over the Handler interface, which has one method per variant. Adding
// a variant breaks every consumer at compile time instead of being silently
// ignored.
//
// # Unit Spaces
//
// Two incompatible pixel spaces cross this boundary: density-independent
// ("dip") units and device pixels, related by the window's hidpi scale
// factor. They are distinct Go types; conversions are explicit.
//
//   - Size() reports dip units.
//   - FramebufferSize(), WindowRect() and all pointer events report device
//     pixels.
//
// # Backends
//
// Backends self-register the way surface backends do in gg: import the
// package for its side effect and the registry picks the best available one.
//
//	import _ "github.com/gogpu/windowing/x11"      // X11, priority 100
//	import _ "github.com/gogpu/windowing/headless" // always available, priority 10
//
//	win, err := windowing.New(windowing.Config{Title: "demo"})
package windowing
