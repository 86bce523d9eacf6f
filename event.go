package windowing

import "github.com/gogpu/gpucontext"

// Event is one value of the closed set of events a host window delivers to
// the compositor. Values are immutable, constructed once by the platform
// backend and consumed exactly once by the compositor loop; they own any
// payload they carry and are not retained after dispatch.
//
// The set is sealed: only the variants in this package implement Event.
// Consumers do not type-switch over it; they implement Handler and let
// Dispatch route, so a new variant is a compile error in every consumer
// rather than a silently dropped event.
type Event interface {
	// Kind returns a short, payload-independent label for the variant,
	// suitable for logging and tracing. It is non-empty for every variant
	// and safe to call on zero values.
	Kind() string

	// Dispatch routes the event to the Handler method for its variant.
	Dispatch(h Handler)

	sealed()
}

// IdleEvent is a spurious wake: the event loop was kicked (typically through
// an EventLoopWaker) but no observable state changed.
type IdleEvent struct{}

// RefreshEvent marks part of the window dirty. The window must make its
// rendering context current before compositing proceeds.
type RefreshEvent struct{}

// ResizeEvent carries the new framebuffer size in device pixels.
type ResizeEvent struct {
	Size DeviceSize
}

// TouchpadPressureEvent is pressure-sensitive trackpad input.
type TouchpadPressureEvent struct {
	Point DevicePoint
	// Pressure is the normalized pressure, nominally in [0, 1].
	Pressure float32
	Phase    TouchpadPressurePhase
}

// LoadURLEvent requests navigation of a top-level browsing context.
type LoadURLEvent struct {
	Browser BrowserID
	URL     string
}

// MouseWindowEvent wraps a hit-test-worthy mouse action.
type MouseWindowEvent struct {
	Mouse MouseEvent
}

// MouseMoveEvent is pure pointer motion with no button state, in device
// pixels.
type MouseMoveEvent struct {
	Point DevicePoint
}

// TouchEvent is one frame of a multi-touch sequence. ID is stable for the
// touch point across its Down -> Move* -> Up/Cancel sequence.
type TouchEvent struct {
	Type  TouchEventType
	ID    TouchID
	Point DevicePoint
}

// ScrollEvent is a scroll step. Type disambiguates scroll-start from
// scroll-continuation and scroll-end; Origin is where the gesture is
// anchored, in integer device pixels.
type ScrollEvent struct {
	Location ScrollLocation
	Origin   DeviceIntPoint
	Type     TouchEventType
}

// ZoomEvent is an absolute pinch/gesture zoom request.
type ZoomEvent struct {
	Magnification float32
}

// PinchZoomEvent is a pinch zoom synthesized from non-touch input, such as
// a modifier held over the scroll wheel.
type PinchZoomEvent struct {
	Magnification float32
}

// ResetZoomEvent resets zoom to 1.0.
type ResetZoomEvent struct{}

// NavigationEvent is chrome-level history traversal.
type NavigationEvent struct {
	Browser   BrowserID
	Direction TraversalDirection
	// Steps is the number of session-history entries to traverse.
	// Zero is treated as one.
	Steps uint
}

// StepCount returns the traversal distance, treating zero as one.
func (e NavigationEvent) StepCount() uint {
	if e.Steps == 0 {
		return 1
	}
	return e.Steps
}

// QuitEvent is terminal: the producer guarantees no further events are
// enqueued after it.
type QuitEvent struct{}

// KeyEvent is a raw key transition. Char is zero for non-printable keys.
type KeyEvent struct {
	Char      rune
	Key       gpucontext.Key
	State     KeyState
	Modifiers gpucontext.Modifiers
}

// ReloadEvent re-fetches the current document of a browsing context.
type ReloadEvent struct {
	Browser BrowserID
}

// NewBrowserEvent asks the host to create a top-level browsing context for
// the URL. The host must eventually deliver exactly one id on Reply.
type NewBrowserEvent struct {
	URL   string
	Reply *BrowserIDReply
}

// CloseBrowserEvent destroys a browsing context. Its id must not be reused
// afterward.
type CloseBrowserEvent struct {
	Browser BrowserID
}

// SelectBrowserEvent makes a browsing context the sole visible one. The
// previously visible context is hidden, not destroyed.
type SelectBrowserEvent struct {
	Browser BrowserID
}

// ToggleRenderDebugEvent flips a renderer diagnostic flag.
type ToggleRenderDebugEvent struct {
	Option RenderDebugOption
}

// KeyState is the transition direction of a key event.
type KeyState uint8

const (
	// KeyPressed is a key going down.
	KeyPressed KeyState = iota
	// KeyReleased is a key coming up.
	KeyReleased
)

// String returns the state name.
func (s KeyState) String() string {
	if s == KeyReleased {
		return "Released"
	}
	return "Pressed"
}

// Kind labels. Deliberately payload-independent: two Resize events with
// different sizes produce identical labels.

func (IdleEvent) Kind() string              { return "Idle" }
func (RefreshEvent) Kind() string           { return "Refresh" }
func (ResizeEvent) Kind() string            { return "Resize" }
func (TouchpadPressureEvent) Kind() string  { return "TouchpadPressure" }
func (LoadURLEvent) Kind() string           { return "LoadUrl" }
func (MouseWindowEvent) Kind() string       { return "Mouse" }
func (MouseMoveEvent) Kind() string         { return "MouseMove" }
func (TouchEvent) Kind() string             { return "Touch" }
func (ScrollEvent) Kind() string            { return "Scroll" }
func (ZoomEvent) Kind() string              { return "Zoom" }
func (PinchZoomEvent) Kind() string         { return "PinchZoom" }
func (ResetZoomEvent) Kind() string         { return "ResetZoom" }
func (NavigationEvent) Kind() string        { return "Navigation" }
func (QuitEvent) Kind() string              { return "Quit" }
func (KeyEvent) Kind() string               { return "Key" }
func (ReloadEvent) Kind() string            { return "Reload" }
func (NewBrowserEvent) Kind() string        { return "NewBrowser" }
func (CloseBrowserEvent) Kind() string      { return "CloseBrowser" }
func (SelectBrowserEvent) Kind() string     { return "SelectBrowser" }
func (ToggleRenderDebugEvent) Kind() string { return "ToggleRenderDebug" }

func (e IdleEvent) Dispatch(h Handler)              { h.HandleIdle(e) }
func (e RefreshEvent) Dispatch(h Handler)           { h.HandleRefresh(e) }
func (e ResizeEvent) Dispatch(h Handler)            { h.HandleResize(e) }
func (e TouchpadPressureEvent) Dispatch(h Handler)  { h.HandleTouchpadPressure(e) }
func (e LoadURLEvent) Dispatch(h Handler)           { h.HandleLoadURL(e) }
func (e MouseWindowEvent) Dispatch(h Handler)       { h.HandleMouse(e) }
func (e MouseMoveEvent) Dispatch(h Handler)         { h.HandleMouseMove(e) }
func (e TouchEvent) Dispatch(h Handler)             { h.HandleTouch(e) }
func (e ScrollEvent) Dispatch(h Handler)            { h.HandleScroll(e) }
func (e ZoomEvent) Dispatch(h Handler)              { h.HandleZoom(e) }
func (e PinchZoomEvent) Dispatch(h Handler)         { h.HandlePinchZoom(e) }
func (e ResetZoomEvent) Dispatch(h Handler)         { h.HandleResetZoom(e) }
func (e NavigationEvent) Dispatch(h Handler)        { h.HandleNavigation(e) }
func (e QuitEvent) Dispatch(h Handler)              { h.HandleQuit(e) }
func (e KeyEvent) Dispatch(h Handler)               { h.HandleKey(e) }
func (e ReloadEvent) Dispatch(h Handler)            { h.HandleReload(e) }
func (e NewBrowserEvent) Dispatch(h Handler)        { h.HandleNewBrowser(e) }
func (e CloseBrowserEvent) Dispatch(h Handler)      { h.HandleCloseBrowser(e) }
func (e SelectBrowserEvent) Dispatch(h Handler)     { h.HandleSelectBrowser(e) }
func (e ToggleRenderDebugEvent) Dispatch(h Handler) { h.HandleToggleRenderDebug(e) }

func (IdleEvent) sealed()              {}
func (RefreshEvent) sealed()           {}
func (ResizeEvent) sealed()            {}
func (TouchpadPressureEvent) sealed()  {}
func (LoadURLEvent) sealed()           {}
func (MouseWindowEvent) sealed()       {}
func (MouseMoveEvent) sealed()         {}
func (TouchEvent) sealed()             {}
func (ScrollEvent) sealed()            {}
func (ZoomEvent) sealed()              {}
func (PinchZoomEvent) sealed()         {}
func (ResetZoomEvent) sealed()         {}
func (NavigationEvent) sealed()        {}
func (QuitEvent) sealed()              {}
func (KeyEvent) sealed()               {}
func (ReloadEvent) sealed()            {}
func (NewBrowserEvent) sealed()        {}
func (CloseBrowserEvent) sealed()      {}
func (SelectBrowserEvent) sealed()     {}
func (ToggleRenderDebugEvent) sealed() {}
