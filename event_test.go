package windowing

import "testing"

// recordingHandler records which variant method each dispatch landed on.
type recordingHandler struct {
	calls []string
}

func (h *recordingHandler) record(kind string) { h.calls = append(h.calls, kind) }

func (h *recordingHandler) HandleIdle(IdleEvent)                         { h.record("Idle") }
func (h *recordingHandler) HandleRefresh(RefreshEvent)                   { h.record("Refresh") }
func (h *recordingHandler) HandleResize(ResizeEvent)                     { h.record("Resize") }
func (h *recordingHandler) HandleTouchpadPressure(TouchpadPressureEvent) { h.record("TouchpadPressure") }
func (h *recordingHandler) HandleLoadURL(LoadURLEvent)                   { h.record("LoadUrl") }
func (h *recordingHandler) HandleMouse(MouseWindowEvent)                 { h.record("Mouse") }
func (h *recordingHandler) HandleMouseMove(MouseMoveEvent)               { h.record("MouseMove") }
func (h *recordingHandler) HandleTouch(TouchEvent)                       { h.record("Touch") }
func (h *recordingHandler) HandleScroll(ScrollEvent)                     { h.record("Scroll") }
func (h *recordingHandler) HandleZoom(ZoomEvent)                         { h.record("Zoom") }
func (h *recordingHandler) HandlePinchZoom(PinchZoomEvent)               { h.record("PinchZoom") }
func (h *recordingHandler) HandleResetZoom(ResetZoomEvent)               { h.record("ResetZoom") }
func (h *recordingHandler) HandleNavigation(NavigationEvent)             { h.record("Navigation") }
func (h *recordingHandler) HandleQuit(QuitEvent)                         { h.record("Quit") }
func (h *recordingHandler) HandleKey(KeyEvent)                           { h.record("Key") }
func (h *recordingHandler) HandleReload(ReloadEvent)                     { h.record("Reload") }
func (h *recordingHandler) HandleNewBrowser(NewBrowserEvent)             { h.record("NewBrowser") }
func (h *recordingHandler) HandleCloseBrowser(CloseBrowserEvent)         { h.record("CloseBrowser") }
func (h *recordingHandler) HandleSelectBrowser(SelectBrowserEvent)       { h.record("SelectBrowser") }
func (h *recordingHandler) HandleToggleRenderDebug(ToggleRenderDebugEvent) {
	h.record("ToggleRenderDebug")
}

// allEvents enumerates one value of every taxonomy variant.
func allEvents() []Event {
	return []Event{
		IdleEvent{},
		RefreshEvent{},
		ResizeEvent{Size: DeviceSize{Width: 800, Height: 600}},
		TouchpadPressureEvent{Point: DevPt(1, 2), Pressure: 0.5, Phase: PressureAfterFirstClick},
		LoadURLEvent{Browser: NewBrowserID(), URL: "https://example.com"},
		MouseWindowEvent{Mouse: MouseEvent{Action: MouseActionClick, Button: MouseButtonLeft, Point: DevPt(10, 10)}},
		MouseMoveEvent{Point: DevPt(3, 4)},
		TouchEvent{Type: TouchDown, ID: 7, Point: DevPt(5, 6)},
		ScrollEvent{Location: ScrollBy(0, -38), Origin: DeviceIntPoint{X: 1, Y: 2}, Type: TouchMove},
		ZoomEvent{Magnification: 1.5},
		PinchZoomEvent{Magnification: 0.9},
		ResetZoomEvent{},
		NavigationEvent{Browser: NewBrowserID(), Direction: TraverseBack, Steps: 2},
		QuitEvent{},
		KeyEvent{Char: 'a', State: KeyPressed},
		ReloadEvent{Browser: NewBrowserID()},
		NewBrowserEvent{URL: "https://example.com", Reply: NewBrowserIDReply()},
		CloseBrowserEvent{Browser: NewBrowserID()},
		SelectBrowserEvent{Browser: NewBrowserID()},
		ToggleRenderDebugEvent{Option: DebugProfiler},
	}
}

func TestEventKindNonEmpty(t *testing.T) {
	for _, e := range allEvents() {
		if e.Kind() == "" {
			t.Errorf("%T has empty kind label", e)
		}
	}
}

func TestEventKindIgnoresPayload(t *testing.T) {
	a := ResizeEvent{Size: DeviceSize{Width: 1, Height: 1}}
	b := ResizeEvent{Size: DeviceSize{Width: 4096, Height: 2160}}
	if a.Kind() != b.Kind() {
		t.Errorf("Resize labels differ by payload: %q vs %q", a.Kind(), b.Kind())
	}

	// Zero values must be safe to label, even when payloads are malformed.
	zero := []Event{
		ResizeEvent{}, LoadURLEvent{}, MouseWindowEvent{}, TouchEvent{},
		ScrollEvent{}, NavigationEvent{}, KeyEvent{}, NewBrowserEvent{},
	}
	for _, e := range zero {
		if e.Kind() == "" {
			t.Errorf("%T zero value has empty kind label", e)
		}
	}
}

// TestDispatchExhaustive proves every variant routes to exactly its own
// Handler method, with no fallthrough to share.
func TestDispatchExhaustive(t *testing.T) {
	events := allEvents()
	h := &recordingHandler{}
	for _, e := range events {
		e.Dispatch(h)
	}

	if len(h.calls) != len(events) {
		t.Fatalf("dispatched %d calls for %d events", len(h.calls), len(events))
	}
	for i, e := range events {
		if h.calls[i] != e.Kind() {
			t.Errorf("event %T routed to %q, want %q", e, h.calls[i], e.Kind())
		}
	}

	// The taxonomy under test must cover every variant exactly once.
	seen := make(map[string]bool)
	for _, kind := range h.calls {
		if seen[kind] {
			t.Errorf("variant %q enumerated twice", kind)
		}
		seen[kind] = true
	}
	if len(seen) != 20 {
		t.Errorf("enumerated %d variants, want 20", len(seen))
	}
}

func TestNavigationStepCount(t *testing.T) {
	// A zero step count means a single traversal step.
	if got := (NavigationEvent{Direction: TraverseBack}).StepCount(); got != 1 {
		t.Errorf("StepCount() = %d, want 1", got)
	}
	if got := (NavigationEvent{Direction: TraverseForward, Steps: 3}).StepCount(); got != 3 {
		t.Errorf("StepCount() = %d, want 3", got)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{MouseButtonLeft.String(), "Left"},
		{MouseButtonMiddle.String(), "Middle"},
		{MouseButtonRight.String(), "Right"},
		{MouseActionClick.String(), "Click"},
		{MouseActionDown.String(), "MouseDown"},
		{MouseActionUp.String(), "MouseUp"},
		{TouchDown.String(), "Down"},
		{TouchCancel.String(), "Cancel"},
		{PressureBeforeClick.String(), "BeforeClick"},
		{TraverseBack.String(), "Back"},
		{TraverseForward.String(), "Forward"},
		{KeyPressed.String(), "Pressed"},
		{KeyReleased.String(), "Released"},
		{DebugProfiler.String(), "Profiler"},
		{DebugTextureCache.String(), "TextureCacheDebug"},
		{DebugRenderTargets.String(), "RenderTargetDebug"},
		{AnimationIdle.String(), "Idle"},
		{AnimationActive.String(), "Animating"},
		{CursorPointer.String(), "pointer"},
		{CursorNwseResize.String(), "nwse-resize"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
