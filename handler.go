package windowing

// Handler receives dispatched events, one method per taxonomy variant.
//
// The split into per-variant methods is what makes consumer dispatch
// exhaustive: when a variant is added to the taxonomy, every Handler
// implementation stops compiling until it handles the new method. There is
// no default branch to silently swallow an event.
//
// Handler methods run on the compositor's own goroutine, one event at a
// time; they are expected to complete quickly and defer slow work through
// reply channels.
type Handler interface {
	HandleIdle(IdleEvent)
	HandleRefresh(RefreshEvent)
	HandleResize(ResizeEvent)
	HandleTouchpadPressure(TouchpadPressureEvent)
	HandleLoadURL(LoadURLEvent)
	HandleMouse(MouseWindowEvent)
	HandleMouseMove(MouseMoveEvent)
	HandleTouch(TouchEvent)
	HandleScroll(ScrollEvent)
	HandleZoom(ZoomEvent)
	HandlePinchZoom(PinchZoomEvent)
	HandleResetZoom(ResetZoomEvent)
	HandleNavigation(NavigationEvent)
	HandleQuit(QuitEvent)
	HandleKey(KeyEvent)
	HandleReload(ReloadEvent)
	HandleNewBrowser(NewBrowserEvent)
	HandleCloseBrowser(CloseBrowserEvent)
	HandleSelectBrowser(SelectBrowserEvent)
	HandleToggleRenderDebug(ToggleRenderDebugEvent)
}
