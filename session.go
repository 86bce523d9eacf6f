package windowing

import "sync"

// Session drives a compositor's event loop over a Queue: it drains one event
// at a time, validates the browsing-context lifecycle invariants, and routes
// each event to the wrapped Handler.
//
// Session enforces the producer contract:
//
//   - an id referenced by an event must have been created via NewBrowser and
//     not yet destroyed via CloseBrowser; stale events are logged and dropped,
//   - a closed id is never resurrected,
//   - nothing is processed after Quit.
//
// Violations are programming errors in the backend, not recoverable runtime
// conditions, so they surface as warnings rather than errors.
//
// Session itself implements Handler, which keeps its own dispatch exhaustive:
// a new taxonomy variant will not compile until Session validates it.
type Session struct {
	queue   *Queue
	handler Handler

	mu      sync.Mutex
	live    map[BrowserID]struct{}
	closed  map[BrowserID]struct{}
	visible BrowserID
	quit    bool
}

// NewSession creates a session draining queue into handler.
func NewSession(queue *Queue, handler Handler) *Session {
	return &Session{
		queue:   queue,
		handler: handler,
		live:    make(map[BrowserID]struct{}),
		closed:  make(map[BrowserID]struct{}),
	}
}

// Run drains and dispatches events until Quit is processed.
func (s *Session) Run() {
	for s.Step() {
	}
}

// Step blocks for the next event, dispatches it, and reports whether the
// session is still running. It returns false once Quit has been processed.
func (s *Session) Step() bool {
	if s.Quitting() {
		return false
	}
	e := s.queue.Wait()
	Logger().Debug("dispatching event", "kind", e.Kind())
	e.Dispatch(s)
	return !s.Quitting()
}

// Quitting reports whether Quit has been processed.
func (s *Session) Quitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quit
}

// Visible returns the id of the sole visible browsing context, or the zero
// id when none has been selected yet.
func (s *Session) Visible() BrowserID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Live reports whether id identifies a created, not yet closed context.
func (s *Session) Live(id BrowserID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.live[id]
	return ok
}

// checkLive validates an id-bearing event against the live set.
func (s *Session) checkLive(id BrowserID, kind string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.live[id]; ok {
		return true
	}
	if _, wasClosed := s.closed[id]; wasClosed {
		Logger().Warn("event references closed browser", "kind", kind, "browser", id)
	} else {
		Logger().Warn("event references unknown browser", "kind", kind, "browser", id)
	}
	return false
}

func (s *Session) HandleIdle(e IdleEvent)       { s.handler.HandleIdle(e) }
func (s *Session) HandleRefresh(e RefreshEvent) { s.handler.HandleRefresh(e) }

func (s *Session) HandleResize(e ResizeEvent) {
	s.handler.HandleResize(e)
}

func (s *Session) HandleTouchpadPressure(e TouchpadPressureEvent) {
	s.handler.HandleTouchpadPressure(e)
}

func (s *Session) HandleLoadURL(e LoadURLEvent) {
	if s.checkLive(e.Browser, e.Kind()) {
		s.handler.HandleLoadURL(e)
	}
}

func (s *Session) HandleMouse(e MouseWindowEvent)   { s.handler.HandleMouse(e) }
func (s *Session) HandleMouseMove(e MouseMoveEvent) { s.handler.HandleMouseMove(e) }
func (s *Session) HandleTouch(e TouchEvent)         { s.handler.HandleTouch(e) }
func (s *Session) HandleScroll(e ScrollEvent)       { s.handler.HandleScroll(e) }
func (s *Session) HandleZoom(e ZoomEvent)           { s.handler.HandleZoom(e) }
func (s *Session) HandlePinchZoom(e PinchZoomEvent) { s.handler.HandlePinchZoom(e) }
func (s *Session) HandleResetZoom(e ResetZoomEvent) { s.handler.HandleResetZoom(e) }

func (s *Session) HandleNavigation(e NavigationEvent) {
	if s.checkLive(e.Browser, e.Kind()) {
		s.handler.HandleNavigation(e)
	}
}

func (s *Session) HandleQuit(e QuitEvent) {
	s.mu.Lock()
	s.quit = true
	s.mu.Unlock()
	s.handler.HandleQuit(e)
}

func (s *Session) HandleKey(e KeyEvent) { s.handler.HandleKey(e) }

func (s *Session) HandleReload(e ReloadEvent) {
	if s.checkLive(e.Browser, e.Kind()) {
		s.handler.HandleReload(e)
	}
}

// HandleNewBrowser interposes on the reply so the allocated id joins the
// live set before the producer can observe it. The producer only learns the
// id from the reply, so no event bearing the id can beat the registration.
func (s *Session) HandleNewBrowser(e NewBrowserEvent) {
	inner := NewBrowserIDReply()
	outer := e.Reply
	go func() {
		id := <-inner.Recv()
		s.mu.Lock()
		s.live[id] = struct{}{}
		s.mu.Unlock()
		if outer != nil {
			outer.Send(id)
		}
	}()
	e.Reply = inner
	s.handler.HandleNewBrowser(e)
}

func (s *Session) HandleCloseBrowser(e CloseBrowserEvent) {
	if !s.checkLive(e.Browser, e.Kind()) {
		return
	}
	s.mu.Lock()
	delete(s.live, e.Browser)
	s.closed[e.Browser] = struct{}{}
	if s.visible == e.Browser {
		s.visible = BrowserID{}
	}
	s.mu.Unlock()
	s.handler.HandleCloseBrowser(e)
}

func (s *Session) HandleSelectBrowser(e SelectBrowserEvent) {
	if !s.checkLive(e.Browser, e.Kind()) {
		return
	}
	s.mu.Lock()
	s.visible = e.Browser
	s.mu.Unlock()
	s.handler.HandleSelectBrowser(e)
}

func (s *Session) HandleToggleRenderDebug(e ToggleRenderDebugEvent) {
	s.handler.HandleToggleRenderDebug(e)
}

var _ Handler = (*Session)(nil)
