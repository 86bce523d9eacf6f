package windowing

import (
	"testing"
	"time"
)

// sessionHandler embeds recordingHandler and plays the compositor side of
// browser creation: it answers NewBrowser replies with a fresh id.
type sessionHandler struct {
	recordingHandler
	created []BrowserID
}

func (h *sessionHandler) HandleNewBrowser(e NewBrowserEvent) {
	h.record("NewBrowser")
	id := NewBrowserID()
	h.created = append(h.created, id)
	if e.Reply != nil {
		e.Reply.Send(id)
	}
}

func recvID(t *testing.T, reply *BrowserIDReply) BrowserID {
	t.Helper()
	select {
	case id := <-reply.Recv():
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("browser id reply never arrived")
		return BrowserID{}
	}
}

// waitLive spins until the session has registered id, covering the window
// between the handler answering the reply and the registration goroutine
// running.
func waitLive(t *testing.T, s *Session, id BrowserID) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !s.Live(id) {
		if time.Now().After(deadline) {
			t.Fatalf("browser %v never became live", id)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSessionBrowserLifecycle(t *testing.T) {
	q := NewQueue()
	h := &sessionHandler{}
	s := NewSession(q, h)

	reply := NewBrowserIDReply()
	q.Push(NewBrowserEvent{URL: "https://example.com", Reply: reply})
	if !s.Step() {
		t.Fatal("Step = false before Quit")
	}

	id := recvID(t, reply)
	if id.IsZero() {
		t.Fatal("reply delivered zero id")
	}
	// The id is live no later than the moment the producer learns it.
	if !s.Live(id) {
		t.Errorf("Live(%v) = false immediately after reply", id)
	}

	q.Push(SelectBrowserEvent{Browser: id})
	q.Push(LoadURLEvent{Browser: id, URL: "https://example.com/next"})
	s.Step()
	s.Step()
	if s.Visible() != id {
		t.Errorf("Visible = %v, want %v", s.Visible(), id)
	}

	q.Push(CloseBrowserEvent{Browser: id})
	s.Step()
	if s.Live(id) {
		t.Error("Live = true after CloseBrowser")
	}
	if !s.Visible().IsZero() {
		t.Errorf("Visible = %v after closing the visible browser, want zero", s.Visible())
	}

	want := []string{"NewBrowser", "SelectBrowser", "LoadUrl", "CloseBrowser"}
	if len(h.calls) != len(want) {
		t.Fatalf("handler saw %v, want %v", h.calls, want)
	}
	for i := range want {
		if h.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, h.calls[i], want[i])
		}
	}
}

func TestSessionDropsStaleEvents(t *testing.T) {
	q := NewQueue()
	h := &sessionHandler{}
	s := NewSession(q, h)

	reply := NewBrowserIDReply()
	q.Push(NewBrowserEvent{URL: "about:blank", Reply: reply})
	s.Step()
	id := recvID(t, reply)
	waitLive(t, s, id)

	q.Push(CloseBrowserEvent{Browser: id})
	s.Step()

	// Everything referencing the closed id is dropped, not delivered.
	q.Push(LoadURLEvent{Browser: id, URL: "https://example.com"})
	q.Push(ReloadEvent{Browser: id})
	q.Push(NavigationEvent{Browser: id, Direction: TraverseForward})
	q.Push(SelectBrowserEvent{Browser: id})
	for i := 0; i < 4; i++ {
		s.Step()
	}

	want := []string{"NewBrowser", "CloseBrowser"}
	if len(h.calls) != len(want) {
		t.Errorf("handler saw %v, want %v", h.calls, want)
	}
}

func TestSessionDropsUnknownID(t *testing.T) {
	q := NewQueue()
	h := &sessionHandler{}
	s := NewSession(q, h)

	q.Push(LoadURLEvent{Browser: NewBrowserID(), URL: "https://example.com"})
	s.Step()
	if len(h.calls) != 0 {
		t.Errorf("handler saw %v for an id that was never created", h.calls)
	}
}

func TestSessionRunStopsOnQuit(t *testing.T) {
	q := NewQueue()
	h := &sessionHandler{}
	s := NewSession(q, h)

	q.Push(RefreshEvent{})
	q.Push(QuitEvent{})
	s.Run()

	if !s.Quitting() {
		t.Error("Quitting = false after Run")
	}
	want := []string{"Refresh", "Quit"}
	if len(h.calls) != len(want) || h.calls[0] != want[0] || h.calls[1] != want[1] {
		t.Errorf("handler saw %v, want %v", h.calls, want)
	}
	if s.Step() {
		t.Error("Step = true after Quit")
	}
}

// TestSessionIDNeverReused checks the closed set keeps growing: an id closed
// once never returns to the live set even if a confused producer replays its
// creation reply path.
func TestSessionIDNeverReused(t *testing.T) {
	q := NewQueue()
	h := &sessionHandler{}
	s := NewSession(q, h)

	reply := NewBrowserIDReply()
	q.Push(NewBrowserEvent{URL: "about:blank", Reply: reply})
	s.Step()
	id := recvID(t, reply)
	waitLive(t, s, id)

	q.Push(CloseBrowserEvent{Browser: id})
	s.Step()

	q.Push(SelectBrowserEvent{Browser: id})
	s.Step()
	if s.Live(id) || s.Visible() == id {
		t.Error("closed id came back to life")
	}
}
