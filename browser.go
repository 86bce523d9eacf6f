package windowing

import (
	"sync"

	"github.com/google/uuid"
)

// BrowserID identifies one top-level browsing context: an independently
// navigable page. Ids are opaque, unique for the process lifetime, allocated
// only by the host when it answers a NewBrowser event, and never reused
// after the context is closed.
//
// The zero value means "no context" and never identifies a live one.
type BrowserID struct {
	id uuid.UUID
}

// NewBrowserID allocates a fresh, process-unique browser id. Only the host
// answering a NewBrowser event should call this.
func NewBrowserID() BrowserID {
	return BrowserID{id: uuid.New()}
}

// IsZero reports whether the id is the "no context" zero value.
func (b BrowserID) IsZero() bool {
	return b.id == uuid.Nil
}

// String returns a short form of the id for logging.
func (b BrowserID) String() string {
	if b.IsZero() {
		return "browser(nil)"
	}
	s := b.id.String()
	return "browser(" + s[:8] + ")"
}

// BrowserIDReply is the one-shot reply channel of a NewBrowser event.
// The host must deliver exactly one id; Send after the first is a no-op.
type BrowserIDReply struct {
	once sync.Once
	ch   chan BrowserID
}

// NewBrowserIDReply creates an unanswered reply.
func NewBrowserIDReply() *BrowserIDReply {
	return &BrowserIDReply{ch: make(chan BrowserID, 1)}
}

// Send delivers the allocated id. The first call wins and returns true;
// every later call is ignored and returns false. Send never blocks.
func (r *BrowserIDReply) Send(id BrowserID) bool {
	sent := false
	r.once.Do(func() {
		r.ch <- id
		sent = true
	})
	return sent
}

// Recv returns the channel the compositor reads the id from. Exactly one
// value is ever delivered on it.
func (r *BrowserIDReply) Recv() <-chan BrowserID {
	return r.ch
}

// TraversalDirection is the direction of a chrome-level history navigation.
type TraversalDirection uint8

const (
	// TraverseBack goes to the previous session history entry.
	TraverseBack TraversalDirection = iota
	// TraverseForward goes to the next session history entry.
	TraverseForward
)

// String returns the direction name.
func (d TraversalDirection) String() string {
	if d == TraverseForward {
		return "Forward"
	}
	return "Back"
}

// LoadData is one session-history entry as reported through
// Window.HistoryChanged.
type LoadData struct {
	// URL is the entry's document URL.
	URL string
	// Title is the document title, empty until the page provides one.
	Title string
}
