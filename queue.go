package windowing

import "sync"

// Queue is the cross-goroutine mailbox between a platform backend and the
// compositor loop. The backend (and any background work holding a waker)
// pushes from arbitrary goroutines; the compositor drains from exactly one.
//
// A Queue distinguishes events from wakes: a wake with nothing queued
// surfaces as IdleEvent, which exists purely to break the consumer out of a
// blocking wait.
type Queue struct {
	mu     sync.Mutex
	events []Event
	closed bool

	// wake carries at most one pending token so that any number of wakes
	// before the loop drains collapse to a single wake-up.
	wake chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Push enqueues an event and wakes a blocked Wait. It is safe from any
// goroutine.
//
// QuitEvent is terminal: it closes the queue, and anything pushed after it
// is dropped. A producer doing so is violating the contract, which is worth
// a warning but never a fault.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		Logger().Warn("event pushed after Quit, dropping", "kind", e.Kind())
		return
	}
	if _, quit := e.(QuitEvent); quit {
		q.closed = true
	}
	q.events = append(q.events, e)
	q.mu.Unlock()
	q.signal()
}

// Wait blocks until an event is available or the queue is woken, then
// returns the next event. A wake with nothing queued returns IdleEvent.
func (q *Queue) Wait() Event {
	if e, ok := q.Poll(); ok {
		return e
	}
	<-q.wake
	if e, ok := q.Poll(); ok {
		return e
	}
	return IdleEvent{}
}

// Poll returns the next event without blocking.
func (q *Queue) Poll() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}

// Drain removes and returns all queued events.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Closed reports whether QuitEvent has been enqueued.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Waker returns an EventLoopWaker for this queue. Wakers stay harmless
// after the queue's consumer is gone: a wake then just parks a token nobody
// reads.
func (q *Queue) Waker() EventLoopWaker {
	return queueWaker{q: q}
}

// signal parks a wake token unless one is already pending.
func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

type queueWaker struct {
	q *Queue
}

func (w queueWaker) Wake() {
	w.q.signal()
}

func (w queueWaker) Clone() EventLoopWaker {
	return queueWaker{q: w.q}
}
