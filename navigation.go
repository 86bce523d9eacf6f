package windowing

import (
	"sync"
	"time"
)

// DefaultNavigationTimeout bounds how long a navigation stays gated on an
// unanswered Window.AllowNavigation reply. See AwaitNavigation.
const DefaultNavigationTimeout = 5 * time.Second

// NavigationReply is the one-shot boolean reply of AllowNavigation: the only
// place in the contract where the host communicates an explicit yes/no
// decision. The host must deliver exactly one value; Send after the first is
// a no-op.
type NavigationReply struct {
	once sync.Once
	ch   chan bool
}

// NewNavigationReply creates an unanswered reply.
func NewNavigationReply() *NavigationReply {
	return &NavigationReply{ch: make(chan bool, 1)}
}

// Send delivers the decision. The first call wins and returns true; every
// later call is ignored and returns false. Send never blocks.
func (r *NavigationReply) Send(allowed bool) bool {
	sent := false
	r.once.Do(func() {
		r.ch <- allowed
		sent = true
	})
	return sent
}

// Recv returns the channel the compositor reads the decision from.
func (r *NavigationReply) Recv() <-chan bool {
	return r.ch
}

// AwaitNavigation blocks until the host answers or the timeout elapses, in
// which case fallback is the decision.
//
// A host that never answers would otherwise stall the gated navigation
// forever, so the policy is explicit: an unanswered reply resolves to
// fallback, and hosts should pass false unless configured otherwise
// (Config.NavigationDefaultAllow). A non-positive timeout means
// DefaultNavigationTimeout.
//
// Only the gated navigation should block on this; unrelated events stay
// drainable if the caller runs AwaitNavigation off the main drain loop.
func AwaitNavigation(r *NavigationReply, timeout time.Duration, fallback bool) bool {
	if timeout <= 0 {
		timeout = DefaultNavigationTimeout
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case allowed := <-r.ch:
		return allowed
	case <-t.C:
		Logger().Warn("navigation gate timed out", "timeout", timeout, "fallback", fallback)
		return fallback
	}
}
