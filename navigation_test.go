package windowing

import (
	"testing"
	"time"
)

func TestAwaitNavigationAllow(t *testing.T) {
	r := NewNavigationReply()
	r.Send(true)
	if !AwaitNavigation(r, time.Second, false) {
		t.Error("AwaitNavigation = false for an allowed navigation")
	}
}

func TestAwaitNavigationDeny(t *testing.T) {
	r := NewNavigationReply()
	go func() {
		time.Sleep(5 * time.Millisecond)
		r.Send(false)
	}()
	if AwaitNavigation(r, time.Second, true) {
		t.Error("AwaitNavigation = true for a denied navigation")
	}
}

// An unanswered reply resolves to the fallback, not a hang.
func TestAwaitNavigationTimeout(t *testing.T) {
	r := NewNavigationReply()
	start := time.Now()
	if AwaitNavigation(r, 20*time.Millisecond, false) {
		t.Error("AwaitNavigation = true on timeout with deny fallback")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("AwaitNavigation blocked %v past a 20ms timeout", elapsed)
	}
}

// The fallback decides a timed-out gate, so a host configured for
// default-allow proceeds when nobody answers.
func TestAwaitNavigationTimeoutFallbackAllow(t *testing.T) {
	r := NewNavigationReply()
	if !AwaitNavigation(r, 20*time.Millisecond, true) {
		t.Error("AwaitNavigation = false on timeout with allow fallback")
	}

	// An explicit answer still beats the fallback.
	r = NewNavigationReply()
	r.Send(false)
	if AwaitNavigation(r, 20*time.Millisecond, true) {
		t.Error("fallback overrode an explicit deny")
	}
}

func TestNavigationReplyFirstSendWins(t *testing.T) {
	r := NewNavigationReply()
	if !r.Send(false) {
		t.Error("first Send = false, want true")
	}
	if r.Send(true) {
		t.Error("second Send = true, want false")
	}
	if AwaitNavigation(r, time.Second, true) {
		t.Error("later Send overwrote the first decision")
	}
}
