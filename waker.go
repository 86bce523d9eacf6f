package windowing

// EventLoopWaker forces a blocked event loop to resume draining. It is the
// one mandated cross-thread primitive of this contract.
//
// Implementations must be safe to invoke from any goroutine, at any time,
// including after the originating window has begun shutting down: a wake on
// a dead loop is a harmless no-op, never a fault. Waking is idempotent and
// lossless — N wakes before the loop drains collapse to at least one
// wake-up, never zero.
//
// Multiple wakers may exist simultaneously (hand clones to background work)
// and all must be effective.
type EventLoopWaker interface {
	// Wake forces the loop's blocking wait to return.
	Wake()

	// Clone returns an independent waker for the same loop.
	Clone() EventLoopWaker
}
