package windowing

// TouchID is the stable identifier of one touch point. It does not change
// across the Down -> Move* -> Up/Cancel sequence of that touch point, and is
// only reused after the sequence ends.
type TouchID int32

// TouchEventType is the phase of a touch point within its sequence.
// Scroll events reuse it to distinguish scroll-start, scroll-continuation
// and scroll-end.
type TouchEventType uint8

const (
	// TouchDown begins a touch sequence.
	TouchDown TouchEventType = iota
	// TouchMove continues a touch sequence.
	TouchMove
	// TouchUp ends a touch sequence normally.
	TouchUp
	// TouchCancel aborts a touch sequence (e.g. the system claimed the
	// gesture). No further events arrive for the touch id.
	TouchCancel
)

// String returns the phase name.
func (t TouchEventType) String() string {
	switch t {
	case TouchDown:
		return "Down"
	case TouchMove:
		return "Move"
	case TouchUp:
		return "Up"
	case TouchCancel:
		return "Cancel"
	}
	return "Unknown"
}

// TouchpadPressurePhase is the click stage of a pressure-sensitive trackpad,
// derived from the reported pressure value.
type TouchpadPressurePhase uint8

const (
	// PressureBeforeClick is light contact below the click threshold.
	PressureBeforeClick TouchpadPressurePhase = iota
	// PressureAfterFirstClick is past the normal click threshold.
	PressureAfterFirstClick
	// PressureAfterSecondClick is past the force-click threshold.
	PressureAfterSecondClick
)

// String returns the phase name.
func (p TouchpadPressurePhase) String() string {
	switch p {
	case PressureBeforeClick:
		return "BeforeClick"
	case PressureAfterFirstClick:
		return "AfterFirstClick"
	case PressureAfterSecondClick:
		return "AfterSecondClick"
	}
	return "Unknown"
}
