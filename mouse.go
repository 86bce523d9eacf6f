package windowing

// MouseButton identifies a mouse button in a mouse event.
type MouseButton uint8

const (
	// MouseButtonLeft is the primary button.
	MouseButtonLeft MouseButton = iota
	// MouseButtonMiddle is the middle (wheel) button.
	MouseButtonMiddle
	// MouseButtonRight is the secondary button.
	MouseButtonRight
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonRight:
		return "Right"
	}
	return "Unknown"
}

// MouseAction distinguishes the three hit-test-worthy mouse transitions.
type MouseAction uint8

const (
	// MouseActionClick is a completed press-and-release on one point.
	MouseActionClick MouseAction = iota
	// MouseActionDown is a button press.
	MouseActionDown
	// MouseActionUp is a button release.
	MouseActionUp
)

// String returns the action name.
func (a MouseAction) String() string {
	switch a {
	case MouseActionClick:
		return "Click"
	case MouseActionDown:
		return "MouseDown"
	case MouseActionUp:
		return "MouseUp"
	}
	return "Unknown"
}

// MouseEvent is one hit-test-worthy mouse action: a click, press or release
// of a button at a position in device pixels. It is an immutable value; its
// identity is exactly its payload.
//
// Pure pointer motion is not a MouseEvent; it travels as MouseMoveEvent.
type MouseEvent struct {
	Action MouseAction
	Button MouseButton
	Point  DevicePoint
}
