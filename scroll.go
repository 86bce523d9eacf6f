package windowing

// ScrollLocationKind selects the interpretation of a ScrollLocation.
type ScrollLocationKind uint8

const (
	// ScrollDelta scrolls by a relative amount in device pixels.
	ScrollDelta ScrollLocationKind = iota
	// ScrollStart snaps to the beginning of the scrollable area.
	ScrollStart
	// ScrollEnd snaps to the end of the scrollable area.
	ScrollEnd
)

// ScrollLocation describes where a scroll event wants to go: a relative
// delta, or an absolute snap to the start or end of the scroll range.
// Delta is meaningful only when Kind is ScrollDelta.
type ScrollLocation struct {
	Kind  ScrollLocationKind
	Delta DevicePoint
}

// ScrollBy returns a relative scroll by (dx, dy) device pixels.
func ScrollBy(dx, dy float32) ScrollLocation {
	return ScrollLocation{Kind: ScrollDelta, Delta: DevicePoint{X: dx, Y: dy}}
}
