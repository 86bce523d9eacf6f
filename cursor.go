package windowing

// Cursor names the pointer image the window should display. The set follows
// the CSS cursor property, which is what page content requests and what
// every platform toolkit can map onto its native cursors.
type Cursor uint8

const (
	CursorNone Cursor = iota
	CursorDefault
	CursorPointer
	CursorContextMenu
	CursorHelp
	CursorProgress
	CursorWait
	CursorCell
	CursorCrosshair
	CursorText
	CursorVerticalText
	CursorAlias
	CursorCopy
	CursorMove
	CursorNoDrop
	CursorNotAllowed
	CursorGrab
	CursorGrabbing
	CursorEResize
	CursorNResize
	CursorNeResize
	CursorNwResize
	CursorSResize
	CursorSeResize
	CursorSwResize
	CursorWResize
	CursorEwResize
	CursorNsResize
	CursorNeswResize
	CursorNwseResize
	CursorColResize
	CursorRowResize
	CursorAllScroll
	CursorZoomIn
	CursorZoomOut
)

var cursorNames = [...]string{
	"none", "default", "pointer", "context-menu", "help", "progress", "wait",
	"cell", "crosshair", "text", "vertical-text", "alias", "copy", "move",
	"no-drop", "not-allowed", "grab", "grabbing", "e-resize", "n-resize",
	"ne-resize", "nw-resize", "s-resize", "se-resize", "sw-resize", "w-resize",
	"ew-resize", "ns-resize", "nesw-resize", "nwse-resize", "col-resize",
	"row-resize", "all-scroll", "zoom-in", "zoom-out",
}

// String returns the CSS keyword for the cursor.
func (c Cursor) String() string {
	if int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return "default"
}
