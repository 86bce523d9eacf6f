package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/windowing"
)

func TestXButton(t *testing.T) {
	tests := []struct {
		detail xproto.Button
		want   windowing.MouseButton
	}{
		{1, windowing.MouseButtonLeft},
		{2, windowing.MouseButtonMiddle},
		{3, windowing.MouseButtonRight},
	}
	for _, tt := range tests {
		if got := xButton(tt.detail); got != tt.want {
			t.Errorf("xButton(%d) = %v, want %v", tt.detail, got, tt.want)
		}
	}
}

func TestXModifiers(t *testing.T) {
	tests := []struct {
		state uint16
		want  gpucontext.Modifiers
	}{
		{0, 0},
		{xproto.ModMaskShift, gpucontext.ModShift},
		{xproto.ModMaskControl, gpucontext.ModControl},
		{xproto.ModMask1, gpucontext.ModAlt},
		{xproto.ModMask4, gpucontext.ModSuper},
		{xproto.ModMaskShift | xproto.ModMaskControl, gpucontext.ModShift | gpucontext.ModControl},
		// Lock and mode-switch masks carry no taxonomy modifier.
		{xproto.ModMaskLock | xproto.ModMask2, 0},
	}
	for _, tt := range tests {
		if got := xModifiers(tt.state); got != tt.want {
			t.Errorf("xModifiers(%#x) = %#x, want %#x", tt.state, got, tt.want)
		}
	}
}

// Printable characters must land on the virtual key codes, not on their
// codepoints: 'a' is KeyA, not Key(97).
func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want gpucontext.Key
	}{
		{'a', gpucontext.KeyA},
		{'A', gpucontext.KeyA},
		{'z', gpucontext.KeyZ},
		{'Z', gpucontext.KeyZ},
		{'0', gpucontext.Key0},
		{'9', gpucontext.Key9},
		{' ', gpucontext.KeySpace},
		{'-', gpucontext.KeyMinus},
		{'_', gpucontext.KeyMinus},
		{'=', gpucontext.KeyEqual},
		{'[', gpucontext.KeyLeftBracket},
		{'}', gpucontext.KeyRightBracket},
		{'\\', gpucontext.KeyBackslash},
		{';', gpucontext.KeySemicolon},
		{'\'', gpucontext.KeyApostrophe},
		{'`', gpucontext.KeyGrave},
		{',', gpucontext.KeyComma},
		{'.', gpucontext.KeyPeriod},
		{'/', gpucontext.KeySlash},
		// Shifted digits resolve to their base row key.
		{'!', gpucontext.Key1},
		{'(', gpucontext.Key9},
		{')', gpucontext.Key0},
		{'€', gpucontext.KeyUnknown},
	}
	for _, tt := range tests {
		if got := keyFromRune(tt.r); got != tt.want {
			t.Errorf("keyFromRune(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want gpucontext.Key
	}{
		{"Return", gpucontext.KeyEnter},
		{"KP_Enter", gpucontext.KeyNumpadEnter},
		{"BackSpace", gpucontext.KeyBackspace},
		{"Escape", gpucontext.KeyEscape},
		{"Tab", gpucontext.KeyTab},
		{"Left", gpucontext.KeyLeft},
		{"Right", gpucontext.KeyRight},
		{"Up", gpucontext.KeyUp},
		{"Down", gpucontext.KeyDown},
		{"Prior", gpucontext.KeyPageUp},
		{"Page_Down", gpucontext.KeyPageDown},
		{"Home", gpucontext.KeyHome},
		{"End", gpucontext.KeyEnd},
		{"Delete", gpucontext.KeyDelete},
		{"F1", gpucontext.KeyF1},
		{"F12", gpucontext.KeyF12},
		{"Shift_L", gpucontext.KeyLeftShift},
		{"Super_R", gpucontext.KeyRightSuper},
		{"Print", gpucontext.KeyPrintScreen},
		{"Henkan", gpucontext.KeyUnknown},
		{"", gpucontext.KeyUnknown},
	}
	for _, tt := range tests {
		if got := keyFromName(tt.name); got != tt.want {
			t.Errorf("keyFromName(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestXCursorGlyph(t *testing.T) {
	tests := []struct {
		cursor windowing.Cursor
		want   uint16
	}{
		{windowing.CursorDefault, xcursor.LeftPtr},
		{windowing.CursorPointer, xcursor.Hand2},
		{windowing.CursorText, xcursor.XTerm},
		{windowing.CursorCrosshair, xcursor.Crosshair},
		{windowing.CursorWait, xcursor.Watch},
		{windowing.CursorMove, xcursor.Fleur},
		{windowing.CursorNotAllowed, xcursor.Circle},
		{windowing.CursorNwResize, xcursor.TopLeftCorner},
		{windowing.CursorSeResize, xcursor.BottomRightCorner},
		{windowing.CursorEwResize, xcursor.SBHDoubleArrow},
		{windowing.CursorNsResize, xcursor.SBVDoubleArrow},
	}
	for _, tt := range tests {
		got, ok := xCursorGlyph(tt.cursor)
		if !ok {
			t.Errorf("xCursorGlyph(%v) has no glyph", tt.cursor)
			continue
		}
		if got != tt.want {
			t.Errorf("xCursorGlyph(%v) = %d, want %d", tt.cursor, got, tt.want)
		}
	}

	if _, ok := xCursorGlyph(windowing.CursorNone); ok {
		t.Error("xCursorGlyph(none) returned a glyph, want fallback to parent cursor")
	}
}

func TestBackendRegistered(t *testing.T) {
	entry, ok := windowing.Get(Backend)
	if !ok {
		t.Fatal("x11 backend not registered")
	}
	if entry.Priority != Priority {
		t.Errorf("priority = %d, want %d", entry.Priority, Priority)
	}
}
