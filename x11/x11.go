// Package x11 implements the window capability contract on top of the X
// window system, using xgb/xgbutil.
//
// The backend creates one top-level X window, runs the native event pump on
// its own goroutine and translates X events into the windowing taxonomy.
// Control operations degrade silently when the window manager refuses them,
// per the boundary's best-effort semantics.
//
//	import _ "github.com/gogpu/windowing/x11"
package x11

import (
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/windowing"
	"github.com/gogpu/windowing/gpu"
)

// Backend is the registry name of this backend.
const Backend = "x11"

// Priority is the registry priority: a native backend, preferred over
// headless whenever a display is reachable.
const Priority = 100

func init() {
	windowing.Register(Backend, Priority, func(cfg windowing.Config) (windowing.Window, error) {
		return New(cfg)
	}, func() bool {
		return os.Getenv("DISPLAY") != ""
	})
}

// clickSlop is the maximum press-to-release distance, in device pixels,
// that still synthesizes a Click after MouseUp.
const clickSlop = 4

// wheelLine is the scroll distance of one wheel detent in device pixels.
const wheelLine = 38

// pinchStep is the magnification applied per ctrl-wheel detent.
const pinchStep = 1.1

// Window is the X11 implementation of windowing.Window.
type Window struct {
	windowing.WindowDefaults

	xu    *xgbutil.XUtil
	win   *xwindow.Window
	queue *windowing.Queue

	mu        sync.Mutex
	size      windowing.DeviceSize
	position  windowing.DeviceIntPoint
	scale     windowing.ScaleFactor
	mapped    bool
	lastDown  windowing.DevicePoint
	device    gpu.DeviceHandle
	cursors   map[windowing.Cursor]xproto.Cursor
	closeOnce sync.Once
}

// New connects to the X server, creates and maps a top-level window sized
// from the config, and starts the event pump.
func New(cfg windowing.Config) (*Window, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}
	keybind.Initialize(xu)

	scale := windowing.ScaleFactor(cfg.HiDPI)
	if scale <= 0 {
		scale = detectScale(xu)
	}
	size := cfg.InitialSize().ToDevice(scale)

	win, err := xwindow.Generate(xu)
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("x11: allocate window id: %w", err)
	}
	if err := win.CreateChecked(xu.RootWin(), 0, 0, int(size.Width), int(size.Height),
		xproto.CwBackPixel, 0xffffff); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("x11: create window: %w", err)
	}

	var device gpu.DeviceHandle = gpu.NullDeviceHandle{}
	if d, ok := cfg.Custom["device"].(gpu.DeviceHandle); ok && d != nil {
		device = d
	}

	w := &Window{
		xu:     xu,
		win:    win,
		queue:  windowing.NewQueue(),
		size:   size,
		scale:  scale,
		device: device,
	}

	if err := win.Listen(
		xproto.EventMaskButtonPress,
		xproto.EventMaskButtonRelease,
		xproto.EventMaskPointerMotion,
		xproto.EventMaskKeyPress,
		xproto.EventMaskKeyRelease,
		xproto.EventMaskStructureNotify,
		xproto.EventMaskExposure,
	); err != nil {
		win.Destroy()
		xu.Conn().Close()
		return nil, fmt.Errorf("x11: select events: %w", err)
	}

	_ = ewmh.WmNameSet(xu, win.Id, cfg.Title)
	w.hookEvents()
	win.WMGracefulClose(func(*xwindow.Window) {
		w.queue.Push(windowing.QuitEvent{})
		xevent.Quit(xu)
	})
	win.Map()
	w.mu.Lock()
	w.mapped = true
	w.mu.Unlock()

	go func() {
		xevent.Main(xu)
		w.closeOnce.Do(func() { xu.Conn().Close() })
	}()

	windowing.Logger().Info("x11 window created",
		"id", win.Id, "size", fmt.Sprintf("%dx%d", size.Width, size.Height), "scale", scale)
	return w, nil
}

// detectScale derives the hidpi factor from the screen's physical size,
// with 96 dpi as the 1x baseline.
func detectScale(xu *xgbutil.XUtil) windowing.ScaleFactor {
	screen := xu.Screen()
	if screen == nil || screen.WidthInMillimeters == 0 {
		return 1
	}
	dpi := float32(screen.WidthInPixels) * 25.4 / float32(screen.WidthInMillimeters)
	scale := windowing.ScaleFactor(dpi / 96)
	if scale < 1 {
		return 1
	}
	return scale
}

// hookEvents connects the native event translations.
func (w *Window) hookEvents() {
	xevent.ConfigureNotifyFun(func(_ *xgbutil.XUtil, ev xevent.ConfigureNotifyEvent) {
		w.mu.Lock()
		w.size = windowing.DeviceSize{Width: uint32(ev.Width), Height: uint32(ev.Height)}
		w.position = windowing.DeviceIntPoint{X: int32(ev.X), Y: int32(ev.Y)}
		size := w.size
		w.mu.Unlock()
		w.queue.Push(windowing.ResizeEvent{Size: size})
	}).Connect(w.xu, w.win.Id)

	xevent.ExposeFun(func(_ *xgbutil.XUtil, _ xevent.ExposeEvent) {
		w.queue.Push(windowing.RefreshEvent{})
	}).Connect(w.xu, w.win.Id)

	xevent.MotionNotifyFun(func(_ *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		w.queue.Push(windowing.MouseMoveEvent{
			Point: windowing.DevPt(float32(ev.EventX), float32(ev.EventY)),
		})
	}).Connect(w.xu, w.win.Id)

	xevent.ButtonPressFun(func(_ *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		w.buttonPress(ev.Detail, ev.State, float32(ev.EventX), float32(ev.EventY))
	}).Connect(w.xu, w.win.Id)

	xevent.ButtonReleaseFun(func(_ *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
		w.buttonRelease(ev.Detail, float32(ev.EventX), float32(ev.EventY))
	}).Connect(w.xu, w.win.Id)

	xevent.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		w.queue.Push(w.keyEvent(xu, ev.State, ev.Detail, windowing.KeyPressed))
	}).Connect(w.xu, w.win.Id)

	xevent.KeyReleaseFun(func(xu *xgbutil.XUtil, ev xevent.KeyReleaseEvent) {
		w.queue.Push(w.keyEvent(xu, ev.State, ev.Detail, windowing.KeyReleased))
	}).Connect(w.xu, w.win.Id)
}

// buttonPress translates a press. X models the scroll wheel as buttons
// 4..7; a wheel detent with Control held becomes a synthesized pinch zoom.
func (w *Window) buttonPress(detail xproto.Button, state uint16, x, y float32) {
	switch detail {
	case 1, 2, 3:
		pt := windowing.DevPt(x, y)
		w.mu.Lock()
		w.lastDown = pt
		w.mu.Unlock()
		w.queue.Push(windowing.MouseWindowEvent{Mouse: windowing.MouseEvent{
			Action: windowing.MouseActionDown,
			Button: xButton(detail),
			Point:  pt,
		}})
	case 4, 5, 6, 7:
		ctrl := state&xproto.ModMaskControl != 0
		if ctrl && (detail == 4 || detail == 5) {
			mag := float32(pinchStep)
			if detail == 5 {
				mag = 1 / pinchStep
			}
			w.queue.Push(windowing.PinchZoomEvent{Magnification: mag})
			return
		}
		var dx, dy float32
		switch detail {
		case 4:
			dy = wheelLine
		case 5:
			dy = -wheelLine
		case 6:
			dx = wheelLine
		case 7:
			dx = -wheelLine
		}
		w.queue.Push(windowing.ScrollEvent{
			Location: windowing.ScrollBy(dx, dy),
			Origin:   windowing.DevPt(x, y).Round(),
			Type:     windowing.TouchMove,
		})
	}
}

// buttonRelease translates a release and synthesizes a Click when the
// pointer stayed within the click slop since the press.
func (w *Window) buttonRelease(detail xproto.Button, x, y float32) {
	if detail < 1 || detail > 3 {
		return
	}
	pt := windowing.DevPt(x, y)
	w.queue.Push(windowing.MouseWindowEvent{Mouse: windowing.MouseEvent{
		Action: windowing.MouseActionUp,
		Button: xButton(detail),
		Point:  pt,
	}})
	w.mu.Lock()
	down := w.lastDown
	w.mu.Unlock()
	d := pt.Sub(down)
	if d.X*d.X+d.Y*d.Y <= clickSlop*clickSlop {
		w.queue.Push(windowing.MouseWindowEvent{Mouse: windowing.MouseEvent{
			Action: windowing.MouseActionClick,
			Button: xButton(detail),
			Point:  pt,
		}})
	}
}

// keyEvent translates a key transition. The character is resolved through
// the keyboard mapping and is zero for non-printable keys.
func (w *Window) keyEvent(xu *xgbutil.XUtil, state uint16, detail xproto.Keycode, ks windowing.KeyState) windowing.KeyEvent {
	s := keybind.LookupString(xu, state, detail)
	var ch rune
	var key gpucontext.Key
	if r := []rune(s); len(r) == 1 {
		ch = r[0]
		key = keyFromRune(ch)
	} else {
		key = keyFromName(s)
	}
	return windowing.KeyEvent{
		Char:      ch,
		Key:       key,
		State:     ks,
		Modifiers: xModifiers(state),
	}
}

// keyFromRune maps a printable character to its virtual key code. Shifted
// characters resolve to the key of their base row.
func keyFromRune(r rune) gpucontext.Key {
	switch {
	case r >= 'a' && r <= 'z':
		return gpucontext.KeyA + gpucontext.Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return gpucontext.KeyA + gpucontext.Key(r-'A')
	case r >= '0' && r <= '9':
		return gpucontext.Key0 + gpucontext.Key(r-'0')
	}
	switch r {
	case ' ':
		return gpucontext.KeySpace
	case '-', '_':
		return gpucontext.KeyMinus
	case '=', '+':
		return gpucontext.KeyEqual
	case '[', '{':
		return gpucontext.KeyLeftBracket
	case ']', '}':
		return gpucontext.KeyRightBracket
	case '\\', '|':
		return gpucontext.KeyBackslash
	case ';', ':':
		return gpucontext.KeySemicolon
	case '\'', '"':
		return gpucontext.KeyApostrophe
	case '`', '~':
		return gpucontext.KeyGrave
	case ',', '<':
		return gpucontext.KeyComma
	case '.', '>':
		return gpucontext.KeyPeriod
	case '/', '?':
		return gpucontext.KeySlash
	case '!':
		return gpucontext.Key1
	case '@':
		return gpucontext.Key2
	case '#':
		return gpucontext.Key3
	case '$':
		return gpucontext.Key4
	case '%':
		return gpucontext.Key5
	case '^':
		return gpucontext.Key6
	case '&':
		return gpucontext.Key7
	case '*':
		return gpucontext.Key8
	case '(':
		return gpucontext.Key9
	case ')':
		return gpucontext.Key0
	}
	return gpucontext.KeyUnknown
}

// xKeyNames maps X keysym names, as keybind resolves them, to virtual key
// codes. Prior/Page_Up and Next/Page_Down name the same keysym.
var xKeyNames = map[string]gpucontext.Key{
	"Return":      gpucontext.KeyEnter,
	"KP_Enter":    gpucontext.KeyNumpadEnter,
	"Escape":      gpucontext.KeyEscape,
	"Tab":         gpucontext.KeyTab,
	"BackSpace":   gpucontext.KeyBackspace,
	"Insert":      gpucontext.KeyInsert,
	"Delete":      gpucontext.KeyDelete,
	"Home":        gpucontext.KeyHome,
	"End":         gpucontext.KeyEnd,
	"Prior":       gpucontext.KeyPageUp,
	"Page_Up":     gpucontext.KeyPageUp,
	"Next":        gpucontext.KeyPageDown,
	"Page_Down":   gpucontext.KeyPageDown,
	"Left":        gpucontext.KeyLeft,
	"Right":       gpucontext.KeyRight,
	"Up":          gpucontext.KeyUp,
	"Down":        gpucontext.KeyDown,
	"F1":          gpucontext.KeyF1,
	"F2":          gpucontext.KeyF2,
	"F3":          gpucontext.KeyF3,
	"F4":          gpucontext.KeyF4,
	"F5":          gpucontext.KeyF5,
	"F6":          gpucontext.KeyF6,
	"F7":          gpucontext.KeyF7,
	"F8":          gpucontext.KeyF8,
	"F9":          gpucontext.KeyF9,
	"F10":         gpucontext.KeyF10,
	"F11":         gpucontext.KeyF11,
	"F12":         gpucontext.KeyF12,
	"Shift_L":     gpucontext.KeyLeftShift,
	"Shift_R":     gpucontext.KeyRightShift,
	"Control_L":   gpucontext.KeyLeftControl,
	"Control_R":   gpucontext.KeyRightControl,
	"Alt_L":       gpucontext.KeyLeftAlt,
	"Alt_R":       gpucontext.KeyRightAlt,
	"Super_L":     gpucontext.KeyLeftSuper,
	"Super_R":     gpucontext.KeyRightSuper,
	"Caps_Lock":   gpucontext.KeyCapsLock,
	"Num_Lock":    gpucontext.KeyNumLock,
	"Scroll_Lock": gpucontext.KeyScrollLock,
	"Print":       gpucontext.KeyPrintScreen,
	"Pause":       gpucontext.KeyPause,
}

// keyFromName maps a multi-character keysym name to its virtual key code.
func keyFromName(name string) gpucontext.Key {
	if k, ok := xKeyNames[name]; ok {
		return k
	}
	return gpucontext.KeyUnknown
}

// xButton maps X button numbers to the taxonomy's buttons. X order is
// left, middle, right.
func xButton(detail xproto.Button) windowing.MouseButton {
	switch detail {
	case 2:
		return windowing.MouseButtonMiddle
	case 3:
		return windowing.MouseButtonRight
	}
	return windowing.MouseButtonLeft
}

// xModifiers converts the X state mask to modifier bits. Mod1 is Alt and
// Mod4 is Super under every common X keymap.
func xModifiers(state uint16) gpucontext.Modifiers {
	var m gpucontext.Modifiers
	if state&xproto.ModMaskShift != 0 {
		m |= gpucontext.ModShift
	}
	if state&xproto.ModMaskControl != 0 {
		m |= gpucontext.ModControl
	}
	if state&xproto.ModMask1 != 0 {
		m |= gpucontext.ModAlt
	}
	if state&xproto.ModMask4 != 0 {
		m |= gpucontext.ModSuper
	}
	return m
}

// Events returns the queue native events are translated into.
func (w *Window) Events() *windowing.Queue {
	return w.queue
}

// Close destroys the X window and stops the event pump. The queue's wakers
// stay harmless afterward.
func (w *Window) Close() {
	w.closeOnce.Do(func() {
		w.win.Destroy()
		xevent.Quit(w.xu)
		w.xu.Conn().Close()
	})
}

// FramebufferSize returns the last known window size in device pixels.
func (w *Window) FramebufferSize() windowing.DeviceSize {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// WindowRect returns the last known position and size in device pixels.
func (w *Window) WindowRect() windowing.DeviceRect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return windowing.DeviceRect{Origin: w.position, Size: w.size}
}

// Size returns the window size in density-independent units.
func (w *Window) Size() windowing.DipSize {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size.ToDip(w.scale)
}

// HiDPIFactor returns the detected or configured scale factor.
func (w *Window) HiDPIFactor() windowing.ScaleFactor {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scale
}

// Present flushes pending requests to the server. Buffer swapping belongs
// to the GPU surface bound to this window, not to the X transport.
func (w *Window) Present() {
	w.xu.Sync()
}

// PrepareForComposite reports whether compositing may proceed: the window
// must be mapped and the target non-degenerate.
func (w *Window) PrepareForComposite(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mapped
}

// ClientWindow returns the window's outer size and position, including
// decorations when the window manager reports frame extents.
func (w *Window) ClientWindow(windowing.BrowserID) (windowing.DeviceSize, windowing.DeviceIntPoint) {
	w.mu.Lock()
	size, pos := w.size, w.position
	w.mu.Unlock()
	if extents, err := ewmh.FrameExtentsGet(w.xu, w.win.Id); err == nil {
		size.Width += uint32(extents.Left + extents.Right)
		size.Height += uint32(extents.Top + extents.Bottom)
		pos.X -= int32(extents.Left)
		pos.Y -= int32(extents.Top)
	}
	return size, pos
}

// SetInnerSize resizes the content area. The resulting ConfigureNotify
// delivers the Resize event.
func (w *Window) SetInnerSize(_ windowing.BrowserID, size windowing.DeviceSize) {
	w.win.Resize(int(size.Width), int(size.Height))
}

// SetPosition moves the window.
func (w *Window) SetPosition(_ windowing.BrowserID, point windowing.DeviceIntPoint) {
	w.win.Move(int(point.X), int(point.Y))
}

// SetFullscreenState asks the window manager for fullscreen. Refusal is
// silent, per the boundary's best-effort semantics.
func (w *Window) SetFullscreenState(_ windowing.BrowserID, fullscreen bool) {
	action := 0
	if fullscreen {
		action = 1
	}
	if err := ewmh.WmStateReq(w.xu, w.win.Id, action, "_NET_WM_STATE_FULLSCREEN"); err != nil {
		windowing.Logger().Debug("fullscreen request refused", "err", err)
	}
}

// SetPageTitle updates the window title.
func (w *Window) SetPageTitle(_ windowing.BrowserID, title string) {
	_ = ewmh.WmNameSet(w.xu, w.win.Id, title)
}

// Status is a no-op: the plain X window has no status bar.
func (w *Window) Status(windowing.BrowserID, string) {}

// LoadStart is a no-op: no chrome to show progress in.
func (w *Window) LoadStart(windowing.BrowserID) {}

// LoadEnd is a no-op.
func (w *Window) LoadEnd(windowing.BrowserID) {}

// LoadError logs the failure; there is no chrome to surface it in.
func (w *Window) LoadError(browser windowing.BrowserID, code windowing.LoadErrorCode, url string) {
	windowing.Logger().Warn("page load failed", "browser", browser, "code", code, "url", url)
}

// HeadParsed is a no-op.
func (w *Window) HeadParsed(windowing.BrowserID) {}

// HistoryChanged is a no-op: no chrome history UI.
func (w *Window) HistoryChanged(windowing.BrowserID, []windowing.LoadData, int) {}

// SetFavicon is a no-op: plain X windows take icons via WM hints only.
func (w *Window) SetFavicon(windowing.BrowserID, string) {}

// AllowNavigation allows every navigation: the plain window has no UI to
// ask the user with. The reply is sent before returning, so the gated
// navigation never waits.
func (w *Window) AllowNavigation(_ windowing.BrowserID, _ string, reply *windowing.NavigationReply) {
	reply.Send(true)
}

// SetCursor changes the pointer image to the nearest cursor-font glyph,
// creating and caching the X cursor on first use.
func (w *Window) SetCursor(cursor windowing.Cursor) {
	glyph, ok := xCursorGlyph(cursor)
	if !ok {
		w.win.Change(xproto.CwCursor, 0)
		return
	}
	w.mu.Lock()
	id, cached := w.cursors[cursor]
	w.mu.Unlock()
	if !cached {
		var err error
		id, err = xcursor.CreateCursor(w.xu, glyph)
		if err != nil {
			windowing.Logger().Debug("cursor creation failed", "cursor", cursor, "err", err)
			return
		}
		w.mu.Lock()
		if w.cursors == nil {
			w.cursors = make(map[windowing.Cursor]xproto.Cursor)
		}
		w.cursors[cursor] = id
		w.mu.Unlock()
	}
	w.win.Change(xproto.CwCursor, uint32(id))
}

// xCursorGlyph maps a cursor to its closest cursor-font glyph. The CSS set
// is larger than the X cursor font, so several cursors share a glyph. None
// has no glyph; the window falls back to the parent's cursor.
func xCursorGlyph(c windowing.Cursor) (uint16, bool) {
	switch c {
	case windowing.CursorNone:
		return 0, false
	case windowing.CursorPointer, windowing.CursorAlias, windowing.CursorCopy:
		return xcursor.Hand2, true
	case windowing.CursorHelp:
		return xcursor.QuestionArrow, true
	case windowing.CursorProgress, windowing.CursorWait:
		return xcursor.Watch, true
	case windowing.CursorCell:
		return xcursor.Plus, true
	case windowing.CursorCrosshair:
		return xcursor.Crosshair, true
	case windowing.CursorText, windowing.CursorVerticalText:
		return xcursor.XTerm, true
	case windowing.CursorMove, windowing.CursorAllScroll, windowing.CursorGrabbing:
		return xcursor.Fleur, true
	case windowing.CursorNoDrop, windowing.CursorNotAllowed:
		return xcursor.Circle, true
	case windowing.CursorGrab:
		return xcursor.Hand1, true
	case windowing.CursorEResize:
		return xcursor.RightSide, true
	case windowing.CursorNResize:
		return xcursor.TopSide, true
	case windowing.CursorNeResize:
		return xcursor.TopRightCorner, true
	case windowing.CursorNwResize:
		return xcursor.TopLeftCorner, true
	case windowing.CursorSResize:
		return xcursor.BottomSide, true
	case windowing.CursorSeResize:
		return xcursor.BottomRightCorner, true
	case windowing.CursorSwResize:
		return xcursor.BottomLeftCorner, true
	case windowing.CursorWResize:
		return xcursor.LeftSide, true
	case windowing.CursorEwResize, windowing.CursorColResize:
		return xcursor.SBHDoubleArrow, true
	case windowing.CursorNsResize, windowing.CursorRowResize:
		return xcursor.SBVDoubleArrow, true
	case windowing.CursorNeswResize, windowing.CursorNwseResize:
		return xcursor.Sizing, true
	case windowing.CursorZoomIn, windowing.CursorZoomOut:
		return xcursor.Target, true
	}
	return xcursor.LeftPtr, true
}

// HandleKey handles chrome-level keys; page-level keys are the consumer's
// concern.
func (w *Window) HandleKey(browser *windowing.BrowserID, ch rune, key gpucontext.Key, mods gpucontext.Modifiers) {
	if browser != nil {
		return
	}
	windowing.Logger().Debug("chrome key", "char", string(ch))
}

// SupportsClipboard reports true: X selections are available.
func (w *Window) SupportsClipboard() bool {
	return true
}

// CreateEventLoopWaker returns a waker for the backend's queue.
func (w *Window) CreateEventLoopWaker() windowing.EventLoopWaker {
	return w.queue.Waker()
}

// Device returns the injected device provider, or the null device.
func (w *Window) Device() gpu.DeviceHandle {
	return w.device
}

var _ windowing.Window = (*Window)(nil)
