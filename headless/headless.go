// Package headless provides a windowless implementation of the window
// capability contract.
//
// The headless backend realizes no OS window: geometry is synthetic,
// presentation is counted rather than displayed, and chrome notifications
// are recorded so hosts and tests can observe them. It always registers as
// available, at low priority, so it only wins when no native backend can
// run.
//
//	import _ "github.com/gogpu/windowing/headless"
package headless

import (
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/windowing"
	"github.com/gogpu/windowing/gpu"
)

// Backend is the registry name of this backend.
const Backend = "headless"

// Priority is the registry priority: bottom of the pile, always available.
const Priority = 10

func init() {
	windowing.Register(Backend, Priority, func(cfg windowing.Config) (windowing.Window, error) {
		return New(cfg), nil
	}, nil)
}

// Notification is one recorded chrome notification.
type Notification struct {
	// Op is the notification name, e.g. "LoadStart" or "SetPageTitle".
	Op      string
	Browser windowing.BrowserID
	// Detail carries the operation's payload in printable form: the title,
	// status, url, or error text.
	Detail string
}

// Window is the headless implementation of windowing.Window.
//
// All state is synthetic and settable. The unit-space identity holds by
// construction: FramebufferSize is always Size scaled by HiDPIFactor.
type Window struct {
	queue *windowing.Queue

	mu         sync.Mutex
	dip        windowing.DipSize
	scale      windowing.ScaleFactor
	position   windowing.DeviceIntPoint
	fullscreen bool
	title      string
	cursor     windowing.Cursor
	animation  windowing.AnimationState
	device     gpu.DeviceHandle
	presented  int
	notes      []Notification

	// replayedSize restores the pre-fullscreen size on leave.
	replayedSize windowing.DipSize
}

// New creates a headless window from the config. The config's HiDPI
// override is honored; otherwise the scale factor is 1.
func New(cfg windowing.Config) *Window {
	scale := windowing.ScaleFactor(cfg.HiDPI)
	if scale <= 0 {
		scale = 1
	}
	var device gpu.DeviceHandle = gpu.NullDeviceHandle{}
	if d, ok := cfg.Custom["device"].(gpu.DeviceHandle); ok && d != nil {
		device = d
	}
	return &Window{
		queue:  windowing.NewQueue(),
		dip:    cfg.InitialSize(),
		scale:  scale,
		title:  cfg.Title,
		cursor: windowing.CursorDefault,
		device: device,
	}
}

// Events returns the queue the backend delivers taxonomy values into.
// Hosts drain it, typically through a windowing.Session.
func (w *Window) Events() *windowing.Queue {
	return w.queue
}

// Quit delivers the terminal QuitEvent.
func (w *Window) Quit() {
	w.queue.Push(windowing.QuitEvent{})
}

// FramebufferSize returns the synthetic rendering area in device pixels.
func (w *Window) FramebufferSize() windowing.DeviceSize {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dip.ToDevice(w.scale)
}

// WindowRect returns the synthetic window rect in device pixels.
func (w *Window) WindowRect() windowing.DeviceRect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return windowing.DeviceRect{Origin: w.position, Size: w.dip.ToDevice(w.scale)}
}

// Size returns the window size in density-independent units.
func (w *Window) Size() windowing.DipSize {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dip
}

// HiDPIFactor returns the configured scale factor.
func (w *Window) HiDPIFactor() windowing.ScaleFactor {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scale
}

// Present counts a published frame.
func (w *Window) Present() {
	w.mu.Lock()
	w.presented++
	w.mu.Unlock()
}

// Presented returns how many frames have been presented.
func (w *Window) Presented() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.presented
}

// PrepareForComposite reports whether compositing may proceed. Headless
// skips the pass only for a degenerate target, the back-pressure signal a
// minimized native window would give.
func (w *Window) PrepareForComposite(width, height int) bool {
	return width > 0 && height > 0
}

// ClientWindow returns the outer size and position. Headless has no
// decorations, so the outer size equals the framebuffer.
func (w *Window) ClientWindow(windowing.BrowserID) (windowing.DeviceSize, windowing.DeviceIntPoint) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dip.ToDevice(w.scale), w.position
}

// SetInnerSize resizes the synthetic window and delivers the Resize event a
// native backend would observe.
func (w *Window) SetInnerSize(_ windowing.BrowserID, size windowing.DeviceSize) {
	w.mu.Lock()
	w.dip = size.ToDip(w.scale)
	newSize := w.dip.ToDevice(w.scale)
	w.mu.Unlock()
	w.queue.Push(windowing.ResizeEvent{Size: newSize})
}

// SetPosition moves the synthetic window.
func (w *Window) SetPosition(_ windowing.BrowserID, point windowing.DeviceIntPoint) {
	w.mu.Lock()
	w.position = point
	w.mu.Unlock()
}

// SetFullscreenState toggles a synthetic fullscreen of 1920x1080 dip,
// restoring the previous size on leave.
func (w *Window) SetFullscreenState(_ windowing.BrowserID, fullscreen bool) {
	w.mu.Lock()
	if fullscreen == w.fullscreen {
		w.mu.Unlock()
		return
	}
	w.fullscreen = fullscreen
	if fullscreen {
		w.replayedSize = w.dip
		w.dip = windowing.DipSize{Width: 1920, Height: 1080}
	} else {
		w.dip = w.replayedSize
	}
	newSize := w.dip.ToDevice(w.scale)
	w.mu.Unlock()
	w.queue.Push(windowing.ResizeEvent{Size: newSize})
}

// record appends a chrome notification. Never blocks beyond the local lock,
// keeping the fire-and-forget contract.
func (w *Window) record(op string, browser windowing.BrowserID, detail string) {
	w.mu.Lock()
	w.notes = append(w.notes, Notification{Op: op, Browser: browser, Detail: detail})
	w.mu.Unlock()
	windowing.Logger().Debug("chrome notification", "op", op, "browser", browser, "detail", detail)
}

// Notifications returns a copy of the recorded chrome notifications.
func (w *Window) Notifications() []Notification {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Notification, len(w.notes))
	copy(out, w.notes)
	return out
}

// SetPageTitle records the title change.
func (w *Window) SetPageTitle(browser windowing.BrowserID, title string) {
	w.mu.Lock()
	w.title = title
	w.mu.Unlock()
	w.record("SetPageTitle", browser, title)
}

// Title returns the current window title.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// Status records a status message.
func (w *Window) Status(browser windowing.BrowserID, status string) {
	w.record("Status", browser, status)
}

// LoadStart records the start of a frame load.
func (w *Window) LoadStart(browser windowing.BrowserID) {
	w.record("LoadStart", browser, "")
}

// LoadEnd records the end of a frame load.
func (w *Window) LoadEnd(browser windowing.BrowserID) {
	w.record("LoadEnd", browser, "")
}

// LoadError records a failed load.
func (w *Window) LoadError(browser windowing.BrowserID, code windowing.LoadErrorCode, url string) {
	w.record("LoadError", browser, url)
	windowing.Logger().Warn("page load failed", "browser", browser, "code", code, "url", url)
}

// HeadParsed records head parse completion.
func (w *Window) HeadParsed(browser windowing.BrowserID) {
	w.record("HeadParsed", browser, "")
}

// HistoryChanged records the new history state.
func (w *Window) HistoryChanged(browser windowing.BrowserID, entries []windowing.LoadData, current int) {
	detail := ""
	if current >= 0 && current < len(entries) {
		detail = entries[current].URL
	}
	w.record("HistoryChanged", browser, detail)
}

// SetFavicon records the favicon URL.
func (w *Window) SetFavicon(browser windowing.BrowserID, url string) {
	w.record("SetFavicon", browser, url)
}

// AllowNavigation answers immediately: headless has no user to ask, every
// navigation is allowed.
func (w *Window) AllowNavigation(browser windowing.BrowserID, url string, reply *windowing.NavigationReply) {
	w.record("AllowNavigation", browser, url)
	reply.Send(true)
}

// SetCursor records the pointer image.
func (w *Window) SetCursor(cursor windowing.Cursor) {
	w.mu.Lock()
	w.cursor = cursor
	w.mu.Unlock()
}

// Cursor returns the current pointer image.
func (w *Window) Cursor() windowing.Cursor {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursor
}

// HandleKey records the key transition.
func (w *Window) HandleKey(browser *windowing.BrowserID, ch rune, key gpucontext.Key, mods gpucontext.Modifiers) {
	target := windowing.BrowserID{}
	if browser != nil {
		target = *browser
	}
	w.record("HandleKey", target, string(ch))
}

// SupportsClipboard reports false: there is no display to share a clipboard
// with.
func (w *Window) SupportsClipboard() bool {
	return false
}

// CreateEventLoopWaker returns a waker for the backend's queue.
func (w *Window) CreateEventLoopWaker() windowing.EventLoopWaker {
	return w.queue.Waker()
}

// Device returns the injected device provider, or the null device.
func (w *Window) Device() gpu.DeviceHandle {
	return w.device
}

// SetAnimationState records the hint.
func (w *Window) SetAnimationState(state windowing.AnimationState) {
	w.mu.Lock()
	w.animation = state
	w.mu.Unlock()
}

// AnimationState returns the last recorded hint.
func (w *Window) AnimationState() windowing.AnimationState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.animation
}

var _ windowing.Window = (*Window)(nil)
