package windowing

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/windowing/gpu"
)

// AnimationState tells the host whether the compositor is driving continuous
// frame production. Animating hosts favor polling at the display refresh
// rate; idle hosts block for input.
type AnimationState uint8

const (
	// AnimationIdle means no animation is running; the host may block on
	// input.
	AnimationIdle AnimationState = iota
	// AnimationActive means frames are being produced continuously; the
	// host should poll at the vsync interval.
	AnimationActive
)

// String returns the state name.
func (s AnimationState) String() string {
	if s == AnimationActive {
		return "Animating"
	}
	return "Idle"
}

// LoadErrorCode classifies a page load failure reported through
// Window.LoadError. The contract only reports the failure upward; recovery
// is the receiver's concern.
type LoadErrorCode int32

const (
	LoadErrorUnknown LoadErrorCode = iota
	LoadErrorConnectionRefused
	LoadErrorNameNotResolved
	LoadErrorTimedOut
	LoadErrorCertificateInvalid
	LoadErrorInterrupted
)

// Window is the capability contract between the compositor and one platform
// windowing backend. The compositor holds exactly one Window per OS window,
// behind this interface; there is one concrete implementation per supported
// platform.
//
// The contract models best-effort platform interaction, not a transactional
// API: none of these operations return errors. A backend that cannot honor
// a geometry or control request degrades silently (clamping, ignoring)
// instead of failing. The one explicit decision channel is AllowNavigation.
//
// Unless noted otherwise, methods are called from the compositor goroutine.
// Geometry queries must be safe at any time, including before the window is
// fully realized, returning best-effort last-known values.
type Window interface {
	// FramebufferSize returns the rendering area size in device pixels.
	FramebufferSize() DeviceSize

	// WindowRect returns the window's position and size within the
	// rendering area, in device pixels.
	WindowRect() DeviceRect

	// Size returns the window size in density-independent units.
	Size() DipSize

	// HiDPIFactor returns the scale between density-independent and device
	// pixel units.
	HiDPIFactor() ScaleFactor

	// Present publishes the most recently composited frame, typically by
	// page flipping.
	Present()

	// PrepareForComposite makes the rendering context current for the given
	// target size and reports whether compositing may proceed. A false
	// return is back-pressure, not an error: the caller must skip this
	// composite pass entirely (window minimized, context loss in progress).
	PrepareForComposite(width, height int) bool

	// ClientWindow returns the window size including decorations and its
	// position, in device pixels, for the window hosting the context.
	ClientWindow(browser BrowserID) (DeviceSize, DeviceIntPoint)

	// SetInnerSize resizes the window content area, excluding decorations.
	SetInnerSize(browser BrowserID, size DeviceSize)

	// SetPosition moves the window.
	SetPosition(browser BrowserID, point DeviceIntPoint)

	// SetFullscreenState enters or leaves fullscreen.
	SetFullscreenState(browser BrowserID, fullscreen bool)

	// Chrome notifications, host -> UI, one-way and fire-and-forget. They
	// must not block the compositor loop; an implementation that crosses a
	// thread or process boundary queues and returns immediately.

	// SetPageTitle updates the page title. An empty title clears it.
	SetPageTitle(browser BrowserID, title string)

	// Status displays a status message. An empty status clears it.
	Status(browser BrowserID, status string)

	// LoadStart signals that a frame started loading.
	LoadStart(browser BrowserID)

	// LoadEnd signals that a frame finished loading.
	LoadEnd(browser BrowserID)

	// LoadError reports a failed load of url.
	LoadError(browser BrowserID, code LoadErrorCode, url string)

	// HeadParsed signals that the document head finished parsing.
	HeadParsed(browser BrowserID)

	// HistoryChanged delivers the full session-history entry list and the
	// index of the current entry.
	HistoryChanged(browser BrowserID, entries []LoadData, current int)

	// SetFavicon sets the page icon URL.
	SetFavicon(browser BrowserID, url string)

	// AllowNavigation asks the host whether a link may be followed. The
	// host must deliver exactly one boolean on reply. The compositor gates
	// only the affected navigation on the answer and resolves a missing
	// answer with AwaitNavigation's timeout-and-deny policy.
	AllowNavigation(browser BrowserID, url string, reply *NavigationReply)

	// SetCursor changes the pointer image.
	SetCursor(cursor Cursor)

	// HandleKey processes a key event. browser is nil for chrome-level key
	// handling not tied to a page.
	HandleKey(browser *BrowserID, ch rune, key gpucontext.Key, mods gpucontext.Modifiers)

	// SupportsClipboard reports whether the window has clipboard access.
	SupportsClipboard() bool

	// CreateEventLoopWaker returns a handle that forces the compositor's
	// blocking wait to return. The handle is safe to use from any
	// goroutine, at any time, including after shutdown.
	CreateEventLoopWaker() EventLoopWaker

	// Device returns the shared GPU handle. Both the compositor and the
	// backend may issue work against it; it stays alive until the last
	// holder releases it.
	Device() gpu.DeviceHandle

	// SetAnimationState hints whether to favor low-latency polling
	// (Animating) or blocking waits (Idle). It is an optimization hint,
	// not a correctness requirement; backends may ignore it.
	SetAnimationState(state AnimationState)
}

// WindowDefaults provides no-op implementations of the optional parts of
// Window. Embed it in a backend to pick up default behavior for hints.
type WindowDefaults struct{}

// SetAnimationState is a no-op by default.
func (WindowDefaults) SetAnimationState(AnimationState) {}
