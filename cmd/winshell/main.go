// Command winshell demonstrates the windowing boundary: it opens a window
// through the backend registry, drives a scripted browsing session through
// the event queue and logs every dispatched event.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/windowing"
	"github.com/gogpu/windowing/gpu"
	"github.com/gogpu/windowing/headless"

	_ "github.com/gogpu/windowing/x11" // register X11 backend
)

func main() {
	var (
		backend    = flag.String("backend", "", "backend name (empty = best available)")
		configPath = flag.String("config", "", "YAML config file")
		url        = flag.String("url", "https://example.com", "initial URL")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	windowing.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := windowing.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = windowing.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	cfg.Title = "winshell"

	// An offscreen GPU device, shared for the lifetime of the run and
	// handed to the window so Device() returns it. Missing GPU support is
	// fine for a demo.
	if dev, err := gpu.Open("winshell"); err == nil {
		log.Printf("GPU adapter: %s", dev.Name())
		defer dev.Release()
		if cfg.Custom == nil {
			cfg.Custom = make(map[string]any)
		}
		cfg.Custom["device"] = dev
	} else {
		log.Printf("No GPU: %v", err)
	}

	win, err := windowing.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	log.Printf("Backends: registered=%v available=%v", windowing.List(), windowing.Available())

	queue := eventQueue(win)
	session := windowing.NewSession(queue, &shell{
		win:        win,
		navTimeout: cfg.NavigationTimeout,
		navAllow:   cfg.NavigationDefaultAllow,
	})

	// Drive a scripted session against the queue, the same way a real
	// embedder would from its UI thread.
	go script(queue, *url, win)

	session.Run()
	log.Printf("Session ended")
}

// eventQueue returns the backend's queue. Both bundled backends expose it
// through an Events accessor.
func eventQueue(win windowing.Window) *windowing.Queue {
	type eventSource interface {
		Events() *windowing.Queue
	}
	if src, ok := win.(eventSource); ok {
		return src.Events()
	}
	log.Fatalf("Backend does not expose an event queue")
	return nil
}

// script pushes a small browsing session: create a context, load a URL,
// poke at the window, tear down.
func script(queue *windowing.Queue, url string, win windowing.Window) {
	reply := windowing.NewBrowserIDReply()
	queue.Push(windowing.NewBrowserEvent{URL: url, Reply: reply})
	id := <-reply.Recv()

	queue.Push(windowing.SelectBrowserEvent{Browser: id})
	queue.Push(windowing.LoadURLEvent{Browser: id, URL: url})
	queue.Push(windowing.ResizeEvent{Size: windowing.DeviceSize{Width: 800, Height: 600}})
	queue.Push(windowing.MouseWindowEvent{Mouse: windowing.MouseEvent{
		Action: windowing.MouseActionClick,
		Button: windowing.MouseButtonLeft,
		Point:  windowing.DevPt(10, 10),
	}})
	queue.Push(windowing.CloseBrowserEvent{Browser: id})

	// Headless windows have no close button; end the session ourselves.
	if hw, ok := win.(*headless.Window); ok {
		hw.Quit()
	}
}

// shell is the embedder-side handler: it reacts to events by calling back
// into the window capability contract.
type shell struct {
	win        windowing.Window
	navTimeout time.Duration
	navAllow   bool
}

func (s *shell) HandleIdle(windowing.IdleEvent)       {}
func (s *shell) HandleRefresh(windowing.RefreshEvent) {}

func (s *shell) HandleResize(e windowing.ResizeEvent) {
	if s.win.PrepareForComposite(int(e.Size.Width), int(e.Size.Height)) {
		s.win.Present()
	}
}

func (s *shell) HandleTouchpadPressure(windowing.TouchpadPressureEvent) {}

func (s *shell) HandleLoadURL(e windowing.LoadURLEvent) {
	reply := windowing.NewNavigationReply()
	s.win.AllowNavigation(e.Browser, e.URL, reply)
	if !windowing.AwaitNavigation(reply, s.navTimeout, s.navAllow) {
		log.Printf("Navigation denied: %s", e.URL)
		return
	}
	s.win.LoadStart(e.Browser)
	s.win.SetPageTitle(e.Browser, e.URL)
	s.win.HistoryChanged(e.Browser, []windowing.LoadData{{URL: e.URL}}, 0)
	s.win.LoadEnd(e.Browser)
}

func (s *shell) HandleMouse(e windowing.MouseWindowEvent) {
	s.win.SetCursor(windowing.CursorPointer)
	log.Printf("Mouse %s %s at (%.0f, %.0f)",
		e.Mouse.Action, e.Mouse.Button, e.Mouse.Point.X, e.Mouse.Point.Y)
}

func (s *shell) HandleMouseMove(windowing.MouseMoveEvent) {}
func (s *shell) HandleTouch(windowing.TouchEvent)         {}
func (s *shell) HandleScroll(windowing.ScrollEvent)       {}

func (s *shell) HandleZoom(e windowing.ZoomEvent)           { log.Printf("Zoom %.2f", e.Magnification) }
func (s *shell) HandlePinchZoom(e windowing.PinchZoomEvent) { log.Printf("PinchZoom %.2f", e.Magnification) }
func (s *shell) HandleResetZoom(windowing.ResetZoomEvent)   { log.Printf("Zoom reset") }

func (s *shell) HandleNavigation(e windowing.NavigationEvent) {
	log.Printf("History %s x%d for %s", e.Direction, e.StepCount(), e.Browser)
}

func (s *shell) HandleQuit(windowing.QuitEvent) {
	log.Printf("Quit")
}

func (s *shell) HandleKey(e windowing.KeyEvent) {
	s.win.HandleKey(nil, e.Char, e.Key, e.Modifiers)
}

func (s *shell) HandleReload(e windowing.ReloadEvent) {
	log.Printf("Reload %s", e.Browser)
}

func (s *shell) HandleNewBrowser(e windowing.NewBrowserEvent) {
	id := windowing.NewBrowserID()
	log.Printf("New browser %s for %s", id, e.URL)
	e.Reply.Send(id)
}

func (s *shell) HandleCloseBrowser(e windowing.CloseBrowserEvent) {
	log.Printf("Closed %s", e.Browser)
}

func (s *shell) HandleSelectBrowser(e windowing.SelectBrowserEvent) {
	log.Printf("Selected %s", e.Browser)
}

func (s *shell) HandleToggleRenderDebug(e windowing.ToggleRenderDebugEvent) {
	log.Printf("Toggle %s", e.Option)
}
