package windowing

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.Title != "windowing" {
		t.Errorf("Title = %q, want %q", cfg.Title, "windowing")
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %vx%v, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.NavigationTimeout != DefaultNavigationTimeout {
		t.Errorf("NavigationTimeout = %v, want %v", cfg.NavigationTimeout, DefaultNavigationTimeout)
	}

	// Explicit values survive.
	cfg = Config{Title: "shell", Width: 1024, Height: 768}.withDefaults()
	if cfg.Title != "shell" || cfg.Width != 1024 || cfg.Height != 768 {
		t.Errorf("explicit values overwritten: %+v", cfg)
	}
}

func TestConfigInitialSize(t *testing.T) {
	cfg := Config{Width: 640, Height: 480}
	if got := cfg.InitialSize(); got != (DipSize{Width: 640, Height: 480}) {
		t.Errorf("InitialSize = %v, want 640x480", got)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windowing.yaml")
	data := []byte(`
backend: headless
title: test-shell
width: 1280
height: 720
hidpi: 2
navigation_timeout: 250000000
navigation_default_allow: true
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Backend != "headless" {
		t.Errorf("Backend = %q, want %q", cfg.Backend, "headless")
	}
	if cfg.Title != "test-shell" {
		t.Errorf("Title = %q, want %q", cfg.Title, "test-shell")
	}
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("size = %vx%v, want 1280x720", cfg.Width, cfg.Height)
	}
	if cfg.HiDPI != 2 {
		t.Errorf("HiDPI = %v, want 2", cfg.HiDPI)
	}
	if cfg.NavigationTimeout != 250*time.Millisecond {
		t.Errorf("NavigationTimeout = %v, want 250ms", cfg.NavigationTimeout)
	}
	if !cfg.NavigationDefaultAllow {
		t.Error("NavigationDefaultAllow = false, want true")
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windowing.yaml")
	if err := os.WriteFile(path, []byte("title: only-title\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Title != "only-title" {
		t.Errorf("Title = %q, want %q", cfg.Title, "only-title")
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %vx%v, want defaults 800x600", cfg.Width, cfg.Height)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig on a missing file returned nil error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [not a number\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig on malformed YAML returned nil error")
	}
}
