package windowing

// RenderDebugOption names a togglable renderer diagnostic. Toggling flips
// the flag; the taxonomy does not carry the resulting state.
type RenderDebugOption uint8

const (
	// DebugProfiler overlays the renderer's built-in profiler.
	DebugProfiler RenderDebugOption = iota
	// DebugTextureCache visualizes texture cache pages.
	DebugTextureCache
	// DebugRenderTargets visualizes intermediate render targets.
	DebugRenderTargets
)

// String returns the option name.
func (o RenderDebugOption) String() string {
	switch o {
	case DebugProfiler:
		return "Profiler"
	case DebugTextureCache:
		return "TextureCacheDebug"
	case DebugRenderTargets:
		return "RenderTargetDebug"
	}
	return "Unknown"
}
