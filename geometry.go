package windowing

import "math"

// Two pixel spaces cross the compositor boundary and they are not
// interchangeable: device pixels (framebuffer grid, pointer and touch
// positions) and density-independent "dip" units (window sizing as the user
// perceives it). Keeping them as distinct types makes accidental mixing a
// compile error; conversion goes through a ScaleFactor.

// DevicePoint is a position in device pixels.
type DevicePoint struct {
	X, Y float32
}

// DevPt is a convenience function to create a DevicePoint.
func DevPt(x, y float32) DevicePoint {
	return DevicePoint{X: x, Y: y}
}

// Add returns the sum of two device points (vector addition).
func (p DevicePoint) Add(q DevicePoint) DevicePoint {
	return DevicePoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two device points.
func (p DevicePoint) Sub(q DevicePoint) DevicePoint {
	return DevicePoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// ToDip converts the point to density-independent units using the given
// scale factor.
func (p DevicePoint) ToDip(scale ScaleFactor) DipPoint {
	if scale <= 0 {
		scale = 1
	}
	return DipPoint{X: p.X / float32(scale), Y: p.Y / float32(scale)}
}

// Round returns the point snapped to the integer device-pixel grid.
func (p DevicePoint) Round() DeviceIntPoint {
	return DeviceIntPoint{
		X: int32(math.Round(float64(p.X))),
		Y: int32(math.Round(float64(p.Y))),
	}
}

// DeviceIntPoint is an integer position in device pixels, used for window
// placement and scroll origins.
type DeviceIntPoint struct {
	X, Y int32
}

// DeviceSize is a size in whole device pixels, matching the framebuffer grid.
type DeviceSize struct {
	Width, Height uint32
}

// IsEmpty reports whether the size has a degenerate dimension.
func (s DeviceSize) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// ToDip converts the size to density-independent units using the given
// scale factor.
func (s DeviceSize) ToDip(scale ScaleFactor) DipSize {
	if scale <= 0 {
		scale = 1
	}
	return DipSize{
		Width:  float32(s.Width) / float32(scale),
		Height: float32(s.Height) / float32(scale),
	}
}

// DeviceRect is a rectangle in device pixels: the window's position and size
// within the rendering area.
type DeviceRect struct {
	Origin DeviceIntPoint
	Size   DeviceSize
}

// DipPoint is a position in density-independent pixels.
type DipPoint struct {
	X, Y float32
}

// DipPt is a convenience function to create a DipPoint.
func DipPt(x, y float32) DipPoint {
	return DipPoint{X: x, Y: y}
}

// Add returns the sum of two dip points (vector addition).
func (p DipPoint) Add(q DipPoint) DipPoint {
	return DipPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two dip points.
func (p DipPoint) Sub(q DipPoint) DipPoint {
	return DipPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// ToDevice converts the point to device pixels using the given scale
// factor.
func (p DipPoint) ToDevice(scale ScaleFactor) DevicePoint {
	if scale <= 0 {
		scale = 1
	}
	return DevicePoint{X: p.X * float32(scale), Y: p.Y * float32(scale)}
}

// DipSize is a size in density-independent pixels.
type DipSize struct {
	Width, Height float32
}

// ToDevice converts the size to device pixels using the given scale factor,
// rounding to the framebuffer grid.
func (s DipSize) ToDevice(scale ScaleFactor) DeviceSize {
	if scale <= 0 {
		scale = 1
	}
	w := math.Round(float64(s.Width) * float64(scale))
	h := math.Round(float64(s.Height) * float64(scale))
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return DeviceSize{Width: uint32(w), Height: uint32(h)}
}

// ScaleFactor is the ratio between device pixels and density-independent
// pixels (device / dip). A factor of 2 means one dip covers a 2x2 block of
// device pixels.
type ScaleFactor float32
