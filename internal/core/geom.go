// Package core provides the geometry, screen buffer and input primitives shared
// by the breakout simulation and its front ends. It has no third-party
// dependencies so the simulation stays pure and testable.
package core

// Rect is an axis-aligned rectangle with integer coordinates.
// (X, Y) is the top-left corner.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromTopLeft builds a rectangle from a corner and a size.
func RectFromTopLeft(x, y int, dims Dims) Rect {
	return Rect{X: x, Y: y, W: dims.Width, H: dims.Height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two rectangles overlap with nonzero area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle (truncated).
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ToF converts the rectangle to real-valued coordinates.
func (r Rect) ToF() FRect {
	return FRect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// FRect is an axis-aligned rectangle with real-valued coordinates.
// The ball's bounding box is an FRect because its position integrates
// velocity over fractional frame times.
type FRect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r FRect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r FRect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects uses the same open-interval rule as Rect.Intersects.
func (r FRect) Intersects(other FRect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Dims is an integer width/height pair.
type Dims struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FDims is a real-valued width/height pair. Velocities use it as a 2D vector.
type FDims struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Scale multiplies both components by k.
func (d FDims) Scale(k float64) FDims {
	return FDims{Width: d.Width * k, Height: d.Height * k}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
