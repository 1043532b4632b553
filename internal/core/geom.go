// Package core provides the screen buffer, geometry helpers and input types
// shared by the runner game and its platforms. It has no UI dependencies so
// game logic stays pure and testable.
package core

import "math"

// Rect is an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether two rectangles overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Viewport maps world coordinates (floats, y grows downward) onto a grid of
// screen cells. Origin is the world point drawn at cell (0, 0).
type Viewport struct {
	OriginX, OriginY float64
	ScaleX, ScaleY   float64 // cells per world unit
}

// NewViewport fits a world rectangle of worldW x worldH units, whose top
// edge is at originY, into a screen of cols x rows cells.
func NewViewport(worldW, worldH, originY float64, cols, rows int) Viewport {
	v := Viewport{OriginY: originY, ScaleX: 1, ScaleY: 1}
	if worldW > 0 {
		v.ScaleX = float64(cols) / worldW
	}
	if worldH > 0 {
		v.ScaleY = float64(rows) / worldH
	}
	return v
}

// Col converts a world x coordinate to a screen column.
func (v Viewport) Col(x float64) int {
	return int(math.Floor((x - v.OriginX) * v.ScaleX))
}

// Row converts a world y coordinate to a screen row.
func (v Viewport) Row(y float64) int {
	return int(math.Floor((y - v.OriginY) * v.ScaleY))
}

// Cells converts a world length along x to a cell count, never less than one.
func (v Viewport) Cells(length float64) int {
	return Max(1, int(math.Round(length*v.ScaleX)))
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
	return math.Max(min, math.Min(max, val))
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
