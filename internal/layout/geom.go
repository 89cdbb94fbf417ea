package layout

// Rect describes a rectangular region in root/screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Monitor is one physical display output. Monitors are discovered once at
// startup and do not change for the process lifetime.
type Monitor struct {
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// Bounds returns the monitor rectangle.
func (m Monitor) Bounds() Rect {
	return Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height}
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Center returns the center point of r.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
