// Package physics provides the collision detection and response kernel for
// circular bodies bouncing inside a rectangular container.
//
// All detection functions compute a collision time t and accept it only when
// 0 < t <= timeLimit. In a system of many moving bodies only the earliest
// collision matters, so callers keep the smallest t among all detected
// collisions and re-run detection after resolving it.
//
// Every function here is pure and stateless: it takes value snapshots and
// returns values, so independent simulations may call into this package
// concurrently.
package physics

import "github.com/chewxy/math32"

// Circle is a value snapshot of a moving circular body.
type Circle struct {
	X, Y   float32 // Center position
	VX, VY float32 // Velocity
	R      float32 // Radius (zero for a true point)
}

// Bounds is the rectangular container the bodies bounce inside.
type Bounds struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// NewBounds creates a container from a top-left corner and dimensions.
// Panics if width or height is not positive.
func NewBounds(x, y, width, height float32) Bounds {
	if width <= 0 || height <= 0 {
		panic("physics: non-positive container dimensions")
	}
	return Bounds{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// Width returns the horizontal extent of the container.
func (b Bounds) Width() float32 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the container.
func (b Bounds) Height() float32 { return b.MaxY - b.MinY }

// wellFormed reports whether the rectangle has positive area.
func (b Bounds) wellFormed() bool {
	return b.MinX < b.MaxX && b.MinY < b.MaxY
}

// ContainsCircle reports whether a circle of the given radius centered at
// (x, y) lies fully inside the container. Touching a border counts as inside.
func (b Bounds) ContainsCircle(x, y, r float32) bool {
	return x >= b.MinX+r && x <= b.MaxX-r && y >= b.MinY+r && y <= b.MaxY-r
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float32) float32 {
	dx := x2 - x1
	dy := y2 - y1
	return math32.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float32) float32 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float32) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}
