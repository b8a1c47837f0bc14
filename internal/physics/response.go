package physics

import "github.com/chewxy/math32"

// Response carries a detected collision: the time T at which it occurs and
// the velocity the body should adopt at that instant. The zero-collision
// (reset) state is T = +Inf, in which case NewVX and NewVY are meaningless.
type Response struct {
	T     float32 // Collision time in (0, timeLimit], or +Inf for no collision
	NewVX float32 // Velocity after the collision
	NewVY float32
}

// NoResponse returns a Response in its reset ("no collision") state.
func NoResponse() Response {
	return Response{T: math32.Inf(1)}
}

// Reset clears the response back to the no-collision state.
func (r *Response) Reset() {
	r.T = math32.Inf(1)
	r.NewVX = 0
	r.NewVY = 0
}

// Detected reports whether the response holds a real collision.
func (r Response) Detected() bool {
	return !math32.IsInf(r.T, 1)
}
