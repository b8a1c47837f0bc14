// Package object provides the simulation entities.
package object

import (
	"github.com/chewxy/math32"

	"github.com/tomz197/ballsaver/internal/physics"
)

// Ball is a bouncing circular body. Position and velocity are in logical
// container units; one velocity unit corresponds to one frame of travel.
// Balls are owned by the simulator, which is the only mutator during a
// frame advance.
type Ball struct {
	X, Y   float32 // Center position
	VX, VY float32 // Velocity per frame unit
	Radius float32
}

// NewBall creates a ball at (x, y) with the given radius, moving at the
// given speed in the direction angleDeg. Angles follow graphics
// coordinates: degrees counter-clockwise with the y axis pointing down.
func NewBall(x, y, radius, speed, angleDeg float32) *Ball {
	if radius < 0 {
		panic("object: negative radius")
	}
	rad := angleDeg * math32.Pi / 180
	return &Ball{
		X:      x,
		Y:      y,
		VX:     speed * math32.Cos(rad),
		VY:     -speed * math32.Sin(rad),
		Radius: radius,
	}
}

// Move advances the ball by the fractional time dt at its current velocity.
func (b *Ball) Move(dt float32) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// SetVelocity replaces the ball's velocity, typically with a collision
// response computed by the physics kernel.
func (b *Ball) SetVelocity(vx, vy float32) {
	b.VX = vx
	b.VY = vy
}

// Circle returns a value snapshot for the collision functions.
func (b *Ball) Circle() physics.Circle {
	return physics.Circle{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, R: b.Radius}
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float32 {
	return math32.Sqrt(b.VX*b.VX + b.VY*b.VY)
}
