package physics

import (
	"math"

	"github.com/chewxy/math32"
)

// PointHitsVerticalLine detects a moving circle hitting a vertical line at
// lineX within timeLimit. The returned response reflects the horizontal
// velocity and leaves the vertical component unchanged. A circle with zero
// horizontal speed can never reach the line; that yields the reset response.
func PointHitsVerticalLine(c Circle, lineX, timeLimit float32) Response {
	if c.R < 0 {
		panic("physics: negative radius")
	}
	if timeLimit <= 0 {
		panic("physics: non-positive time limit")
	}

	resp := NoResponse()
	if c.VX == 0 {
		return resp
	}

	// Clearance to the line, offset by the radius on the approaching side.
	var distance float32
	if lineX > c.X {
		distance = lineX - c.X - c.R
	} else {
		distance = lineX - c.X + c.R
	}

	t := distance / c.VX
	if t > 0 && t <= timeLimit {
		resp.T = t
		resp.NewVX = -c.VX // Reflect horizontally
		resp.NewVY = c.VY  // No change vertically
	}
	return resp
}

// PointHitsHorizontalLine detects a moving circle hitting a horizontal line
// at lineY within timeLimit. Mirror image of PointHitsVerticalLine on the
// Y axis.
func PointHitsHorizontalLine(c Circle, lineY, timeLimit float32) Response {
	if c.R < 0 {
		panic("physics: negative radius")
	}
	if timeLimit <= 0 {
		panic("physics: non-positive time limit")
	}

	resp := NoResponse()
	if c.VY == 0 {
		return resp
	}

	var distance float32
	if lineY > c.Y {
		distance = lineY - c.Y - c.R
	} else {
		distance = lineY - c.Y + c.R
	}

	t := distance / c.VY
	if t > 0 && t <= timeLimit {
		resp.T = t
		resp.NewVX = c.VX  // No change horizontally
		resp.NewVY = -c.VY // Reflect vertically
	}
	return resp
}

// PointHitsRectangleInner detects a moving circle, currently inside the
// rectangle, hitting one of its four borders within timeLimit. The earliest
// of the four candidate collisions wins; the border evaluation order
// (right, left, top, bottom) only breaks exact ties.
func PointHitsRectangleInner(c Circle, rect Bounds, timeLimit float32) Response {
	if !rect.wellFormed() {
		panic("physics: malformed rectangle")
	}
	if !rect.ContainsCircle(c.X, c.Y, c.R) {
		panic("physics: circle outside the rectangular container")
	}
	if c.R < 0 {
		panic("physics: negative radius")
	}
	if timeLimit <= 0 {
		panic("physics: non-positive time limit")
	}

	resp := NoResponse()

	// Right border
	if r := PointHitsVerticalLine(c, rect.MaxX, timeLimit); r.T < resp.T {
		resp = r
	}
	// Left border
	if r := PointHitsVerticalLine(c, rect.MinX, timeLimit); r.T < resp.T {
		resp = r
	}
	// Top border
	if r := PointHitsHorizontalLine(c, rect.MinY, timeLimit); r.T < resp.T {
		resp = r
	}
	// Bottom border
	if r := PointHitsHorizontalLine(c, rect.MaxY, timeLimit); r.T < resp.T {
		resp = r
	}
	return resp
}

// PointHitsMovingPoint detects two moving circles hitting each other within
// timeLimit and computes both post-collision velocities. Both responses are
// reset when no collision occurs, and detection plus response are atomic: a
// response is only exposed together with a finite, validated collision time.
func PointHitsMovingPoint(p1, p2 Circle, timeLimit float32) (Response, Response) {
	if p1.R < 0 || p2.R < 0 {
		panic("physics: negative radius")
	}
	if timeLimit <= 0 {
		panic("physics: non-positive time limit")
	}

	t := movingPointCollisionTime(p1, p2)
	if t > 0 && t <= timeLimit {
		return movingPointResponse(p1, p2, t)
	}
	return NoResponse(), NoResponse()
}

// movingPointCollisionTime solves for the earliest time at which the
// distance between the two centers equals the sum of the radii. The
// quadratic is set up in the relative frame (p1 - p2) and solved in float64;
// the subtraction of the two squared terms in the discriminant cancels
// catastrophically in single precision.
func movingPointCollisionTime(p1, p2 Circle) float32 {
	centerX := float64(p1.X) - float64(p2.X)
	centerY := float64(p1.Y) - float64(p2.Y)
	speedX := float64(p1.VX) - float64(p2.VX)
	speedY := float64(p1.VY) - float64(p2.VY)
	radius := float64(p1.R) + float64(p2.R)
	radiusSq := radius * radius
	speedSq := speedX*speedX + speedY*speedY

	if speedSq == 0 {
		// No relative motion, the gap never closes.
		return math32.Inf(1)
	}

	cross := centerX*speedY - centerY*speedX
	discriminant := radiusSq*speedSq - cross*cross
	if discriminant < 0 {
		// The paths cross at different times or run parallel at a
		// distance exceeding the sum of radii.
		return math32.Inf(1)
	}

	minusB := -speedX*centerX - speedY*centerY
	root := math.Sqrt(discriminant)
	sol1 := (minusB + root) / speedSq
	sol2 := (minusB - root) / speedSq

	// Accept the smallest positive solution.
	switch {
	case sol1 > 0 && sol2 > 0:
		return float32(math.Min(sol1, sol2))
	case sol1 > 0:
		return float32(sol1)
	case sol2 > 0:
		return float32(sol2)
	default:
		return math32.Inf(1)
	}
}

// movingPointResponse computes the post-collision velocities for a collision
// known to occur at time t. Velocities are rotated into the frame aligned
// with the line through the two impact points (P along the line, N normal),
// the 1-D elastic collision formulas are applied along P with masses
// proportional to radius cubed, and the results are rotated back.
func movingPointResponse(p1, p2 Circle, t float32) (Response, Response) {
	// Points of impact, forming the line of collision.
	p1ImpactX := float64(p1.X) + float64(p1.VX)*float64(t)
	p1ImpactY := float64(p1.Y) + float64(p1.VY)*float64(t)
	p2ImpactX := float64(p2.X) + float64(p2.VX)*float64(t)
	p2ImpactY := float64(p2.Y) + float64(p2.VY)*float64(t)

	lineAngle := math.Atan2(p2ImpactY-p1ImpactY, p2ImpactX-p1ImpactX)

	// Project velocities from (x, y) onto (p, n).
	p1SpeedP, p1SpeedN := rotate(float64(p1.VX), float64(p1.VY), lineAngle)
	p2SpeedP, p2SpeedN := rotate(float64(p2.VX), float64(p2.VY), lineAngle)

	// Collision is only possible if p1 approaches p2 along the line of
	// centers. When the circles start out overlapping the quadratic can
	// report a hit even though they are separating; suppress it so they
	// continue on their course until apart.
	if p1SpeedP-p2SpeedP <= 0 {
		return NoResponse(), NoResponse()
	}

	// Mass proportional to the cube of the radius (equal density).
	p1Mass := float64(p1.R) * float64(p1.R) * float64(p1.R)
	p2Mass := float64(p2.R) * float64(p2.R) * float64(p2.R)
	diffMass := p1Mass - p2Mass
	sumMass := p1Mass + p2Mass

	// Conservation of energy and momentum along the collision direction P,
	// no change along the perpendicular direction N.
	p1SpeedPAfter := (diffMass*p1SpeedP + 2*p2Mass*p2SpeedP) / sumMass
	p2SpeedPAfter := (2*p1Mass*p1SpeedP - diffMass*p2SpeedP) / sumMass

	// Project back from (p, n) to (x, y).
	p1VX, p1VY := rotate(p1SpeedPAfter, p1SpeedN, -lineAngle)
	p2VX, p2VY := rotate(p2SpeedPAfter, p2SpeedN, -lineAngle)

	r1 := Response{T: t, NewVX: float32(p1VX), NewVY: float32(p1VY)}
	r2 := Response{T: t, NewVX: float32(p2VX), NewVY: float32(p2VY)}
	return r1, r2
}

// rotate rotates the vector (x, y) by theta in graphics coordinates
// (y axis pointing down, theta counter-clockwise).
func rotate(x, y, theta float64) (float64, float64) {
	sinTheta := math.Sin(theta)
	cosTheta := math.Cos(theta)
	return x*cosTheta + y*sinTheta, -x*sinTheta + y*cosTheta
}
