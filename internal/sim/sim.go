// Package sim advances a set of bouncing balls through discrete-event
// sub-stepped frames: each sub-step runs collision detection across all
// ball pairs and container borders, jumps every ball to the earliest
// detected collision, resolves it, and repeats until the frame's time
// budget is spent. Resolving only the first collision and re-detecting
// from the new state keeps fast bodies from tunneling through each other
// or through the walls.
package sim

import (
	"github.com/tomz197/ballsaver/internal/object"
	"github.com/tomz197/ballsaver/internal/physics"
)

// EpsilonTime is the slice of frame time below which the remaining budget
// is treated as spent, so the sub-step loop cannot spin on near-zero steps.
const EpsilonTime = 0.01

// Simulator owns the ball list and the container. Ball order matters only
// for deterministic iteration, not for the physics.
type Simulator struct {
	balls   []*object.Ball
	bounds  physics.Bounds
	pending []physics.Response // Per-ball earliest response for the current sub-step
}

// Config describes one ball of the initial configuration.
type Config struct {
	X, Y     float32
	Radius   float32
	Speed    float32
	AngleDeg float32 // Direction in degrees, graphics coordinates
}

// New creates a simulator for the given container and initial ball
// configuration. Panics when the container is malformed or a configured
// ball does not fit inside it; both are caller bugs, not runtime
// conditions.
func New(bounds physics.Bounds, configs []Config) *Simulator {
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		panic("sim: malformed container bounds")
	}

	balls := make([]*object.Ball, 0, len(configs))
	for _, c := range configs {
		b := object.NewBall(c.X, c.Y, c.Radius, c.Speed, c.AngleDeg)
		if !bounds.ContainsCircle(b.X, b.Y, b.Radius) {
			panic("sim: configured ball outside the container")
		}
		balls = append(balls, b)
	}

	return &Simulator{
		balls:   balls,
		bounds:  bounds,
		pending: make([]physics.Response, len(balls)),
	}
}

// AdvanceFrame advances the simulation by exactly one frame unit, resolving
// every collision inside the frame in chronological order. Returns the
// number of sub-steps taken.
func (s *Simulator) AdvanceFrame() int {
	timeLeft := float32(1.0)
	steps := 0
	for timeLeft > EpsilonTime {
		timeLeft -= s.step(timeLeft)
		steps++
	}
	return steps
}

// step performs one sub-step bounded by timeLeft and returns the time it
// consumed. The per-ball pending responses keep the earliest collision each
// ball is involved in; after all balls advance to tMin, a response is
// applied exactly when its collision is the one that happens at tMin.
func (s *Simulator) step(timeLeft float32) float32 {
	tMin := timeLeft
	for i := range s.pending {
		s.pending[i].Reset()
	}

	// Earliest collision among all unordered ball pairs.
	for i := 0; i < len(s.balls); i++ {
		ci := s.balls[i].Circle()
		for j := i + 1; j < len(s.balls); j++ {
			r1, r2 := physics.PointHitsMovingPoint(ci, s.balls[j].Circle(), tMin)
			if r1.T < s.pending[i].T {
				s.pending[i] = r1
			}
			if r2.T < s.pending[j].T {
				s.pending[j] = r2
			}
			if r1.T < tMin {
				tMin = r1.T
			}
		}
	}

	// Earliest collision between each ball and the container borders.
	for i, b := range s.balls {
		r := physics.PointHitsRectangleInner(b.Circle(), s.bounds, tMin)
		if r.T < s.pending[i].T {
			s.pending[i] = r
		}
		if r.T < tMin {
			tMin = r.T
		}
	}

	// Advance every ball to the collision instant, then apply the stored
	// responses to the balls whose collision produced tMin. A response
	// recorded earlier in the scan with a larger t is stale by now and
	// stays unapplied.
	for i, b := range s.balls {
		b.Move(tMin)
		if s.pending[i].T <= tMin {
			b.SetVelocity(s.pending[i].NewVX, s.pending[i].NewVY)
		}
		// The collision time comes from a distance/velocity division and
		// Move multiplies it back; that round trip can land the ball a
		// half-ulp past a border. Snap it back inside so the next
		// sub-step's detection preconditions hold.
		b.X = clamp(b.X, s.bounds.MinX+b.Radius, s.bounds.MaxX-b.Radius)
		b.Y = clamp(b.Y, s.bounds.MinY+b.Radius, s.bounds.MaxY-b.Radius)
	}

	return tMin
}

// Resize replaces the container, e.g. after the terminal hosting the
// animation changed size. Balls that no longer fit are clamped back into
// the interior so the next frame's detection preconditions hold.
func (s *Simulator) Resize(bounds physics.Bounds) {
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		panic("sim: malformed container bounds")
	}
	s.bounds = bounds
	for _, b := range s.balls {
		b.X = clamp(b.X, bounds.MinX+b.Radius, bounds.MaxX-b.Radius)
		b.Y = clamp(b.Y, bounds.MinY+b.Radius, bounds.MaxY-b.Radius)
	}
}

// Bounds returns the current container geometry.
func (s *Simulator) Bounds() physics.Bounds {
	return s.bounds
}

// Count returns the number of balls.
func (s *Simulator) Count() int {
	return len(s.balls)
}

// Balls appends read-only snapshots of all balls to dst and returns it.
// The render layer calls this once per frame after AdvanceFrame.
func (s *Simulator) Balls(dst []Snapshot) []Snapshot {
	for _, b := range s.balls {
		dst = append(dst, Snapshot{X: b.X, Y: b.Y, Radius: b.Radius})
	}
	return dst
}

// Snapshot is the read-only per-ball state exposed to the render layer.
type Snapshot struct {
	X, Y   float32
	Radius float32
}

// clamp limits v to [lo, hi]. When the range is inverted (a ball larger
// than the container) the midpoint wins.
func clamp(v, lo, hi float32) float32 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
