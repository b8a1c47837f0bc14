package server

import (
	"github.com/tomz197/ballsaver/internal/physics"
	"github.com/tomz197/ballsaver/internal/sim"
)

// WorldSnapshot is an immutable view of the world handed to viewers.
// Viewers must treat it as read-only; the ball slice is reused by the
// server after two further ticks, so it is only valid for the frame in
// which it was fetched.
type WorldSnapshot struct {
	Balls   []sim.Snapshot
	Bounds  physics.Bounds
	Viewers int
	Frame   uint64
}
