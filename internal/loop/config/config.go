// Package config centralizes all tunable animation parameters.
package config

import "time"

// Update rate - one simulation frame unit per tick, matching the original
// screensaver cadence.
const (
	UpdateRate      = 30
	TargetFrameTime = time.Second / UpdateRate
)

// World dimensions for the shared SSH animation, in logical units.
// Local mode sizes the container from the terminal instead.
const (
	WorldWidth  = 640
	WorldHeight = 480
)

// Balls
const (
	DefaultBallCount = 11 // Size of the classic layout
	MaxBallCount     = 64 // O(n^2) detection; keep the pair count sane
)

// Client rendering
const (
	ClientTargetFPS       = 30
	ClientTargetFrameTime = time.Second / ClientTargetFPS

	// Maximum render resolution. Larger terminals get a centered canvas
	// with a border instead of more pixels.
	MaxRenderWidth  = 160
	MaxRenderHeight = 50
)

// Shutdown
const (
	ShutdownDisplaySeconds = 5.0 // Seconds to show the shutdown notice before disconnecting
)

// Inactivity: pure viewers cost little, so the horizon is generous.
const (
	InactivityDisconnectSeconds = 30 * 60
)
