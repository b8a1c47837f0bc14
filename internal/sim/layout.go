package sim

import (
	"math/rand"

	"github.com/tomz197/ballsaver/internal/physics"
)

// classicBalls is the original eleven-ball arrangement, expressed in a
// 640x480 reference box. Radius 25 and speed 3 per frame throughout.
var classicBalls = []Config{
	{X: 100, Y: 410, Radius: 25, Speed: 3, AngleDeg: 34},
	{X: 80, Y: 350, Radius: 25, Speed: 3, AngleDeg: -114},
	{X: 530, Y: 400, Radius: 25, Speed: 3, AngleDeg: 14},
	{X: 400, Y: 400, Radius: 25, Speed: 3, AngleDeg: 14},
	{X: 400, Y: 50, Radius: 25, Speed: 3, AngleDeg: -47},
	{X: 480, Y: 320, Radius: 25, Speed: 3, AngleDeg: 47},
	{X: 80, Y: 150, Radius: 25, Speed: 3, AngleDeg: -114},
	{X: 100, Y: 240, Radius: 25, Speed: 3, AngleDeg: 60},
	{X: 250, Y: 380, Radius: 25, Speed: 3, AngleDeg: -42},
	{X: 200, Y: 80, Radius: 25, Speed: 3, AngleDeg: -84},
	{X: 500, Y: 170, Radius: 25, Speed: 3, AngleDeg: -42},
}

// Reference box the classic layout was designed in.
const (
	classicWidth  = 640
	classicHeight = 480
)

// ClassicLayout returns the original ball arrangement scaled
// proportionally into the given container.
func ClassicLayout(bounds physics.Bounds) []Config {
	sx := bounds.Width() / classicWidth
	sy := bounds.Height() / classicHeight
	// Radius and speed scale with the tighter axis so every ball still
	// fits and motion stays proportional in narrow containers.
	sr := sx
	if sy < sr {
		sr = sy
	}

	configs := make([]Config, len(classicBalls))
	for i, c := range classicBalls {
		configs[i] = Config{
			X:        bounds.MinX + c.X*sx,
			Y:        bounds.MinY + c.Y*sy,
			Radius:   c.Radius * sr,
			Speed:    c.Speed * sr,
			AngleDeg: c.AngleDeg,
		}
	}
	return configs
}

// RandomLayout returns n balls scattered inside the container with random
// directions. Placement avoids overlaps by rejection sampling; if a spot
// cannot be found the ball is placed anyway, since the collision kernel
// suppresses responses for overlapping bodies until they separate.
func RandomLayout(n int, bounds physics.Bounds, rng *rand.Rand) []Config {
	minDim := bounds.Width()
	if bounds.Height() < minDim {
		minDim = bounds.Height()
	}

	configs := make([]Config, 0, n)
	for i := 0; i < n; i++ {
		// Radius between 3% and 5% of the tighter container axis.
		radius := minDim * (0.03 + 0.02*rng.Float32())
		speed := minDim * 0.006 * (0.5 + rng.Float32())

		var x, y float32
		for attempt := 0; attempt < 50; attempt++ {
			x = bounds.MinX + radius + rng.Float32()*(bounds.Width()-2*radius)
			y = bounds.MinY + radius + rng.Float32()*(bounds.Height()-2*radius)
			if !overlapsAny(x, y, radius, configs) {
				break
			}
		}

		configs = append(configs, Config{
			X:        x,
			Y:        y,
			Radius:   radius,
			Speed:    speed,
			AngleDeg: rng.Float32() * 360,
		})
	}
	return configs
}

func overlapsAny(x, y, r float32, placed []Config) bool {
	for _, c := range placed {
		if physics.CirclesOverlap(x, y, r, c.X, c.Y, c.Radius) {
			return true
		}
	}
	return false
}
