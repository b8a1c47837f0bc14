package object

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestNewBallVelocityFromAngle(t *testing.T) {
	tests := []struct {
		name     string
		speed    float32
		angleDeg float32
		wantVX   float32
		wantVY   float32
	}{
		{name: "east", speed: 3, angleDeg: 0, wantVX: 3, wantVY: 0},
		{name: "north is up on screen", speed: 3, angleDeg: 90, wantVX: 0, wantVY: -3},
		{name: "west", speed: 3, angleDeg: 180, wantVX: -3, wantVY: 0},
		{name: "south", speed: 3, angleDeg: -90, wantVX: 0, wantVY: 3},
		{name: "diagonal", speed: 5, angleDeg: 45, wantVX: 5 * math32.Sqrt2 / 2, wantVY: -5 * math32.Sqrt2 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(10, 20, 2, tt.speed, tt.angleDeg)
			if math32.Abs(b.VX-tt.wantVX) > 1e-5 || math32.Abs(b.VY-tt.wantVY) > 1e-5 {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", b.VX, b.VY, tt.wantVX, tt.wantVY)
			}
			if math32.Abs(b.Speed()-tt.speed) > 1e-5 {
				t.Errorf("Speed() = %v, want %v", b.Speed(), tt.speed)
			}
		})
	}
}

func TestBallMove(t *testing.T) {
	b := &Ball{X: 10, Y: 20, VX: 4, VY: -2, Radius: 1}
	b.Move(0.5)
	if b.X != 12 || b.Y != 19 {
		t.Errorf("position = (%v, %v), want (12, 19)", b.X, b.Y)
	}
	// Velocity is untouched by movement.
	if b.VX != 4 || b.VY != -2 {
		t.Errorf("velocity = (%v, %v), want (4, -2)", b.VX, b.VY)
	}
}

func TestBallCircleSnapshot(t *testing.T) {
	b := NewBall(1, 2, 3, 4, 0)
	c := b.Circle()
	if c.X != b.X || c.Y != b.Y || c.VX != b.VX || c.VY != b.VY || c.R != b.Radius {
		t.Errorf("snapshot %+v does not match ball %+v", c, b)
	}

	// Mutating the snapshot must not touch the ball.
	c.X = 99
	if b.X != 1 {
		t.Error("snapshot mutation leaked into the ball")
	}
}

func TestNewBallNegativeRadiusPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic, got none")
		}
	}()
	NewBall(0, 0, -1, 1, 0)
}
