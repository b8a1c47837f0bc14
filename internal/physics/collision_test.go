package physics

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)

const tolerance = 1e-4

func approxEqual(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

func TestPointHitsVerticalLine(t *testing.T) {
	tests := []struct {
		name      string
		c         Circle
		lineX     float32
		timeLimit float32
		wantT     float32
		wantVX    float32
		wantVY    float32
	}{
		{
			name:      "line to the right",
			c:         Circle{X: 10, Y: 20, VX: 5, VY: 3, R: 2},
			lineX:     50,
			timeLimit: 10,
			wantT:     (50 - 10 - 2) / 5.0,
			wantVX:    -5,
			wantVY:    3,
		},
		{
			name:      "line to the left",
			c:         Circle{X: 40, Y: 0, VX: -4, VY: -1, R: 3},
			lineX:     10,
			timeLimit: 10,
			wantT:     (10 - 40 + 3) / -4.0,
			wantVX:    4,
			wantVY:    -1,
		},
		{
			name:      "true point, zero radius",
			c:         Circle{X: 0, Y: 0, VX: 2, VY: 0, R: 0},
			lineX:     6,
			timeLimit: 5,
			wantT:     3,
			wantVX:    -2,
			wantVY:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := PointHitsVerticalLine(tt.c, tt.lineX, tt.timeLimit)
			if !resp.Detected() {
				t.Fatalf("expected collision, got none")
			}
			if !approxEqual(resp.T, tt.wantT, tolerance) {
				t.Errorf("T = %v, want %v", resp.T, tt.wantT)
			}
			if !approxEqual(resp.NewVX, tt.wantVX, tolerance) || !approxEqual(resp.NewVY, tt.wantVY, tolerance) {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", resp.NewVX, resp.NewVY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestPointHitsVerticalLineNoCollision(t *testing.T) {
	tests := []struct {
		name      string
		c         Circle
		lineX     float32
		timeLimit float32
	}{
		{
			name:      "zero horizontal speed",
			c:         Circle{X: 10, Y: 20, VX: 0, VY: 100, R: 2},
			lineX:     50,
			timeLimit: 1000,
		},
		{
			name:      "moving away from the line",
			c:         Circle{X: 10, Y: 0, VX: -5, VY: 0, R: 2},
			lineX:     50,
			timeLimit: 1000,
		},
		{
			name:      "beyond the time limit",
			c:         Circle{X: 10, Y: 0, VX: 1, VY: 0, R: 2},
			lineX:     50,
			timeLimit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := PointHitsVerticalLine(tt.c, tt.lineX, tt.timeLimit)
			if resp.Detected() {
				t.Errorf("expected no collision, got T = %v", resp.T)
			}
		})
	}
}

func TestPointHitsHorizontalLine(t *testing.T) {
	c := Circle{X: 0, Y: 10, VX: 7, VY: 5, R: 2}
	resp := PointHitsHorizontalLine(c, 50, 100)
	if !resp.Detected() {
		t.Fatal("expected collision, got none")
	}
	wantT := float32(50-10-2) / 5.0
	if !approxEqual(resp.T, wantT, tolerance) {
		t.Errorf("T = %v, want %v", resp.T, wantT)
	}
	if !approxEqual(resp.NewVX, 7, tolerance) || !approxEqual(resp.NewVY, -5, tolerance) {
		t.Errorf("velocity = (%v, %v), want (7, -5)", resp.NewVX, resp.NewVY)
	}

	// Zero vertical speed never reaches a horizontal line.
	still := Circle{X: 0, Y: 10, VX: 100, VY: 0, R: 2}
	if resp := PointHitsHorizontalLine(still, 50, 100); resp.Detected() {
		t.Errorf("expected no collision for vy=0, got T = %v", resp.T)
	}
}

func TestPointHitsRectangleInnerEarliestWins(t *testing.T) {
	rect := Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	// Moving diagonally: reaches the right border at t=5, the bottom at t=10.
	c := Circle{X: 50, Y: 50, VX: 10, VY: 5, R: 0}

	resp := PointHitsRectangleInner(c, rect, 100)
	if !resp.Detected() {
		t.Fatal("expected collision, got none")
	}

	// The result must equal the minimum of the four individual border times.
	minT := math32.Inf(1)
	for _, r := range []Response{
		PointHitsVerticalLine(c, rect.MaxX, 100),
		PointHitsVerticalLine(c, rect.MinX, 100),
		PointHitsHorizontalLine(c, rect.MinY, 100),
		PointHitsHorizontalLine(c, rect.MaxY, 100),
	} {
		if r.T < minT {
			minT = r.T
		}
	}
	if !approxEqual(resp.T, minT, tolerance) {
		t.Errorf("T = %v, want minimum border time %v", resp.T, minT)
	}
	// The winning border here is the right one, so vx reflects.
	if !approxEqual(resp.NewVX, -10, tolerance) || !approxEqual(resp.NewVY, 5, tolerance) {
		t.Errorf("velocity = (%v, %v), want (-10, 5)", resp.NewVX, resp.NewVY)
	}
}

func TestPointHitsRectangleInnerNoCollisionAtRest(t *testing.T) {
	rect := Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	c := Circle{X: 50, Y: 50, VX: 0, VY: 0, R: 10}
	if resp := PointHitsRectangleInner(c, rect, 1); resp.Detected() {
		t.Errorf("expected no collision for a body at rest, got T = %v", resp.T)
	}
}

func TestPointHitsRectangleInnerPreconditions(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{
			name: "malformed rectangle",
			fn: func() {
				PointHitsRectangleInner(Circle{X: 5, Y: 5}, Bounds{MinX: 10, MinY: 0, MaxX: 0, MaxY: 10}, 1)
			},
		},
		{
			name: "circle outside container",
			fn: func() {
				PointHitsRectangleInner(Circle{X: 500, Y: 5, R: 1}, Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, 1)
			},
		},
		{
			name: "negative radius",
			fn: func() {
				PointHitsVerticalLine(Circle{X: 5, R: -1}, 10, 1)
			},
		},
		{
			name: "non-positive time limit",
			fn: func() {
				PointHitsVerticalLine(Circle{X: 5, VX: 1}, 10, 0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic, got none")
				}
			}()
			tt.fn()
		})
	}
}

func TestPointHitsMovingPointHeadOnEqualMass(t *testing.T) {
	// Two equal-radius (hence equal-mass) balls on a head-on course:
	// gap of 20 closing at 20 per time unit, so they collide at t=1.
	p1 := Circle{X: 0, Y: 0, VX: 10, VY: 0, R: 5}
	p2 := Circle{X: 30, Y: 0, VX: -10, VY: 0, R: 5}

	r1, r2 := PointHitsMovingPoint(p1, p2, 2)
	if !r1.Detected() || !r2.Detected() {
		t.Fatal("expected collision, got none")
	}
	if !approxEqual(r1.T, 1, tolerance) || !approxEqual(r2.T, 1, tolerance) {
		t.Errorf("T = (%v, %v), want (1, 1)", r1.T, r2.T)
	}

	// At the collision instant the centers are exactly one radius sum apart.
	gap := Distance(p1.X+p1.VX*r1.T, p1.Y+p1.VY*r1.T, p2.X+p2.VX*r2.T, p2.Y+p2.VY*r2.T)
	if !approxEqual(gap, p1.R+p2.R, tolerance) {
		t.Errorf("center distance at impact = %v, want %v", gap, p1.R+p2.R)
	}

	// Equal masses swap their tangential speeds; normal speeds unchanged.
	if !approxEqual(r1.NewVX, -10, tolerance) || !approxEqual(r1.NewVY, 0, tolerance) {
		t.Errorf("p1 velocity = (%v, %v), want (-10, 0)", r1.NewVX, r1.NewVY)
	}
	if !approxEqual(r2.NewVX, 10, tolerance) || !approxEqual(r2.NewVY, 0, tolerance) {
		t.Errorf("p2 velocity = (%v, %v), want (10, 0)", r2.NewVX, r2.NewVY)
	}
}

func TestPointHitsMovingPointConservation(t *testing.T) {
	// Oblique collision of unequal bodies: total momentum and kinetic
	// energy must be conserved within floating-point tolerance.
	p1 := Circle{X: 0, Y: 0, VX: 8, VY: 2, R: 4}
	p2 := Circle{X: 40, Y: 6, VX: -6, VY: -1, R: 6}

	r1, r2 := PointHitsMovingPoint(p1, p2, 10)
	if !r1.Detected() || !r2.Detected() {
		t.Fatal("expected collision, got none")
	}

	m1 := float64(p1.R) * float64(p1.R) * float64(p1.R)
	m2 := float64(p2.R) * float64(p2.R) * float64(p2.R)

	momentumBeforeX := m1*float64(p1.VX) + m2*float64(p2.VX)
	momentumBeforeY := m1*float64(p1.VY) + m2*float64(p2.VY)
	momentumAfterX := m1*float64(r1.NewVX) + m2*float64(r2.NewVX)
	momentumAfterY := m1*float64(r1.NewVY) + m2*float64(r2.NewVY)

	if math.Abs(momentumBeforeX-momentumAfterX) > 1e-3*math.Abs(momentumBeforeX)+1e-3 {
		t.Errorf("momentum X not conserved: %v -> %v", momentumBeforeX, momentumAfterX)
	}
	if math.Abs(momentumBeforeY-momentumAfterY) > 1e-3*math.Abs(momentumBeforeY)+1e-3 {
		t.Errorf("momentum Y not conserved: %v -> %v", momentumBeforeY, momentumAfterY)
	}

	keBefore := m1*(float64(p1.VX)*float64(p1.VX)+float64(p1.VY)*float64(p1.VY)) +
		m2*(float64(p2.VX)*float64(p2.VX)+float64(p2.VY)*float64(p2.VY))
	keAfter := m1*(float64(r1.NewVX)*float64(r1.NewVX)+float64(r1.NewVY)*float64(r1.NewVY)) +
		m2*(float64(r2.NewVX)*float64(r2.NewVX)+float64(r2.NewVY)*float64(r2.NewVY))

	if math.Abs(keBefore-keAfter) > 1e-3*keBefore {
		t.Errorf("kinetic energy not conserved: %v -> %v", keBefore, keAfter)
	}
}

func TestPointHitsMovingPointOverlapSuppression(t *testing.T) {
	// Already overlapping (distance 6 < sum of radii 10) and separating.
	// The quadratic alone reports a positive root, but the tangential
	// approach speed is negative, so no collision may be declared.
	p1 := Circle{X: 0, Y: 0, VX: -1, VY: 0, R: 5}
	p2 := Circle{X: 6, Y: 0, VX: 1, VY: 0, R: 5}

	r1, r2 := PointHitsMovingPoint(p1, p2, 3)
	if r1.Detected() || r2.Detected() {
		t.Errorf("expected suppression for separating overlapped bodies, got T = (%v, %v)", r1.T, r2.T)
	}
}

func TestPointHitsMovingPointNoCollision(t *testing.T) {
	tests := []struct {
		name      string
		p1, p2    Circle
		timeLimit float32
	}{
		{
			name:      "parallel at a distance",
			p1:        Circle{X: 0, Y: 0, VX: 5, VY: 0, R: 1},
			p2:        Circle{X: 0, Y: 50, VX: 5, VY: 0, R: 1},
			timeLimit: 100,
		},
		{
			name:      "moving apart",
			p1:        Circle{X: 0, Y: 0, VX: -5, VY: 0, R: 1},
			p2:        Circle{X: 10, Y: 0, VX: 5, VY: 0, R: 1},
			timeLimit: 100,
		},
		{
			name:      "collision past the time limit",
			p1:        Circle{X: 0, Y: 0, VX: 1, VY: 0, R: 1},
			p2:        Circle{X: 100, Y: 0, VX: -1, VY: 0, R: 1},
			timeLimit: 1,
		},
		{
			name:      "both at rest",
			p1:        Circle{X: 0, Y: 0, R: 1},
			p2:        Circle{X: 10, Y: 0, R: 1},
			timeLimit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r1, r2 := PointHitsMovingPoint(tt.p1, tt.p2, tt.timeLimit)
			if r1.Detected() || r2.Detected() {
				t.Errorf("expected no collision, got T = (%v, %v)", r1.T, r2.T)
			}
		})
	}
}

func TestPointHitsMovingPointSymmetry(t *testing.T) {
	// Swapping the argument order must swap the responses.
	p1 := Circle{X: 0, Y: 3, VX: 4, VY: 1, R: 3}
	p2 := Circle{X: 25, Y: 0, VX: -5, VY: 2, R: 4}

	a1, a2 := PointHitsMovingPoint(p1, p2, 10)
	b2, b1 := PointHitsMovingPoint(p2, p1, 10)

	if !a1.Detected() {
		t.Fatal("expected collision, got none")
	}
	if !approxEqual(a1.T, b1.T, tolerance) {
		t.Errorf("T differs after swap: %v vs %v", a1.T, b1.T)
	}
	if !approxEqual(a1.NewVX, b1.NewVX, 1e-3) || !approxEqual(a1.NewVY, b1.NewVY, 1e-3) {
		t.Errorf("p1 response differs after swap: (%v, %v) vs (%v, %v)", a1.NewVX, a1.NewVY, b1.NewVX, b1.NewVY)
	}
	if !approxEqual(a2.NewVX, b2.NewVX, 1e-3) || !approxEqual(a2.NewVY, b2.NewVY, 1e-3) {
		t.Errorf("p2 response differs after swap: (%v, %v) vs (%v, %v)", a2.NewVX, a2.NewVY, b2.NewVX, b2.NewVY)
	}
}

func TestResponseReset(t *testing.T) {
	r := Response{T: 0.5, NewVX: 1, NewVY: 2}
	if !r.Detected() {
		t.Error("finite response should count as detected")
	}
	r.Reset()
	if r.Detected() {
		t.Error("reset response should not count as detected")
	}
	if !math32.IsInf(r.T, 1) {
		t.Errorf("reset T = %v, want +Inf", r.T)
	}
}
