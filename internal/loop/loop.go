// Package loop drives the animation: it advances the simulation by one
// frame unit per tick and hands the resulting state to the render layer,
// paced at a fixed rate.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/tomz197/ballsaver/internal/draw"
	"github.com/tomz197/ballsaver/internal/input"
	"github.com/tomz197/ballsaver/internal/loop/config"
	"github.com/tomz197/ballsaver/internal/physics"
	"github.com/tomz197/ballsaver/internal/sim"
)

// Options configures the local animation loop.
type Options struct {
	// TermSizeFunc reports the hosting terminal size. Defaults to stdout.
	TermSizeFunc draw.TermSizeFunc

	// BallCount selects a random layout with that many balls; zero picks
	// the classic eleven-ball arrangement.
	BallCount int

	// Seed for random layouts. Zero seeds from the clock.
	Seed int64
}

// Run animates bouncing balls in the local terminal until a quit key is
// pressed. The container tracks the terminal: every resize reshapes the
// box before the next frame advance.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	bounds := terminalBounds(termWidth, termHeight)
	s := sim.New(bounds, makeLayout(bounds, opts))
	canvas := newLoopCanvas(termWidth, termHeight, bounds)

	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	var snapshots []sim.Snapshot
	paused := false

	for {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		in := stream.Poll()
		if in.Quit {
			break
		}
		if in.Pause {
			paused = !paused
		}

		// ===== UPDATE PHASE =====
		if width, height, err := termSizeFunc(); err == nil && (width != termWidth || height != termHeight) {
			termWidth, termHeight = width, height
			bounds = terminalBounds(termWidth, termHeight)
			canvas.Resize(termWidth, termHeight-1)
			canvas.SetLogicalSize(float64(bounds.Width()), float64(bounds.Height()))
			s.Resize(bounds)
			draw.ClearScreen(w)
		}

		if !paused {
			s.AdvanceFrame()
		}

		// ===== DRAW PHASE =====
		snapshots = s.Balls(snapshots[:0])
		drawFrame(w, canvas, bounds, snapshots, paused)

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// terminalBounds maps the drawable part of a terminal to container bounds
// in sub-pixel units (two per text row, minus the status line).
func terminalBounds(termWidth, termHeight int) physics.Bounds {
	width := termWidth
	height := (termHeight - 1) * 2
	if width < 8 {
		width = 8
	}
	if height < 8 {
		height = 8
	}
	return physics.NewBounds(0, 0, float32(width), float32(height))
}

// newLoopCanvas builds the render canvas for a terminal. The bottom row is
// the status line, and the logical space comes from the container bounds so
// the two agree even when terminalBounds clamped to the minimum size.
func newLoopCanvas(termWidth, termHeight int, bounds physics.Bounds) *draw.Canvas {
	return draw.NewScaledCanvas(termWidth, termHeight-1,
		float64(bounds.Width()), float64(bounds.Height()))
}

// makeLayout picks the initial ball arrangement for the container.
func makeLayout(bounds physics.Bounds, opts Options) []sim.Config {
	if opts.BallCount <= 0 {
		return sim.ClassicLayout(bounds)
	}
	n := opts.BallCount
	if n > config.MaxBallCount {
		n = config.MaxBallCount
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return sim.RandomLayout(n, bounds, rand.New(rand.NewSource(seed)))
}

// drawFrame renders the container outline, the balls and the status line.
func drawFrame(w io.Writer, canvas *draw.Canvas, bounds physics.Bounds, balls []sim.Snapshot, paused bool) {
	draw.ClearScreen(w)
	canvas.Clear()

	canvas.DrawRect(
		draw.Point{X: float64(bounds.MinX), Y: float64(bounds.MinY)},
		draw.Point{X: float64(bounds.MaxX) - 1, Y: float64(bounds.MaxY) - 1},
	)
	// Paused balls render as outlines so a frozen frame is unmistakable.
	for _, b := range balls {
		if paused {
			canvas.DrawCircle(float64(b.X), float64(b.Y), float64(b.Radius))
		} else {
			canvas.FillCircle(float64(b.X), float64(b.Y), float64(b.Radius))
		}
	}
	canvas.Render(w)

	status := fmt.Sprintf(" %d balls · [space] pause · [q] quit", len(balls))
	if paused {
		status = " paused" + status
	}
	fmt.Fprintf(w, "\033[%d;1H%s", canvas.TerminalHeight()+1, status)
}
