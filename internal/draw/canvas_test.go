package draw

import (
	"strings"
	"testing"
)

func TestFillCircleSetsInteriorPixels(t *testing.T) {
	c := NewCanvas(40, 20) // 40x40 sub-pixels, 1:1 scaling

	c.FillCircle(20, 20, 8)

	if !c.pixelAt(20, 20) {
		t.Error("center pixel not set")
	}
	if !c.pixelAt(26, 20) || !c.pixelAt(14, 20) {
		t.Error("horizontal extent pixels not set")
	}
	if c.pixelAt(20, 5) || c.pixelAt(35, 20) {
		t.Error("pixels outside the circle were set")
	}
}

func TestDrawCircleOutlineOnly(t *testing.T) {
	c := NewCanvas(40, 20) // 40x40 sub-pixels, 1:1 scaling

	c.DrawCircle(20, 20, 10)

	if !c.pixelAt(30, 20) || !c.pixelAt(10, 20) || !c.pixelAt(20, 30) || !c.pixelAt(20, 10) {
		t.Error("ring pixels at the cardinal points not set")
	}
	if c.pixelAt(20, 20) || c.pixelAt(24, 20) {
		t.Error("interior pixels were set; outline must stay hollow")
	}
}

func TestFillCircleTinyRadiusStillVisible(t *testing.T) {
	c := NewCanvas(40, 20)
	c.FillCircle(10, 10, 0.2)
	if !c.pixelAt(10, 10) {
		t.Error("sub-pixel ball left no mark")
	}
}

func TestScaledCanvasMapsLogicalSpace(t *testing.T) {
	// Logical 640x480 space rendered on an 80x30 terminal (80x60 sub-pixels).
	c := NewScaledCanvas(80, 30, 640, 480)

	c.SetFloat(320, 240)
	if !c.pixelAt(40, 30) {
		t.Error("logical center did not map to pixel center")
	}

	c.Clear()
	c.SetFloat(0, 0)
	if !c.pixelAt(0, 0) {
		t.Error("logical origin did not map to pixel origin")
	}
}

func TestRenderUsesHalfBlocks(t *testing.T) {
	c := NewCanvas(4, 2)
	c.setPixel(0, 0) // Top half of cell (1,1)
	c.setPixel(1, 1) // Bottom half of cell (2,1)
	c.setPixel(2, 2) // Top half of cell (3,2)
	c.setPixel(2, 3) // Bottom half of cell (3,2) -> full block

	var sb strings.Builder
	c.Render(&sb)
	out := sb.String()

	for _, want := range []string{string(BlockUpperHalf), string(BlockLowerHalf), string(BlockFull)} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
}

func TestRenderSkipsEmptyCells(t *testing.T) {
	c := NewCanvas(10, 5)
	var sb strings.Builder
	c.Render(&sb)
	if sb.Len() != 0 {
		t.Errorf("empty canvas rendered %d bytes, want 0", sb.Len())
	}
}

func TestResizeKeepsLogicalSize(t *testing.T) {
	c := NewScaledCanvas(80, 30, 640, 480)
	c.Resize(120, 40)

	if c.TerminalWidth() != 120 || c.TerminalHeight() != 40 {
		t.Errorf("terminal size = %dx%d, want 120x40", c.TerminalWidth(), c.TerminalHeight())
	}
	if c.LogicalWidth() != 640 || c.LogicalHeight() != 480 {
		t.Errorf("logical size changed on resize: %vx%v", c.LogicalWidth(), c.LogicalHeight())
	}

	// Logical center must still land in the middle of the new terminal.
	c.SetFloat(320, 240)
	if !c.pixelAt(60, 40) {
		t.Error("logical center did not track the resized terminal")
	}
}

func TestChunkWriterOffsets(t *testing.T) {
	var sb strings.Builder
	cw := NewChunkWriter(&sb, 5, 2)
	cw.WriteAt(1, 1, "hi")
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := sb.String(); got != "\033[3;6Hhi" {
		t.Errorf("output = %q, want offset cursor move before text", got)
	}
}
