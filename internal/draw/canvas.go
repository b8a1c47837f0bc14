package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Supports scaling from logical coordinates to actual terminal
// pixels, so the same scene renders on any terminal size.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64 // In sub-pixels
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when the terminal is larger
	// than the maximum render resolution. 0-based terminal offsets.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Reused between frames
}

// NewCanvas creates a canvas for the given terminal dimensions with no
// scaling: logical coordinates map 1:1 onto terminal sub-pixels.
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to
// terminal pixels. logicalWidth/Height define the coordinate space used by
// the simulation; termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	subPixelHeight := termHeight * 2
	return &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		pixels:         make([]bool, subPixelHeight*termWidth),
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		scaleX:         float64(termWidth) / logicalWidth,
		scaleY:         float64(subPixelHeight) / logicalHeight,
	}
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetLogicalSize changes the logical coordinate space, e.g. when the
// container tracks the terminal instead of a fixed scene.
func (c *Canvas) SetLogicalSize(logicalWidth, logicalHeight float64) {
	c.logicalWidth = logicalWidth
	c.logicalHeight = logicalHeight
	c.scaleX = float64(c.termWidth) / logicalWidth
	c.scaleY = float64(c.subPixelHeight) / logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at
// (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal sub-pixel coordinates.
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// pixelAt reports whether the sub-pixel at terminal coordinates is set.
func (c *Canvas) pixelAt(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	c.setPixel(px, py)
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawRect draws the outline of a rectangle given in logical coordinates.
func (c *Canvas) DrawRect(min, max Point) {
	c.DrawLine(min, Point{X: max.X, Y: min.Y})
	c.DrawLine(Point{X: max.X, Y: min.Y}, max)
	c.DrawLine(max, Point{X: min.X, Y: max.Y})
	c.DrawLine(Point{X: min.X, Y: max.Y}, min)
}

// FillCircle fills a circle centered at (cx, cy) with the given radius, all
// in logical coordinates. Because the two axes scale independently, the
// circle becomes an ellipse in pixel space and is filled row by row.
func (c *Canvas) FillCircle(cx, cy, radius float64) {
	px := cx * c.scaleX
	py := cy * c.scaleY
	rx := radius * c.scaleX
	ry := radius * c.scaleY
	if rx <= 0 || ry <= 0 {
		return
	}

	yStart := int(math.Ceil(py - ry))
	yEnd := int(math.Floor(py + ry))
	for y := yStart; y <= yEnd; y++ {
		dy := (float64(y) - py) / ry
		span := rx * math.Sqrt(1-dy*dy)
		xStart := int(math.Ceil(px - span))
		xEnd := int(math.Floor(px + span))
		for x := xStart; x <= xEnd; x++ {
			c.setPixel(x, y)
		}
	}

	// A tiny ball should still be visible as at least one pixel.
	if yStart > yEnd || int(math.Ceil(px-rx)) > int(math.Floor(px+rx)) {
		c.setPixel(int(math.Round(px)), int(math.Round(py)))
	}
}

// DrawCircle draws the outline of a circle in logical coordinates using the
// midpoint stepping of the same ellipse FillCircle rasterizes.
func (c *Canvas) DrawCircle(cx, cy, radius float64) {
	px := cx * c.scaleX
	py := cy * c.scaleY
	rx := radius * c.scaleX
	ry := radius * c.scaleY
	if rx <= 0 || ry <= 0 {
		c.setPixel(int(math.Round(px)), int(math.Round(py)))
		return
	}

	// Step the parameter finely enough that adjacent samples land on
	// neighboring pixels.
	steps := int(4 * (rx + ry))
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := px + rx*math.Cos(theta)
		y := py + ry*math.Sin(theta)
		c.setPixel(int(math.Round(x)), int(math.Round(y)))
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network
// flow. 1400 bytes stays under typical MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12) // Estimate ~12 bytes per cell

	for row := 0; row < c.termHeight; row++ {
		topY := row * 2
		bottomY := row*2 + 1
		topOffset := topY * c.termWidth
		bottomOffset := bottomY * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := bottomY < c.subPixelHeight && c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue // Skip empty cells
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	// Chunked writes for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return
	}

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	buf.Grow((c.termWidth+2)*2 + c.termHeight*2*12)

	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, strings.Repeat("─", c.termWidth))
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, strings.Repeat("─", c.termWidth))
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	io.WriteString(w, buf.String())
}

// LogicalWidth returns the logical width of the canvas.
func (c *Canvas) LogicalWidth() float64 { return c.logicalWidth }

// LogicalHeight returns the logical height (in sub-pixels).
func (c *Canvas) LogicalHeight() float64 { return c.logicalHeight }

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
