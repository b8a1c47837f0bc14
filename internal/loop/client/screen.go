package client

import (
	"fmt"

	"github.com/tomz197/ballsaver/internal/loop/config"
)

// clampTermSize limits the render area to the maximum resolution and
// reserves the bottom row for the HUD. The returned offsets center the
// canvas within the terminal.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	usableHeight := termHeight - 1 // HUD line

	renderWidth = termWidth
	if renderWidth > config.MaxRenderWidth {
		renderWidth = config.MaxRenderWidth
	}
	renderHeight = usableHeight
	if renderHeight > config.MaxRenderHeight {
		renderHeight = config.MaxRenderHeight
	}
	if renderWidth < 4 {
		renderWidth = 4
	}
	if renderHeight < 4 {
		renderHeight = 4
	}

	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (usableHeight - renderHeight) / 2
	if offsetCol < 0 {
		offsetCol = 0
	}
	if offsetRow < 0 {
		offsetRow = 0
	}
	return renderWidth, renderHeight, offsetCol, offsetRow
}

// drawFrame renders the current world snapshot, or the shutdown notice
// once the server has announced it is going away.
func (c *Client) drawFrame() error {
	c.chunkWriter.WriteString("\033[H\033[2J")

	if c.shuttingDown {
		c.drawShutdownScreen()
		return c.chunkWriter.Flush()
	}

	snapshot := c.server.GetSnapshot()

	c.canvas.Clear()
	for _, ball := range snapshot.Balls {
		c.canvas.FillCircle(float64(ball.X), float64(ball.Y), float64(ball.Radius))
	}
	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)

	hud := fmt.Sprintf(" %d balls · %d watching · [q] quit", len(snapshot.Balls), snapshot.Viewers)
	hudRow := c.canvas.OffsetRow() + c.canvas.TerminalHeight() + 2
	c.chunkWriter.WriteAt(c.canvas.OffsetCol()+1, hudRow, hud)

	return c.chunkWriter.Flush()
}

// drawShutdownScreen shows a centered notice with a disconnect countdown.
func (c *Client) drawShutdownScreen() {
	centerRow := c.canvas.OffsetRow() + c.canvas.TerminalHeight()/2
	centerCol := c.canvas.OffsetCol() + c.canvas.TerminalWidth()/2

	notice := "Server is shutting down"
	countdown := fmt.Sprintf("Disconnecting in %d...", int(c.shutdownTimer)+1)

	c.chunkWriter.WriteAt(centerCol-len(notice)/2, centerRow, notice)
	c.chunkWriter.WriteAt(centerCol-len(countdown)/2, centerRow+2, countdown)
}
