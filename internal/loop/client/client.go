// Package client renders the shared world for a single connection.
package client

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/ballsaver/internal/draw"
	"github.com/tomz197/ballsaver/internal/input"
	"github.com/tomz197/ballsaver/internal/loop/config"
	"github.com/tomz197/ballsaver/internal/loop/server"
)

// Client handles rendering and input for a single viewer connection.
type Client struct {
	server       server.WorldServer
	handle       *server.ViewerHandle
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc

	running       bool
	shuttingDown  bool
	shutdownTimer float64
	lastInput     time.Time
}

// Options configures the client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
}

// NewClient creates a viewer connected to the given server.
func NewClient(ws server.WorldServer, r *bufio.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.WorldWidth, config.WorldHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		server:       ws,
		handle:       ws.RegisterViewer(),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, 0, 0),
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		running:      true,
		lastInput:    time.Now(),
	}
}

// Run blocks until the viewer disconnects or the server shuts down.
func (c *Client) Run() error {
	c.chunkWriter.WriteString("\033[?25l") // Hide cursor
	defer func() {
		c.chunkWriter.WriteString("\033[?25h\033[H\033[2J") // Show cursor, clear
		_ = c.chunkWriter.Flush()
	}()
	c.chunkWriter.WriteString("\033[H\033[2J")

	for c.running {
		frameStart := time.Now()

		c.processInput()
		c.processServerEvents()
		c.updateScreen()

		if c.shuttingDown {
			c.shutdownTimer -= config.ClientTargetFrameTime.Seconds()
			if c.shutdownTimer <= 0 {
				c.running = false
			}
		}

		if err := c.drawFrame(); err != nil {
			c.server.UnregisterViewer(c.handle.ID)
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	c.server.UnregisterViewer(c.handle.ID)
	return nil
}

// processInput polls the keyboard. Any quit key, or a long stretch of
// nothing at all, ends the session.
func (c *Client) processInput() {
	in := c.inputStream.Poll()
	if in.Pressed {
		c.lastInput = time.Now()
	}
	if in.Quit {
		c.running = false
	}
	if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectSeconds {
		c.running = false
	}
}

// processServerEvents handles events pushed by the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Server dropped us.
				c.running = false
				return
			}
			if event.Type == server.EventServerShutdown && !c.shuttingDown {
				c.shuttingDown = true
				c.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to the maximum render
// resolution. On a size change the terminal is cleared so stale pixels
// outside the new canvas area disappear.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.Resize(renderWidth, renderHeight)
		c.canvas.SetOffset(offsetCol, offsetRow)
	}
}
