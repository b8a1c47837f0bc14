// Package draw renders the animation to a terminal using half-block
// characters, giving 2x vertical resolution per text row. Output is
// accumulated and written in MTU-sized chunks so frames flow smoothly
// over SSH.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)
