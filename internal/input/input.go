// Package input reads keystrokes from a raw-mode terminal without blocking
// the animation loop.
package input

import "bufio"

// Input represents the keys seen since the previous poll.
type Input struct {
	Quit    bool // q, Q, Esc or Ctrl-C
	Pause   bool // space or p toggles the animation
	Pressed bool // Any key at all was pressed
}

// Stream delivers input bytes from a reader goroutine via a channel.
type Stream struct {
	ch chan byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The channel closes when the reader ends (e.g. the SSH session
// hangs up), which polls as a quit.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes from the stream without blocking and
// reports the keys seen.
func (s *Stream) Poll() Input {
	var in Input
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				in.Quit = true
				return in
			}
			in.Pressed = true
			switch b {
			case 'q', 'Q', 0x1b, 0x03: // q, Q, Esc, Ctrl-C
				in.Quit = true
			case ' ', 'p', 'P':
				in.Pause = true
			}
		default:
			return in
		}
	}
}
