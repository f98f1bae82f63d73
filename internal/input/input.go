// Package input turns raw terminal bytes into per-frame input: held keys,
// one-shot commands and SGR mouse reports.
package input

import (
	"bufio"
	"strconv"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only send repeats, never releases, so a hold outlives the gap
// between two auto-repeat bytes.
const keyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	// Held movement and fire keys.
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Fire    bool
	Special bool

	// One-shot commands seen since the previous read.
	Quit  bool
	Pause bool
	Mute  bool
	Space bool
	Enter bool

	// Mouse is set when at least one mouse report arrived since the previous
	// read. MouseCol and MouseRow are 1-based terminal cells.
	Mouse       bool
	MouseCol    int
	MouseRow    int
	MouseLeft   bool
	MouseRight  bool
	MouseClicks int // presses of either button since the previous read

	// Closed reports that the underlying reader is gone.
	Closed bool

	Pressed []byte
}

// Active reports whether the player touched anything this frame.
func (in Input) Active() bool {
	return len(in.Pressed) > 0
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left    time.Time
	right   time.Time
	up      time.Time
	down    time.Time
	fire    time.Time
	special time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // incomplete escape sequence carried to the next read
	closed  bool

	mouseCol, mouseRow    int
	mouseLeft, mouseRight bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 256)}
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

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	buf := s.pending
	s.pending = nil

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.parse(buf, time.Now())
}

// ResetKeyInput forgets all held keys, e.g. when a new game starts.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
	s.mouseLeft = false
	s.mouseRight = false
}

// parse applies buf to the stream state and builds the frame input.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	var in Input

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			n, complete := s.escape(buf[i:], now, &in)
			if !complete {
				s.pending = append(s.pending[:0], buf[i:]...)
				buf = buf[:i]
				break
			}
			if n > 0 {
				i += n - 1
				continue
			}
		}

		applyByte(&s.state, &in, b, now)
	}

	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	in.Fire = now.Sub(s.state.fire) < keyHoldDuration
	in.Special = now.Sub(s.state.special) < keyHoldDuration

	in.MouseCol, in.MouseRow = s.mouseCol, s.mouseRow
	in.MouseLeft, in.MouseRight = s.mouseLeft, s.mouseRight
	in.Closed = s.closed
	in.Pressed = buf
	return in
}

// escape consumes an escape sequence at the start of seq. It returns the
// number of bytes used (0 when seq is not a sequence this package knows)
// and whether the sequence is complete.
func (s *Stream) escape(seq []byte, now time.Time, in *Input) (int, bool) {
	if len(seq) < 2 {
		return 0, s.closed
	}
	if seq[1] != '[' {
		return 0, true
	}
	if len(seq) < 3 {
		return 0, s.closed
	}

	switch seq[2] {
	case 'A':
		s.state.up = now
	case 'B':
		s.state.down = now
	case 'C':
		s.state.right = now
	case 'D':
		s.state.left = now
	case '<':
		return s.mouse(seq, in)
	default:
		return 0, true
	}
	return 3, true
}

// mouse parses an SGR mouse report: ESC [ < button ; col ; row (M|m).
func (s *Stream) mouse(seq []byte, in *Input) (int, bool) {
	var fields [3]int
	field := 0
	start := 3
	for j := 3; j < len(seq); j++ {
		c := seq[j]
		switch {
		case c >= '0' && c <= '9':
			continue
		case c == ';' && field < 2:
			v, err := strconv.Atoi(string(seq[start:j]))
			if err != nil {
				return j + 1, true
			}
			fields[field] = v
			field++
			start = j + 1
		case (c == 'M' || c == 'm') && field == 2:
			v, err := strconv.Atoi(string(seq[start:j]))
			if err != nil {
				return j + 1, true
			}
			fields[2] = v
			s.applyMouse(fields[0], fields[1], fields[2], c == 'M', in)
			return j + 1, true
		default:
			// Malformed, drop what we have.
			return j + 1, true
		}
	}
	return 0, s.closed
}

func (s *Stream) applyMouse(button, col, row int, press bool, in *Input) {
	in.Mouse = true
	s.mouseCol, s.mouseRow = col, row

	motion := button&32 != 0
	if button&64 != 0 {
		return // wheel
	}
	if motion {
		return
	}
	switch button & 3 {
	case 0:
		s.mouseLeft = press
	case 2:
		s.mouseRight = press
	default:
		return
	}
	if press {
		in.MouseClicks++
	}
}

// applyByte updates key state timestamps and one-shot commands for a single byte.
func applyByte(state *keyState, in *Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03:
		in.Quit = true
	case 'p', 'P':
		in.Pause = true
	case 'm', 'M':
		in.Mute = true
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case 'z', 'Z', 'f', 'F':
		state.fire = now
	case 'x', 'X', 'e', 'E':
		state.special = now
	case ' ':
		in.Space = true
		state.fire = now
	case '\n', '\r':
		in.Enter = true
	}
}
