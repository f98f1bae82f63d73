package input

import "github.com/tomz197/tiro/internal/object"

// CursorStep is how far one frame of a held direction key moves the pointer.
const CursorStep = 12.0

// Pointer is the virtual cursor the player ship chases. Mouse reports
// place it directly, direction keys nudge it.
type Pointer struct {
	X, Y          float64
	Width, Height float64
}

// NewPointer creates a pointer at (x, y) inside a width × height screen.
func NewPointer(x, y, width, height float64) *Pointer {
	return &Pointer{X: x, Y: y, Width: width, Height: height}
}

// Apply moves the pointer for one frame and returns the simulation input.
// toLogical maps a 1-based terminal cell to logical coordinates; it may be
// nil when no mouse is in use.
func (p *Pointer) Apply(in Input, toLogical func(col, row int) (float64, float64)) object.Input {
	if in.Mouse && toLogical != nil {
		p.X, p.Y = toLogical(in.MouseCol, in.MouseRow)
	}
	if in.Left {
		p.X -= CursorStep
	}
	if in.Right {
		p.X += CursorStep
	}
	if in.Up {
		p.Y -= CursorStep
	}
	if in.Down {
		p.Y += CursorStep
	}
	p.X = min(max(p.X, 0), p.Width)
	p.Y = min(max(p.Y, 0), p.Height)

	return object.Input{
		CursorX: p.X,
		CursorY: p.Y,
		Left:    in.Fire || in.MouseLeft,
		Right:   in.Special || in.MouseRight,
	}
}
