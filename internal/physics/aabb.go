package physics

// Box is an axis-aligned hit box centred on (X, Y).
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Bounds is the logical screen rectangle, origin top-left.
type Bounds struct {
	Width, Height float64
}

// Collides reports whether two boxes overlap. Touching edges count as overlap.
func Collides(a, b Box) bool {
	dx := abs(a.X-b.X) - a.Width/2 - b.Width/2
	dy := abs(a.Y-b.Y) - a.Height/2 - b.Height/2
	return dx <= 0 && dy <= 0
}

// OffScreen reports whether the box pokes outside the bounds. The test uses
// the full width and height around the centre, so an entity counts as off
// screen slightly before its edge reaches the border.
func (s Bounds) OffScreen(b Box) bool {
	return b.X-b.Width < 0 || b.X+b.Width > s.Width ||
		b.Y-b.Height < 0 || b.Y+b.Height > s.Height
}

// Clamp moves the centre so the box lies entirely within the bounds.
func (s Bounds) Clamp(b Box) (x, y float64) {
	x, y = b.X, b.Y
	hw, hh := b.Width/2, b.Height/2
	if x-hw < 0 {
		x = hw
	}
	if y-hh < 0 {
		y = hh
	}
	if x+hw > s.Width {
		x = s.Width - hw
	}
	if y+hh > s.Height {
		y = s.Height - hh
	}
	return x, y
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
