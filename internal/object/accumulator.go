package object

import (
	"math"

	"github.com/tomz197/tiro/internal/physics"
)

// Accumulator moves an entity in whole pixels along a fixed velocity.
// Dir holds the velocity scaled by 100; Rest carries the fractional part
// across ticks so that no motion is lost to rounding.
type Accumulator struct {
	DirX, DirY   int // scaled magnitudes, never negative
	IncX, IncY   int // -1, 0 or +1
	RestX, RestY int
	Strict       bool // step only when Rest exceeds 100 instead of reaching it
}

// NewAccumulator builds an accumulator from a per-tick velocity.
func NewAccumulator(vx, vy float64) Accumulator {
	return newScaledAccumulator(int(math.Floor(vx*100)), int(math.Floor(vy*100)))
}

func newScaledAccumulator(dx, dy int) Accumulator {
	a := Accumulator{
		IncX: physics.Sign(dx),
		IncY: physics.Sign(dy),
		DirX: dx,
		DirY: dy,
	}
	if a.DirX < 0 {
		a.DirX = -a.DirX
	}
	if a.DirY < 0 {
		a.DirY = -a.DirY
	}
	return a
}

// Step advances one tick and returns the whole-pixel displacement.
func (a *Accumulator) Step() (dx, dy int) {
	a.RestX += a.DirX
	a.RestY += a.DirY
	for a.crossed(a.RestX) {
		a.RestX -= 100
		dx += a.IncX
	}
	for a.crossed(a.RestY) {
		a.RestY -= 100
		dy += a.IncY
	}
	return dx, dy
}

func (a *Accumulator) crossed(rest int) bool {
	if a.Strict {
		return rest > 100
	}
	return rest >= 100
}

// move applies one accumulator step to the entity position.
func (e *Entity) move() {
	dx, dy := e.Motion.Step()
	e.X += float64(dx)
	e.Y += float64(dy)
}
