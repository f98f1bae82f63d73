// Package object holds the entity catalog: one Entity type tagged by Kind,
// the per-kind update and destruction behaviour, and the collaborator
// interfaces entities talk to.
package object

import (
	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/physics"
)

var screen = physics.Bounds{Width: config.ScreenWidth, Height: config.ScreenHeight}

// Entity is a single simulated thing on screen. Only the payload fields
// matching Kind are meaningful.
type Entity struct {
	Kind Kind

	X, Y          float64 // centre, logical pixels
	Width, Height float64
	PrevX, PrevY  float64

	Energy        int
	Alive         bool
	ReleaseDebris int

	Visual Handle

	// Missile, Nuclear, Meteor, Debris
	Motion   Accumulator
	Friendly bool

	// Nuclear
	Level int
	Angle float64

	// Guided, EngineFlame
	VX, VY float64
	Age    int

	// Rain
	Counter int

	// Debris, EngineFlame
	Life  int
	Alpha float64

	Player *PlayerState
	Enemy  *EnemyState

	pooled bool
}

func newEntity(kind Kind, x, y float64, size config.Size, energy, debris int) *Entity {
	return &Entity{
		Kind:          kind,
		X:             x,
		Y:             y,
		PrevX:         x,
		PrevY:         y,
		Width:         size.Width,
		Height:        size.Height,
		Energy:        energy,
		Alive:         true,
		ReleaseDebris: debris,
	}
}

// Box returns the entity hit box.
func (e *Entity) Box() physics.Box {
	return physics.Box{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// IsOffScreen reports whether the entity pokes outside the screen.
func (e *Entity) IsOffScreen() bool {
	return screen.OffScreen(e.Box())
}

// KeepOnScreen clamps the entity inside the screen.
func (e *Entity) KeepOnScreen() {
	e.X, e.Y = screen.Clamp(e.Box())
}

// TakeDamage subtracts amount from the entity energy. It reports whether
// the hit destroyed the entity. Damage to a dead entity is ignored.
func (e *Entity) TakeDamage(ctx *Context, amount int) bool {
	if !e.Alive {
		return false
	}
	if e.Kind == KindPlayer {
		ctx.Play(CueHit)
	}

	e.Energy -= amount
	if e.Kind == KindPlayer {
		ctx.State.PlayerHealth = max(e.Energy, 0)
	}
	if e.Energy < 1 {
		e.onDestroy(ctx)
		e.Destroy(ctx)
		return true
	}
	ctx.flash(e)
	return false
}

// Destroy marks the entity dead, emits its debris and drops its visual.
// Calling it again is a no-op.
func (e *Entity) Destroy(ctx *Context) {
	if !e.Alive {
		return
	}
	e.Alive = false

	if e.Kind == KindDebris {
		if ctx.State.DebrisCount > 0 {
			ctx.State.DebrisCount--
		}
		ctx.detach(e)
		return
	}

	if e.ReleaseDebris > 0 && !e.IsOffScreen() {
		n := min(e.ReleaseDebris, config.MaxDebrisPerEvent, config.MaxDebrisTotal-ctx.State.DebrisCount)
		for i := 0; i < n; i++ {
			ctx.spawn(NewDebris(ctx.Rng, e.X, e.Y))
			ctx.State.DebrisCount++
		}
	}
	ctx.detach(e)
}
