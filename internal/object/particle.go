package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/physics"
)

// debrisPool recycles Debris entities, by far the most frequently
// allocated kind.
var debrisPool = sync.Pool{
	New: func() any {
		return &Entity{}
	},
}

// NewDebris creates a debris fragment flying in a random direction.
func NewDebris(rng *rand.Rand, x, y float64) *Entity {
	return NewDebrisAt(rng, x, y, rng.Float64()*2*math.Pi)
}

// NewDebrisAt creates a debris fragment flying along angle (radians).
func NewDebrisAt(rng *rand.Rand, x, y, angle float64) *Entity {
	e := debrisPool.Get().(*Entity)
	*e = Entity{
		Kind:   KindDebris,
		X:      x,
		Y:      y,
		PrevX:  x,
		PrevY:  y,
		Width:  config.SizeDebris.Width,
		Height: config.SizeDebris.Height,
		Energy: 1,
		Alive:  true,
		pooled: true,
	}

	vel := float64(physics.RandomInt(rng, 100))
	e.Motion = newScaledAccumulator(int(math.Floor(vel*math.Cos(angle))), int(math.Floor(vel*math.Sin(angle))))
	e.Motion.Strict = true
	e.Life = physics.RandomInt(rng, 60)
	return e
}

// Release returns a pooled entity for reuse. It must only be called once
// the entity has been removed from every collection.
func Release(e *Entity) {
	if e == nil || !e.pooled {
		return
	}
	*e = Entity{}
	debrisPool.Put(e)
}

func (e *Entity) updateDebris(ctx *Context) {
	e.move()
	e.Life--
	if e.Life < 1 {
		e.Destroy(ctx)
	}
}

// NewEngineFlame creates a short-lived exhaust puff.
func NewEngineFlame(rng *rand.Rand, x, y float64) *Entity {
	e := newEntity(KindEngineFlame, x, y, config.SizeEngineFlame, 1, 0)
	e.Life = 14
	e.Alpha = 0.8
	e.VX = (rng.Float64() - 0.5) * 2
	e.VY = 2 + rng.Float64()*1.5
	return e
}

func (e *Entity) updateEngineFlame(ctx *Context) {
	e.X += e.VX
	e.Y += e.VY
	e.Alpha *= 0.88
	e.Life--
	if e.Life <= 0 {
		e.Destroy(ctx)
	}
}

// emitFlame drops an engine flame behind the ship when flames are enabled.
func (e *Entity) emitFlame(ctx *Context, offsetY float64) {
	if !ctx.Tuning.EngineFlames {
		return
	}
	ctx.spawn(NewEngineFlame(ctx.Rng, e.X, e.Y+e.Height/2+offsetY))
}
