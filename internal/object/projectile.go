package object

import (
	"math"

	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/physics"
)

// Nuclear missiles stop splitting at this level.
const nuclearMaxLevel = 3

// nuclearFan children cover back-1 up to (not including) back+1 radians.
const nuclearFan = 4

// NewMissile creates a missile travelling at (vx, vy) pixels per tick.
func NewMissile(x, y, vx, vy float64, friendly bool) *Entity {
	e := newEntity(KindMissile, x, y, config.SizeMissile, config.MissileHealth, 4)
	e.Motion = NewAccumulator(vx, vy)
	e.Friendly = friendly
	return e
}

// NewNuclear creates a splitting missile. Its size shrinks with level.
func NewNuclear(x, y, vx, vy float64, level int) *Entity {
	size := config.SizeMissile
	if level >= 0 && level < len(config.NuclearLevels) {
		size = config.Size{Width: config.NuclearLevels[level], Height: config.NuclearLevels[level]}
	}
	e := newEntity(KindNuclear, x, y, size, config.MissileHealth, 4)
	e.Motion = NewAccumulator(vx, vy)
	e.Friendly = true
	e.Level = level
	e.Angle = physics.AngleDir(vx, vy)
	return e
}

func (e *Entity) updateMissile(ctx *Context) {
	e.move()
	if e.IsOffScreen() {
		e.Destroy(ctx)
	}
}

// Splits into a fan of smaller Nuclear missiles heading back the way it
// came.
func (e *Entity) destroyNuclear(ctx *Context) {
	if e.Level >= nuclearMaxLevel {
		return
	}
	back := e.Angle + math.Pi
	if e.Angle > math.Pi {
		back = e.Angle - math.Pi
	}
	e.X += math.Cos(back) * 10
	e.Y += math.Sin(back) * 10
	for i := 0; i < nuclearFan; i++ {
		a := back - 1 + float64(i)*0.5
		ctx.spawn(NewNuclear(e.X, e.Y, math.Cos(a)*5, math.Sin(a)*5, e.Level+1))
	}
}

// missileRing fires missiles in every direction, one per step radians.
func missileRing(ctx *Context, x, y, step, speed float64, friendly bool) {
	for a := 0.0; a < 2*math.Pi; a += step {
		ctx.spawn(NewMissile(x, y, math.Cos(a)*speed, math.Sin(a)*speed, friendly))
	}
}

// nuclearRing fires level 0 Nuclear missiles in every direction.
func nuclearRing(ctx *Context, x, y, step float64) {
	for a := 0.0; a < 2*math.Pi; a += step {
		ctx.spawn(NewNuclear(x, y, math.Cos(a)*5, math.Sin(a)*5, 0))
	}
}

// NewLaser creates a laser bolt just above the player.
func NewLaser(s *GameState) *Entity {
	return newEntity(KindLaser, s.PlayerX, s.PlayerY-10, config.SizeLaser, config.LaserHealth, 4)
}

func (e *Entity) updateLaser(ctx *Context) {
	e.Y -= 10
	e.X = ctx.State.PlayerX
	if e.Y < 40 {
		e.Destroy(ctx)
	}
}

// NewGuided creates a homing mine at rest.
func NewGuided(x, y float64) *Entity {
	return newEntity(KindGuided, x, y, config.SizeGuided, config.GuidedHealth, 5)
}

func (e *Entity) updateGuided(ctx *Context) {
	s := ctx.State
	dist := physics.Distance(e.X, e.Y, s.PlayerX, s.PlayerY)
	if dist == 0 {
		dist = 1
	}
	dx := (e.X - s.PlayerX) / dist / 5
	dy := (e.Y - s.PlayerY) / dist / 5
	e.VX = (e.VX - dx) * 0.99
	e.VY = (e.VY - dy) * 0.99
	e.X += e.VX
	e.Y += e.VY

	e.Age++
	if e.Age > 1000 {
		e.Destroy(ctx)
	}
}
