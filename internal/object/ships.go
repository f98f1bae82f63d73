package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/physics"
)

// NewStar creates a power-up carrier drifting down from the top.
func NewStar(rng *rand.Rand) *Entity {
	x := float64(physics.RandomInt(rng, config.ScreenWidth-80) + 40)
	return newEntity(KindStar, x, 40, config.SizeStar, config.StarHealth, 500)
}

func (e *Entity) updateStar(ctx *Context) {
	s := ctx.State
	if !s.Every(10) {
		return
	}
	if s.Score > 5000 && s.Every(50) {
		missileRing(ctx, e.X, e.Y, 0.05, 10, false)
	}
	e.Y++
	if e.Y > config.ScreenHeight {
		e.Destroy(ctx)
	}
}

func (e *Entity) destroyStar(ctx *Context) {
	ctx.State.Score += config.PointsStar
	missileRing(ctx, e.X, e.Y, 0.05, 10, false)
	ctx.Play(CuePowerup)
}

// NewRain creates a Rain at a random spot near the top.
func NewRain(rng *rand.Rand) *Entity {
	return NewRainAt(float64(physics.RandomInt(rng, config.ScreenWidth-40)+20), 40)
}

// NewRainAt creates a Rain at (x, y).
func NewRainAt(x, y float64) *Entity {
	return newEntity(KindRain, x, y, config.SizeRain, config.RainHealth, 15)
}

func (e *Entity) updateRain(ctx *Context) {
	s := ctx.State
	if s.Every(10) {
		e.Y++
		e.Counter++
		if e.Counter >= 5 {
			ctx.spawn(NewGuided(e.X, e.Y))
			e.Counter = 0
		}
	}
	if s.Every(100) {
		for a := math.Pi / 4; a <= 3*math.Pi/4; a += 0.1 {
			ctx.spawn(NewMissile(e.X, e.Y, 2*math.Cos(a), 2*math.Sin(a), false))
		}
		if e.Y+20 > config.ScreenHeight {
			e.Destroy(ctx)
		}
	}
}

func (e *Entity) destroyRain(ctx *Context) {
	ctx.State.Score += config.PointsRain
	ctx.Play(CueExplosionBig)
}

// NewMetralha creates a turret at a random spot near the top.
func NewMetralha(rng *rand.Rand) *Entity {
	return NewMetralhaAt(float64(physics.RandomInt(rng, config.ScreenWidth-96)+48), 48)
}

// NewMetralhaAt creates a turret at (x, y).
func NewMetralhaAt(x, y float64) *Entity {
	return newEntity(KindMetralha, x, y, config.SizeMetralha, config.MetralhaHealth, 100)
}

func (e *Entity) updateMetralha(ctx *Context) {
	s := ctx.State
	if s.Every(25) {
		dx := s.PlayerX - e.X
		dy := s.PlayerY - e.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist == 0 {
			dist = 1
		}
		ctx.spawn(NewMissile(e.X, e.Y, dx*5/dist, dy*5/dist, false))
	}
	if s.Every(10) {
		e.Y++
		if e.IsOffScreen() {
			e.Destroy(ctx)
		}
	}
}

func (e *Entity) destroyMetralha(ctx *Context) {
	ctx.State.Score += config.PointsMetralha
	ctx.Play(CueExplosion)
	ctx.shake(1.5, 10)
}

// NewTransport creates a carrier entering from the left edge.
func NewTransport(rng *rand.Rand) *Entity {
	y := float64(physics.RandomInt(rng, config.ScreenHeight/2-40) + 40)
	return newEntity(KindTransport, 0, y, config.SizeTransport, config.TransportHealth, 40)
}

// NewEncrenca creates a heavy carrier entering from the left edge.
func NewEncrenca(rng *rand.Rand) *Entity {
	y := float64(physics.RandomInt(rng, config.ScreenHeight/2-40) + 40)
	return newEntity(KindEncrenca, 0, y, config.SizeEncrenca, config.EncrencaHealth, 200)
}

// updateCarrier moves a Transport or Encrenca across the screen, dropping
// a child every period ticks.
func (e *Entity) updateCarrier(ctx *Context, period int, child func() *Entity) {
	s := ctx.State
	if s.Every(period) {
		ctx.spawn(child())
	}
	if s.Every(10) {
		e.Y++
	}
	e.X++
	if e.X > config.ScreenWidth {
		e.Destroy(ctx)
	}
}

func (e *Entity) destroyTransport(ctx *Context) {
	ctx.Play(CueExplosionBig)
	ctx.shake(3, 20)
}

func (e *Entity) destroyEncrenca(ctx *Context) {
	ctx.Play(CueExplosionBig)
}
