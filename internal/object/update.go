package object

import "github.com/tomz197/tiro/internal/config"

// Update advances the entity by one tick and syncs its visual.
// Dead entities are left untouched.
func Update(e *Entity, ctx *Context) {
	if !e.Alive {
		return
	}

	switch e.Kind {
	case KindPlayer:
		e.updatePlayer(ctx)
	case KindMissile, KindNuclear, KindMeteor:
		e.updateMissile(ctx)
	case KindLaser:
		e.updateLaser(ctx)
	case KindEnemy:
		e.updateEnemy(ctx)
	case KindGuided:
		e.updateGuided(ctx)
	case KindStar:
		e.updateStar(ctx)
	case KindRain:
		e.updateRain(ctx)
	case KindMetralha:
		e.updateMetralha(ctx)
	case KindTransport:
		e.updateCarrier(ctx, 50, func() *Entity { return NewMetralhaAt(e.X, e.Y) })
	case KindEncrenca:
		e.updateCarrier(ctx, 100, func() *Entity { return NewRainAt(e.X, e.Y) })
	case KindDebris:
		e.updateDebris(ctx)
	case KindEngineFlame:
		e.updateEngineFlame(ctx)
	}

	ctx.sync(e)
}

// onDestroy runs the kind specific death effects. It fires at most once,
// from TakeDamage, right before Destroy.
func (e *Entity) onDestroy(ctx *Context) {
	switch e.Kind {
	case KindPlayer:
		e.destroyPlayer(ctx)
	case KindNuclear:
		e.destroyNuclear(ctx)
	case KindEnemy:
		e.destroyEnemy(ctx)
	case KindMeteor:
		e.destroyMeteor(ctx)
	case KindGuided:
		ctx.State.Score += config.PointsGuided
	case KindStar:
		e.destroyStar(ctx)
	case KindRain:
		e.destroyRain(ctx)
	case KindMetralha:
		e.destroyMetralha(ctx)
	case KindTransport:
		e.destroyTransport(ctx)
	case KindEncrenca:
		e.destroyEncrenca(ctx)
	}
}
