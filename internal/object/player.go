package object

import (
	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/physics"
)

// PlayerState is the Player payload.
type PlayerState struct {
	Charge    float64
	ShootTime int // ticks since the last shot, saturating at 1000
}

// NewPlayer creates the player ship near the bottom centre of the screen
// and marks it alive in the game state.
func NewPlayer(s *GameState) *Entity {
	e := newEntity(KindPlayer, config.ScreenWidth/2, config.ScreenHeight-config.PlayerSpawnYFromBase,
		config.SizePlayer, config.MaxHealth, 80)
	e.Player = &PlayerState{Charge: config.MaxCharge}
	s.PlayerAlive = true
	e.mirror(s)
	return e
}

func (e *Entity) updatePlayer(ctx *Context) {
	s := ctx.State
	p := e.Player

	dx := s.Cursor.CursorX - e.X
	dy := s.Cursor.CursorY - e.Y
	dist := physics.Distance(e.X, e.Y, s.Cursor.CursorX, s.Cursor.CursorY)
	if dist == 0 {
		dist = 1
	}
	if dist > config.PlayerApproachSpeed {
		e.X += dx * config.PlayerApproachSpeed / dist
		e.Y += dy * config.PlayerApproachSpeed / dist
	} else {
		e.X = s.Cursor.CursorX
		e.Y = s.Cursor.CursorY
	}
	e.KeepOnScreen()
	e.PrevX, e.PrevY = e.X, e.Y

	if p.Charge < config.MaxCharge {
		p.Charge = min(config.MaxCharge, p.Charge+config.ChargeRefillPerTick)
	}
	if p.ShootTime < 1000 {
		p.ShootTime++
	}

	if s.Cursor.Left && p.Charge >= config.ShotChargeThreshold && p.ShootTime >= config.ShotCooldownTicks {
		p.ShootTime = 0
		p.Charge--
		if s.Score >= config.LaserScoreThreshold {
			ctx.Play(CueLaser)
			ctx.spawn(NewLaser(s))
		} else {
			ctx.Play(CueShoot)
			ctx.spawn(NewMissile(e.X, e.Y-5, 0, -10, true))
		}
	}

	if s.Cursor.Right && p.Charge >= config.MaxCharge && p.ShootTime != 0 {
		if ctx.Tuning.Special == config.SpecialNuclear {
			nuclearRing(ctx, e.X, e.Y, 0.1)
		} else {
			missileRing(ctx, e.X, e.Y, 0.05, 10, true)
		}
		p.Charge = 0
		p.ShootTime = 0
		ctx.Play(CueSpecial)
	}
	if s.Cursor.Right && p.Charge >= config.MinorPulseCharge && p.ShootTime > config.MinorPulseCooldown {
		missileRing(ctx, e.X, e.Y, 0.3, 10, true)
		p.Charge -= config.MinorPulseCost
		p.ShootTime = 0
		ctx.Play(CueSpecial)
	}

	if p.Charge >= config.MaxCharge && e.Energy < config.MaxHealth && s.Every(10) {
		e.Energy++
	}
	if s.Every(2) {
		e.emitFlame(ctx, -4)
	}

	e.mirror(s)
}

// mirror copies the player vitals into the game state for the HUD and
// for entities that aim at the player.
func (e *Entity) mirror(s *GameState) {
	s.PlayerHealth = e.Energy
	s.PlayerX = e.X
	s.PlayerY = e.Y
	if e.Player != nil {
		s.PlayerCharge = e.Player.Charge
	}
}

func (e *Entity) destroyPlayer(ctx *Context) {
	s := ctx.State
	s.EnemyPopulation--
	s.PlayerAlive = false
	s.DeathCountdown = config.DeathSequenceTicks
	ctx.Play(CueExplosionBig)
	ctx.shake(6, 50)
}
