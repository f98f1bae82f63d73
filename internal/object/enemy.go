package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/physics"
)

// Movement programs an Enemy cycles through.
const (
	moveDown = iota
	moveUp
	moveLeft
	moveRight
	moveSineDown
	moveSineRight
	moveZigzag
	moveHoming
	moveCount
)

// EnemyState is the Enemy payload.
type EnemyState struct {
	Movement  int
	Distance  int // ticks left before the program is re-rolled
	Phase     float64
	Speed     float64
	ShootTime int
}

// NewEnemy creates a basic enemy near the top of the screen and counts it
// in the enemy population.
func NewEnemy(ctx *Context) *Entity {
	rng := ctx.Rng
	e := newEntity(KindEnemy, float64(physics.RandomInt(rng, config.ScreenWidth-60)+30), 30,
		config.SizeEnemy, config.EnemyHealth, 20)
	e.Enemy = &EnemyState{
		Movement:  physics.RandomInt(rng, moveCount),
		Distance:  physics.RandomInt(rng, 50),
		ShootTime: physics.RandomInt(rng, 100) + 20,
		Phase:     rng.Float64() * math.Pi * 2,
		Speed:     0.8 + rng.Float64()*1.4,
	}
	ctx.State.EnemyPopulation++
	return e
}

func (e *Entity) updateEnemy(ctx *Context) {
	s := ctx.State
	m := e.Enemy
	e.PrevX, e.PrevY = e.X, e.Y

	switch m.Movement {
	case moveDown:
		e.Y += m.Speed
	case moveUp:
		e.Y -= m.Speed
	case moveLeft:
		e.X -= m.Speed
	case moveRight:
		e.X += m.Speed
	case moveSineDown:
		e.Y += 0.7 * m.Speed
		m.Phase += 0.1
		e.X += math.Sin(m.Phase) * 1.5
	case moveSineRight:
		e.X += 0.7 * m.Speed
		m.Phase += 0.1
		e.Y += math.Sin(m.Phase) * 1.5
	case moveZigzag:
		e.Y += 1.2 * m.Speed
		m.Phase += 0.25
		e.X += math.Sin(m.Phase) * 2.6
	case moveHoming:
		ang := math.Atan2(s.PlayerY-e.Y, s.PlayerX-e.X)
		e.X += math.Cos(ang)*0.6*m.Speed + math.Cos(ang+math.Pi/2)*0.8
		e.Y += math.Sin(ang) * 0.6 * m.Speed
	}

	if m.Distance >= 0 {
		m.Distance--
	} else {
		m.reroll(ctx.Rng)
	}

	// Steer back towards the upper half of the screen.
	if e.Y-20 < 20 {
		m.Movement, m.Distance = moveDown, 10
	}
	if e.Y > config.ScreenHeight/2 {
		m.Movement, m.Distance = moveUp, 10
	}
	if e.X+20 > config.ScreenWidth {
		m.Movement, m.Distance = moveLeft, 10
	}
	if e.X-20 < 0 {
		m.Movement, m.Distance = moveRight, 10
	}

	if m.ShootTime == 0 {
		m.ShootTime = physics.RandomInt(ctx.Rng, 180) + 20
		ctx.spawn(NewMissile(e.X-9, e.Y+20, 0, 3, false))
		ctx.spawn(NewMissile(e.X+9, e.Y+20, 0, 3, false))
	} else {
		m.ShootTime--
	}

	if s.Every(6) {
		e.emitFlame(ctx, 0)
	}
}

func (m *EnemyState) reroll(rng *rand.Rand) {
	m.Distance = physics.RandomInt(rng, 50) + 20
	m.Movement = physics.RandomInt(rng, moveCount)
	m.Phase = 0
	m.Speed = 0.8 + rng.Float64()*1.6
}

func (e *Entity) destroyEnemy(ctx *Context) {
	ctx.State.EnemyPopulation--
	ctx.State.Score += config.PointsEnemy
	ctx.shake(1.2, 8)
	ctx.Play(CueExplosion)
}

// NewMeteor creates a meteor on a random screen edge heading inwards.
func NewMeteor(rng *rand.Rand) *Entity {
	e := newEntity(KindMeteor, 0, 0, config.SizeMeteor, config.MeteorHealth, 5)

	var deg int
	switch physics.RandomInt(rng, 4) {
	case 0:
		e.X = 10
		e.Y = float64(physics.RandomInt(rng, config.ScreenHeight-10))
		deg = physics.RandomInt(rng, 90)
		if deg > 45 {
			deg += 269
		}
	case 1:
		e.X = config.ScreenWidth - 10
		e.Y = float64(physics.RandomInt(rng, config.ScreenHeight-10))
		deg = physics.Between(rng, 135, 225)
	case 2:
		e.X = float64(physics.RandomInt(rng, config.ScreenWidth-10))
		e.Y = 10
		deg = physics.Between(rng, 45, 135)
	default:
		e.X = float64(physics.RandomInt(rng, config.ScreenWidth-10))
		e.Y = config.ScreenHeight - 10
		deg = physics.Between(rng, 225, 315)
	}
	e.PrevX, e.PrevY = e.X, e.Y

	rad := float64(deg) * math.Pi / 180
	e.Motion = newScaledAccumulator(int(math.Floor(200*math.Cos(rad))), int(math.Floor(200*math.Sin(rad))))
	return e
}

func (e *Entity) destroyMeteor(ctx *Context) {
	ctx.State.Score += config.PointsMeteor
	ctx.Play(CueExplosion)
	ctx.shake(0.8, 6)
}
