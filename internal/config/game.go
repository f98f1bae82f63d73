package config

import "time"

// Logical screen. Every position in the simulation is in these units,
// origin top-left, +y down.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

// Player
const (
	MaxHealth            = 100
	MaxCharge            = 1000.0
	ChargeRefillPerTick  = 0.3
	ShotChargeThreshold  = 20
	ShotCooldownTicks    = 5
	MinorPulseCharge     = 150
	MinorPulseCost       = 50
	MinorPulseCooldown   = 50
	PlayerApproachSpeed  = 20.0
	LaserScoreThreshold  = 500
	DeathSequenceTicks   = 90 // ~1.5s at 60 ticks per second
	PlayerSpawnYFromBase = 80
)

// Energies
const (
	EnemyHealth     = 5
	MeteorHealth    = 1
	MissileHealth   = 1
	LaserHealth     = 2
	GuidedHealth    = 1
	StarHealth      = 10
	RainHealth      = 100
	MetralhaHealth  = 10
	TransportHealth = 500
	EncrencaHealth  = 500
)

// Scoring
const (
	PointsEnemy    = 5
	PointsMeteor   = 1
	PointsGuided   = 1
	PointsMetralha = 20
	PointsRain     = 100
	PointsStar     = 100
)

// Debris caps
const (
	MaxDebrisTotal    = 600
	MaxDebrisPerEvent = 80
)

// Size is a logical hit box size.
type Size struct {
	Width, Height float64
}

// Logical sizes per kind.
var (
	SizePlayer      = Size{16, 16}
	SizeEnemy       = Size{16, 16}
	SizeRain        = Size{20, 20}
	SizeMetralha    = Size{48, 48}
	SizeTransport   = Size{100, 20}
	SizeEncrenca    = Size{100, 20}
	SizeMeteor      = Size{5, 5}
	SizeGuided      = Size{10, 10}
	SizeStar        = Size{64, 48}
	SizeLaser       = Size{2, 50}
	SizeEngineFlame = Size{6, 6}
	SizeMissile     = Size{4, 4}
	SizeDebris      = Size{1, 1}

	// NuclearLevels is the square size of a Nuclear by split level.
	NuclearLevels = []float64{20, 18, 14, 10}
)

// Tick rate. The simulation is tied to it: one tick per frame.
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Terminal rendering
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// ShutdownDisplaySeconds is how long players see the shutdown notice
// before the server disconnects them.
const ShutdownDisplaySeconds = 5
