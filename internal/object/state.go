package object

// GameState is the scalar record shared by every entity of one world.
// It is reset when the world restarts.
type GameState struct {
	Score int
	Frame uint64 // tick counter, drives every periodic behaviour

	PlayerHealth int
	PlayerCharge float64
	PlayerX      float64
	PlayerY      float64
	PlayerAlive  bool

	Cursor Input

	EnemyPopulation int
	DebrisCount     int

	DeathCountdown int // ticks left before game over once the player died
	GameOver       bool
	Muted          bool

	// LastEnemySpawn is the frame of the most recent enemy-class spawn.
	LastEnemySpawn uint64
}

// Every reports whether the current frame is a multiple of n.
func (s *GameState) Every(n int) bool {
	return n > 0 && s.Frame%uint64(n) == 0
}
