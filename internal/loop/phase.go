package loop

// Phase is the world state machine.
type Phase int

const (
	PhaseLoading       Phase = iota // Waiting for Start
	PhaseRunning                    // Active gameplay
	PhasePaused                     // Frozen until resumed
	PhaseDeathSequence              // Player destroyed, explosions still playing
	PhaseGameOver                   // Waiting for Restart
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseDeathSequence:
		return "death_sequence"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ticking reports whether Tick advances the simulation in this phase.
func (p Phase) ticking() bool {
	return p == PhaseRunning || p == PhaseDeathSequence
}
