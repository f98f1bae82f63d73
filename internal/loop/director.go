package loop

import (
	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/object"
	"github.com/tomz197/tiro/internal/physics"
)

// possible rolls a spawn slot: it only fires on its frame of the period,
// and then only with the slot's probability.
func (w *World) possible(slot config.SlotTuning) bool {
	period := uint64(w.opts.Tuning.Director.Period)
	if period == 0 {
		return false
	}
	return (w.state.Frame+uint64(slot.Offset))%period == 0 &&
		physics.RandomInt(w.opts.Rng, 100) < slot.Probability
}

// direct runs the spawn director for the current frame.
func (w *World) direct() {
	d := w.opts.Tuning.Director
	s := w.state
	rng := w.opts.Rng

	if w.possible(d.Freighter) {
		if s.Score >= d.TransportScore {
			w.Spawn(object.NewTransport(rng))
		} else {
			w.Spawn(object.NewMetralha(rng))
		}
	}

	if w.possible(d.Heavy) {
		switch {
		case s.Score >= d.EncrencaScore:
			w.Spawn(object.NewEncrenca(rng))
		case s.Score >= d.RainScore:
			w.Spawn(object.NewRain(rng))
		default:
			w.Spawn(object.NewStar(rng))
		}
	}

	if w.possible(d.Meteors) {
		for i := 0; i < d.MeteorCount; i++ {
			w.Spawn(object.NewMeteor(rng))
		}
	}

	if w.possible(d.Star) {
		w.Spawn(object.NewStar(rng))
	}

	if s.EnemyPopulation < d.PopulationCap && w.possible(d.Squadron) {
		for i := 0; i < d.SquadronSize; i++ {
			w.Spawn(object.NewEnemy(&w.ctx))
		}
		s.LastEnemySpawn = s.Frame
	}

	w.fallback()
}

// fallback sends a lone Enemy once no enemy has been alive or spawned for
// FallbackTicks frames.
func (w *World) fallback() {
	d := w.opts.Tuning.Director
	s := w.state
	if d.FallbackTicks <= 0 || s.EnemyPopulation > 0 {
		return
	}
	if s.Frame-s.LastEnemySpawn < uint64(d.FallbackTicks) {
		return
	}
	w.Spawn(object.NewEnemy(&w.ctx))
	s.LastEnemySpawn = s.Frame
	w.opts.Logger.Debug("fallback spawn", "frame", s.Frame)
}
