package loop

import (
	"github.com/tomz197/tiro/internal/object"
)

// Tick advances the world by one frame. Paused, Loading and GameOver
// worlds do not change.
func (w *World) Tick() {
	if !w.phase.ticking() {
		return
	}
	s := w.state

	// ===== UPDATE PHASE =====
	w.updateAll(w.friendly)
	w.updateAll(w.enemy)
	w.updateAll(w.debris)
	w.flushSpawned()

	// ===== COLLISION PHASE =====
	DistributeHits(w.friendly, w.enemy, &w.ctx)
	w.flushSpawned()

	// ===== SPAWN PHASE =====
	if s.PlayerAlive {
		w.direct()
		w.flushSpawned()
	}

	// Dead entities leave only after collision has seen them.
	w.friendly = compact(w.friendly)
	w.enemy = compact(w.enemy)
	w.debris = compact(w.debris)

	w.opts.HUD.Update(s.Score, float64(max(s.PlayerHealth, 0)), s.PlayerCharge)
	s.Frame++

	w.advanceDeath()
}

// updateAll updates the entities present at the start of the pass, in
// index order. Entities spawned meanwhile wait in toSpawn.
func (w *World) updateAll(list []*object.Entity) {
	for _, e := range list {
		object.Update(e, &w.ctx)
	}
}

func (w *World) advanceDeath() {
	s := w.state
	if w.phase == PhaseRunning && !s.PlayerAlive {
		w.setPhase(PhaseDeathSequence)
	}
	if w.phase != PhaseDeathSequence {
		return
	}
	s.DeathCountdown--
	if s.DeathCountdown <= 0 {
		s.DeathCountdown = 0
		s.GameOver = true
		w.setPhase(PhaseGameOver)
	}
}
