package loop

import (
	"testing"

	"github.com/tomz197/tiro/internal/object"
)

func TestDistributeHitsBasicKill(t *testing.T) {
	w, rec := newTestWorld(t, quietTuning())
	missile := object.NewMissile(200, 200, 0, -10, true)
	enemy := object.NewEnemy(&w.ctx)
	enemy.X, enemy.Y = 200, 202

	DistributeHits([]*object.Entity{missile}, []*object.Entity{enemy}, &w.ctx)

	if missile.Alive {
		t.Error("missile survived")
	}
	if !enemy.Alive || enemy.Energy != 4 {
		t.Errorf("enemy alive=%v energy=%d, want alive with 4", enemy.Alive, enemy.Energy)
	}
	if rec.count(object.CueImpact) != 1 {
		t.Errorf("impact cues = %d, want 1", rec.count(object.CueImpact))
	}
}

func TestDistributeHitsMutualKill(t *testing.T) {
	w, _ := newTestWorld(t, quietTuning())
	a := object.NewMissile(300, 300, 0, -10, true)
	b := object.NewMissile(301, 299, 0, 3, false)

	DistributeHits([]*object.Entity{a}, []*object.Entity{b}, &w.ctx)

	if a.Alive || b.Alive {
		t.Errorf("equal energy exchange left a=%v b=%v", a.Alive, b.Alive)
	}
}

func TestDistributeHitsUsesOriginalEnergy(t *testing.T) {
	w, _ := newTestWorld(t, quietTuning())
	a := object.NewMetralhaAt(300, 200) // energy 10
	b := object.NewRainAt(300, 200)     // energy 100
	a.Friendly = true

	DistributeHits([]*object.Entity{a}, []*object.Entity{b}, &w.ctx)

	if a.Alive {
		t.Error("a survived a 100 point hit")
	}
	if b.Energy != 90 {
		t.Errorf("b energy = %d, want 90", b.Energy)
	}
}

func TestDistributeHitsSkipsDead(t *testing.T) {
	w, rec := newTestWorld(t, quietTuning())
	a := object.NewMissile(300, 300, 0, -10, true)
	b1 := object.NewMissile(300, 300, 0, 3, false)
	b2 := object.NewMissile(300, 300, 0, 3, false)
	dead := object.NewMissile(300, 300, 0, 3, false)
	dead.Alive = false

	DistributeHits([]*object.Entity{a}, []*object.Entity{dead, b1, b2}, &w.ctx)

	if a.Alive || b1.Alive {
		t.Error("first pair should trade")
	}
	if !b2.Alive {
		t.Error("dead a kept hitting")
	}
	if rec.count(object.CueImpact) != 1 {
		t.Errorf("impact cues = %d, want 1", rec.count(object.CueImpact))
	}
}

func TestDistributeHitsMissesApart(t *testing.T) {
	w, _ := newTestWorld(t, quietTuning())
	a := object.NewMissile(100, 100, 0, -10, true)
	b := object.NewMissile(105, 100, 0, 3, false)

	DistributeHits([]*object.Entity{a}, []*object.Entity{b}, &w.ctx)

	if !a.Alive || !b.Alive {
		t.Error("missiles 5px apart collided")
	}
}

func TestCollisionInTick(t *testing.T) {
	w, _ := newTestWorld(t, quietTuning())
	p := player(w)
	w.SetInput(object.Input{CursorX: p.X, CursorY: p.Y})
	// Ends up right on the player after moving 3 pixels.
	shot := object.NewMissile(p.X, p.Y-3, 0, 3, false)
	w.enemy = append(w.enemy, shot)

	w.Tick()

	if _, en, _ := w.Counts(); en != 0 {
		t.Errorf("enemy missile not compacted after hit")
	}
	if got := w.State().PlayerHealth; got != 99 {
		t.Errorf("player health = %d, want 99", got)
	}
}
