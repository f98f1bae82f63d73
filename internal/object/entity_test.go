package object

import (
	"testing"

	"github.com/tomz197/tiro/internal/config"
)

func TestTakeDamageSurvives(t *testing.T) {
	ctx, rec := newTestContext(1)
	e := NewEnemy(ctx)
	ctx.Attach(e)

	if destroyed := e.TakeDamage(ctx, 1); destroyed {
		t.Fatal("enemy destroyed by a single point of damage")
	}
	if e.Energy != 4 {
		t.Errorf("energy = %d, want 4", e.Energy)
	}
	if len(rec.flashes) != 1 || rec.flashes[0] != e.Visual {
		t.Errorf("expected one flash of handle %d, got %v", e.Visual, rec.flashes)
	}
	if ctx.State.EnemyPopulation != 1 {
		t.Errorf("population = %d, want 1", ctx.State.EnemyPopulation)
	}
}

func TestTakeDamageDestroys(t *testing.T) {
	ctx, rec := newTestContext(1)
	e := NewEnemy(ctx)
	e.X, e.Y = 320, 200
	ctx.Attach(e)
	h := e.Visual

	if destroyed := e.TakeDamage(ctx, 5); !destroyed {
		t.Fatal("expected enemy destroyed")
	}
	if e.Alive {
		t.Error("enemy still alive")
	}
	if ctx.State.EnemyPopulation != 0 {
		t.Errorf("population = %d, want 0", ctx.State.EnemyPopulation)
	}
	if ctx.State.Score != config.PointsEnemy {
		t.Errorf("score = %d, want %d", ctx.State.Score, config.PointsEnemy)
	}
	if !rec.played(CueExplosion) {
		t.Error("explosion cue not played")
	}
	if got := rec.count(KindDebris); got != 20 {
		t.Errorf("debris = %d, want 20", got)
	}
	if ctx.State.DebrisCount != 20 {
		t.Errorf("debris count = %d, want 20", ctx.State.DebrisCount)
	}
	if len(rec.detached) != 1 || rec.detached[0] != h {
		t.Errorf("expected handle %d detached, got %v", h, rec.detached)
	}
	if e.Visual != 0 {
		t.Error("visual handle kept after destroy")
	}
}

func TestDamageToDeadEntityIgnored(t *testing.T) {
	ctx, _ := newTestContext(1)
	e := NewEnemy(ctx)
	e.X, e.Y = 320, 200
	e.TakeDamage(ctx, 10)
	score := ctx.State.Score

	if e.TakeDamage(ctx, 10) {
		t.Error("dead entity reported destroyed twice")
	}
	if ctx.State.Score != score {
		t.Errorf("score changed from %d to %d", score, ctx.State.Score)
	}
	if ctx.State.EnemyPopulation != 0 {
		t.Errorf("population = %d, want 0", ctx.State.EnemyPopulation)
	}
}

func TestDestroyIdempotent(t *testing.T) {
	ctx, rec := newTestContext(1)
	e := NewMetralhaAt(320, 200)

	e.Destroy(ctx)
	e.Destroy(ctx)

	if got := rec.count(KindDebris); got != config.MaxDebrisPerEvent {
		t.Errorf("debris = %d, want %d", got, config.MaxDebrisPerEvent)
	}
	if ctx.State.DebrisCount != config.MaxDebrisPerEvent {
		t.Errorf("debris count = %d, want %d", ctx.State.DebrisCount, config.MaxDebrisPerEvent)
	}
}

func TestDebrisCaps(t *testing.T) {
	tests := []struct {
		name      string
		release   int
		existing  int
		wantSpawn int
	}{
		{"below caps", 20, 0, 20},
		{"per event cap", 500, 0, 80},
		{"global cap", 500, 590, 10},
		{"global cap reached", 500, 600, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext(1)
			ctx.State.DebrisCount = tt.existing
			e := newEntity(KindStar, 320, 240, config.SizeStar, 1, tt.release)

			e.Destroy(ctx)

			if got := rec.count(KindDebris); got != tt.wantSpawn {
				t.Errorf("debris = %d, want %d", got, tt.wantSpawn)
			}
			if ctx.State.DebrisCount != tt.existing+tt.wantSpawn {
				t.Errorf("debris count = %d, want %d", ctx.State.DebrisCount, tt.existing+tt.wantSpawn)
			}
			if ctx.State.DebrisCount > config.MaxDebrisTotal {
				t.Errorf("debris count %d above global cap", ctx.State.DebrisCount)
			}
		})
	}
}

func TestOffScreenDeathEmitsNoDebris(t *testing.T) {
	ctx, rec := newTestContext(1)
	e := NewMissile(2, 240, 0, 0, true)

	e.Destroy(ctx)

	if got := rec.count(KindDebris); got != 0 {
		t.Errorf("off screen missile emitted %d debris", got)
	}
}

func TestDebrisDestroyDecrementsCount(t *testing.T) {
	ctx, rec := newTestContext(1)
	ctx.State.DebrisCount = 1
	a := NewDebris(ctx.Rng, 100, 100)
	b := NewDebris(ctx.Rng, 100, 100)

	a.Destroy(ctx)
	b.Destroy(ctx)
	b.Destroy(ctx)

	if ctx.State.DebrisCount != 0 {
		t.Errorf("debris count = %d, want 0", ctx.State.DebrisCount)
	}
	if len(rec.spawned) != 0 {
		t.Errorf("debris spawned %d entities on death", len(rec.spawned))
	}
}

func TestKeepOnScreen(t *testing.T) {
	e := newEntity(KindPlayer, -50, 900, config.SizePlayer, 1, 0)
	e.KeepOnScreen()
	if e.X != 8 || e.Y != 472 {
		t.Errorf("clamped to (%v, %v), want (8, 472)", e.X, e.Y)
	}
}

func TestSideRouting(t *testing.T) {
	tests := []struct {
		e    *Entity
		want Side
	}{
		{NewMissile(0, 0, 0, -10, true), SideFriendly},
		{NewMissile(0, 0, 0, 3, false), SideEnemy},
		{NewNuclear(0, 0, 0, -5, 0), SideFriendly},
		{NewLaser(&GameState{}), SideFriendly},
		{NewGuided(0, 0), SideEnemy},
		{NewMetralhaAt(0, 0), SideEnemy},
		{NewRainAt(0, 0), SideEnemy},
		{newEntity(KindEngineFlame, 0, 0, config.SizeEngineFlame, 1, 0), SideDebris},
	}
	for _, tt := range tests {
		if got := tt.e.Side(); got != tt.want {
			t.Errorf("%s side = %d, want %d", tt.e.Kind, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	for _, k := range AllKinds {
		if k.String() == "unknown" {
			t.Errorf("kind %d has no name", k)
		}
	}
	if Kind(200).String() != "unknown" {
		t.Error("out of range kind should be unknown")
	}
}

func TestReleaseOnlyPooled(t *testing.T) {
	ctx, _ := newTestContext(1)
	m := NewMissile(10, 10, 0, 0, true)
	Release(m)
	if m.Kind != KindMissile || !m.Alive {
		t.Error("Release reset a non pooled entity")
	}

	d := NewDebris(ctx.Rng, 10, 10)
	Release(d)
	if d.Kind != KindPlayer || d.Alive {
		t.Error("Release did not reset a pooled entity")
	}
}
