// Package loop owns a game world: its entity collections, the tick that
// advances them, collision resolution and the spawn director.
package loop

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/object"
)

// ErrAssetLoad is returned by Start when the visuals could not be preloaded.
var ErrAssetLoad = errors.New("asset load failed")

// Options configures a World. Nil collaborators fall back to no-ops.
type Options struct {
	Tuning  config.Tuning
	Rng     *rand.Rand
	Visuals object.Visuals
	Sounds  object.Sounds
	Shaker  object.Shaker
	HUD     object.HUD
	Logger  *log.Logger
}

// World is one independent game. It is not safe for concurrent use; the
// host goroutine that ticks it owns it.
type World struct {
	opts  Options
	phase Phase
	state *object.GameState
	ctx   object.Context

	friendly []*object.Entity
	enemy    []*object.Entity
	debris   []*object.Entity
	toSpawn  []*object.Entity // Entities to add after the current pass
}

// NewWorld creates a world in the Loading phase.
func NewWorld(opts Options) *World {
	if opts.Tuning == (config.Tuning{}) {
		opts.Tuning = config.DefaultTuning()
	}
	if opts.Rng == nil {
		opts.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Visuals == nil {
		opts.Visuals = object.NopVisuals{}
	}
	if opts.Sounds == nil {
		opts.Sounds = object.NopSounds{}
	}
	if opts.Shaker == nil {
		opts.Shaker = object.NopShaker{}
	}
	if opts.HUD == nil {
		opts.HUD = object.NopHUD{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	w := &World{opts: opts}
	w.reset(false)
	return w
}

func (w *World) reset(muted bool) {
	w.state = &object.GameState{Muted: muted}
	w.friendly = nil
	w.enemy = nil
	w.debris = nil
	w.toSpawn = nil
	w.ctx = object.Context{
		State:   w.state,
		Spawner: w,
		Rng:     w.opts.Rng,
		Tuning:  w.opts.Tuning,
		Visuals: w.opts.Visuals,
		Sounds:  w.opts.Sounds,
		Shaker:  w.opts.Shaker,
		Logger:  w.opts.Logger,
	}
	w.phase = PhaseLoading
}

// Start preloads the visuals, spawns the player and starts the game.
func (w *World) Start(ctx context.Context) error {
	if w.phase != PhaseLoading {
		return nil
	}
	if p, ok := w.opts.Visuals.(object.Preloader); ok {
		if err := p.Preload(ctx, object.AllKinds); err != nil {
			w.opts.Logger.Error("preload failed", "err", err)
			return fmt.Errorf("%w: %w", ErrAssetLoad, err)
		}
	}

	player := object.NewPlayer(w.state)
	w.ctx.Attach(player)
	w.friendly = append(w.friendly, player)
	w.state.LastEnemySpawn = w.state.Frame

	w.setPhase(PhaseRunning)
	return nil
}

// Restart throws the current game away and starts a new one. The mute
// toggle survives the restart.
func (w *World) Restart(ctx context.Context) error {
	for _, list := range [][]*object.Entity{w.friendly, w.enemy, w.debris, w.toSpawn} {
		for _, e := range list {
			if e.Visual != 0 {
				w.opts.Visuals.Detach(e.Visual)
			}
			object.Release(e)
		}
	}
	w.reset(w.state.Muted)
	w.opts.Logger.Info("restarting")
	return w.Start(ctx)
}

// Spawn queues an entity to join its collection after the current pass.
// Implements object.Spawner.
func (w *World) Spawn(e *object.Entity) {
	w.ctx.Attach(e)
	w.toSpawn = append(w.toSpawn, e)
}

// flushSpawned moves queued entities into their collections.
func (w *World) flushSpawned() {
	for _, e := range w.toSpawn {
		switch e.Side() {
		case object.SideFriendly:
			w.friendly = append(w.friendly, e)
		case object.SideEnemy:
			w.enemy = append(w.enemy, e)
		default:
			w.debris = append(w.debris, e)
		}
	}
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// compact drops dead entities, keeping the order of the living ones.
func compact(list []*object.Entity) []*object.Entity {
	n := 0
	for _, e := range list {
		if e.Alive {
			list[n] = e
			n++
			continue
		}
		object.Release(e)
	}
	clear(list[n:])
	return list[:n]
}

func (w *World) setPhase(p Phase) {
	if w.phase == p {
		return
	}
	w.opts.Logger.Info("phase change", "from", w.phase, "to", p, "frame", w.state.Frame, "score", w.state.Score)
	w.phase = p
}

// Phase returns the current phase.
func (w *World) Phase() Phase {
	return w.phase
}

// State returns a copy of the game state.
func (w *World) State() object.GameState {
	return *w.state
}

// SetInput records the pointer snapshot the player follows next tick.
func (w *World) SetInput(in object.Input) {
	w.state.Cursor = in
}

// ToggleMute flips the mute flag and reports the new value.
func (w *World) ToggleMute() bool {
	w.state.Muted = !w.state.Muted
	return w.state.Muted
}

// TogglePause switches between Running and Paused. Other phases ignore it.
func (w *World) TogglePause() {
	switch w.phase {
	case PhaseRunning:
		w.setPhase(PhasePaused)
	case PhasePaused:
		w.setPhase(PhaseRunning)
	}
}

// Counts returns the collection sizes.
func (w *World) Counts() (friendly, enemy, debris int) {
	return len(w.friendly), len(w.enemy), len(w.debris)
}

// Each calls fn for every live entity, friendly first, then enemy, then
// debris.
func (w *World) Each(fn func(e *object.Entity)) {
	for _, list := range [][]*object.Entity{w.friendly, w.enemy, w.debris} {
		for _, e := range list {
			if e.Alive {
				fn(e)
			}
		}
	}
}
