package object

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/tomz197/tiro/internal/config"
)

// Spawner allows entities to spawn new entities during update.
// Spawned entities join their collection after the current pass.
type Spawner interface {
	Spawn(e *Entity)
}

// Context provides everything an entity needs during update and
// destruction.
type Context struct {
	State   *GameState
	Spawner Spawner
	Rng     *rand.Rand
	Tuning  config.Tuning

	Visuals Visuals
	Sounds  Sounds
	Shaker  Shaker
	Logger  *log.Logger
}

func (c *Context) spawn(e *Entity) {
	c.Spawner.Spawn(e)
}

// Play plays a cue unless the game is muted. Failures are logged and
// otherwise ignored.
func (c *Context) Play(cue Cue) {
	if c.Sounds == nil || c.State.Muted {
		return
	}
	if err := c.Sounds.Play(cue); err != nil {
		c.logger().Warn("sound cue failed", "cue", cue, "err", err)
	}
}

func (c *Context) shake(intensity float64, ticks int) {
	if c.Shaker != nil {
		c.Shaker.Shake(intensity, ticks)
	}
}

func (c *Context) flash(e *Entity) {
	if c.Visuals != nil && e.Visual != 0 {
		c.Visuals.Flash(e.Visual)
	}
}

func (c *Context) detach(e *Entity) {
	if c.Visuals != nil && e.Visual != 0 {
		c.Visuals.Detach(e.Visual)
	}
	e.Visual = 0
}

func (c *Context) sync(e *Entity) {
	if c.Visuals != nil && e.Visual != 0 {
		c.Visuals.Sync(e)
	}
}

// Attach asks the visual collaborator for a handle. A failing attach
// leaves the entity without a visual.
func (c *Context) Attach(e *Entity) {
	if c.Visuals == nil {
		return
	}
	h, err := c.Visuals.Attach(e)
	if err != nil {
		c.logger().Warn("attach visual failed", "kind", e.Kind, "err", err)
		return
	}
	e.Visual = h
}

func (c *Context) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}
