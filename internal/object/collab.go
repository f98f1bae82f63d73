package object

import "context"

// Handle identifies a visual owned by the Visuals collaborator.
// The zero Handle means "no visual".
type Handle uint64

// Cue names a sound effect.
type Cue string

const (
	CueShoot        Cue = "shoot"
	CueLaser        Cue = "laser"
	CueSpecial      Cue = "special"
	CueExplosion    Cue = "explosion"
	CueExplosionBig Cue = "explosion_big"
	CueHit          Cue = "hit"
	CueImpact       Cue = "impact"
	CuePowerup      Cue = "powerup"
)

// AllCues lists every sound cue.
var AllCues = []Cue{
	CueShoot, CueLaser, CueSpecial, CueExplosion,
	CueExplosionBig, CueHit, CueImpact, CuePowerup,
}

// Visuals mirrors entities into whatever renders them.
type Visuals interface {
	Attach(e *Entity) (Handle, error)
	Detach(h Handle)
	Sync(e *Entity)
	Flash(h Handle)
}

// Preloader is optionally implemented by a Visuals that must resolve
// assets before the world starts.
type Preloader interface {
	Preload(ctx context.Context, kinds []Kind) error
}

// Sounds plays sound cues.
type Sounds interface {
	Play(cue Cue) error
}

// Shaker shakes the camera.
type Shaker interface {
	Shake(intensity float64, ticks int)
}

// HUD shows the player's vitals.
type HUD interface {
	Update(score int, health, charge float64)
}

// Input is the per-tick snapshot of the pointing device in logical
// screen coordinates.
type Input struct {
	CursorX, CursorY float64
	Left, Right      bool
}

// NopVisuals renders nothing.
type NopVisuals struct{}

func (NopVisuals) Attach(*Entity) (Handle, error) { return 0, nil }
func (NopVisuals) Detach(Handle)                  {}
func (NopVisuals) Sync(*Entity)                   {}
func (NopVisuals) Flash(Handle)                   {}

// NopSounds is silent.
type NopSounds struct{}

func (NopSounds) Play(Cue) error { return nil }

// NopShaker ignores shakes.
type NopShaker struct{}

func (NopShaker) Shake(float64, int) {}

// NopHUD shows nothing.
type NopHUD struct{}

func (NopHUD) Update(int, float64, float64) {}
