package draw

import (
	"math/rand"

	"github.com/tomz197/tiro/internal/object"
)

// flashTicks is how many frames a hit flash lasts.
const flashTicks = 4

type sprite struct {
	kind     object.Kind
	x, y     float64
	w, h     float64
	friendly bool
	alpha    float64
	flash    int
}

// Scene mirrors attached entities onto a Canvas. It implements
// object.Visuals and object.Shaker. A Scene belongs to one world and is not
// safe for concurrent use.
type Scene struct {
	next    object.Handle
	sprites map[object.Handle]*sprite
	rng     *rand.Rand

	shakeIntensity float64
	shakeTicks     int
}

var (
	_ object.Visuals = (*Scene)(nil)
	_ object.Shaker  = (*Scene)(nil)
)

// NewScene creates an empty scene. rng drives the shake jitter.
func NewScene(rng *rand.Rand) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Scene{
		sprites: make(map[object.Handle]*sprite),
		rng:     rng,
	}
}

// Attach registers a sprite for e.
func (s *Scene) Attach(e *object.Entity) (object.Handle, error) {
	s.next++
	sp := &sprite{kind: e.Kind}
	copySprite(sp, e)
	s.sprites[s.next] = sp
	return s.next, nil
}

// Detach forgets a sprite. Unknown handles are ignored.
func (s *Scene) Detach(h object.Handle) {
	delete(s.sprites, h)
}

// Sync copies the entity's geometry into its sprite.
func (s *Scene) Sync(e *object.Entity) {
	if sp, ok := s.sprites[e.Visual]; ok {
		copySprite(sp, e)
	}
}

func copySprite(sp *sprite, e *object.Entity) {
	sp.x, sp.y = e.X, e.Y
	sp.w, sp.h = e.Width, e.Height
	sp.friendly = e.Friendly
	sp.alpha = e.Alpha
}

// Flash highlights a sprite for a few frames.
func (s *Scene) Flash(h object.Handle) {
	if sp, ok := s.sprites[h]; ok {
		sp.flash = flashTicks
	}
}

// Shake jitters the whole scene for the given number of frames. A weaker
// shake does not cut a stronger one short.
func (s *Scene) Shake(intensity float64, ticks int) {
	if s.shakeTicks > 0 && intensity < s.shakeIntensity {
		return
	}
	s.shakeIntensity = intensity
	s.shakeTicks = ticks
}

// Len returns the number of attached sprites.
func (s *Scene) Len() int {
	return len(s.sprites)
}

// Reset drops every sprite and any running shake.
func (s *Scene) Reset() {
	clear(s.sprites)
	s.shakeTicks = 0
	s.shakeIntensity = 0
}

// Draw paints every sprite onto c and advances flash and shake timers.
// Particles go first so ships are drawn over them.
func (s *Scene) Draw(c *Canvas) {
	var dx, dy float64
	if s.shakeTicks > 0 {
		dx = (s.rng.Float64()*2 - 1) * s.shakeIntensity
		dy = (s.rng.Float64()*2 - 1) * s.shakeIntensity
		s.shakeTicks--
	}

	for _, particles := range [2]bool{true, false} {
		for _, sp := range s.sprites {
			if isParticle(sp.kind) != particles {
				continue
			}
			drawShape(c, sp, sp.x+dx, sp.y+dy, spriteColor(sp))
			if sp.flash > 0 {
				sp.flash--
			}
		}
	}
}

func isParticle(k object.Kind) bool {
	return k == object.KindDebris || k == object.KindEngineFlame
}
