package window

import (
	"context"
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/tiro/internal/object"
)

const flashTicks = 4

var palette = map[object.Kind]color.RGBA{
	object.KindPlayer:      {80, 220, 255, 255},
	object.KindMissile:     {255, 220, 60, 255},
	object.KindNuclear:     {255, 255, 120, 255},
	object.KindLaser:       {120, 255, 255, 255},
	object.KindEnemy:       {230, 60, 60, 255},
	object.KindMeteor:      {150, 140, 130, 255},
	object.KindGuided:      {220, 80, 220, 255},
	object.KindStar:        {255, 240, 90, 255},
	object.KindRain:        {70, 110, 240, 255},
	object.KindMetralha:    {80, 200, 90, 255},
	object.KindTransport:   {210, 210, 210, 255},
	object.KindEncrenca:    {190, 70, 200, 255},
	object.KindDebris:      {255, 190, 60, 255},
	object.KindEngineFlame: {255, 150, 40, 255},
}

var (
	flashColor       = color.RGBA{255, 255, 255, 255}
	playerFlashColor = color.RGBA{255, 40, 40, 255}
	hostileShotColor = color.RGBA{255, 90, 60, 255}
)

type sprite struct {
	kind          object.Kind
	x, y          float64
	width, height float64
	friendly      bool
	alpha         float64
	flash         int
}

// Visuals draws entities as filled rectangles. It implements
// object.Visuals, object.Preloader and object.Shaker.
type Visuals struct {
	colors  map[object.Kind]color.RGBA
	next    object.Handle
	sprites map[object.Handle]*sprite
	rng     *rand.Rand

	shakeIntensity float64
	shakeTicks     int
}

var (
	_ object.Visuals   = (*Visuals)(nil)
	_ object.Preloader = (*Visuals)(nil)
	_ object.Shaker    = (*Visuals)(nil)
)

// NewVisuals creates an empty set of visuals.
func NewVisuals(rng *rand.Rand) *Visuals {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Visuals{
		sprites: make(map[object.Handle]*sprite),
		rng:     rng,
	}
}

// Preload resolves the colour of every kind. A kind without one is an
// error.
func (v *Visuals) Preload(ctx context.Context, kinds []object.Kind) error {
	colors := make(map[object.Kind]color.RGBA, len(kinds))
	for _, k := range kinds {
		if err := ctx.Err(); err != nil {
			return err
		}
		c, ok := palette[k]
		if !ok {
			return fmt.Errorf("no colour for kind %s", k)
		}
		colors[k] = c
	}
	v.colors = colors
	return nil
}

// Attach registers a sprite for e.
func (v *Visuals) Attach(e *object.Entity) (object.Handle, error) {
	if v.colors == nil {
		return 0, fmt.Errorf("attach %s before preload", e.Kind)
	}
	v.next++
	sp := &sprite{kind: e.Kind}
	sp.sync(e)
	v.sprites[v.next] = sp
	return v.next, nil
}

// Detach drops a sprite.
func (v *Visuals) Detach(h object.Handle) {
	delete(v.sprites, h)
}

// Sync copies the entity geometry into its sprite.
func (v *Visuals) Sync(e *object.Entity) {
	if sp, ok := v.sprites[e.Visual]; ok {
		sp.sync(e)
	}
}

func (sp *sprite) sync(e *object.Entity) {
	sp.x, sp.y = e.X, e.Y
	sp.width, sp.height = e.Width, e.Height
	sp.friendly = e.Friendly
	sp.alpha = e.Alpha
}

// Flash tints a sprite for a few frames.
func (v *Visuals) Flash(h object.Handle) {
	if sp, ok := v.sprites[h]; ok {
		sp.flash = flashTicks
	}
}

// Shake offsets the whole scene for ticks frames.
func (v *Visuals) Shake(intensity float64, ticks int) {
	if v.shakeTicks > 0 && intensity < v.shakeIntensity {
		return
	}
	v.shakeIntensity = intensity
	v.shakeTicks = ticks
}

// Len returns the number of attached sprites.
func (v *Visuals) Len() int {
	return len(v.sprites)
}

func (v *Visuals) color(sp *sprite) color.RGBA {
	switch {
	case sp.flash > 0 && sp.kind == object.KindPlayer:
		return playerFlashColor
	case sp.flash > 0:
		return flashColor
	case sp.kind == object.KindMissile && !sp.friendly:
		return hostileShotColor
	}
	c := v.colors[sp.kind]
	if sp.kind == object.KindEngineFlame {
		c.A = uint8(255 * min(max(sp.alpha, 0), 1))
	}
	return c
}

// offset advances the shake by one frame and returns this frame's jitter.
func (v *Visuals) offset() (float64, float64) {
	if v.shakeTicks <= 0 {
		return 0, 0
	}
	v.shakeTicks--
	return (v.rng.Float64()*2 - 1) * v.shakeIntensity, (v.rng.Float64()*2 - 1) * v.shakeIntensity
}

// Draw paints every sprite and advances flash and shake timers.
func (v *Visuals) Draw(screen *ebiten.Image) {
	dx, dy := v.offset()
	for _, sp := range v.sprites {
		x := sp.x - sp.width/2 + dx
		y := sp.y - sp.height/2 + dy
		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(max(sp.width, 1)), float32(max(sp.height, 1)), v.color(sp), false)
		if sp.flash > 0 {
			sp.flash--
		}
	}
}
