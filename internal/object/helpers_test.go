package object

import (
	"math/rand"

	"github.com/tomz197/tiro/internal/config"
)

// recorder is a fake Spawner, Visuals, Sounds and Shaker in one.
type recorder struct {
	spawned  []*Entity
	cues     []Cue
	shakes   int
	flashes  []Handle
	detached []Handle
	synced   int
	next     Handle
}

func (r *recorder) Spawn(e *Entity) { r.spawned = append(r.spawned, e) }

func (r *recorder) Play(c Cue) error {
	r.cues = append(r.cues, c)
	return nil
}

func (r *recorder) Shake(float64, int) { r.shakes++ }

func (r *recorder) Attach(*Entity) (Handle, error) {
	r.next++
	return r.next, nil
}

func (r *recorder) Detach(h Handle) { r.detached = append(r.detached, h) }
func (r *recorder) Sync(*Entity)    { r.synced++ }
func (r *recorder) Flash(h Handle)  { r.flashes = append(r.flashes, h) }

func (r *recorder) count(kind Kind) int {
	n := 0
	for _, e := range r.spawned {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) played(c Cue) bool {
	for _, got := range r.cues {
		if got == c {
			return true
		}
	}
	return false
}

func (r *recorder) reset() {
	r.spawned = nil
	r.cues = nil
}

func newTestContext(seed int64) (*Context, *recorder) {
	rec := &recorder{}
	tuning := config.DefaultTuning()
	tuning.EngineFlames = false
	ctx := &Context{
		State:   &GameState{},
		Spawner: rec,
		Rng:     rand.New(rand.NewSource(seed)),
		Tuning:  tuning,
		Visuals: rec,
		Sounds:  rec,
		Shaker:  rec,
	}
	return ctx, rec
}
