package loop

import (
	"context"
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/tiro/internal/config"
	"github.com/tomz197/tiro/internal/object"
)

type recorder struct {
	cues      []object.Cue
	hudCalls  int
	lastScore int
	attached  int
	detached  int
}

func (r *recorder) Play(c object.Cue) error {
	r.cues = append(r.cues, c)
	return nil
}

func (r *recorder) Update(score int, _, _ float64) {
	r.hudCalls++
	r.lastScore = score
}

func (r *recorder) Attach(*object.Entity) (object.Handle, error) {
	r.attached++
	return object.Handle(r.attached), nil
}

func (r *recorder) Detach(object.Handle) { r.detached++ }
func (r *recorder) Sync(*object.Entity)  {}
func (r *recorder) Flash(object.Handle)  {}

func (r *recorder) count(c object.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

// quietTuning disables every random spawn so tests control the population.
func quietTuning() config.Tuning {
	t := config.DefaultTuning()
	t.EngineFlames = false
	d := &t.Director
	d.Freighter.Probability = 0
	d.Heavy.Probability = 0
	d.Meteors.Probability = 0
	d.Star.Probability = 0
	d.Squadron.Probability = 0
	d.FallbackTicks = 0
	return t
}

func newTestWorld(t *testing.T, tuning config.Tuning) (*World, *recorder) {
	t.Helper()
	rec := &recorder{}
	w := NewWorld(Options{
		Tuning:  tuning,
		Rng:     rand.New(rand.NewSource(1)),
		Visuals: rec,
		Sounds:  rec,
		HUD:     rec,
		Logger:  log.New(io.Discard),
	})
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return w, rec
}

func countKind(list []*object.Entity, kind object.Kind) int {
	n := 0
	for _, e := range list {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func player(w *World) *object.Entity {
	for _, e := range w.friendly {
		if e.Kind == object.KindPlayer {
			return e
		}
	}
	return nil
}
