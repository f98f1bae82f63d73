package loop

import (
	"github.com/tomz197/tiro/internal/object"
	"github.com/tomz197/tiro/internal/physics"
)

// Collides reports whether two entities' hit boxes overlap.
func Collides(a, b *object.Entity) bool {
	return physics.Collides(a.Box(), b.Box())
}

// DistributeHits applies mutual damage to every overlapping pair of live
// entities from the two lists. Each side is hit with the energy the other
// had before the exchange: a is damaged first, then b with a's original
// energy.
func DistributeHits(list1, list2 []*object.Entity, ctx *object.Context) {
	for _, a := range list1 {
		for _, b := range list2 {
			if !a.Alive {
				break
			}
			if !b.Alive || !Collides(a, b) {
				continue
			}
			ea := a.Energy
			a.TakeDamage(ctx, b.Energy)
			b.TakeDamage(ctx, ea)
			ctx.Play(object.CueImpact)
		}
	}
}
