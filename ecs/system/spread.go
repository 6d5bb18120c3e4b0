package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/geom"
	"github.com/milk9111/swarm/prefabs"
)

// SpreadSystem resolves physical overlap between bodies. Every unordered pair
// is visited exactly once with an index-based double loop over a single arena
// snapshot, so both sides of a pair can be mutated without aliasing trouble.
//
// Resolution rules, in order:
//   - both immovable: nothing to do
//   - one side immovable or already firm this tick: the other side takes the
//     full push and becomes firm itself, propagating the pin transitively
//   - both movable: the push splits in inverse proportion to mass and
//     accumulates, since a body can appear in several overlapping pairs
//
// Accumulated displacement is applied damped, spread over several ticks, and
// the scratch buffers die with the pass.
type SpreadSystem struct {
	Tuning *prefabs.Tuning
}

func NewSpreadSystem(tuning *prefabs.Tuning) *SpreadSystem {
	return &SpreadSystem{Tuning: tuning}
}

func (s *SpreadSystem) Update(w *ecs.World, dt float64) {
	type bodyRef struct {
		body *component.Body
		pos  *component.Position
	}

	refs := make([]bodyRef, 0, 64)
	ecs.ForEach2(w, component.BodyComponent, component.PositionComponent, func(e ecs.Entity, body *component.Body, pos *component.Position) {
		refs = append(refs, bodyRef{body: body, pos: pos})
	})

	n := len(refs)
	if n < 2 {
		return
	}

	displacement := make([]cp.Vector, n)
	firm := make([]bool, n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := refs[i], refs[j]

			collided, push := geom.Overlap(a.body.Circle, a.pos.Current, b.body.Circle, b.pos.Current)
			if !collided {
				continue
			}

			if !a.body.Movable() && !b.body.Movable() {
				continue
			}

			if !a.body.Movable() || firm[i] {
				displacement[j] = push.Neg()
				firm[j] = true
				continue
			}

			if !b.body.Movable() || firm[j] {
				displacement[i] = push
				firm[i] = true
				continue
			}

			total := a.body.Mass + b.body.Mass
			displacement[i] = displacement[i].Add(push.Mult(b.body.Mass / total))
			displacement[j] = displacement[j].Sub(push.Mult(a.body.Mass / total))
		}
	}

	factor := s.Tuning.Physics.DisplacementFactor
	for i := 0; i < n; i++ {
		if displacement[i].X == 0 && displacement[i].Y == 0 {
			continue
		}
		refs[i].pos.ApplyAdd(displacement[i].Mult(factor))
	}
}
