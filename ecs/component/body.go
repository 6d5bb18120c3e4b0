package component

import "github.com/milk9111/swarm/geom"

// Body is the physical-collision facet of an entity. Mass <= 0 means the body
// is immovable: it pushes others at full strength and never moves itself.
// Per-tick resolution scratch (pending displacement, firm flag) lives in the
// spread pass, not here.
type Body struct {
	Circle geom.Circle
	Mass   float64
}

// Movable reports whether the body has finite mass.
func (b *Body) Movable() bool {
	return b.Mass > 0
}

var BodyComponent = NewComponent[Body]()
