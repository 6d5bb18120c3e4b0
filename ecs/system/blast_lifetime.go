package system

import (
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// BlastLifetimeSystem advances blast lifetimes and destroys expired blasts.
type BlastLifetimeSystem struct{}

func NewBlastLifetimeSystem() *BlastLifetimeSystem {
	return &BlastLifetimeSystem{}
}

func (s *BlastLifetimeSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.BlastComponent, func(e ecs.Entity, blast *component.Blast) {
		blast.Lifetime.Tick(dt)
		if blast.Lifetime.JustFinished() {
			w.DestroyEntity(e)
		}
	})
}
