package system

import (
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// MovementSystem integrates velocity into position for every moving entity.
// Entities with zero velocity are left untouched, stale Change and all; the
// collision passes overwrite Change before reading it.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach2(w, component.VelocityComponent, component.PositionComponent, func(e ecs.Entity, vel *component.Velocity, pos *component.Position) {
		if vel.IsZero() {
			return
		}
		pos.Apply(vel.ChangeFor(dt))
	})
}
