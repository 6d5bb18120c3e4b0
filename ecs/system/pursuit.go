package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// PursuitSystem points every monster straight at the player. Directions are
// recomputed from scratch each tick; there is no steering inertia. Runs after
// movement so pursuit sees this tick's player position.
type PursuitSystem struct{}

func NewPursuitSystem() *PursuitSystem {
	return &PursuitSystem{}
}

func (s *PursuitSystem) Update(w *ecs.World, dt float64) {
	player, ok := w.First(component.PlayerTagComponent.ID())
	if !ok {
		return
	}
	playerPos, ok := ecs.Get(w, player, component.PositionComponent)
	if !ok {
		return
	}
	target := playerPos.Current

	ecs.ForEach3(w, component.MonsterTagComponent, component.PositionComponent, component.VelocityComponent, func(e ecs.Entity, _ *component.MonsterTag, pos *component.Position, vel *component.Velocity) {
		diff := target.Sub(pos.Current)
		if diff.X == 0 && diff.Y == 0 {
			vel.Direction = cp.Vector{}
			return
		}
		vel.Direction = diff.Normalize()
	})
}
