package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// ViewOffsetSystem projects world positions into screen space with the
// camera locked on the player: the player draws at screen center and
// everything else draws relative to it. With no player alive the last
// camera position holds.
type ViewOffsetSystem struct {
	camera cp.Vector
}

func NewViewOffsetSystem() *ViewOffsetSystem {
	return &ViewOffsetSystem{}
}

func (s *ViewOffsetSystem) Update(w *ecs.World, dt float64) {
	if player, ok := w.First(component.PlayerTagComponent.ID()); ok {
		if pos, ok := ecs.Get(w, player, component.PositionComponent); ok {
			s.camera = pos.Current
		}
	}

	ecs.ForEach2(w, component.PositionComponent, component.TransformComponent,
		func(e ecs.Entity, pos *component.Position, t *component.Transform) {
			t.X = pos.Current.X - s.camera.X + common.BaseWidth/2
			t.Y = pos.Current.Y - s.camera.Y + common.BaseHeight/2
		})
}
