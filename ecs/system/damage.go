package system

import (
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/geom"
)

// DamageSystem detects lethal contact between the player and any monster and
// requests a new game. Only the first hit matters, so the scan short-circuits
// after emitting a single event.
type DamageSystem struct{}

func NewDamageSystem() *DamageSystem {
	return &DamageSystem{}
}

func (s *DamageSystem) Update(w *ecs.World, dt float64) {
	players := w.Query(component.PlayerTagComponent.ID(), component.BodyComponent.ID(), component.PositionComponent.ID())
	monsters := w.Query(component.MonsterTagComponent.ID(), component.BodyComponent.ID(), component.PositionComponent.ID())

	for _, p := range players {
		pBody, _ := ecs.Get(w, p, component.BodyComponent)
		pPos, _ := ecs.Get(w, p, component.PositionComponent)
		if pBody == nil || pPos == nil {
			continue
		}
		for _, m := range monsters {
			mBody, _ := ecs.Get(w, m, component.BodyComponent)
			mPos, _ := ecs.Get(w, m, component.PositionComponent)
			if mBody == nil || mPos == nil {
				continue
			}
			if collided, _ := geom.Overlap(pBody.Circle, pPos.Current, mBody.Circle, mPos.Current); collided {
				w.Events().Push(ecs.Event{Type: EventNewGame})
				return
			}
		}
	}
}
