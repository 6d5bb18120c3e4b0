package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/geom"
	"github.com/milk9111/swarm/prefabs"
)

// NewMonsterAt builds a pursuing adversary at the given position. Its
// direction starts zero; the pursuit system aims it on the next tick.
func NewMonsterAt(w *ecs.World, spec prefabs.MonsterSpec, pos cp.Vector, img *ebiten.Image) (ecs.Entity, error) {
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.MonsterTagComponent, &component.MonsterTag{}); err != nil {
		return 0, fmt.Errorf("monster: %w", err)
	}
	if err := ecs.Add(w, e, component.PositionComponent, component.NewPosition(pos)); err != nil {
		return 0, fmt.Errorf("monster: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, &component.Velocity{Speed: spec.Speed}); err != nil {
		return 0, fmt.Errorf("monster: %w", err)
	}
	body := &component.Body{Circle: geom.Circle{Radius: spec.BodyRadius}, Mass: spec.Mass}
	if err := ecs.Add(w, e, component.BodyComponent, body); err != nil {
		return 0, fmt.Errorf("monster: %w", err)
	}
	if err := attachSprite(w, e, img); err != nil {
		return 0, fmt.Errorf("monster: %w", err)
	}

	return e, nil
}
