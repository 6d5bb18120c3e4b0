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

// NewPlayer builds the controlled entity at the origin. The player's body has
// no mass, so overlapping monsters are pushed away while the player holds its
// ground. img may be nil for headless runs.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, img *ebiten.Image) (ecs.Entity, error) {
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.PositionComponent, component.NewPosition(cp.Vector{})); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, &component.Velocity{Speed: spec.Speed}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	body := &component.Body{Circle: geom.Circle{Radius: spec.BodyRadius}}
	if err := ecs.Add(w, e, component.BodyComponent, body); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := attachSprite(w, e, img); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	return e, nil
}

func attachSprite(w *ecs.World, e ecs.Entity, img *ebiten.Image) error {
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{}); err != nil {
		return err
	}
	if img == nil {
		return nil
	}
	return ecs.Add(w, e, component.SpriteComponent, &component.Sprite{Image: img, Scale: 1})
}
