package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/geom"
	"github.com/milk9111/swarm/prefabs"
)

// NewBlastAt builds an area effect at the given position. Blasts carry no
// body or velocity; they sit still, kill overlapping monsters, and expire
// when their one-shot lifetime finishes.
func NewBlastAt(w *ecs.World, spec prefabs.BlastSpec, pos cp.Vector, img *ebiten.Image) (ecs.Entity, error) {
	e := w.CreateEntity()

	blast := &component.Blast{
		Lifetime: common.NewTimer(spec.Lifetime),
		Circle:   geom.Circle{Radius: spec.Radius},
	}
	if err := ecs.Add(w, e, component.BlastComponent, blast); err != nil {
		return 0, fmt.Errorf("blast: %w", err)
	}
	if err := ecs.Add(w, e, component.PositionComponent, component.NewPosition(pos)); err != nil {
		return 0, fmt.Errorf("blast: %w", err)
	}
	if err := attachSprite(w, e, img); err != nil {
		return 0, fmt.Errorf("blast: %w", err)
	}

	return e, nil
}
