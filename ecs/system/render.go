package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// RenderSystem draws sprites centered on their screen transform. Draw order
// is blasts, then monsters, then the player, so the player always reads on
// top of the swarm.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (s *RenderSystem) Update(w *ecs.World, dt float64) {}

func (s *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	s.drawLayer(w, screen, component.BlastComponent.ID())
	s.drawLayer(w, screen, component.MonsterTagComponent.ID())
	s.drawLayer(w, screen, component.PlayerTagComponent.ID())
}

func (s *RenderSystem) drawLayer(w *ecs.World, screen *ebiten.Image, layer component.ID) {
	for _, e := range w.Query(layer, component.SpriteComponent.ID(), component.TransformComponent.ID()) {
		sprite, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || sprite.Image == nil {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		bounds := sprite.Image.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sprite.Scale, sprite.Scale)
		op.GeoM.Translate(
			t.X-float64(bounds.Dx())*sprite.Scale/2,
			t.Y-float64(bounds.Dy())*sprite.Scale/2,
		)
		screen.DrawImage(sprite.Image, op)
	}
}
