package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is the renderable facet of an entity. The image is drawn centered on
// the entity's screen transform. Image may be nil in headless runs; the
// render system skips nil images.
type Sprite struct {
	Image *ebiten.Image
	Scale float64
}

var SpriteComponent = NewComponent[Sprite]()
