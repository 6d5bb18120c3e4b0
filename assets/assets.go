// Package assets builds the game's sprites at startup. Everything on screen
// is a flat disc, so rather than shipping image files the library rasterizes
// each disc once from the tuning radii.
package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/swarm/prefabs"
)

var (
	playerColor  = color.RGBA{R: 0x5c, G: 0xd6, B: 0x7a, A: 0xff}
	monsterColor = color.RGBA{R: 0xd6, G: 0x4a, B: 0x4a, A: 0xff}
	blastColor   = color.RGBA{R: 0xf0, G: 0xc8, B: 0x3c, A: 0x90}
)

// Library holds the prebuilt sprite images keyed by name.
type Library struct {
	images map[string]*ebiten.Image
}

// NewLibrary rasterizes the player, monster, and blast discs from the
// current tuning. Requires a running ebiten context.
func NewLibrary(tuning *prefabs.Tuning) *Library {
	return &Library{images: map[string]*ebiten.Image{
		"player":  disc(tuning.Player.BodyRadius, playerColor),
		"monster": disc(tuning.Monster.BodyRadius, monsterColor),
		"blast":   disc(tuning.Blast.Radius, blastColor),
	}}
}

// Sprite returns the named image, or nil if the library doesn't have it.
func (l *Library) Sprite(name string) *ebiten.Image {
	return l.images[name]
}

func disc(radius float64, clr color.Color) *ebiten.Image {
	size := int(radius*2) + 2
	img := ebiten.NewImage(size, size)
	vector.DrawFilledCircle(img, float32(size)/2, float32(size)/2, float32(radius), clr, true)
	return img
}
