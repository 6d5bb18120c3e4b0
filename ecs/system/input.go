package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// IntentSource reports the four directional pressed states for the current
// tick. The game feeds it from the keyboard; tests and the headless runner
// inject their own.
type IntentSource interface {
	Intent() (up, down, left, right bool)
}

// KeyboardIntent polls ebiten for arrow keys and WASD.
type KeyboardIntent struct{}

func (KeyboardIntent) Intent() (up, down, left, right bool) {
	up = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	down = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	return up, down, left, right
}

// InputSystem turns the intent source into the player's velocity direction.
// Each axis resolves independently with a fixed tie-break (right wins over
// left, up wins over down), then the result is normalized or zero. The
// direction carries no memory of previous ticks.
type InputSystem struct {
	Source IntentSource
}

func NewInputSystem(source IntentSource) *InputSystem {
	return &InputSystem{Source: source}
}

func (s *InputSystem) Update(w *ecs.World, dt float64) {
	player, ok := w.First(component.PlayerTagComponent.ID())
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, player, component.VelocityComponent)
	if !ok {
		return
	}

	up, down, left, right := s.Source.Intent()

	// Screen-space axes: y grows downward.
	var dir cp.Vector
	if right {
		dir.X = 1
	} else if left {
		dir.X = -1
	}
	if up {
		dir.Y = -1
	} else if down {
		dir.Y = 1
	}

	if dir.X == 0 && dir.Y == 0 {
		vel.Direction = cp.Vector{}
		return
	}
	vel.Direction = dir.Normalize()
}
