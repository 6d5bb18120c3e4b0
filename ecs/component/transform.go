package component

// Transform is the screen-space output of the view-offset stage: the entity's
// world position rebased so the player sits at the screen center.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
