package component

import "github.com/jakecoffman/cp"

// Velocity is a direction (treated as normalized-or-zero) and a scalar speed
// in world units per second.
type Velocity struct {
	Direction cp.Vector
	Speed     float64
}

// IsZero reports whether this velocity produces no movement.
func (v *Velocity) IsZero() bool {
	return (v.Direction.X == 0 && v.Direction.Y == 0) || v.Speed == 0
}

// ChangeFor returns the position delta for dt seconds of travel.
func (v *Velocity) ChangeFor(dt float64) cp.Vector {
	if v.IsZero() {
		return cp.Vector{}
	}
	return v.Direction.Mult(v.Speed * dt)
}

var VelocityComponent = NewComponent[Velocity]()
