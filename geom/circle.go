package geom

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
)

// Circle is the collision shape shared by bodies and blasts.
type Circle struct {
	Radius float64
}

// Overlap tests two circles at the given centers. When they intersect it
// returns a push vector pointing from b toward a whose length is
// sqrt(radiusSum^2 - distSq), the amount needed to separate the pair.
// Coincident centers have no usable direction, so the push direction is
// random; the magnitude is still correct.
func Overlap(a Circle, ac cp.Vector, b Circle, bc cp.Vector) (bool, cp.Vector) {
	radiusSum := a.Radius + b.Radius
	diff := ac.Sub(bc)
	distSq := diff.LengthSq()

	overlap := radiusSum*radiusSum - distSq
	if overlap <= 0 {
		return false, cp.Vector{}
	}
	if distSq == 0 {
		return true, RandomUnit().Mult(math.Sqrt(overlap))
	}
	return true, diff.Normalize().Mult(math.Sqrt(overlap))
}

// RandomUnit returns a uniformly distributed unit vector.
func RandomUnit() cp.Vector {
	for {
		v := cp.Vector{X: rand.Float64()*2 - 1, Y: rand.Float64()*2 - 1}
		if sq := v.LengthSq(); sq > 0 && sq <= 1 {
			return v.Normalize()
		}
	}
}
