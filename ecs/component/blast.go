package component

import (
	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/geom"
)

// Blast is a short-lived area effect that destroys overlapping monsters and
// expires when its lifetime runs out. It doubles as the effect role marker.
type Blast struct {
	Lifetime *common.Timer
	Circle   geom.Circle
}

var BlastComponent = NewComponent[Blast]()
