package component

import "github.com/jakecoffman/cp"

// Position is an entity's location on the world plane. Change holds only the
// delta applied by the most recent Apply or ApplyAdd, not cumulative history;
// the collision passes read it to stack multiple pushes within one tick.
type Position struct {
	Current cp.Vector
	Change  cp.Vector
}

// NewPosition returns a position at the given point with no recorded change.
func NewPosition(current cp.Vector) *Position {
	return &Position{Current: current}
}

// Apply moves the position and overwrites the recorded change.
func (p *Position) Apply(change cp.Vector) {
	p.Current = p.Current.Add(change)
	p.Change = change
}

// ApplyAdd moves the position and accumulates into the recorded change, for
// passes that run after something else already moved the entity this tick.
func (p *Position) ApplyAdd(change cp.Vector) {
	p.Current = p.Current.Add(change)
	p.Change = p.Change.Add(change)
}

var PositionComponent = NewComponent[Position]()
