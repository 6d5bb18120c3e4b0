package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/geom"
	"github.com/milk9111/swarm/prefabs"
)

func testTuning() *prefabs.Tuning {
	return &prefabs.Tuning{
		Player: prefabs.PlayerSpec{Speed: 100, BodyRadius: 18},
		Monster: prefabs.MonsterSpec{
			Speed:         50,
			BodyRadius:    10,
			Mass:          10,
			SpawnDistance: 300,
			SpawnPeriod:   0.6,
			SpawnLimit:    300,
		},
		Blast: prefabs.BlastSpec{Radius: 50, Lifetime: 0.3, SpawnPeriod: 3},
		Physics: prefabs.PhysicsSpec{DisplacementFactor: 0.2},
	}
}

func addBody(t *testing.T, w *ecs.World, x, y, radius, mass float64) (ecs.Entity, *component.Position) {
	t.Helper()
	e := w.CreateEntity()
	pos := component.NewPosition(cp.Vector{X: x, Y: y})
	if err := ecs.Add(w, e, component.PositionComponent, pos); err != nil {
		t.Fatal(err)
	}
	body := &component.Body{Circle: geom.Circle{Radius: radius}, Mass: mass}
	if err := ecs.Add(w, e, component.BodyComponent, body); err != nil {
		t.Fatal(err)
	}
	return e, pos
}

func addPlayer(t *testing.T, w *ecs.World, x, y, radius float64) (ecs.Entity, *component.Position) {
	t.Helper()
	e, pos := addBody(t, w, x, y, radius, 0)
	if err := ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, &component.Velocity{Speed: 100}); err != nil {
		t.Fatal(err)
	}
	return e, pos
}

func addMonster(t *testing.T, w *ecs.World, x, y, radius, mass float64) (ecs.Entity, *component.Position) {
	t.Helper()
	e, pos := addBody(t, w, x, y, radius, mass)
	if err := ecs.Add(w, e, component.MonsterTagComponent, &component.MonsterTag{}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, &component.Velocity{Speed: 50}); err != nil {
		t.Fatal(err)
	}
	return e, pos
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}
