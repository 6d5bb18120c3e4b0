package system

import (
	"math"
	"testing"

	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

func TestMonsterSpawnAtDistance(t *testing.T) {
	w := ecs.NewWorld()
	tuning := testTuning()
	stats := &MonsterStats{}
	_, playerPos := addPlayer(t, w, 40, -25, 18)

	timer := common.NewRepeatingTimer(tuning.Monster.SpawnPeriod)
	sys := NewMonsterSpawnSystem(timer, stats, tuning, nil, nil)

	sys.Update(w, tuning.Monster.SpawnPeriod)

	monsters := w.Query(component.MonsterTagComponent.ID())
	if len(monsters) != 1 {
		t.Fatalf("expected 1 monster, got %d", len(monsters))
	}
	if stats.Spawned != 1 {
		t.Fatalf("Spawned = %d, want 1", stats.Spawned)
	}

	pos, ok := ecs.Get(w, monsters[0], component.PositionComponent)
	if !ok {
		t.Fatal("spawned monster has no position")
	}
	dist := pos.Current.Sub(playerPos.Current).Length()
	if math.Abs(dist-tuning.Monster.SpawnDistance) > 1e-6 {
		t.Fatalf("spawn distance = %v, want %v", dist, tuning.Monster.SpawnDistance)
	}
}

func TestMonsterSpawnAtMostOncePerTick(t *testing.T) {
	w := ecs.NewWorld()
	tuning := testTuning()
	stats := &MonsterStats{}
	addPlayer(t, w, 0, 0, 18)

	timer := common.NewRepeatingTimer(tuning.Monster.SpawnPeriod)
	sys := NewMonsterSpawnSystem(timer, stats, tuning, nil, nil)

	// a giant tick covers many periods but still spawns once
	sys.Update(w, 10)

	if stats.Spawned != 1 {
		t.Fatalf("Spawned = %d after one large tick, want 1", stats.Spawned)
	}
}

func TestMonsterSpawnRespectsCap(t *testing.T) {
	w := ecs.NewWorld()
	tuning := testTuning()
	tuning.Monster.SpawnLimit = 2
	stats := &MonsterStats{Spawned: 2}
	addPlayer(t, w, 0, 0, 18)

	timer := common.NewRepeatingTimer(tuning.Monster.SpawnPeriod)
	sys := NewMonsterSpawnSystem(timer, stats, tuning, nil, nil)

	sys.Update(w, tuning.Monster.SpawnPeriod)
	if stats.Spawned != 2 {
		t.Fatalf("Spawned = %d, want cap to hold at 2", stats.Spawned)
	}

	// kills free up room under the cap
	stats.Killed = 1
	sys.Update(w, tuning.Monster.SpawnPeriod)
	if stats.Spawned != 3 {
		t.Fatalf("Spawned = %d after a kill freed capacity, want 3", stats.Spawned)
	}
}

func TestMonsterSpawnNeedsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	tuning := testTuning()
	stats := &MonsterStats{}

	timer := common.NewRepeatingTimer(tuning.Monster.SpawnPeriod)
	sys := NewMonsterSpawnSystem(timer, stats, tuning, nil, nil)

	sys.Update(w, tuning.Monster.SpawnPeriod)
	if stats.Spawned != 0 {
		t.Fatalf("Spawned = %d without a player, want 0", stats.Spawned)
	}
}

func TestMonsterSpawnPausedTimerNeverFires(t *testing.T) {
	w := ecs.NewWorld()
	tuning := testTuning()
	stats := &MonsterStats{}
	addPlayer(t, w, 0, 0, 18)

	timer := common.NewRepeatingTimer(tuning.Monster.SpawnPeriod)
	timer.Pause()
	sys := NewMonsterSpawnSystem(timer, stats, tuning, nil, nil)

	for i := 0; i < 100; i++ {
		sys.Update(w, tuning.Monster.SpawnPeriod)
	}
	if stats.Spawned != 0 {
		t.Fatalf("Spawned = %d with a paused timer, want 0", stats.Spawned)
	}
}

func TestBlastSpawnAtPlayerPosition(t *testing.T) {
	w := ecs.NewWorld()
	tuning := testTuning()
	_, playerPos := addPlayer(t, w, 123, -45, 18)

	timer := common.NewRepeatingTimer(tuning.Blast.SpawnPeriod)
	sys := NewBlastSpawnSystem(timer, tuning, nil, nil)

	sys.Update(w, tuning.Blast.SpawnPeriod)

	blasts := w.Query(component.BlastComponent.ID())
	if len(blasts) != 1 {
		t.Fatalf("expected 1 blast, got %d", len(blasts))
	}
	pos, ok := ecs.Get(w, blasts[0], component.PositionComponent)
	if !ok {
		t.Fatal("spawned blast has no position")
	}
	approx(t, "blast.X", pos.Current.X, playerPos.Current.X)
	approx(t, "blast.Y", pos.Current.Y, playerPos.Current.Y)

	blast, _ := ecs.Get(w, blasts[0], component.BlastComponent)
	if blast.Circle.Radius != tuning.Blast.Radius {
		t.Fatalf("blast radius = %v, want %v", blast.Circle.Radius, tuning.Blast.Radius)
	}
}

func TestBlastSpawnNeedsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	tuning := testTuning()

	timer := common.NewRepeatingTimer(tuning.Blast.SpawnPeriod)
	sys := NewBlastSpawnSystem(timer, tuning, nil, nil)

	sys.Update(w, tuning.Blast.SpawnPeriod)
	if got := w.Count(component.BlastComponent.ID()); got != 0 {
		t.Fatalf("expected no blasts without a player, got %d", got)
	}
}
