// Command headless runs the simulation without a window for a fixed number
// of seconds and logs the final stats. Useful for smoke tests and tuning
// experiments on machines with no display.
package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/system"
	"github.com/milk9111/swarm/prefabs"
)

// scriptedIntent walks the player in a slow clockwise square so the run
// exercises movement and pursuit instead of a stationary pile-up.
type scriptedIntent struct {
	tick *int
}

func (s scriptedIntent) Intent() (up, down, left, right bool) {
	switch (*s.tick / 120) % 4 {
	case 0:
		right = true
	case 1:
		down = true
	case 2:
		left = true
	default:
		up = true
	}
	return up, down, left, right
}

func main() {
	seconds := flag.Float64("seconds", 30, "simulated duration")
	tps := flag.Int("tps", 60, "simulation ticks per second")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg := zap.NewDevelopmentConfig()
	if !*debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		logger.Fatal("load tuning", zap.Error(err))
	}

	world := ecs.NewWorld()
	stats := &system.MonsterStats{}

	monsterTimer := common.NewRepeatingTimer(tuning.Monster.SpawnPeriod)
	monsterTimer.Pause()
	blastTimer := common.NewRepeatingTimer(tuning.Blast.SpawnPeriod)
	blastTimer.Pause()

	tick := 0
	lifecycle := system.NewLifecycleSystem(stats, monsterTimer, blastTimer, tuning, nil, logger)
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(scriptedIntent{tick: &tick}),
		system.NewMovementSystem(),
		system.NewPursuitSystem(),
		system.NewDamageSystem(),
		system.NewSpreadSystem(tuning),
		system.NewBlastSystem(stats, logger),
		system.NewBlastLifetimeSystem(),
		system.NewMonsterSpawnSystem(monsterTimer, stats, tuning, nil, logger),
		system.NewBlastSpawnSystem(blastTimer, tuning, nil, logger),
		lifecycle,
		system.NewViewOffsetSystem(),
	)

	world.Events().Push(ecs.Event{Type: system.EventNewGame})

	dt := 1.0 / float64(*tps)
	ticks := int(*seconds * float64(*tps))
	for i := 0; i < ticks; i++ {
		tick = i
		scheduler.Update(world, dt)
	}

	logger.Info("run complete",
		zap.Int("ticks", ticks),
		zap.Uint32("spawned", stats.Spawned),
		zap.Uint32("killed", stats.Killed),
		zap.Uint32("alive", stats.Alive()),
		zap.Uint32("sessions", lifecycle.Resets),
	)
}
