package main

import (
	"fmt"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/swarm/assets"
	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/system"
	"github.com/milk9111/swarm/prefabs"
)

// maxFrameDt caps the simulation step so a stalled window (drag, breakpoint)
// doesn't land as one giant tick.
const maxFrameDt = 0.25

type Game struct {
	log     *zap.Logger
	tuning  *prefabs.Tuning
	sprites *assets.Library
	watcher *prefabs.Watcher

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	stats     *system.MonsterStats
	lifecycle *system.LifecycleSystem

	paused bool
	ui     *ebitenui.UI

	last time.Time
}

func NewGame(log *zap.Logger, tuning *prefabs.Tuning, watcher *prefabs.Watcher) *Game {
	g := &Game{
		log:     log,
		tuning:  tuning,
		sprites: assets.NewLibrary(tuning),
		watcher: watcher,
		world:   ecs.NewWorld(),
		stats:   &system.MonsterStats{},
	}

	monsterTimer := common.NewRepeatingTimer(tuning.Monster.SpawnPeriod)
	monsterTimer.Pause()
	blastTimer := common.NewRepeatingTimer(tuning.Blast.SpawnPeriod)
	blastTimer.Pause()

	g.render = system.NewRenderSystem()
	g.lifecycle = system.NewLifecycleSystem(g.stats, monsterTimer, blastTimer, tuning, g.sprites, log)

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(system.KeyboardIntent{}),
		system.NewMovementSystem(),
		system.NewPursuitSystem(),
		system.NewDamageSystem(),
		system.NewSpreadSystem(tuning),
		system.NewBlastSystem(g.stats, log),
		system.NewBlastLifetimeSystem(),
		system.NewMonsterSpawnSystem(monsterTimer, g.stats, tuning, g.sprites, log),
		system.NewBlastSpawnSystem(blastTimer, tuning, g.sprites, log),
		g.lifecycle,
		system.NewViewOffsetSystem(),
	)

	g.ui = NewMenuUI(g)

	// first session starts on the first tick
	g.world.Events().Push(ecs.Event{Type: system.EventNewGame})

	return g
}

func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now
	if dt > maxFrameDt {
		dt = maxFrameDt
	}

	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.scheduler.Update(g.world, dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"alive: %d  spawned: %d  killed: %d    FPS: %.2f",
		g.stats.Alive(), g.stats.Spawned, g.stats.Killed, ebiten.ActualFPS(),
	))

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// drainWatcher applies pending tuning edits. Radii and timer periods take
// effect for entities and timers created after the reload.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err := <-g.watcher.Errors:
			if err != nil {
				g.log.Warn("tuning watch", zap.Error(err))
			}
		default:
			if reload {
				tuning, err := prefabs.LoadTuning()
				if err != nil {
					g.log.Warn("tuning reload failed", zap.Error(err))
					return
				}
				*g.tuning = *tuning
				g.log.Info("tuning reloaded")
			}
			return
		}
	}
}

func (g *Game) newGame() {
	g.world.Events().Push(ecs.Event{Type: system.EventNewGame})
	g.paused = false
}
