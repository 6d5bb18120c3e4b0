package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/ecs/entity"
	"github.com/milk9111/swarm/prefabs"
)

// EventNewGame requests a session reset. Anything may produce it: the damage
// pass on lethal contact, the menu's New Game button, or bootstrap.
const EventNewGame = "new_game"

// LifecycleSystem drains the event queue once per tick and, if any new-game
// event arrived, tears the session down and starts a fresh one. Several
// events in one tick collapse into a single reset. Resetting an empty world
// is valid and lands in the same state as resetting a populated one.
//
// This is the only place spawn timers unpause and the only place stats zero.
type LifecycleSystem struct {
	Stats        *MonsterStats
	MonsterTimer *common.Timer
	BlastTimer   *common.Timer
	Tuning       *prefabs.Tuning
	Sprites      SpriteSource
	Log          *zap.Logger

	// Resets counts sessions started since construction.
	Resets uint32
}

func NewLifecycleSystem(stats *MonsterStats, monsterTimer, blastTimer *common.Timer, tuning *prefabs.Tuning, sprites SpriteSource, log *zap.Logger) *LifecycleSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &LifecycleSystem{
		Stats:        stats,
		MonsterTimer: monsterTimer,
		BlastTimer:   blastTimer,
		Tuning:       tuning,
		Sprites:      sprites,
		Log:          log,
	}
}

func (s *LifecycleSystem) Update(w *ecs.World, dt float64) {
	reset := false
	for _, evt := range w.Events().Drain() {
		if evt.Type == EventNewGame {
			reset = true
		}
	}
	if !reset {
		return
	}

	despawned := 0
	for _, e := range w.Query(component.PlayerTagComponent.ID()) {
		if w.DestroyEntity(e) {
			despawned++
		}
	}
	for _, e := range w.Query(component.MonsterTagComponent.ID()) {
		if w.DestroyEntity(e) {
			despawned++
		}
	}
	for _, e := range w.Query(component.BlastComponent.ID()) {
		if w.DestroyEntity(e) {
			despawned++
		}
	}
	s.Stats.Clear()

	if _, err := entity.NewPlayer(w, s.Tuning.Player, spriteFor(s.Sprites, "player")); err != nil {
		s.Log.Error("new game: player build failed", zap.Error(err))
		return
	}

	s.MonsterTimer.Reset()
	s.MonsterTimer.Unpause()
	s.BlastTimer.Reset()
	s.BlastTimer.Unpause()

	s.Resets++
	s.Log.Info("new game", zap.Int("despawned", despawned), zap.Uint32("session", s.Resets))
}
