package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/ecs/entity"
	"github.com/milk9111/swarm/geom"
	"github.com/milk9111/swarm/prefabs"
)

// SpriteSource hands out renderable images by name. The windowed game backs
// it with procedural discs; headless runs and tests pass nil and entities
// simply go undrawn.
type SpriteSource interface {
	Sprite(name string) *ebiten.Image
}

func spriteFor(src SpriteSource, name string) *ebiten.Image {
	if src == nil {
		return nil
	}
	return src.Sprite(name)
}

// MonsterSpawnSystem creates one monster per timer completion at a random
// bearing around the player, while the population cap allows. The timer ticks
// even when a gate skips the spawn, and it starts paused: only the lifecycle
// system runs it.
type MonsterSpawnSystem struct {
	Timer   *common.Timer
	Stats   *MonsterStats
	Tuning  *prefabs.Tuning
	Sprites SpriteSource
	Log     *zap.Logger
}

func NewMonsterSpawnSystem(timer *common.Timer, stats *MonsterStats, tuning *prefabs.Tuning, sprites SpriteSource, log *zap.Logger) *MonsterSpawnSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &MonsterSpawnSystem{Timer: timer, Stats: stats, Tuning: tuning, Sprites: sprites, Log: log}
}

func (s *MonsterSpawnSystem) Update(w *ecs.World, dt float64) {
	s.Timer.Tick(dt)
	if !s.Timer.JustFinished() {
		return
	}

	spec := s.Tuning.Monster
	if s.Stats.Alive() >= spec.SpawnLimit {
		return
	}

	player, ok := w.First(component.PlayerTagComponent.ID())
	if !ok {
		return
	}
	playerPos, ok := ecs.Get(w, player, component.PositionComponent)
	if !ok {
		return
	}

	pos := playerPos.Current.Add(geom.RandomUnit().Mult(spec.SpawnDistance))
	if _, err := entity.NewMonsterAt(w, spec, pos, spriteFor(s.Sprites, "monster")); err != nil {
		s.Log.Warn("monster spawn failed", zap.Error(err))
		return
	}
	s.Stats.Spawned++
	s.Log.Debug("monster spawned",
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Uint32("alive", s.Stats.Alive()),
	)
}

// BlastSpawnSystem creates one blast per timer completion, centered exactly
// on the player. Blasts have no population cap; they self-expire.
type BlastSpawnSystem struct {
	Timer   *common.Timer
	Tuning  *prefabs.Tuning
	Sprites SpriteSource
	Log     *zap.Logger
}

func NewBlastSpawnSystem(timer *common.Timer, tuning *prefabs.Tuning, sprites SpriteSource, log *zap.Logger) *BlastSpawnSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &BlastSpawnSystem{Timer: timer, Tuning: tuning, Sprites: sprites, Log: log}
}

func (s *BlastSpawnSystem) Update(w *ecs.World, dt float64) {
	s.Timer.Tick(dt)
	if !s.Timer.JustFinished() {
		return
	}

	player, ok := w.First(component.PlayerTagComponent.ID())
	if !ok {
		return
	}
	playerPos, ok := ecs.Get(w, player, component.PositionComponent)
	if !ok {
		return
	}

	if _, err := entity.NewBlastAt(w, s.Tuning.Blast, playerPos.Current, spriteFor(s.Sprites, "blast")); err != nil {
		s.Log.Warn("blast spawn failed", zap.Error(err))
	}
}
