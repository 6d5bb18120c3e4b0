package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/geom"
)

// BlastSystem destroys every monster overlapping a live blast. A monster dies
// at most once per tick: destroyed entities fail IsAlive and are skipped when
// a second blast also covers them, so Killed counts each monster exactly once.
type BlastSystem struct {
	Stats *MonsterStats
	Log   *zap.Logger
}

func NewBlastSystem(stats *MonsterStats, log *zap.Logger) *BlastSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &BlastSystem{Stats: stats, Log: log}
}

func (s *BlastSystem) Update(w *ecs.World, dt float64) {
	blasts := w.Query(component.BlastComponent.ID(), component.PositionComponent.ID())
	if len(blasts) == 0 {
		return
	}
	monsters := w.Query(component.MonsterTagComponent.ID(), component.BodyComponent.ID(), component.PositionComponent.ID())

	for _, be := range blasts {
		blast, _ := ecs.Get(w, be, component.BlastComponent)
		blastPos, _ := ecs.Get(w, be, component.PositionComponent)
		if blast == nil || blastPos == nil {
			continue
		}
		for _, me := range monsters {
			if !w.IsAlive(me) {
				continue
			}
			mBody, _ := ecs.Get(w, me, component.BodyComponent)
			mPos, _ := ecs.Get(w, me, component.PositionComponent)
			if mBody == nil || mPos == nil {
				continue
			}
			collided, _ := geom.Overlap(blast.Circle, blastPos.Current, mBody.Circle, mPos.Current)
			if !collided {
				continue
			}
			w.DestroyEntity(me)
			s.Stats.Killed++
			s.Log.Debug("monster killed by blast", zap.Uint32("killed", s.Stats.Killed))
		}
	}
}
