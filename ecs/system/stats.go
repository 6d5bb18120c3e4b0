package system

// MonsterStats counts adversary spawns and kills for one session. It is owned
// by the game loop and shared by pointer with the spawn, blast, and lifecycle
// systems; only the lifecycle system zeroes it.
type MonsterStats struct {
	Spawned uint32
	Killed  uint32
}

// Clear zeroes both counters.
func (s *MonsterStats) Clear() {
	s.Spawned = 0
	s.Killed = 0
}

// Alive returns spawned minus killed, floored at zero.
func (s *MonsterStats) Alive() uint32 {
	if s.Spawned > s.Killed {
		return s.Spawned - s.Killed
	}
	return 0
}
