package ecs

// System updates a world once per tick. dt is the wall-clock delta for the
// tick, in seconds.
type System interface {
	Update(w *World, dt float64)
}

// Scheduler runs systems in a fixed order. The order is load-bearing: stages
// later in the list see the writes of earlier stages within the same tick.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World, dt float64) {
	for _, system := range s.systems {
		system.Update(w, dt)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
