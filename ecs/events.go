package ecs

// Event is a broadcast payload on the world queue. Events are produced by
// systems or by collaborators outside the simulation (UI, bootstrap) and
// consumed by whichever system drains the queue.
type Event struct {
	Type string
	Data any
}

// EventQueue is a simple FIFO drained once per tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.items)
}
