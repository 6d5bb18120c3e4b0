package ecs

import (
	"testing"

	"github.com/milk9111/swarm/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if len(w.Entities()) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(w.Entities()))
				}
			}
		})
	}
}

func TestWorldStaleHandleRejected(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	if err := Add(w, e1, h, intPtr(7)); err != nil {
		t.Fatal(err)
	}
	if !w.DestroyEntity(e1) {
		t.Fatal("destroy failed")
	}

	// reuses e1's slot with a bumped generation
	e2 := w.CreateEntity()
	if e2 == e1 {
		t.Fatal("recycled entity should not equal the stale handle")
	}

	if w.IsAlive(e1) {
		t.Fatal("stale handle reports alive")
	}
	if _, ok := Get(w, e1, h); ok {
		t.Fatal("stale handle can still read components")
	}
	if err := Add(w, e1, h, intPtr(9)); err == nil {
		t.Fatal("stale handle can still add components")
	}
	if Has(w, e2, h) {
		t.Fatal("recycled entity inherited the old component")
	}
}

func TestWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	hInt := component.NewComponent[int]()
	hStr := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	if err := Add(w, e1, hInt, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, hInt, intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, hStr, stringPtr("two")); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e3, hStr, stringPtr("three")); err != nil {
		t.Fatal(err)
	}

	if got := w.Count(hInt.ID()); got != 2 {
		t.Fatalf("Count(int) = %d, want 2", got)
	}

	both := w.Query(hInt.ID(), hStr.ID())
	if len(both) != 1 || both[0] != e2 {
		t.Fatalf("Query(int, string) = %v, want [%v]", both, e2)
	}

	v, ok := Get(w, e2, hInt)
	if !ok || *v != 2 {
		t.Fatalf("Get(e2, int) = %v, %v", v, ok)
	}

	if !Remove(w, e2, hInt) {
		t.Fatal("Remove should report true for present component")
	}
	if Has(w, e2, hInt) {
		t.Fatal("component still present after Remove")
	}
	if got := w.Query(hInt.ID(), hStr.ID()); len(got) != 0 {
		t.Fatalf("Query after remove = %v, want empty", got)
	}
}

func TestWorldForEachAllowsDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		if err := Add(w, e, h, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, h, func(e Entity, v *int) {
		visited++
		w.DestroyEntity(e)
	})

	if visited != 5 {
		t.Fatalf("visited %d entities, want 5", visited)
	}
	if got := w.Count(h.ID()); got != 0 {
		t.Fatalf("%d components left after destroying all entities", got)
	}
}

func TestWorldFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	if _, ok := w.First(h.ID()); ok {
		t.Fatal("First on empty store should report false")
	}

	e := w.CreateEntity()
	if err := Add(w, e, h, intPtr(42)); err != nil {
		t.Fatal(err)
	}
	got, ok := w.First(h.ID())
	if !ok || got != e {
		t.Fatalf("First = %v, %v, want %v, true", got, ok, e)
	}
}

func TestWorldEventQueue(t *testing.T) {
	w := NewWorld()

	w.Events().Push(Event{Type: "a"})
	w.Events().Push(Event{Type: "b", Data: 7})

	if got := w.Events().Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}

	events := w.Events().Drain()
	if len(events) != 2 || events[0].Type != "a" || events[1].Type != "b" {
		t.Fatalf("Drain = %v", events)
	}
	if got := w.Events().Len(); got != 0 {
		t.Fatalf("queue not empty after drain: %d", got)
	}
	if got := w.Events().Drain(); got != nil {
		t.Fatalf("second drain = %v, want nil", got)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}
