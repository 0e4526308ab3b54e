package engine

import (
	"testing"

	"github.com/th3w1zard1/Andastra-sub005/internal/actions"
	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/internal/nav"
)

// recordAction logs its name on the first update and completes
type recordAction struct {
	name     string
	log      *[]string
	owner    *domain.Entity
	disposed bool
	ran      bool
}

func (a *recordAction) Kind() actions.Kind { return actions.KindWait }
func (a *recordAction) GroupID() string    { return "" }

func (a *recordAction) Bind(owner *domain.Entity) bool {
	if a.owner != nil || a.disposed {
		return false
	}
	a.owner = owner
	return true
}

func (a *recordAction) Update(ctx *actions.Context, dt float64) actions.Status {
	a.ran = true
	if a.log != nil {
		*a.log = append(*a.log, a.name)
	}
	return actions.StatusComplete
}

func (a *recordAction) Dispose() {
	a.owner = nil
	a.disposed = true
}

func placeable(id domain.ObjectID) *domain.Entity {
	return &domain.Entity{ID: id, Type: domain.EntityTypePlaceable}
}

func schedulerFixture() (*DelayScheduler, *Instance) {
	area := domain.NewArea("test")
	area.AddEntity(placeable("p1"))
	area.AddEntity(placeable("p2"))

	cfg := NewConfig()
	cfg.Seed = 1
	inst := NewInstance(1, area, nav.FlatSurface{}, nil, cfg)
	return NewDelayScheduler(), inst
}

func TestSchedulerDispatchOrder(t *testing.T) {
	s, inst := schedulerFixture()
	var log []string

	// Scheduled out of order, must fire in dueTime order
	s.Schedule(2.0, &recordAction{name: "second", log: &log}, "p1")
	s.Schedule(1.0, &recordAction{name: "first", log: &log}, "p2")

	s.Advance(3.0, inst)

	if len(log) != 2 || log[0] != "first" || log[1] != "second" {
		t.Errorf("Dispatch order = %v, want [first second]", log)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}

func TestSchedulerFIFOTies(t *testing.T) {
	s, inst := schedulerFixture()
	var log []string

	for _, name := range []string{"a", "b", "c"} {
		s.Schedule(1.0, &recordAction{name: name, log: &log}, "p1")
	}
	s.Advance(1.0, inst)

	want := []string{"a", "b", "c"}
	if len(log) != 3 {
		t.Fatalf("Dispatched %d actions, want 3", len(log))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Position %d: %s, want %s (ties must keep insertion order)", i, log[i], want[i])
		}
	}
}

func TestSchedulerFiresOnThirdAdvance(t *testing.T) {
	s, inst := schedulerFixture()
	a := &recordAction{name: "delayed"}
	s.Schedule(3.0, a, "p1")

	s.Advance(1.0, inst)
	s.Advance(1.0, inst)
	if a.ran {
		t.Fatal("Action fired before its due time")
	}
	if s.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", s.Pending())
	}

	s.Advance(1.0, inst)
	if !a.ran {
		t.Error("Action did not fire at its due time")
	}
}

func TestSchedulerNegativeDelayClamped(t *testing.T) {
	s, inst := schedulerFixture()
	a := &recordAction{name: "now"}
	s.Schedule(-5.0, a, "p1")

	s.Advance(0.1, inst)
	if !a.ran {
		t.Error("Negative delay must fire on the next advance")
	}
}

func TestSchedulerInvalidTargetDiscarded(t *testing.T) {
	s, inst := schedulerFixture()
	a := &recordAction{name: "orphan"}
	s.Schedule(1.0, a, "ghost")

	s.Advance(2.0, inst)
	if a.ran {
		t.Error("Action for a missing target must not run")
	}
	if !a.disposed {
		t.Error("Discarded action must still be disposed")
	}
}

func TestSchedulerDeliversToCreatureQueue(t *testing.T) {
	s, inst := schedulerFixture()
	hero := &domain.Entity{
		ID:        "hero",
		Type:      domain.EntityTypeCreature,
		Transform: &domain.TransformComponent{},
		Stats:     &domain.StatsComponent{HP: 10, MaxHP: 10},
	}
	inst.AddEntity(hero)

	a := &recordAction{name: "queued"}
	s.Schedule(1.0, a, "hero")
	s.Advance(1.0, inst)

	// Creatures get the action appended to their queue, not a sync run
	if a.ran {
		t.Error("Action must wait for the queue, not run synchronously")
	}
	q, ok := inst.QueueFor("hero")
	if !ok || q.Len() != 1 {
		t.Fatal("Expected the action in the hero's queue")
	}
}

func TestSchedulerDisposesRejectedAction(t *testing.T) {
	s, inst := schedulerFixture()
	hero := &domain.Entity{
		ID:        "hero",
		Type:      domain.EntityTypeCreature,
		Transform: &domain.TransformComponent{},
		Stats:     &domain.StatsComponent{HP: 10, MaxHP: 10},
	}
	inst.AddEntity(hero)

	// Already bound elsewhere: the queue will reject it on delivery
	a := &recordAction{name: "stale"}
	a.Bind(placeable("elsewhere"))
	s.Schedule(1.0, a, "hero")

	s.Advance(1.0, inst)
	if q, _ := inst.QueueFor("hero"); q.Len() != 0 {
		t.Errorf("Queue length = %d, want 0", q.Len())
	}
	if !a.disposed {
		t.Error("Rejected action must be disposed, not leaked")
	}
}

func TestSchedulerClearForEntity(t *testing.T) {
	s, inst := schedulerFixture()
	var log []string

	a1 := &recordAction{name: "e1_a", log: &log}
	a2 := &recordAction{name: "e1_b", log: &log}
	survivor := &recordAction{name: "e2", log: &log}
	s.Schedule(1.0, a1, "p1")
	s.Schedule(2.0, a2, "p1")
	s.Schedule(1.5, survivor, "p2")

	s.ClearForEntity("p1")
	if s.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", s.Pending())
	}
	if !a1.disposed || !a2.disposed {
		t.Error("Cleared entries must be disposed")
	}

	// Idempotent
	s.ClearForEntity("p1")

	s.Advance(5.0, inst)
	if len(log) != 1 || log[0] != "e2" {
		t.Errorf("Dispatched = %v, want [e2]", log)
	}
}
