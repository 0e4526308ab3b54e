package systems

import (
	"testing"

	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/internal/nav"
)

// detourSurface always offers the same canned detour
type detourSurface struct {
	nav.FlatSurface
	detour []domain.Vector3
}

func (s detourSurface) FindPathAroundObstacles(from, to domain.Vector3, obstacles []nav.Obstacle) ([]domain.Vector3, bool) {
	return s.detour, len(s.detour) > 0
}

// Actor at the origin, blocker A to the east, blocker B to the north.
// Short segments toward A or B collide with exactly one of them.
func bumpFixture() (*domain.Area, *domain.Entity) {
	area := domain.NewArea("test")
	actor := testCreature("actor", 0, 0, 0.5)
	area.AddEntity(actor)
	area.AddEntity(testCreature("blocker_a", 1.8, 0, 0.5))
	area.AddEntity(testCreature("blocker_b", 0, 1.8, 0.5))
	return area, actor
}

var (
	origin = domain.Vector3{}
	toA    = domain.Vector3{X: 1}
	toB    = domain.Vector3{Y: 1}
	goal   = domain.Vector3{X: 9, Y: 9}
)

func TestFindBlocker(t *testing.T) {
	area, actor := bumpFixture()
	d := NewCollisionDetector(DefaultMaxBumps)

	blocker, normal, hit := d.FindBlocker(actor, origin, toA, area)
	if !hit {
		t.Fatal("Expected collision with blocker_a")
	}
	if blocker.ID != "blocker_a" {
		t.Errorf("Blocker = %s, want blocker_a", blocker.ID)
	}
	// Push-out normal points back along the segment
	if normal.X >= 0 {
		t.Errorf("Normal = %v, want negative X", normal)
	}

	// A segment pointing away hits nothing
	if _, _, hit := d.FindBlocker(actor, origin, domain.Vector3{X: -1}, area); hit {
		t.Error("Unexpected collision on a clear segment")
	}
}

func TestFindBlockerIgnoresDead(t *testing.T) {
	area, actor := bumpFixture()
	d := NewCollisionDetector(DefaultMaxBumps)

	a, _ := area.GetEntity("blocker_a")
	a.Stats.IsDead = true

	if _, _, hit := d.FindBlocker(actor, origin, toA, area); hit {
		t.Error("Dead creatures must not block movement")
	}
}

func TestResolveStepRerouteAdoptsDetour(t *testing.T) {
	area, actor := bumpFixture()
	d := NewCollisionDetector(DefaultMaxBumps)
	detour := []domain.Vector3{{X: 2, Y: 2}, goal}
	surface := detourSurface{detour: detour}

	st := &MoveState{Path: []domain.Vector3{goal}, PathIdx: 0}
	if v := d.ResolveStep(actor, origin, toA, goal, st, area, surface); v != VerdictRerouted {
		t.Fatalf("Verdict %v, want VerdictRerouted", v)
	}
	if !st.Rerouted || st.PathIdx != 0 {
		t.Error("Detour must replace the path from index 0")
	}
	if len(st.Path) != len(detour) || st.Path[0] != detour[0] {
		t.Errorf("Path = %v, want adopted detour %v", st.Path, detour)
	}
	if c := d.BumpCount(actor.ID); c != 1 {
		t.Errorf("Bump count = %d, want 1 (reroute must NOT reset it)", c)
	}
}

func TestResolveStepCircuitBreaker(t *testing.T) {
	area, actor := bumpFixture()
	d := NewCollisionDetector(5)
	surface := detourSurface{detour: []domain.Vector3{goal}}
	st := &MoveState{}

	// Alternating blockers keep the reroute path alive; the counter
	// still grows because no free step ever commits.
	for i := 0; i < 5; i++ {
		to := toA
		if i%2 == 1 {
			to = toB
		}
		if v := d.ResolveStep(actor, origin, to, goal, st, area, surface); v != VerdictRerouted {
			t.Fatalf("Detection %d: verdict %v, want VerdictRerouted", i+1, v)
		}
	}
	if c := d.BumpCount(actor.ID); c != 5 {
		t.Fatalf("Bump count = %d, want 5", c)
	}

	// Detection number MaxBumps+1 trips the breaker
	if v := d.ResolveStep(actor, origin, toB, goal, st, area, surface); v != VerdictFailed {
		t.Fatalf("Detection 6: verdict %v, want VerdictFailed", v)
	}
	if c := d.BumpCount(actor.ID); c != 0 {
		t.Errorf("Bump count after failure = %d, want 0", c)
	}
}

func TestResolveStepRepeatedBlocker(t *testing.T) {
	area, actor := bumpFixture()
	d := NewCollisionDetector(5)
	surface := detourSurface{detour: []domain.Vector3{goal}}
	st := &MoveState{}

	if v := d.ResolveStep(actor, origin, toA, goal, st, area, surface); v != VerdictRerouted {
		t.Fatalf("First detection: verdict %v, want VerdictRerouted", v)
	}
	// Same blocker again on the very next detection: give up immediately,
	// long before the bump limit
	if v := d.ResolveStep(actor, origin, toA, goal, st, area, surface); v != VerdictFailed {
		t.Fatalf("Second detection: verdict %v, want VerdictFailed", v)
	}
}

func TestResolveStepFreeStepResetsState(t *testing.T) {
	area, actor := bumpFixture()
	d := NewCollisionDetector(5)
	surface := detourSurface{detour: []domain.Vector3{goal}}
	st := &MoveState{}

	if v := d.ResolveStep(actor, origin, toA, goal, st, area, surface); v != VerdictRerouted {
		t.Fatalf("Verdict %v, want VerdictRerouted", v)
	}

	// A committed collision-free step wipes both the counter and the
	// blocker memory
	away := domain.Vector3{X: -1}
	if v := d.ResolveStep(actor, origin, away, goal, st, area, surface); v != VerdictClear {
		t.Fatalf("Verdict %v, want VerdictClear", v)
	}
	if c := d.BumpCount(actor.ID); c != 0 {
		t.Fatalf("Bump count = %d, want 0 after free step", c)
	}

	// The same blocker no longer counts as "repeated"
	if v := d.ResolveStep(actor, origin, toA, goal, st, area, surface); v != VerdictRerouted {
		t.Errorf("Verdict %v, want VerdictRerouted after state reset", v)
	}
}

func TestResolveStepTotallyBlocked(t *testing.T) {
	area, actor := bumpFixture()
	d := NewCollisionDetector(5)
	st := &MoveState{}

	// FlatSurface never finds detours: first collision is final
	if v := d.ResolveStep(actor, origin, toA, goal, st, area, nav.FlatSurface{}); v != VerdictFailed {
		t.Fatalf("Verdict %v, want VerdictFailed without a detour", v)
	}
	if c := d.BumpCount(actor.ID); c != 0 {
		t.Errorf("Bump count = %d, want 0 after failure", c)
	}
}

func TestClearStateIdempotent(t *testing.T) {
	d := NewCollisionDetector(5)
	d.ClearState("nobody")
	d.ClearState("nobody")
	if c := d.BumpCount("nobody"); c != 0 {
		t.Errorf("Bump count = %d, want 0", c)
	}
}
