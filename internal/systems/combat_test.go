package systems

import (
	"math/rand"
	"testing"

	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
)

// eventRecorder captures fired script events in order
type eventRecorder struct {
	events    []domain.ScriptEvent
	triggerer []domain.ObjectID
}

func (r *eventRecorder) FireEvent(ev domain.ScriptEvent, owner *domain.Entity, triggerer domain.ObjectID) {
	r.events = append(r.events, ev)
	r.triggerer = append(r.triggerer, triggerer)
}

func TestResolveAttackKill(t *testing.T) {
	area := domain.NewArea("test")

	attacker := testCreature("attacker", 0, 0, 0.5)
	target := testCreature("victim", 1, 0, 0.5)
	target.Stats.HP = 5
	area.AddEntity(attacker)
	area.AddEntity(target)

	// Weapon gives +4 damage
	sword := &domain.Entity{
		ID:   "sword",
		Type: domain.EntityTypeItem,
		Item: &domain.ItemComponent{Slot: domain.SlotRightWeapon, Damage: 4},
	}
	area.AddEntity(sword)
	attacker.Equipment = &domain.EquipmentComponent{}
	attacker.Equipment.Equip(domain.SlotRightWeapon, sword.ID)

	// Cursed armor drops defense to 0, so any d20 roll hits
	cursed := &domain.Entity{
		ID:   "cursed_armor",
		Type: domain.EntityTypeItem,
		Item: &domain.ItemComponent{Slot: domain.SlotArmor, Defense: -10},
	}
	area.AddEntity(cursed)
	target.Equipment = &domain.EquipmentComponent{}
	target.Equipment.Equip(domain.SlotArmor, cursed.ID)

	rec := &eventRecorder{}
	res := ResolveAttack(area, attacker, target, rand.New(rand.NewSource(42)), rec)

	if !res.Hit {
		t.Fatal("Expected guaranteed hit against defense 0")
	}
	if res.Damage != 5 {
		t.Errorf("Damage = %d, want 5 (base 1 + weapon 4)", res.Damage)
	}
	if !res.TargetDied || !target.Stats.IsDead {
		t.Error("Expected target to die from 5 damage at 5 HP")
	}

	wantEvents := []domain.ScriptEvent{domain.EventOnAttacked, domain.EventOnDamaged, domain.EventOnDeath}
	if len(rec.events) != len(wantEvents) {
		t.Fatalf("Fired %d events, want %d", len(rec.events), len(wantEvents))
	}
	for i, ev := range wantEvents {
		if rec.events[i] != ev {
			t.Errorf("Event %d = %v, want %v", i, rec.events[i], ev)
		}
		if rec.triggerer[i] != attacker.ID {
			t.Errorf("Event %d triggerer = %s, want attacker", i, rec.triggerer[i])
		}
	}
}

func TestResolveAttackDeadTarget(t *testing.T) {
	area := domain.NewArea("test")
	attacker := testCreature("attacker", 0, 0, 0.5)
	target := testCreature("corpse", 1, 0, 0.5)
	target.Stats.IsDead = true
	area.AddEntity(attacker)
	area.AddEntity(target)

	rec := &eventRecorder{}
	res := ResolveAttack(area, attacker, target, rand.New(rand.NewSource(1)), rec)

	if res.Hit || res.Damage != 0 {
		t.Errorf("Attack on corpse resolved as %+v, want zero result", res)
	}
	if len(rec.events) != 0 {
		t.Errorf("Fired %d events on a corpse, want none", len(rec.events))
	}
}

func TestResolveAttackNoStats(t *testing.T) {
	area := domain.NewArea("test")
	attacker := testCreature("attacker", 0, 0, 0.5)
	crate := &domain.Entity{ID: "crate", Type: domain.EntityTypePlaceable}
	area.AddEntity(attacker)
	area.AddEntity(crate)

	res := ResolveAttack(area, attacker, crate, rand.New(rand.NewSource(1)), nil)
	if res.Hit {
		t.Error("Attack without target stats must be a no-op")
	}
}
