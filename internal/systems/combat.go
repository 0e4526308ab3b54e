package systems

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/pkg/logger"
)

// ScriptRunner - исполнитель скриптовых событий.
// Подставляется композицией при сборке модуля (никакого динамического
// поиска реализаций). nil допустим: события просто не рассылаются.
type ScriptRunner interface {
	FireEvent(ev domain.ScriptEvent, owner *domain.Entity, triggerer domain.ObjectID)
}

// AttackResult - исход одного удара
type AttackResult struct {
	Hit        bool
	Damage     int
	TargetDied bool
}

// ResolveAttack разыгрывает один удар attacker -> target.
// Бросок идет через переданный генератор: при одном сиде
// реплей боя детерминирован.
func ResolveAttack(area *domain.Area, attacker, target *domain.Entity, rng *rand.Rand, scripts ScriptRunner) AttackResult {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"attacker_id": attacker.ID,
		"target_id":   target.ID,
	})

	// --- Граничные условия ---

	if target.Stats == nil {
		combatLogger.Warn("Attack ignored: target has no StatsComponent")
		return AttackResult{}
	}
	if target.Stats.IsDead {
		combatLogger.Debug("Attack ignored: target is already dead")
		return AttackResult{}
	}

	fireEvent(scripts, domain.EventOnAttacked, target, attacker.ID)

	// --- Бросок на попадание (d20 против базовой защиты 10) ---

	roll := rng.Intn(20) + 1
	defense := 10 + equippedBonus(area, target, domain.SlotArmor)
	if roll < defense {
		combatLogger.WithFields(logrus.Fields{
			"roll":    roll,
			"defense": defense,
		}).Debug("Attack missed")
		return AttackResult{}
	}

	// --- Урон ---

	damage := 1 + equippedBonus(area, attacker, domain.SlotRightWeapon)

	hpBefore := target.Stats.HP
	died := target.Stats.TakeDamage(damage)

	combatLogger.WithFields(logrus.Fields{
		"roll":        roll,
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    target.Stats.HP,
		"target_died": died,
	}).Info("Attack resolved")

	fireEvent(scripts, domain.EventOnDamaged, target, attacker.ID)
	if died {
		fireEvent(scripts, domain.EventOnDeath, target, attacker.ID)
	}

	return AttackResult{Hit: true, Damage: damage, TargetDied: died}
}

// equippedBonus возвращает бонус предмета в слоте: урон для оружия,
// защиту для брони. Отсутствие предмета или компонента - ноль,
// без каких-либо ошибок.
func equippedBonus(area *domain.Area, e *domain.Entity, slot domain.EquipSlot) int {
	itemID, ok := e.Equipment.ItemIn(slot)
	if !ok {
		return 0
	}
	item, ok := area.GetEntity(itemID)
	if !ok || item.Item == nil {
		return 0
	}
	if slot == domain.SlotArmor {
		return item.Item.Defense
	}
	return item.Item.Damage
}

func fireEvent(scripts ScriptRunner, ev domain.ScriptEvent, owner *domain.Entity, triggerer domain.ObjectID) {
	if scripts == nil {
		return
	}
	scripts.FireEvent(ev, owner, triggerer)
}
