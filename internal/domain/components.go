package domain

// --- КОМПОНЕНТЫ ---

// TransformComponent - позиция и направление взгляда.
// Если компонента нет, объект не существует в пространстве
// (абстрактные сущности: звуки, глобальные триггеры).
type TransformComponent struct {
	Position Vector3 `json:"position"`
	Facing   float64 `json:"facing"` // радианы, atan2(dy, dx)
}

// StatsComponent - характеристики и ресурсы.
// Скорости в юнитах/сек; ноль означает "характеристика не задана",
// резолвер движения подставит запасное значение.
type StatsComponent struct {
	HP        int     `json:"hp"`
	MaxHP     int     `json:"maxHp"`
	WalkSpeed float64 `json:"walkSpeed"`
	RunSpeed  float64 `json:"runSpeed"`
	IsDead    bool    `json:"isDead"`
}

// TakeDamage наносит урон. Возвращает true, если цель погибла.
func (s *StatsComponent) TakeDamage(amount int) bool {
	if s.IsDead {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	s.HP -= amount
	if s.HP <= 0 {
		s.HP = 0
		s.IsDead = true
		return true
	}
	return false
}

// AppearanceComponent - габариты для коллизий.
// HitRadius - радиус горизонтального "следа" существа.
type AppearanceComponent struct {
	HitRadius float64 `json:"hitRadius"`
}

// ScriptsComponent - привязка скриптовых событий к именам скриптов.
// Пустая мапа допустима: событие без обработчика просто игнорируется.
type ScriptsComponent struct {
	Handlers map[ScriptEvent]string `json:"handlers,omitempty"`
}

// HandlerFor возвращает имя скрипта для события (явный ok вместо nil-магии)
func (sc *ScriptsComponent) HandlerFor(ev ScriptEvent) (string, bool) {
	if sc == nil || sc.Handlers == nil {
		return "", false
	}
	name, ok := sc.Handlers[ev]
	return name, ok
}

// ItemComponent - свойства предмета
type ItemComponent struct {
	Slot    EquipSlot `json:"slot"`
	Damage  int       `json:"damage"`
	Defense int       `json:"defense"`
}

// EquipmentComponent - что сейчас надето на существо
type EquipmentComponent struct {
	Slots map[EquipSlot]ObjectID `json:"slots,omitempty"`
}

// Equip надевает предмет в слот, возвращая ID вытесненного предмета
func (eq *EquipmentComponent) Equip(slot EquipSlot, item ObjectID) ObjectID {
	if eq.Slots == nil {
		eq.Slots = make(map[EquipSlot]ObjectID)
	}
	prev := eq.Slots[slot]
	eq.Slots[slot] = item
	return prev
}

// ItemIn возвращает предмет в слоте
func (eq *EquipmentComponent) ItemIn(slot EquipSlot) (ObjectID, bool) {
	if eq == nil || eq.Slots == nil {
		return ObjectInvalid, false
	}
	id, ok := eq.Slots[slot]
	return id, ok && id != ObjectInvalid
}
