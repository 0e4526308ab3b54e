package domain

// Entity - игровой объект модуля.
// Компоненты-указатели: nil означает отсутствие свойства.
type Entity struct {
	ID   ObjectID   `json:"id"`
	Type EntityType `json:"type"`
	Tag  string     `json:"tag,omitempty"`
	Name string     `json:"name"`

	Transform  *TransformComponent  `json:"transform,omitempty"`
	Stats      *StatsComponent      `json:"stats,omitempty"`
	Appearance *AppearanceComponent `json:"appearance,omitempty"`
	Scripts    *ScriptsComponent    `json:"scripts,omitempty"`
	Item       *ItemComponent       `json:"item,omitempty"`
	Equipment  *EquipmentComponent  `json:"equipment,omitempty"`
}

// IsCreature - существо с телом (участвует в коллизиях)
func (e *Entity) IsCreature() bool {
	return e.Type == EntityTypeCreature
}

// IsAlive - живое существо
func (e *Entity) IsAlive() bool {
	return e.Stats != nil && !e.Stats.IsDead
}

// Position возвращает позицию с явным признаком наличия Transform.
// Отсутствующий Transform - это precondition failure для действий,
// поэтому никаких паник и нулевых точек "по умолчанию".
func (e *Entity) Position() (Vector3, bool) {
	if e.Transform == nil {
		return Vector3{}, false
	}
	return e.Transform.Position, true
}

// Footprint возвращает радиус следа существа.
// Когда данных о внешности нет, берем запасной радиус.
func (e *Entity) Footprint(fallback float64) float64 {
	if e.Appearance == nil || e.Appearance.HitRadius <= 0 {
		return fallback
	}
	return e.Appearance.HitRadius
}
