package domain

// Area - одна игровая зона: реестр объектов + стабильный порядок обхода.
// Порядок обхода = порядок создания. Это важно для детерминизма:
// при одном и том же сиде реплей тика всегда идет по одним и тем же
// сущностям в одном и том же порядке.
type Area struct {
	Tag string

	entities []*Entity
	registry map[ObjectID]*Entity
}

func NewArea(tag string) *Area {
	return &Area{
		Tag:      tag,
		registry: make(map[ObjectID]*Entity),
	}
}

// AddEntity добавляет сущность в зону.
// Повторное добавление того же ID игнорируется.
func (a *Area) AddEntity(e *Entity) {
	if e == nil || e.ID == ObjectInvalid {
		return
	}
	if _, exists := a.registry[e.ID]; exists {
		return
	}
	a.registry[e.ID] = e
	a.entities = append(a.entities, e)
}

// RemoveEntity удаляет сущность из зоны.
// Слайс сжимаем со сдвигом (не swap-with-last!), чтобы сохранить
// стабильный порядок обхода оставшихся сущностей.
func (a *Area) RemoveEntity(id ObjectID) {
	if _, ok := a.registry[id]; !ok {
		return
	}
	delete(a.registry, id)
	for i, e := range a.entities {
		if e.ID == id {
			copy(a.entities[i:], a.entities[i+1:])
			a.entities[len(a.entities)-1] = nil
			a.entities = a.entities[:len(a.entities)-1]
			return
		}
	}
}

// GetEntity ищет сущность по ID (явный ok вместо nil)
func (a *Area) GetEntity(id ObjectID) (*Entity, bool) {
	e, ok := a.registry[id]
	return e, ok
}

// IsValid - жива ли еще ссылка на объект
func (a *Area) IsValid(id ObjectID) bool {
	_, ok := a.registry[id]
	return ok
}

// Entities возвращает сущности в стабильном порядке создания.
// Слайс принадлежит зоне: вызывающий не должен его модифицировать.
func (a *Area) Entities() []*Entity {
	return a.entities
}

// Creatures возвращает существ зоны в стабильном порядке
func (a *Area) Creatures() []*Entity {
	var out []*Entity
	for _, e := range a.entities {
		if e.IsCreature() {
			out = append(out, e)
		}
	}
	return out
}

// CreaturesNear возвращает живых существ в радиусе от точки,
// исключая exclude. Порядок - стабильный порядок создания.
func (a *Area) CreaturesNear(p Vector3, radius float64, exclude ObjectID) []*Entity {
	var out []*Entity
	for _, e := range a.entities {
		if e.ID == exclude || !e.IsCreature() || !e.IsAlive() {
			continue
		}
		pos, ok := e.Position()
		if !ok {
			continue
		}
		if p.Distance2D(pos) <= radius {
			out = append(out, e)
		}
	}
	return out
}
