package actions

import (
	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
)

// DestroyObject убирает объект из зоны (опционально - с задержкой).
// Перед удалением объект получает ON_DESTROYED.
// Очередь и отложенные записи удаленного объекта вычищает драйвер тиков.
type DestroyObject struct {
	base
	target  domain.ObjectID
	delay   float64
	elapsed float64
}

func NewDestroyObject(target domain.ObjectID, delay float64, group string) *DestroyObject {
	return &DestroyObject{
		base:   base{kind: KindDestroyObject, group: group},
		target: target,
		delay:  delay,
	}
}

func (a *DestroyObject) Update(ctx *Context, dt float64) Status {
	target, ok := ctx.Area.GetEntity(a.target)
	if !ok {
		// Уже нет - считаем работу сделанной
		return StatusComplete
	}

	a.elapsed += dt
	if a.elapsed < a.delay {
		return StatusInProgress
	}

	if ctx.Scripts != nil {
		var triggerer domain.ObjectID = domain.ObjectInvalid
		if a.owner != nil {
			triggerer = a.owner.ID
		}
		ctx.Scripts.FireEvent(domain.EventOnDestroyed, target, triggerer)
	}
	ctx.Area.RemoveEntity(target.ID)
	return StatusComplete
}
