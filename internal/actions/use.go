package actions

import (
	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/internal/systems"
)

// UseRange - с какой дистанции можно взаимодействовать с объектом
const UseRange = 1.5

// UseObject подходит к объекту и дергает его обработчик ON_USED.
// Что именно происходит при использовании (дверь, рычаг, контейнер) -
// решает скрипт объекта, не ядро.
type UseObject struct {
	base
	target domain.ObjectID
	st     systems.MoveState
}

func NewUseObject(target domain.ObjectID, group string) *UseObject {
	return &UseObject{
		base:   base{kind: KindUseObject, group: group},
		target: target,
	}
}

func (a *UseObject) Update(ctx *Context, dt float64) Status {
	if a.owner == nil || a.owner.Transform == nil {
		return StatusFailed
	}
	target, ok := ctx.Area.GetEntity(a.target)
	if !ok {
		return StatusFailed
	}

	switch ctx.Resolver.StepToward(a.owner, &a.st, target, UseRange, false, dt) {
	case systems.StepArrived:
		if ctx.Scripts != nil {
			ctx.Scripts.FireEvent(domain.EventOnUsed, target, a.owner.ID)
		}
		return StatusComplete
	case systems.StepFailed:
		return StatusFailed
	}
	return StatusInProgress
}

func (a *UseObject) Dispose() {
	a.st.Reset()
	a.base.Dispose()
}
