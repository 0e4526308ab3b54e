package actions

import (
	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/internal/systems"
)

// MoveToPoint ведет владельца к фиксированной точке.
// Путь запрашивается при первом тике и живет внутри действия;
// завершается, когда путевые точки исчерпаны.
type MoveToPoint struct {
	base
	dest domain.Vector3
	run  bool
	st   systems.MoveState
}

func NewMoveToPoint(dest domain.Vector3, run bool, group string) *MoveToPoint {
	return &MoveToPoint{
		base: base{kind: KindMoveToPoint, group: group},
		dest: dest,
		run:  run,
	}
}

func (a *MoveToPoint) Update(ctx *Context, dt float64) Status {
	if a.owner == nil || a.owner.Transform == nil {
		return StatusFailed
	}
	switch ctx.Resolver.Step(a.owner, &a.st, a.dest, a.run, dt) {
	case systems.StepArrived:
		return StatusComplete
	case systems.StepFailed:
		fireBlocked(ctx, a.owner)
		return StatusFailed
	}
	return StatusInProgress
}

// fireBlocked сообщает существу, что его движение уперлось в тупик
func fireBlocked(ctx *Context, owner *domain.Entity) {
	if ctx.Scripts != nil {
		ctx.Scripts.FireEvent(domain.EventOnBlocked, owner, domain.ObjectInvalid)
	}
}

func (a *MoveToPoint) Dispose() {
	a.st.Reset()
	a.base.Dispose()
}

// MoveToObject ведет владельца к живой цели: назначение пересчитывается
// каждый тик, успех - попадание в радиус within, а не исчерпание пути.
type MoveToObject struct {
	base
	target domain.ObjectID
	within float64
	run    bool
	st     systems.MoveState
}

func NewMoveToObject(target domain.ObjectID, within float64, run bool, group string) *MoveToObject {
	if within <= 0 {
		within = systems.ArrivalThreshold
	}
	return &MoveToObject{
		base:   base{kind: KindMoveToObject, group: group},
		target: target,
		within: within,
		run:    run,
	}
}

func (a *MoveToObject) Update(ctx *Context, dt float64) Status {
	if a.owner == nil || a.owner.Transform == nil {
		return StatusFailed
	}
	target, ok := ctx.Area.GetEntity(a.target)
	if !ok {
		// Цель перестала существовать посреди пути
		return StatusFailed
	}
	switch ctx.Resolver.StepToward(a.owner, &a.st, target, a.within, a.run, dt) {
	case systems.StepArrived:
		return StatusComplete
	case systems.StepFailed:
		fireBlocked(ctx, a.owner)
		return StatusFailed
	}
	return StatusInProgress
}

func (a *MoveToObject) Dispose() {
	a.st.Reset()
	a.base.Dispose()
}
