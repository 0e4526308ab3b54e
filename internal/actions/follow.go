package actions

import (
	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/internal/systems"
)

// DefaultFollowDistance - дистанция следования по умолчанию
const DefaultFollowDistance = 2.0

// Follow держит владельца рядом с целью.
// Само не завершается: живет, пока цель валидна или пока его не снимут
// (обычно через ClearGroup).
type Follow struct {
	base
	target   domain.ObjectID
	distance float64
	st       systems.MoveState
}

func NewFollow(target domain.ObjectID, distance float64, group string) *Follow {
	if distance <= 0 {
		distance = DefaultFollowDistance
	}
	return &Follow{
		base:     base{kind: KindFollow, group: group},
		target:   target,
		distance: distance,
	}
}

func (a *Follow) Update(ctx *Context, dt float64) Status {
	if a.owner == nil || a.owner.Transform == nil {
		return StatusFailed
	}
	target, ok := ctx.Area.GetEntity(a.target)
	if !ok {
		return StatusFailed
	}
	// Бежим, только если отстали больше чем вдвое
	pos, ok := a.owner.Position()
	if !ok {
		return StatusFailed
	}
	targetPos, ok := target.Position()
	if !ok {
		return StatusFailed
	}
	run := pos.Distance2D(targetPos) > a.distance*2

	if ctx.Resolver.StepToward(a.owner, &a.st, target, a.distance, run, dt) == systems.StepFailed {
		return StatusFailed
	}
	return StatusInProgress
}

func (a *Follow) Dispose() {
	a.st.Reset()
	a.base.Dispose()
}
