package actions

import (
	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/internal/systems"
)

// MeleeRange - дистанция удара в ближнем бою.
// В будущем WeaponRange можно брать из экипированного оружия.
const MeleeRange = 1.5

// Attack сближается с целью бегом и наносит один удар.
// Две фазы: подход (общий резолвер движения) и сам удар.
type Attack struct {
	base
	target domain.ObjectID
	st     systems.MoveState
}

func NewAttack(target domain.ObjectID, group string) *Attack {
	return &Attack{
		base:   base{kind: KindAttack, group: group},
		target: target,
	}
}

func (a *Attack) Update(ctx *Context, dt float64) Status {
	if a.owner == nil || a.owner.Transform == nil {
		return StatusFailed
	}
	target, ok := ctx.Area.GetEntity(a.target)
	if !ok {
		return StatusFailed
	}
	if !target.IsAlive() {
		// Бить уже некого
		return StatusComplete
	}

	switch ctx.Resolver.StepToward(a.owner, &a.st, target, MeleeRange, true, dt) {
	case systems.StepArrived:
		systems.ResolveAttack(ctx.Area, a.owner, target, ctx.Rng, ctx.Scripts)
		return StatusComplete
	case systems.StepFailed:
		return StatusFailed
	}
	return StatusInProgress
}

func (a *Attack) Dispose() {
	a.st.Reset()
	a.base.Dispose()
}
