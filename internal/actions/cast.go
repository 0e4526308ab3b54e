package actions

import (
	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/internal/systems"
)

const (
	// CastRange - дистанция, с которой можно читать заклинание
	CastRange = 10.0
	// DefaultCastTime - время чтения по умолчанию, сек
	DefaultCastTime = 1.5
)

// CastSpell сближается до дистанции каста, читает заклинание castTime
// секунд и разряжает его в цель: событие ON_SPELL_CAST_AT плюс урон.
// Формулы заклинаний - забота внешних систем; здесь только исполнение.
type CastSpell struct {
	base
	target   domain.ObjectID
	spellTag string
	castTime float64
	elapsed  float64
	st       systems.MoveState
}

func NewCastSpell(target domain.ObjectID, spellTag string, castTime float64, group string) *CastSpell {
	if castTime <= 0 {
		castTime = DefaultCastTime
	}
	return &CastSpell{
		base:     base{kind: KindCastSpell, group: group},
		target:   target,
		spellTag: spellTag,
		castTime: castTime,
	}
}

func (a *CastSpell) Update(ctx *Context, dt float64) Status {
	if a.owner == nil || a.owner.Transform == nil {
		return StatusFailed
	}
	target, ok := ctx.Area.GetEntity(a.target)
	if !ok {
		return StatusFailed
	}

	// Фаза 1: выйти на дистанцию каста
	if a.elapsed == 0 {
		switch ctx.Resolver.StepToward(a.owner, &a.st, target, CastRange, true, dt) {
		case systems.StepFailed:
			return StatusFailed
		case systems.StepMoved:
			return StatusInProgress
		}
		// Дошли: разворачиваемся к цели и начинаем читать
		if pos, ok := a.owner.Position(); ok {
			if tp, ok := target.Position(); ok {
				a.owner.Transform.Facing = domain.FacingTo(pos, tp)
			}
		}
	}

	// Фаза 2: чтение заклинания
	a.elapsed += dt
	if a.elapsed < a.castTime {
		return StatusInProgress
	}

	// Фаза 3: разрядка
	if ctx.Scripts != nil {
		ctx.Scripts.FireEvent(domain.EventOnSpellCastAt, target, a.owner.ID)
	}
	if target.Stats != nil && target.IsAlive() {
		damage := ctx.Rng.Intn(6) + 1
		if target.Stats.TakeDamage(damage) && ctx.Scripts != nil {
			ctx.Scripts.FireEvent(domain.EventOnDeath, target, a.owner.ID)
		}
	}
	return StatusComplete
}

func (a *CastSpell) Dispose() {
	a.st.Reset()
	a.base.Dispose()
}
