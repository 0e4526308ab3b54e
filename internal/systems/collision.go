package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/internal/nav"
	"github.com/th3w1zard1/Andastra-sub005/pkg/logger"
)

const (
	// DefaultMaxBumps - предохранитель: столько столкновений подряд
	// переживает движение, прежде чем сдаться.
	DefaultMaxBumps = 5

	// DefaultHitRadius - запасной радиус следа, когда у существа
	// нет данных о внешности.
	DefaultHitRadius = 0.5

	// RerouteSafetyMargin - запас вокруг блокера при перепрокладке пути
	RerouteSafetyMargin = 0.25
)

// Verdict - решение детектора по предложенному шагу
type Verdict uint8

const (
	// VerdictClear - шаг свободен, можно фиксировать позицию
	VerdictClear Verdict = iota
	// VerdictRerouted - путь заменен обходным, шаг в этом тике не делается
	VerdictRerouted
	// VerdictFailed - движение исчерпало попытки, действие должно упасть
	VerdictFailed
)

// bumpState - счетчики столкновений одного актора.
// Обнуляются при первом же свободном шаге.
type bumpState struct {
	count       int
	lastBlocker domain.ObjectID
}

// CollisionDetector проверяет отрезок перемещения против следов других
// существ и ведет политику bump/reroute. Счетчики принадлежат только
// самому актору - чужие состояния детектор не трогает.
type CollisionDetector struct {
	MaxBumps int

	bumps map[domain.ObjectID]*bumpState
}

func NewCollisionDetector(maxBumps int) *CollisionDetector {
	if maxBumps <= 0 {
		maxBumps = DefaultMaxBumps
	}
	return &CollisionDetector{
		MaxBumps: maxBumps,
		bumps:    make(map[domain.ObjectID]*bumpState),
	}
}

// FindBlocker ищет первое существо, чей след пересекает отрезок from->to.
// След блокера расширяется на след самого актора (сумма Минковского).
// Возвращает блокера и нормаль выталкивания.
func (d *CollisionDetector) FindBlocker(actor *domain.Entity, from, to domain.Vector3, area *domain.Area) (*domain.Entity, domain.Vector3, bool) {
	seg := to.Sub(from)
	segLen2 := seg.Dot2D(seg)
	actorRadius := actor.Footprint(DefaultHitRadius)

	for _, other := range area.Creatures() {
		if other.ID == actor.ID || !other.IsAlive() {
			continue
		}
		center, ok := other.Position()
		if !ok {
			continue
		}
		radius := actorRadius + other.Footprint(DefaultHitRadius)

		// Ближайшая точка отрезка к центру следа, проекция зажата в [0,1]
		t := 0.0
		if segLen2 > 0 {
			t = center.Sub(from).Dot2D(seg) / segLen2
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}
		closest := from.Add(seg.Scale(t))
		if closest.Distance2D(center) <= radius {
			normal := closest.Sub(center).Normalized2D()
			return other, normal, true
		}
	}
	return nil, domain.Vector3{}, false
}

// ResolveStep применяет политику обхода к предложенному шагу.
//
// Порядок проверок фиксирован:
//  1. нет блокера -> сброс счетчиков, шаг свободен;
//  2. счетчик bump превысил порог -> отказ (предохранитель);
//  3. тот же блокер, что и в прошлый раз -> отказ (топтание на месте);
//  4. перепрокладка вокруг блокера: успех -> принять обходной путь,
//     неудача -> отказ ("totally blocked").
//
// Счетчик и память о блокере обнуляются только свободным шагом:
// лишь он доказывает, что обход действительно сработал.
func (d *CollisionDetector) ResolveStep(actor *domain.Entity, from, to, goal domain.Vector3, st *MoveState, area *domain.Area, surface nav.Surface) Verdict {
	blocker, _, hit := d.FindBlocker(actor, from, to, area)
	if !hit {
		delete(d.bumps, actor.ID)
		return VerdictClear
	}

	b := d.bumps[actor.ID]
	if b == nil {
		b = &bumpState{}
		d.bumps[actor.ID] = b
	}
	b.count++

	bumpLogger := logger.Log.WithFields(logrus.Fields{
		"component":  "collision_detector",
		"actor_id":   actor.ID,
		"blocker_id": blocker.ID,
		"bump_count": b.count,
	})

	if b.count > d.MaxBumps {
		bumpLogger.Debug("Bump limit exceeded, movement gives up")
		d.ClearState(actor.ID)
		return VerdictFailed
	}

	if blocker.ID == b.lastBlocker {
		bumpLogger.Debug("Same blocker twice in a row, movement gives up")
		d.ClearState(actor.ID)
		return VerdictFailed
	}
	b.lastBlocker = blocker.ID

	// Перепрокладка: синтетическое круговое препятствие на месте блокера
	blockerPos, _ := blocker.Position()
	obstacle := nav.Obstacle{
		Center: blockerPos,
		Radius: blocker.Footprint(DefaultHitRadius) + actor.Footprint(DefaultHitRadius) + RerouteSafetyMargin,
	}
	if detour, ok := surface.FindPathAroundObstacles(from, goal, []nav.Obstacle{obstacle}); ok && len(detour) > 0 {
		st.Path = detour
		st.PathIdx = 0
		st.Rerouted = true
		bumpLogger.Debug("Rerouted around blocker")
		return VerdictRerouted
	}

	bumpLogger.Debug("No route around blocker, movement gives up")
	d.ClearState(actor.ID)
	return VerdictFailed
}

// BumpCount возвращает текущий счетчик столкновений актора
func (d *CollisionDetector) BumpCount(id domain.ObjectID) int {
	if b, ok := d.bumps[id]; ok {
		return b.count
	}
	return 0
}

// ClearState стирает счетчики актора.
// Вызывается при завершении/отказе движения, чтобы свежая попытка
// начиналась с чистого состояния. Идемпотентна.
func (d *CollisionDetector) ClearState(id domain.ObjectID) {
	delete(d.bumps, id)
}
