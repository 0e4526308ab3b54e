package systems

import (
	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
	"github.com/th3w1zard1/Andastra-sub005/internal/nav"
)

const (
	// ArrivalThreshold - дистанция, с которой путевая точка считается достигнутой
	ArrivalThreshold = 0.5

	// Запасные скорости (юниты/сек), если у существа нет характеристик.
	// Движение не должно вставать из-за отсутствующих статов.
	DefaultWalkSpeed = 2.5
	DefaultRunSpeed  = 5.0
)

// StepOutcome - результат одного тика движения
type StepOutcome uint8

const (
	// StepMoved - шаг сделан (или путь перепроложен), нужны еще тики
	StepMoved StepOutcome = iota
	// StepArrived - путь исчерпан, цель достигнута
	StepArrived
	// StepFailed - движение невозможно (нет позиции / затор)
	StepFailed
)

// MoveState - изменяемое состояние движения одного действия.
// Путь принадлежит только этому действию; перепрокладка его заменяет.
// Индекс за последней точкой означает "пришли".
type MoveState struct {
	Path    []domain.Vector3
	PathIdx int

	// Rerouted - текущий путь является обходным после столкновения.
	// Движение к объекту дохаживает такой путь до конца, прежде чем
	// вернуться к прямому преследованию.
	Rerouted bool
}

// Reset стирает закешированный путь (свежая попытка начнется с чистого листа)
func (st *MoveState) Reset() {
	st.Path = nil
	st.PathIdx = 0
	st.Rerouted = false
}

// MoveSpeed выбирает скорость актора.
// Бег - если запрошен и существо умеет; нулевые статы заменяются запасными.
func MoveSpeed(actor *domain.Entity, run bool) float64 {
	walk, runSpeed := DefaultWalkSpeed, DefaultRunSpeed
	if s := actor.Stats; s != nil {
		if s.WalkSpeed > 0 {
			walk = s.WalkSpeed
		}
		if s.RunSpeed > 0 {
			runSpeed = s.RunSpeed
		}
	}
	if run {
		return runSpeed
	}
	return walk
}

// MovementResolver - общая логика всех движущихся действий:
// получение пути, продвижение по точкам, проекция на поверхность,
// выбор скорости и разворот лицом по ходу движения.
// Один и тот же код обслуживает движение к точке и к объекту.
type MovementResolver struct {
	Surface  nav.Surface
	Detector *CollisionDetector
	Area     *domain.Area
}

// Step продвигает актора на один тик к точке dest.
//
// Первый вызов запрашивает путь у поверхности; пустой ответ - не ошибка,
// а деградация до прямого пути из единственной точки dest.
// Направление и дистанции считаются в горизонтальной плоскости,
// высота берется проекцией на поверхность перед фиксацией позиции.
func (r *MovementResolver) Step(actor *domain.Entity, st *MoveState, dest domain.Vector3, run bool, dt float64) StepOutcome {
	t := actor.Transform
	if t == nil {
		// Нет позиции - нечего двигать
		return StepFailed
	}
	pos := t.Position

	if len(st.Path) == 0 {
		if path, ok := r.Surface.FindPath(pos, dest); ok && len(path) > 0 {
			st.Path = path
		} else {
			st.Path = []domain.Vector3{dest}
		}
		st.PathIdx = 0
	}

	// Пропускаем точки, в которых уже стоим
	for st.PathIdx < len(st.Path) && pos.Distance2D(st.Path[st.PathIdx]) <= ArrivalThreshold {
		st.PathIdx++
	}
	if st.PathIdx >= len(st.Path) {
		return StepArrived
	}

	waypoint := st.Path[st.PathIdx]
	toWaypoint := waypoint.Sub(pos)
	dist := toWaypoint.Length2D()

	stepLen := MoveSpeed(actor, run) * dt
	if stepLen > dist {
		stepLen = dist
	}
	dir := toWaypoint.Normalized2D()
	proposed := pos.Add(dir.Scale(stepLen))

	switch r.Detector.ResolveStep(actor, pos, proposed, dest, st, r.Area, r.Surface) {
	case VerdictFailed:
		st.Reset()
		return StepFailed
	case VerdictRerouted:
		// Путь заменен обходным; шаг сделаем на следующем тике
		return StepMoved
	}

	// Прижимаем к поверхности и фиксируем позицию.
	// Точка вне проходимой поверхности не фиксируется никогда:
	// актор остается на месте, движение отказывает.
	projected, ok := r.Surface.ProjectToSurface(proposed)
	if !ok {
		st.Reset()
		return StepFailed
	}
	t.Position = projected
	if stepLen > 0 {
		t.Facing = domain.FacingTo(pos, waypoint)
	}

	if proposed.Distance2D(waypoint) <= ArrivalThreshold {
		st.PathIdx++
		if st.PathIdx >= len(st.Path) {
			return StepArrived
		}
	}
	return StepMoved
}

// StepToward - движение к живой цели: назначение пересчитывается каждый
// тик, путь не кешируется (кроме обходного после столкновения), успех -
// попадание в радиус range, а не исчерпание пути.
func (r *MovementResolver) StepToward(actor *domain.Entity, st *MoveState, target *domain.Entity, rng float64, run bool, dt float64) StepOutcome {
	pos, ok := actor.Position()
	if !ok {
		return StepFailed
	}
	targetPos, ok := target.Position()
	if !ok {
		return StepFailed
	}

	if pos.Distance2D(targetPos) <= rng {
		return StepArrived
	}

	// Обходной путь (если был принят) дохаживаем до конца,
	// иначе каждый тик шагаем напрямую к свежей позиции цели.
	if st.Rerouted && st.PathIdx >= len(st.Path) {
		st.Reset()
	}
	if !st.Rerouted {
		st.Path = []domain.Vector3{targetPos}
		st.PathIdx = 0
	}

	outcome := r.Step(actor, st, targetPos, run, dt)
	if outcome == StepArrived {
		// Путь кончился, но цель могла уйти - проверяем радиус заново
		st.Reset()
		if p, ok := actor.Position(); ok && p.Distance2D(targetPos) <= rng {
			return StepArrived
		}
		return StepMoved
	}
	return outcome
}
