// Package nav описывает контракт проходимой поверхности (walkmesh)
// и две эталонные реализации для тестов и демо-модуля.
// Ядро действий и движения зависит только от интерфейса Surface:
// настоящая реализация (меш уровня) подставляется композицией при
// сборке модуля, а не обнаруживается динамически.
package nav

import "github.com/th3w1zard1/Andastra-sub005/internal/domain"

// Obstacle - синтетическое круговое препятствие для перепрокладки пути
// (обычно - след заблокировавшего дорогу существа + запас).
type Obstacle struct {
	Center domain.Vector3
	Radius float64
}

// Surface - проходимая поверхность зоны. Только чтение:
// ядро никогда не мутирует навигационные данные.
type Surface interface {
	// FindPath ищет путь между двумя точками.
	// ok=false или пустой слайс означает "пути нет" - вызывающий
	// деградирует до прямого движения, это не ошибка.
	FindPath(from, to domain.Vector3) ([]domain.Vector3, bool)

	// ProjectToSurface прижимает точку к проходимой поверхности
	// (выставляет высоту Z). ok=false - точка вне поверхности.
	ProjectToSurface(p domain.Vector3) (domain.Vector3, bool)

	// FindPathAroundObstacles ищет путь, явно обходящий набор
	// круговых препятствий.
	FindPathAroundObstacles(from, to domain.Vector3, obstacles []Obstacle) ([]domain.Vector3, bool)
}
