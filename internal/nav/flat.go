package nav

import "github.com/th3w1zard1/Andastra-sub005/internal/domain"

// FlatSurface - вырожденная поверхность "меша нет".
// Путей не находит (вызывающий падает в прямое движение),
// проекция просто кладет точку на плоскость Z=0.
// Используется в тестах и как запасной вариант для зон без меша.
type FlatSurface struct{}

func (FlatSurface) FindPath(from, to domain.Vector3) ([]domain.Vector3, bool) {
	return nil, false
}

func (FlatSurface) ProjectToSurface(p domain.Vector3) (domain.Vector3, bool) {
	return domain.Vector3{X: p.X, Y: p.Y, Z: 0}, true
}

func (FlatSurface) FindPathAroundObstacles(from, to domain.Vector3, obstacles []Obstacle) ([]domain.Vector3, bool) {
	return nil, false
}
