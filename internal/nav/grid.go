package nav

import (
	"math"

	"github.com/th3w1zard1/Andastra-sub005/internal/domain"
)

// GridSurface - простая проходимая поверхность на сетке клеток.
// Достаточна для демо-модуля и тестов: настоящий walkmesh уровня
// подключается снаружи через тот же интерфейс Surface.
type GridSurface struct {
	cols, rows int
	cellSize   float64
	walkable   []bool
	heights    []float64
}

// NewGridSurface создает сетку cols x rows с граничными стенами.
// Все внутренние клетки проходимы, высота 0.
func NewGridSurface(cols, rows int, cellSize float64) *GridSurface {
	g := &GridSurface{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		walkable: make([]bool, cols*rows),
		heights:  make([]float64, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			isBoundary := col == 0 || row == 0 || col == cols-1 || row == rows-1
			g.walkable[row*cols+col] = !isBoundary
		}
	}
	return g
}

// SetWall делает клетку непроходимой
func (g *GridSurface) SetWall(col, row int) {
	if g.inBounds(col, row) {
		g.walkable[row*g.cols+col] = false
	}
}

// SetHeight задает высоту клетки (для проекции на поверхность)
func (g *GridSurface) SetHeight(col, row int, h float64) {
	if g.inBounds(col, row) {
		g.heights[row*g.cols+col] = h
	}
}

func (g *GridSurface) inBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

func (g *GridSurface) cellAt(p domain.Vector3) (int, int) {
	// Floor, а не усечение: иначе отрицательные координаты
	// схлопываются в нулевую строку/колонку
	return int(math.Floor(p.X / g.cellSize)), int(math.Floor(p.Y / g.cellSize))
}

func (g *GridSurface) cellCenter(col, row int) domain.Vector3 {
	return domain.Vector3{
		X: (float64(col) + 0.5) * g.cellSize,
		Y: (float64(row) + 0.5) * g.cellSize,
		Z: g.heights[row*g.cols+col],
	}
}

func (g *GridSurface) FindPath(from, to domain.Vector3) ([]domain.Vector3, bool) {
	return g.search(from, to, nil)
}

func (g *GridSurface) FindPathAroundObstacles(from, to domain.Vector3, obstacles []Obstacle) ([]domain.Vector3, bool) {
	// Помечаем клетки, чьи центры попадают в круги препятствий
	blocked := make(map[int]struct{})
	for _, obs := range obstacles {
		minCol := int((obs.Center.X - obs.Radius) / g.cellSize)
		maxCol := int((obs.Center.X + obs.Radius) / g.cellSize)
		minRow := int((obs.Center.Y - obs.Radius) / g.cellSize)
		maxRow := int((obs.Center.Y + obs.Radius) / g.cellSize)
		for row := minRow; row <= maxRow; row++ {
			for col := minCol; col <= maxCol; col++ {
				if !g.inBounds(col, row) {
					continue
				}
				c := g.cellCenter(col, row)
				if c.Distance2D(obs.Center) <= obs.Radius {
					blocked[row*g.cols+col] = struct{}{}
				}
			}
		}
	}
	return g.search(from, to, blocked)
}

func (g *GridSurface) ProjectToSurface(p domain.Vector3) (domain.Vector3, bool) {
	col, row := g.cellAt(p)
	if !g.inBounds(col, row) || !g.walkable[row*g.cols+col] {
		return domain.Vector3{}, false
	}
	return domain.Vector3{X: p.X, Y: p.Y, Z: g.heights[row*g.cols+col]}, true
}

// search - BFS по клеткам. Порядок соседей фиксирован, поэтому при
// одинаковых входах путь всегда одинаковый (детерминизм реплеев).
func (g *GridSurface) search(from, to domain.Vector3, extraBlocked map[int]struct{}) ([]domain.Vector3, bool) {
	startCol, startRow := g.cellAt(from)
	goalCol, goalRow := g.cellAt(to)
	if !g.inBounds(startCol, startRow) || !g.inBounds(goalCol, goalRow) {
		return nil, false
	}
	start := startRow*g.cols + startCol
	goal := goalRow*g.cols + goalCol

	passable := func(idx int) bool {
		if !g.walkable[idx] {
			return false
		}
		if extraBlocked != nil {
			if _, bad := extraBlocked[idx]; bad {
				return false
			}
		}
		return true
	}

	if !passable(goal) {
		return nil, false
	}
	if start == goal {
		// Уже в клетке цели: путь из одной точной точки назначения
		return []domain.Vector3{to}, true
	}

	// Сначала прямые направления, потом диагонали
	neighbors := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}

	parent := make([]int, g.cols*g.rows)
	for i := range parent {
		parent[i] = -1
	}
	parent[start] = start
	queue := []int{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			break
		}
		curCol := cur % g.cols
		curRow := cur / g.cols
		for _, n := range neighbors {
			col := curCol + n[0]
			row := curRow + n[1]
			if !g.inBounds(col, row) {
				continue
			}
			idx := row*g.cols + col
			if parent[idx] != -1 || !passable(idx) {
				continue
			}
			parent[idx] = cur
			queue = append(queue, idx)
		}
	}

	if parent[goal] == -1 {
		return nil, false
	}

	// Восстанавливаем путь от цели к старту
	var cells []int
	for cur := goal; cur != start; cur = parent[cur] {
		cells = append(cells, cur)
	}

	// Разворачиваем в путевые точки; последняя точка - точное место назначения
	path := make([]domain.Vector3, 0, len(cells))
	for i := len(cells) - 1; i > 0; i-- {
		idx := cells[i]
		path = append(path, g.cellCenter(idx%g.cols, idx/g.cols))
	}
	path = append(path, to)
	return path, true
}
