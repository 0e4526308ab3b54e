package domain

import "math"

// Vector3 - точка или направление в пространстве модуля.
// Ось Z - высота. Вся навигация и коллизии считаются в плоскости XY,
// Z выставляется проекцией на поверхность.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Scale(k float64) Vector3 {
	return Vector3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Length2D возвращает длину вектора в горизонтальной плоскости (Z игнорируем)
func (v Vector3) Length2D() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance2D возвращает горизонтальное расстояние до другой точки
func (v Vector3) Distance2D(o Vector3) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Normalized2D возвращает единичный вектор в плоскости XY.
// Нулевой вектор возвращается как есть (деления на ноль нет).
func (v Vector3) Normalized2D() Vector3 {
	l := v.Length2D()
	if l == 0 {
		return Vector3{}
	}
	return Vector3{X: v.X / l, Y: v.Y / l}
}

// Dot2D - скалярное произведение в плоскости XY
func (v Vector3) Dot2D(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y
}

// FacingTo возвращает азимут (радианы) от точки from к точке to.
// Это и есть направление взгляда актора при движении.
func FacingTo(from, to Vector3) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}
