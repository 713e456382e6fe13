package domain

import (
	"math"

	"github.com/Boxfort/rustlike/internal/core/types"
)

// Point возвращает позицию как точку сетки.
func (p Position) Point() types.Point {
	return types.Point{X: p.X, Y: p.Y}
}

// DistanceTo возвращает точное расстояние до другой точки (Pythagoras)
func (p Position) DistanceTo(other types.Point) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// IsAdjacent возвращает true, если цель в соседней клетке (включая диагональ)
func (p Position) IsAdjacent(other types.Point) bool {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	// Если разница по X и Y не больше 1, значит соседи
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

// Shift возвращает новую позицию со смещением, не меняя текущую
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
