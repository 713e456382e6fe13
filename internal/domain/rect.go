package domain

import "github.com/Boxfort/rustlike/internal/core/types"

// Rect - прямоугольная комната. X2/Y2 включительно: пол вырезается
// в диапазоне (X1, X2] x (Y1, Y2], периметр остаётся стеной.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect строит комнату по левому верхнему углу и размерам.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersects - пересечение с учётом границ (касание тоже считается)
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center возвращает центр комнаты (целочисленное деление).
func (r Rect) Center() types.Point {
	return types.Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}
