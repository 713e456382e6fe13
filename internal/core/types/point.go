package types

// Point — координаты клетки на сетке.
type Point struct {
	X int
	Y int
}

// Pt — короткий конструктор для Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add возвращает точку, смещённую на (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
