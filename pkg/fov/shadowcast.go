// Package fov считает поле зрения симметричным shadowcasting.
//
// Симметричность означает: если клетка пола B видна из клетки пола A,
// то и A видна из B. Наклоны хранятся дробями, чтобы результат не
// зависел от ошибок округления float.
package fov

import (
	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Grid — то, что FOV нужно знать о карте.
type Grid interface {
	Dimensions() (width, height int)
	IsOpaque(idx int) bool
}

// Мультипликаторы для трансформации (col, depth) в 4 квадранта:
// север, юг, восток, запад.
var quadrants = [4][4]int{
	{1, 0, 0, -1},
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
}

// slope — наклон num/den, den всегда положителен.
type slope struct {
	num, den int
}

type row struct {
	depth      int
	start, end slope
}

type caster struct {
	grid          Grid
	width, height int
	origin        types.Point
	radius        int
	xx, xy        int
	yx, yy        int
	visible       map[types.Point]bool
}

// Compute возвращает множество клеток, видимых из origin в радиусе radius.
// Клетка origin видна всегда; клетки за границей карты не попадают в результат.
func Compute(origin types.Point, radius int, grid Grid) map[types.Point]bool {
	width, height := grid.Dimensions()
	visible := make(map[types.Point]bool)

	if radius < 0 || origin.X < 0 || origin.Y < 0 || origin.X >= width || origin.Y >= height {
		logger.Log.WithFields(logrus.Fields{
			"component": "fov",
			"origin":    origin,
			"radius":    radius,
		}).Warn("FOV calculation skipped for invalid observer.")
		return visible
	}

	visible[origin] = true

	for _, q := range quadrants {
		c := caster{
			grid:    grid,
			width:   width,
			height:  height,
			origin:  origin,
			radius:  radius,
			xx:      q[0],
			xy:      q[1],
			yx:      q[2],
			yy:      q[3],
			visible: visible,
		}
		c.scan(row{depth: 1, start: slope{-1, 1}, end: slope{1, 1}})
	}

	return visible
}

func (c *caster) scan(r row) {
	if r.depth > c.radius {
		return
	}

	minCol := roundTiesUp(r.depth*r.start.num, r.start.den)
	maxCol := roundTiesDown(r.depth*r.end.num, r.end.den)

	havePrev, prevWall := false, false
	for col := minCol; col <= maxCol; col++ {
		x := c.origin.X + col*c.xx + r.depth*c.xy
		y := c.origin.Y + col*c.yx + r.depth*c.yy
		wall := c.isWall(x, y)

		if wall || isSymmetric(r, col) {
			c.reveal(x, y, col, r.depth)
		}

		if havePrev && prevWall && !wall {
			r.start = slopeOf(r.depth, col)
		}
		if havePrev && !prevWall && wall {
			next := row{depth: r.depth + 1, start: r.start, end: slopeOf(r.depth, col)}
			c.scan(next)
		}
		havePrev, prevWall = true, wall
	}

	if havePrev && !prevWall {
		c.scan(row{depth: r.depth + 1, start: r.start, end: r.end})
	}
}

// isWall: выход за границы считается стеной
func (c *caster) isWall(x, y int) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return true
	}
	return c.grid.IsOpaque(y*c.width + x)
}

func (c *caster) reveal(x, y, col, depth int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	if col*col+depth*depth > c.radius*c.radius {
		return
	}
	c.visible[types.Point{X: x, Y: y}] = true
}

func slopeOf(depth, col int) slope {
	return slope{num: 2*col - 1, den: 2 * depth}
}

// isSymmetric: центр клетки лежит внутри сектора [start, end]
func isSymmetric(r row, col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

// roundTiesUp = floor(num/den + 1/2)
func roundTiesUp(num, den int) int {
	return floorDiv(2*num+den, 2*den)
}

// roundTiesDown = ceil(num/den - 1/2)
func roundTiesDown(num, den int) int {
	return -floorDiv(-(2*num - den), 2*den)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
