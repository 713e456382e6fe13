package domain

import (
	"math"

	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/pkg/pathfinding"
)

const (
	MapWidth  = 80
	MapHeight = 43
	MapCount  = MapWidth * MapHeight

	// стоимость шагов для A*
	cardinalCost = 1.0
	diagonalCost = 1.45
)

// TileType - тип клетки
type TileType uint8

const (
	TileWall TileType = iota
	TileFloor
)

func (t TileType) String() string {
	if t == TileFloor {
		return "FLOOR"
	}
	return "WALL"
}

// Map - сетка уровня и индексы занятости.
// Все срезы имеют длину Width*Height, индекс клетки - Idx(x, y).
type Map struct {
	Tiles    []TileType
	Rooms    []Rect
	Width    int
	Height   int
	Revealed []bool
	Visible  []bool
	Blocked  []bool

	// TileContent: Индекс клетки -> сущности на ней.
	// Пересобирается каждый тик системой индексации.
	TileContent [][]types.EntityID
}

// NewMap создаёт карту, целиком состоящую из стен.
func NewMap(width, height int) *Map {
	count := width * height
	m := &Map{
		Tiles:       make([]TileType, count),
		Width:       width,
		Height:      height,
		Revealed:    make([]bool, count),
		Visible:     make([]bool, count),
		Blocked:     make([]bool, count),
		TileContent: make([][]types.EntityID, count),
	}
	for i := range m.Tiles {
		m.Tiles[i] = TileWall
	}
	return m
}

// Idx переводит координаты в индекс среза
func (m *Map) Idx(x, y int) int {
	return y*m.Width + x
}

// XY - обратное к Idx
func (m *Map) XY(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// Contains - координаты лежат внутри срезов карты
func (m *Map) Contains(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// InBounds - клетка, на которую вообще можно ступить.
// Нулевые строка и столбец всегда стены.
func (m *Map) InBounds(x, y int) bool {
	return x >= 1 && x <= m.Width-1 && y >= 1 && y <= m.Height-1
}

// IsWalkable - клетка в границах и не заблокирована
func (m *Map) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) || !m.Contains(x, y) {
		return false
	}
	return !m.Blocked[m.Idx(x, y)]
}

// PopulateBlocked сбрасывает Blocked к состоянию "заблокированы только стены".
func (m *Map) PopulateBlocked() {
	for i, tile := range m.Tiles {
		m.Blocked[i] = tile == TileWall
	}
}

// ClearContentIndex очищает TileContent, сохраняя выделенную память.
func (m *Map) ClearContentIndex() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// --- Оракул для FOV и A* ---

// Dimensions реализует fov.Grid
func (m *Map) Dimensions() (int, int) {
	return m.Width, m.Height
}

// IsOpaque реализует fov.Grid: сквозь стены не видно
func (m *Map) IsOpaque(idx int) bool {
	return m.Tiles[idx] == TileWall
}

var neighbours = [8]struct {
	dx, dy int
	cost   float64
}{
	{-1, 0, cardinalCost},
	{1, 0, cardinalCost},
	{0, -1, cardinalCost},
	{0, 1, cardinalCost},
	{-1, -1, diagonalCost},
	{1, -1, diagonalCost},
	{-1, 1, diagonalCost},
	{1, 1, diagonalCost},
}

// AvailableExits реализует pathfinding.Graph: соседние свободные клетки.
func (m *Map) AvailableExits(idx int) []pathfinding.Exit {
	x, y := m.XY(idx)
	exits := make([]pathfinding.Exit, 0, len(neighbours))
	for _, n := range neighbours {
		nx, ny := x+n.dx, y+n.dy
		if !m.IsWalkable(nx, ny) {
			continue
		}
		exits = append(exits, pathfinding.Exit{Idx: m.Idx(nx, ny), Cost: n.cost})
	}
	return exits
}

// Heuristic реализует pathfinding.Graph: расстояние по прямой
func (m *Map) Heuristic(from, to int) float64 {
	x1, y1 := m.XY(from)
	x2, y2 := m.XY(to)
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return math.Sqrt(dx*dx + dy*dy)
}
