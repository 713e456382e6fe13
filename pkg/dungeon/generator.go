package dungeon

import (
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/Boxfort/rustlike/pkg/rng"
	"github.com/sirupsen/logrus"
)

// Константы генерации
const (
	MaxRooms = 30
	MinSize  = 6
	MaxSize  = 10
)

// NewMapRoomsAndCorridors создает уровень из непересекающихся комнат,
// соединённых Г-образными коридорами. Игрок стартует в центре Rooms[0].
func NewMapRoomsAndCorridors(src rng.Source) *domain.Map {
	m := domain.NewMap(domain.MapWidth, domain.MapHeight)

	for i := 0; i < MaxRooms; i++ {
		w := src.Range(MinSize, MaxSize)
		h := src.Range(MinSize, MaxSize)
		x := src.Range(1, m.Width-w-1)
		y := src.Range(1, m.Height-h-1)
		newRoom := domain.NewRect(x, y, w, h)

		failed := false
		for _, other := range m.Rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		applyRoom(m, newRoom)

		// Соединяем с предыдущей комнатой
		if len(m.Rooms) > 0 {
			next := newRoom.Center()
			prev := m.Rooms[len(m.Rooms)-1].Center()
			if src.Range(0, 2) == 1 {
				applyHorizontalTunnel(m, prev.X, next.X, prev.Y)
				applyVerticalTunnel(m, prev.Y, next.Y, next.X)
			} else {
				applyVerticalTunnel(m, prev.Y, next.Y, prev.X)
				applyHorizontalTunnel(m, prev.X, next.X, next.Y)
			}
		}
		m.Rooms = append(m.Rooms, newRoom)
	}

	m.PopulateBlocked()

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon",
		"rooms":     len(m.Rooms),
	}).Debug("Map generated")
	return m
}

// --- Вспомогательные функции ---

func applyRoom(m *domain.Map, room domain.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			setFloor(m, x, y)
		}
	}
}

func applyHorizontalTunnel(m *domain.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		setFloor(m, x, y)
	}
}

func applyVerticalTunnel(m *domain.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		setFloor(m, x, y)
	}
}

// setFloor не трогает внешнюю рамку карты: она всегда стена
func setFloor(m *domain.Map, x, y int) {
	if x < 1 || x >= m.Width-1 || y < 1 || y >= m.Height-1 {
		return
	}
	m.Tiles[m.Idx(x, y)] = domain.TileFloor
}
