package dungeon

import (
	"fmt"

	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/core/types/enums"
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/Boxfort/rustlike/pkg/rng"
	"github.com/sirupsen/logrus"
)

// Значения по умолчанию для наполнения комнат
const (
	DefaultMaxMonsters = 4
	DefaultMaxItems    = 2

	// maxSpawnAttempts ограничивает поиск свободной клетки в комнате
	maxSpawnAttempts = 100
)

// Слои отрисовки: предметы под монстрами, монстры под игроком
const (
	orderItem = iota
	orderMonster
	orderPlayer
)

// Spawner создаёт сущности из шаблонов.
// Счётчик монстров общий для уровня: имена получаются "Orc #0", "Goblin #1"...
type Spawner struct {
	Templates   *Templates
	MaxMonsters int
	MaxItems    int

	monsters int
}

// NewSpawner создаёт спавнер с лимитами по умолчанию.
func NewSpawner(t *Templates) *Spawner {
	if t == nil {
		t = DefaultTemplates()
	}
	return &Spawner{
		Templates:   t,
		MaxMonsters: DefaultMaxMonsters,
		MaxItems:    DefaultMaxItems,
	}
}

// Player создаёт игрока на клетке. Игрок не блокирует клетку,
// чтобы A* монстров мог до неё дойти.
func (s *Spawner) Player(w *domain.World, x, y int) types.EntityID {
	t := s.Templates.Player
	id := w.CreateEntity(enums.EntityKindPlayer)
	w.Positions.Insert(id, domain.Position{X: x, Y: y})
	w.Renderables.Insert(id, domain.Renderable{Glyph: t.glyph, FG: t.fg, BG: t.bg, Order: orderPlayer})
	w.Players.Insert(id, domain.Player{})
	w.Viewsheds.Insert(id, newViewshed(t.Vision))
	w.Names.Insert(id, domain.Name{Name: t.Name})
	w.CombatStats.Insert(id, statsFrom(t))
	w.SetPlayer(id, domain.Position{X: x, Y: y})
	return id
}

// Monster создаёт монстра по шаблону.
func (s *Spawner) Monster(w *domain.World, t EntityTemplate, x, y int) types.EntityID {
	id := w.CreateEntity(enums.EntityKindMonster)
	w.Positions.Insert(id, domain.Position{X: x, Y: y})
	w.Renderables.Insert(id, domain.Renderable{Glyph: t.glyph, FG: t.fg, BG: t.bg, Order: orderMonster})
	w.Viewsheds.Insert(id, newViewshed(t.Vision))
	w.Monsters.Insert(id, domain.Monster{Behavior: t.behavior})
	w.Names.Insert(id, domain.Name{Name: fmt.Sprintf("%s #%d", t.Name, s.monsters)})
	w.BlocksTiles.Insert(id, domain.BlocksTile{})
	w.CombatStats.Insert(id, statsFrom(t))
	s.monsters++
	return id
}

// RandomMonster выбирает шаблон броском кубика (первый шаблон на 1).
func (s *Spawner) RandomMonster(w *domain.World, src rng.Source, x, y int) types.EntityID {
	roll := src.RollDice(1, len(s.Templates.Monsters))
	return s.Monster(w, s.Templates.Monsters[roll-1], x, y)
}

// Item создаёт предмет на клетке.
func (s *Spawner) Item(w *domain.World, t ItemTemplate, x, y int) types.EntityID {
	id := w.CreateEntity(enums.EntityKindItem)
	w.Positions.Insert(id, domain.Position{X: x, Y: y})
	w.Renderables.Insert(id, domain.Renderable{Glyph: t.glyph, FG: t.fg, BG: t.bg, Order: orderItem})
	w.Names.Insert(id, domain.Name{Name: t.Name})
	w.Items.Insert(id, domain.Item{})
	if t.Heal > 0 {
		w.Potions.Insert(id, domain.Potion{HealAmount: t.Heal})
	}
	return id
}

// HealthPotion создаёт первый шаблон предмета (зелье лечения).
func (s *Spawner) HealthPotion(w *domain.World, x, y int) types.EntityID {
	return s.Item(w, s.Templates.Items[0], x, y)
}

// Room наполняет комнату монстрами и предметами.
// Точки монстров и предметов выбираются независимо, внутри каждого
// набора клетки не повторяются.
func (s *Spawner) Room(w *domain.World, src rng.Source, room domain.Rect) {
	m := w.Map()

	monsterCount := src.RollDice(1, s.MaxMonsters+2) - 3
	monsterPoints := spawnPoints(m, src, room, monsterCount)
	itemCount := src.RollDice(1, s.MaxItems+2) - 3
	itemPoints := spawnPoints(m, src, room, itemCount)

	for _, idx := range monsterPoints {
		x, y := m.XY(idx)
		s.RandomMonster(w, src, x, y)
	}
	for _, idx := range itemPoints {
		x, y := m.XY(idx)
		s.HealthPotion(w, x, y)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "spawner",
		"room":      room,
		"monsters":  len(monsterPoints),
		"items":     len(itemPoints),
	}).Debug("Room populated")
}

// Populate наполняет все комнаты, кроме первой (в ней стартует игрок).
func (s *Spawner) Populate(w *domain.World, src rng.Source) {
	rooms := w.Map().Rooms
	for i := 1; i < len(rooms); i++ {
		s.Room(w, src, rooms[i])
	}
}

// spawnPoints выбирает до count разных клеток внутри комнаты.
func spawnPoints(m *domain.Map, src rng.Source, room domain.Rect, count int) []int {
	if count <= 0 {
		return nil
	}
	points := make([]int, 0, count)
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
			x := room.X1 + src.RollDice(1, abs(room.X2-room.X1))
			y := room.Y1 + src.RollDice(1, abs(room.Y2-room.Y1))
			idx := m.Idx(x, y)
			if !containsIdx(points, idx) {
				points = append(points, idx)
				break
			}
		}
	}
	return points
}

func newViewshed(vision int) domain.Viewshed {
	return domain.Viewshed{
		VisibleTiles: make(map[types.Point]bool),
		Range:        vision,
		Dirty:        true,
	}
}

func statsFrom(t EntityTemplate) domain.CombatStats {
	return domain.CombatStats{MaxHP: t.HP, HP: t.HP, Defence: t.Defence, Power: t.Power}
}

func containsIdx(points []int, idx int) bool {
	for _, p := range points {
		if p == idx {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
