package dungeon

import (
	"errors"
	"fmt"

	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/pkg/rng"
)

// ErrNoMap возвращается, если спавн вызван до создания карты.
var ErrNoMap = errors.New("level has no map")

// LevelBuilder предоставляет fluent API для создания уровней.
// Первая ошибка запоминается, остальные шаги после неё пропускаются.
type LevelBuilder struct {
	world   *domain.World
	src     rng.Source
	spawner *Spawner
	m       *domain.Map
	player  types.EntityID
	err     error
}

// NewLevel создает новый builder для уровня
func NewLevel(w *domain.World, src rng.Source, spawner *Spawner) *LevelBuilder {
	if spawner == nil {
		spawner = NewSpawner(nil)
	}
	return &LevelBuilder{world: w, src: src, spawner: spawner}
}

// WithRooms генерирует комнаты и коридоры
func (b *LevelBuilder) WithRooms() *LevelBuilder {
	if b.err != nil {
		return b
	}
	return b.WithMap(NewMapRoomsAndCorridors(b.src))
}

// WithMap ставит готовую карту (для сценариев и тестов).
func (b *LevelBuilder) WithMap(m *domain.Map) *LevelBuilder {
	if b.err != nil {
		return b
	}
	b.m = m
	b.world.InstallResources(m, b.src)
	return b
}

// WithFloor вырезает пол в прямоугольнике (включительно) на уже поставленной карте.
func (b *LevelBuilder) WithFloor(x1, y1, x2, y2 int) *LevelBuilder {
	if !b.requireMap("floor") {
		return b
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			setFloor(b.m, x, y)
		}
	}
	b.m.PopulateBlocked()
	return b
}

// WithWall ставит стену.
func (b *LevelBuilder) WithWall(x, y int) *LevelBuilder {
	if !b.requireMap("wall") {
		return b
	}
	if !b.m.Contains(x, y) {
		b.err = fmt.Errorf("wall at (%d,%d): outside the map", x, y)
		return b
	}
	b.m.Tiles[b.m.Idx(x, y)] = domain.TileWall
	b.m.PopulateBlocked()
	return b
}

// WithPlayer ставит игрока в центр первой комнаты
func (b *LevelBuilder) WithPlayer() *LevelBuilder {
	if !b.requireMap("player") {
		return b
	}
	if len(b.m.Rooms) == 0 {
		b.err = fmt.Errorf("player: %w: no rooms", ErrNoMap)
		return b
	}
	c := b.m.Rooms[0].Center()
	return b.WithPlayerAt(c.X, c.Y)
}

// WithPlayerAt ставит игрока на клетку.
func (b *LevelBuilder) WithPlayerAt(x, y int) *LevelBuilder {
	if !b.requirePlaceable("player", x, y) {
		return b
	}
	b.player = b.spawner.Player(b.world, x, y)
	return b
}

// WithMonster спавнит монстра из шаблона по имени
func (b *LevelBuilder) WithMonster(name string, x, y int) *LevelBuilder {
	if !b.requirePlaceable("monster", x, y) {
		return b
	}
	t, ok := b.spawner.Templates.Monster(name)
	if !ok {
		b.err = fmt.Errorf("monster %q: %w: unknown template", name, ErrInvalidTemplate)
		return b
	}
	b.spawner.Monster(b.world, t, x, y)
	return b
}

// WithItem спавнит предмет из шаблона по имени
func (b *LevelBuilder) WithItem(name string, x, y int) *LevelBuilder {
	if !b.requirePlaceable("item", x, y) {
		return b
	}
	t, ok := b.spawner.Templates.Item(name)
	if !ok {
		b.err = fmt.Errorf("item %q: %w: unknown template", name, ErrInvalidTemplate)
		return b
	}
	b.spawner.Item(b.world, t, x, y)
	return b
}

// Populate наполняет комнаты (кроме первой) случайными монстрами и предметами.
func (b *LevelBuilder) Populate() *LevelBuilder {
	if !b.requireMap("populate") {
		return b
	}
	b.spawner.Populate(b.world, b.src)
	return b
}

// Build возвращает идентификатор игрока или первую ошибку.
func (b *LevelBuilder) Build() (types.EntityID, error) {
	if b.err != nil {
		return types.NilEntityID, b.err
	}
	if b.player.IsNil() {
		return types.NilEntityID, errors.New("level has no player")
	}
	return b.player, nil
}

func (b *LevelBuilder) requireMap(step string) bool {
	if b.err != nil {
		return false
	}
	if b.m == nil {
		b.err = fmt.Errorf("%s: %w", step, ErrNoMap)
		return false
	}
	return true
}

func (b *LevelBuilder) requirePlaceable(step string, x, y int) bool {
	if !b.requireMap(step) {
		return false
	}
	if !b.m.InBounds(x, y) || !b.m.Contains(x, y) {
		b.err = fmt.Errorf("%s at (%d,%d): outside the map", step, x, y)
		return false
	}
	return true
}
