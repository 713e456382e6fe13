package agent

import (
	"math"

	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/engine"
	"github.com/Boxfort/rustlike/internal/systems"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/Boxfort/rustlike/pkg/pathfinding"
	"github.com/Boxfort/rustlike/pkg/rng"
	"github.com/sirupsen/logrus"
)

// Bot - "игрок-компьютер" (headless agent).
//
// Бот реализует engine.Input: на каждый опрос он смотрит на мир так же,
// как игрок (только видимые клетки), и возвращает одну клавишу.
// Нужен для автоигры и генерации записей ввода без терминала.
//
// Приоритеты хода:
//  1. Мало HP и есть зелье -> открыть инвентарь и выпить.
//  2. Под ногами предмет -> подобрать.
//  3. Виден монстр -> идти к нему и бить.
//  4. Виден предмет -> идти к нему.
//  5. Иначе -> случайный шаг.
type Bot struct {
	game *engine.Game
	src  rng.Source
}

// NewBot создаёт бота. src даёт случайные шаги; с одним сидом бот
// повторяет ту же партию.
func NewBot(g *engine.Game, src rng.Source) *Bot {
	return &Bot{game: g, src: src}
}

// direction -> клавиша нумпада
var stepKeys = map[types.Point]domain.VirtualKey{
	{X: -1, Y: 0}:  domain.KeyNumpad4,
	{X: 1, Y: 0}:   domain.KeyNumpad6,
	{X: 0, Y: -1}:  domain.KeyNumpad8,
	{X: 0, Y: 1}:   domain.KeyNumpad2,
	{X: -1, Y: -1}: domain.KeyNumpad7,
	{X: 1, Y: -1}:  domain.KeyNumpad9,
	{X: -1, Y: 1}:  domain.KeyNumpad1,
	{X: 1, Y: 1}:   domain.KeyNumpad3,
}

// randomSteps - порядок для случайного шага (map обходится недетерминированно)
var randomSteps = []domain.VirtualKey{
	domain.KeyNumpad1, domain.KeyNumpad2, domain.KeyNumpad3, domain.KeyNumpad4,
	domain.KeyNumpad6, domain.KeyNumpad7, domain.KeyNumpad8, domain.KeyNumpad9,
}

// Poll выбирает клавишу для текущего состояния игры.
func (b *Bot) Poll() domain.VirtualKey {
	w := b.game.World
	player, ok := w.Player()
	if !ok {
		return domain.KeyNone
	}

	switch b.game.State() {
	case domain.StateAwaitingInput:
		return b.decide(w, player)
	case domain.StateShowInventory:
		if len(engine.InventoryItems(w, player)) > 0 {
			return domain.KeyA
		}
		return domain.KeyEscape
	case domain.StateShowDropItem, domain.StateExamining:
		return domain.KeyEscape
	default:
		return domain.KeyNone
	}
}

func (b *Bot) decide(w *domain.World, player types.EntityID) domain.VirtualKey {
	pos, ok := w.Positions.Get(player)
	if !ok {
		return domain.KeyNone
	}
	botLogger := logger.Log.WithFields(logrus.Fields{
		"component": "bot",
		"x":         pos.X,
		"y":         pos.Y,
	})

	if stats, ok := w.CombatStats.Get(player); ok && stats.HP*2 < stats.MaxHP && b.hasPotion(w, player) {
		botLogger.WithField("hp", stats.HP).Debug("Bot drinks a potion")
		return domain.KeyI
	}

	if len(systems.ItemsAt(w, pos.X, pos.Y)) > 0 && len(systems.Backpack(w, player)) < systems.BackpackCapacity {
		botLogger.Debug("Bot picks up an item")
		return domain.KeyG
	}

	visible := map[types.Point]bool{}
	if vs, ok := w.Viewsheds.Get(player); ok {
		visible = vs.VisibleTiles
	}

	if target, ok := nearest(w, pos.Point(), visible, w.Monsters.Entities()); ok {
		botLogger.WithField("target", target).Debug("Bot chases a monster")
		return b.stepTowards(w.Map(), pos.Point(), target)
	}
	if len(systems.Backpack(w, player)) < systems.BackpackCapacity {
		if target, ok := nearest(w, pos.Point(), visible, w.Items.Entities()); ok {
			botLogger.WithField("target", target).Debug("Bot walks to an item")
			return b.stepTowards(w.Map(), pos.Point(), target)
		}
	}

	return b.randomStep()
}

func (b *Bot) randomStep() domain.VirtualKey {
	return randomSteps[b.src.Range(0, len(randomSteps))]
}

func (b *Bot) hasPotion(w *domain.World, player types.EntityID) bool {
	items := engine.InventoryItems(w, player)
	return len(items) > 0 && w.Potions.Has(items[0])
}

// nearest ищет ближайшую видимую сущность из списка. При равенстве
// побеждает меньший идентификатор: ids приходят отсортированными.
func nearest(w *domain.World, from types.Point, visible map[types.Point]bool, ids []types.EntityID) (types.Point, bool) {
	best, bestDist := types.Point{}, math.Inf(1)
	for _, id := range ids {
		pos, ok := w.Positions.Get(id)
		if !ok || !visible[pos.Point()] || pos.Point() == from {
			continue
		}
		if d := pos.DistanceTo(from); d < bestDist {
			best, bestDist = pos.Point(), d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// stepTowards делает шаг по A*. Без пути идём напрямую, а упёршись
// в стену делаем случайный шаг.
func (b *Bot) stepTowards(m *domain.Map, from, to types.Point) domain.VirtualKey {
	dx, dy := sign(to.X-from.X), sign(to.Y-from.Y)

	if max(abs(to.X-from.X), abs(to.Y-from.Y)) > 1 {
		// Клетку цели на время поиска считаем свободной
		goal := m.Idx(to.X, to.Y)
		blocked := m.Blocked[goal]
		m.Blocked[goal] = m.Tiles[goal] == domain.TileWall
		path := pathfinding.AStar(m.Idx(from.X, from.Y), goal, m)
		m.Blocked[goal] = blocked

		if path.Success && len(path.Steps) > 1 {
			x, y := m.XY(path.Steps[1])
			return stepKeys[types.Pt(x-from.X, y-from.Y)]
		}
	}

	if next := from.Add(dx, dy); next != to && !m.IsWalkable(next.X, next.Y) {
		return b.randomStep()
	}
	return stepKeys[types.Pt(dx, dy)]
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
