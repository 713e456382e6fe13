package domain

import (
	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/core/types/enums"
)

// --- КОМПОНЕНТЫ ---

// Position - клетка на карте. У предметов в рюкзаке её нет.
type Position struct {
	X int
	Y int
}

// Renderable - данные для отрисовки (читает только рендерер)
type Renderable struct {
	Glyph byte
	FG    types.RGB
	BG    types.RGB
	// Order - слой: меньшие значения рисуются раньше (предметы под монстрами)
	Order int
}

// Viewshed - кэш поля зрения. Dirty=true заставляет пересчитать его
// в следующем проходе VisibilitySystem.
type Viewshed struct {
	VisibleTiles map[types.Point]bool
	Range        int
	Dirty        bool
}

// Player - тег игрока (ровно одна сущность)
type Player struct{}

// Monster - тег сущности под управлением ИИ
type Monster struct {
	Behavior enums.AIBehavior
}

// Name - человекочитаемое имя
type Name struct {
	Name string
}

// BlocksTile - тег: клетка сущности непроходима, пока она жива
type BlocksTile struct{}

// CombatStats - боевые характеристики
type CombatStats struct {
	MaxHP   int
	HP      int
	Defence int
	Power   int
}

// Item - тег: можно подобрать
type Item struct{}

// Potion - восстанавливающий предмет
type Potion struct {
	HealAmount int
}

// InBackpack - предмет лежит в рюкзаке Owner и не имеет Position
type InBackpack struct {
	Owner types.EntityID
}

// --- НАМЕРЕНИЯ ---
// Пишутся производителем и очищаются потребителем в пределах тика.

// WantsToMelee - атака в ближнем бою
type WantsToMelee struct {
	Target types.EntityID
}

// SufferDamage - накопленный за тик урон
type SufferDamage struct {
	Amount int
}

// WantsToPickupItem - подобрать предмет
type WantsToPickupItem struct {
	CollectedBy types.EntityID
	Item        types.EntityID
}

// WantsToDrinkPotion - выпить зелье
type WantsToDrinkPotion struct {
	Potion types.EntityID
}

// WantsToDropItem - выбросить предмет
type WantsToDropItem struct {
	Item types.EntityID
}
