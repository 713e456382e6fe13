package domain

import (
	"fmt"

	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/ecs"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/Boxfort/rustlike/pkg/rng"
	"github.com/sirupsen/logrus"
)

// World - мир игры: хранилище сущностей с зарегистрированными
// хранилищами всех компонентов и доступом к ресурсам.
type World struct {
	*ecs.World

	Positions    *ecs.Store[Position]
	Renderables  *ecs.Store[Renderable]
	Viewsheds    *ecs.Store[Viewshed]
	Players      *ecs.Store[Player]
	Monsters     *ecs.Store[Monster]
	Names        *ecs.Store[Name]
	BlocksTiles  *ecs.Store[BlocksTile]
	CombatStats  *ecs.Store[CombatStats]
	Items        *ecs.Store[Item]
	Potions      *ecs.Store[Potion]
	InBackpacks  *ecs.Store[InBackpack]
	WantsToMelee *ecs.Store[WantsToMelee]
	SufferDamage *ecs.Store[SufferDamage]
	WantsPickup  *ecs.Store[WantsToPickupItem]
	WantsDrink   *ecs.Store[WantsToDrinkPotion]
	WantsDrop    *ecs.Store[WantsToDropItem]
}

// NewWorld регистрирует все хранилища компонентов.
// Ресурсы (карта, состояние, лог) добавляет тот, кто строит уровень.
func NewWorld() *World {
	w := ecs.NewWorld()
	return &World{
		World:        w,
		Positions:    ecs.Register[Position](w),
		Renderables:  ecs.Register[Renderable](w),
		Viewsheds:    ecs.Register[Viewshed](w),
		Players:      ecs.Register[Player](w),
		Monsters:     ecs.Register[Monster](w),
		Names:        ecs.Register[Name](w),
		BlocksTiles:  ecs.Register[BlocksTile](w),
		CombatStats:  ecs.Register[CombatStats](w),
		Items:        ecs.Register[Item](w),
		Potions:      ecs.Register[Potion](w),
		InBackpacks:  ecs.Register[InBackpack](w),
		WantsToMelee: ecs.Register[WantsToMelee](w),
		SufferDamage: ecs.Register[SufferDamage](w),
		WantsPickup:  ecs.Register[WantsToPickupItem](w),
		WantsDrink:   ecs.Register[WantsToDrinkPotion](w),
		WantsDrop:    ecs.Register[WantsToDropItem](w),
	}
}

// --- Ресурсы ---

func (w *World) Map() *Map {
	return ecs.MustGetResource[*Map](w.Resources)
}

func (w *World) RunState() *RunState {
	return ecs.MustGetResource[*RunState](w.Resources)
}

func (w *World) Log() *GameLog {
	return ecs.MustGetResource[*GameLog](w.Resources)
}

func (w *World) Cursor() *Cursor {
	return ecs.MustGetResource[*Cursor](w.Resources)
}

func (w *World) PlayerPosition() *PlayerPosition {
	return ecs.MustGetResource[*PlayerPosition](w.Resources)
}

func (w *World) Rng() rng.Source {
	return ecs.MustGetResource[rng.Source](w.Resources)
}

// Player возвращает идентификатор игрока. ok=false, если ресурс не задан.
func (w *World) Player() (types.EntityID, bool) {
	p, ok := ecs.GetResource[PlayerEntity](w.Resources)
	if !ok || p.ID.IsNil() {
		return types.NilEntityID, false
	}
	return p.ID, true
}

// InstallResources добавляет ресурсы нового уровня.
func (w *World) InstallResources(m *Map, src rng.Source) {
	state := StatePreRun
	ecs.AddResource(w.Resources, m)
	ecs.AddResource(w.Resources, &state)
	ecs.AddResource(w.Resources, &GameLog{})
	ecs.AddResource(w.Resources, &Cursor{})
	ecs.AddResource(w.Resources, &PlayerPosition{})
	ecs.AddResource[rng.Source](w.Resources, src)
}

// SetPlayer запоминает игрока и его позицию.
func (w *World) SetPlayer(id types.EntityID, pos Position) {
	ecs.AddResource(w.Resources, PlayerEntity{ID: id})
	pp := w.PlayerPosition()
	pp.X, pp.Y = pos.X, pos.Y
}

// NameOf возвращает имя сущности или "something", если имени нет.
func (w *World) NameOf(id types.EntityID) string {
	if n, ok := w.Names.Get(id); ok {
		return n.Name
	}
	return "something"
}

// IsPlayer - сущность является игроком
func (w *World) IsPlayer(id types.EntityID) bool {
	return w.Players.Has(id)
}

// Logf пишет строку в журнал игры и дублирует её в лог приложения.
func (w *World) Logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.Log().Append(msg)
	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
	}).Info(msg)
}
