package engine

import (
	"errors"
	"fmt"

	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/engine/handlers"
	"github.com/Boxfort/rustlike/internal/engine/handlers/actions"
	"github.com/Boxfort/rustlike/internal/systems"
	"github.com/Boxfort/rustlike/pkg/dungeon"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/Boxfort/rustlike/pkg/rng"
	"github.com/sirupsen/logrus"
)

// ErrNoPlayer возвращается, если в мире нет игрока.
var ErrNoPlayer = errors.New("world has no player")

// system - шаг конвейера тика
type system struct {
	name string
	run  func(w *domain.World)
}

// pipeline - порядок систем в каждом тике. Урон применяется до боя,
// поэтому удар, поставленный в очередь, снимает HP только тиком позже.
var pipeline = []system{
	{"visibility", systems.VisibilitySystem},
	{"monster_ai", systems.MonsterAISystem},
	{"map_indexing", systems.MapIndexingSystem},
	{"damage", systems.DamageSystem},
	{"melee_combat", systems.MeleeCombatSystem},
	{"item_collection", systems.ItemCollectionSystem},
	{"potion_use", systems.PotionUseSystem},
	{"item_drop", systems.ItemDropSystem},
}

// Game - одна партия: мир, раскладка клавиш и маршрутизация команд.
type Game struct {
	World *domain.World
	Seed  int64

	keys   KeyMap
	routes map[domain.RunState]map[domain.ActionType]handlers.HandlerFunc
	tick   int
}

// NewGame генерирует уровень по конфигу.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tpl, err := cfg.Templates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	spawner := dungeon.NewSpawner(tpl)
	spawner.MaxMonsters = cfg.MaxMonsters
	spawner.MaxItems = cfg.MaxItems

	w := domain.NewWorld()
	if _, err := dungeon.NewLevel(w, rng.New(cfg.Seed), spawner).
		WithRooms().
		WithPlayer().
		Populate().
		Build(); err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}

	g, err := NewGameWithWorld(w, cfg)
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"seed":      cfg.Seed,
		"rooms":     len(w.Map().Rooms),
		"entities":  w.Len(),
	}).Info("Game created")
	return g, nil
}

// NewGameWithWorld оборачивает уже построенный мир (сценарии и тесты).
func NewGameWithWorld(w *domain.World, cfg Config) (*Game, error) {
	if _, ok := w.Player(); !ok {
		return nil, ErrNoPlayer
	}
	keys, err := NewKeyMap(cfg.Keys)
	if err != nil {
		return nil, err
	}
	g := &Game{
		World: w,
		Seed:  cfg.Seed,
		keys:  keys,
	}
	g.registerHandlers()
	return g, nil
}

func (g *Game) registerHandlers() {
	g.routes = map[domain.RunState]map[domain.ActionType]handlers.HandlerFunc{
		domain.StateAwaitingInput: {
			domain.ActionMove:          handlers.WithPayload(actions.HandleMove),
			domain.ActionPickup:        handlers.WithEmptyPayload(actions.HandlePickup),
			domain.ActionShowInventory: handlers.WithEmptyPayload(actions.HandleShowInventory),
			domain.ActionShowDrop:      handlers.WithEmptyPayload(actions.HandleShowDrop),
			domain.ActionExamine:       handlers.WithEmptyPayload(actions.HandleExamine),
		},
		domain.StateExamining: {
			domain.ActionMove:    handlers.WithPayload(actions.HandleCursorMove),
			domain.ActionExamine: handlers.WithEmptyPayload(actions.HandleStopExamine),
			domain.ActionCancel:  handlers.WithEmptyPayload(actions.HandleStopExamine),
		},
	}
}

// State возвращает текущее состояние цикла.
func (g *Game) State() domain.RunState {
	return *g.World.RunState()
}

// Ticks - число завершённых тиков
func (g *Game) Ticks() int {
	return g.tick
}

// Tick продвигает игру на один шаг. key - клавиша этого тика или KeyNone.
//
// При ошибке (нарушен инвариант мира) RunState и счётчик тиков не меняются,
// но системы этого тика уже успели отработать.
func (g *Game) Tick(key domain.VirtualKey) error {
	player, ok := g.World.Player()
	if !ok || !g.World.IsAlive(player) {
		return fmt.Errorf("tick %d: %w", g.tick, ErrNoPlayer)
	}

	state := g.World.RunState()
	current := *state
	next := current

	switch current {
	case domain.StatePreRun:
		g.runSystems()
		next = domain.StateAwaitingInput
	case domain.StateAwaitingInput, domain.StateExamining:
		g.runSystems()
		// Погибший в этом тике игрок больше не ходит: GameOver ставит DeleteTheDead
		if !g.playerAlive(player) {
			break
		}
		var err error
		next, err = g.playerInput(player, current, key)
		if err != nil {
			return fmt.Errorf("tick %d: %s: %w", g.tick, current, err)
		}
	case domain.StatePlayerTurn:
		g.runSystems()
		next = domain.StateMonsterTurn
	case domain.StateMonsterTurn:
		g.runSystems()
		next = domain.StateAwaitingInput
	case domain.StateShowInventory, domain.StateShowDropItem:
		next = g.itemMenu(player, current, key)
	case domain.StateGameOver:
		g.runSystems()
	}

	*state = next
	systems.DeleteTheDead(g.World)
	reaped := g.World.Maintain()

	if current != *state || reaped > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"tick":      g.tick,
			"key":       key,
			"from":      current,
			"to":        *state,
			"reaped":    reaped,
		}).Debug("Tick finished")
	}
	g.tick++
	return nil
}

func (g *Game) playerAlive(player types.EntityID) bool {
	stats, ok := g.World.CombatStats.Get(player)
	return !ok || stats.IsAlive()
}

func (g *Game) runSystems() {
	for _, s := range pipeline {
		s.run(g.World)
	}
	g.World.Maintain()
}

// itemMenu применяет выбор в меню инвентаря.
func (g *Game) itemMenu(player types.EntityID, state domain.RunState, key domain.VirtualKey) domain.RunState {
	res := QueryItemMenu(g.World, player, key)
	switch res.Kind {
	case MenuCancel:
		return domain.StateAwaitingInput
	case MenuSelected:
		if state == domain.StateShowInventory {
			g.World.WantsDrink.Insert(player, domain.WantsToDrinkPotion{Potion: res.Item})
		} else {
			g.World.WantsDrop.Insert(player, domain.WantsToDropItem{Item: res.Item})
		}
		return domain.StateMonsterTurn
	default:
		return state
	}
}
