package engine

import (
	"fmt"
	"sort"

	"github.com/Boxfort/rustlike/internal/domain"
)

// KeyMap переводит нажатую клавишу в команду
type KeyMap map[domain.VirtualKey]domain.Command

// bindings - имена привязок для конфига
var bindings = map[string]domain.Command{
	"west":      move(-1, 0),
	"east":      move(1, 0),
	"north":     move(0, -1),
	"south":     move(0, 1),
	"northwest": move(-1, -1),
	"northeast": move(1, -1),
	"southwest": move(-1, 1),
	"southeast": move(1, 1),
	"pickup":    {Action: domain.ActionPickup},
	"inventory": {Action: domain.ActionShowInventory},
	"drop":      {Action: domain.ActionShowDrop},
	"examine":   {Action: domain.ActionExamine},
	"cancel":    {Action: domain.ActionCancel},
}

// defaultKeys - стрелки, нумпад и vi-клавиши
var defaultKeys = map[string][]domain.VirtualKey{
	"west":      {domain.KeyLeft, domain.KeyNumpad4, domain.KeyH},
	"east":      {domain.KeyRight, domain.KeyNumpad6, domain.KeyL},
	"north":     {domain.KeyUp, domain.KeyNumpad8, domain.KeyK},
	"south":     {domain.KeyDown, domain.KeyNumpad2, domain.KeyJ},
	"northwest": {domain.KeyNumpad7, domain.KeyY},
	"northeast": {domain.KeyNumpad9, domain.KeyU},
	"southwest": {domain.KeyNumpad1, domain.KeyB},
	"southeast": {domain.KeyNumpad3, domain.KeyN},
	"pickup":    {domain.KeyG},
	"inventory": {domain.KeyI},
	"drop":      {domain.KeyD},
	"examine":   {domain.KeyX},
	"cancel":    {domain.KeyEscape},
}

func move(dx, dy int) domain.Command {
	return domain.Command{Action: domain.ActionMove, Payload: domain.DirectionPayload{DX: dx, DY: dy}}
}

// DefaultKeyMap возвращает раскладку по умолчанию.
func DefaultKeyMap() KeyMap {
	km := make(KeyMap)
	for name, keys := range defaultKeys {
		for _, k := range keys {
			km[k] = bindings[name]
		}
	}
	return km
}

// NewKeyMap строит раскладку по умолчанию и применяет переназначения.
// Переназначенная привязка целиком заменяет свои клавиши по умолчанию.
func NewKeyMap(overrides map[string][]string) (KeyMap, error) {
	km := DefaultKeyMap()

	// Детерминированный порядок: при конфликте побеждает имя, идущее позже
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd, ok := bindings[name]
		if !ok {
			return nil, fmt.Errorf("unknown binding %q: %w", name, ErrInvalidConfig)
		}
		for _, k := range defaultKeys[name] {
			if km[k] == cmd {
				delete(km, k)
			}
		}
		for _, s := range overrides[name] {
			k, ok := domain.ParseKey(s)
			if !ok || k == domain.KeyNone {
				return nil, fmt.Errorf("binding %q: unknown key %q: %w", name, s, ErrInvalidConfig)
			}
			km[k] = cmd
		}
	}
	return km, nil
}
