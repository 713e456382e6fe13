package domain

import (
	"fmt"
	"strings"
)

// ActionType - Внутренний числовой идентификатор действия игрока
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionPickup
	ActionShowInventory
	ActionShowDrop
	ActionExamine
	ActionCancel
)

// Маппинг для конфига String -> Domain
var actionStringToCmd = map[string]ActionType{
	"MOVE":      ActionMove,
	"PICKUP":    ActionPickup,
	"INVENTORY": ActionShowInventory,
	"DROP":      ActionShowDrop,
	"EXAMINE":   ActionExamine,
	"CANCEL":    ActionCancel,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionMove:          "MOVE",
	ActionPickup:        "PICKUP",
	ActionShowInventory: "INVENTORY",
	ActionShowDrop:      "DROP",
	ActionExamine:       "EXAMINE",
	ActionCancel:        "CANCEL",
}

// ParseAction конвертирует строку в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Command - действие, в которое превратилась нажатая клавиша.
// Payload зависит от Action: для MOVE это DirectionPayload, для остальных nil.
type Command struct {
	Action  ActionType
	Payload any
}

// Validator реализуется payload'ами, которые умеют проверять себя сами
type Validator interface {
	Validate() error
}

// DirectionPayload - смещение на одну клетку
type DirectionPayload struct {
	DX int
	DY int
}

func (p DirectionPayload) Validate() error {
	if p.DX < -1 || p.DX > 1 || p.DY < -1 || p.DY > 1 {
		return fmt.Errorf("direction (%d,%d) is longer than one step", p.DX, p.DY)
	}
	if p.DX == 0 && p.DY == 0 {
		return fmt.Errorf("direction (0,0) is not a move")
	}
	return nil
}
