package domain

// RunState - состояние главного цикла: какие системы запускать и читать ли ввод
type RunState uint8

const (
	StatePreRun RunState = iota
	StateAwaitingInput
	StatePlayerTurn
	StateMonsterTurn
	StateExamining
	StateShowInventory
	StateShowDropItem
	// StateGameOver - игрок мёртв, ввод больше не принимается
	StateGameOver
)

var runStateToString = map[RunState]string{
	StatePreRun:        "PRE_RUN",
	StateAwaitingInput: "AWAITING_INPUT",
	StatePlayerTurn:    "PLAYER_TURN",
	StateMonsterTurn:   "MONSTER_TURN",
	StateExamining:     "EXAMINING",
	StateShowInventory: "SHOW_INVENTORY",
	StateShowDropItem:  "SHOW_DROP_ITEM",
	StateGameOver:      "GAME_OVER",
}

func (s RunState) String() string {
	if val, ok := runStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// ReadsInput - в этих состояниях тик читает клавишу
func (s RunState) ReadsInput() bool {
	switch s {
	case StateAwaitingInput, StateExamining, StateShowInventory, StateShowDropItem:
		return true
	}
	return false
}
