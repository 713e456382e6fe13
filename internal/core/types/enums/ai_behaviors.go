package enums

import "strings"

// AIBehavior — вариант поведения монстра.
type AIBehavior uint8

const (
	// AIBehaviorChase: бьёт соседнего игрока, иначе идёт к нему по A*, если видит.
	AIBehaviorChase AIBehavior = iota
	// AIBehaviorStationary: бьёт соседнего игрока, никогда не сходит с места.
	AIBehaviorStationary
)

var aiBehaviorToString = map[AIBehavior]string{
	AIBehaviorChase:      "CHASE",
	AIBehaviorStationary: "STATIONARY",
}

var aiBehaviorStringToType = map[string]AIBehavior{
	"CHASE":      AIBehaviorChase,
	"STATIONARY": AIBehaviorStationary,
}

func (b AIBehavior) String() string {
	if val, ok := aiBehaviorToString[b]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseAIBehavior разбирает имя поведения из шаблона.
// Пустая строка означает поведение по умолчанию (CHASE).
func ParseAIBehavior(s string) (AIBehavior, bool) {
	if s == "" {
		return AIBehaviorChase, true
	}
	val, ok := aiBehaviorStringToType[strings.ToUpper(s)]
	return val, ok
}
