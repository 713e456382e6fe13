package enums

import "strings"

// EntityKind — вид сущности, зашитый в старшие биты EntityID.
type EntityKind uint8

const (
	EntityKindUnknown EntityKind = iota
	EntityKindPlayer
	EntityKindMonster
	EntityKindItem
)

var entityKindToString = map[EntityKind]string{
	EntityKindPlayer:  "PLAYER",
	EntityKindMonster: "MONSTER",
	EntityKindItem:    "ITEM",
}

var entityKindStringToType = map[string]EntityKind{
	"PLAYER":  EntityKindPlayer,
	"MONSTER": EntityKindMonster,
	"ITEM":    EntityKindItem,
}

// String возвращает строковое представление (для логов и дебага)
func (e EntityKind) String() string {
	if val, ok := entityKindToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityKind конвертирует строку в Enum (нужно для загрузки шаблонов)
func ParseEntityKind(s string) EntityKind {
	upper := strings.ToUpper(s)
	if val, ok := entityKindStringToType[upper]; ok {
		return val
	}
	return EntityKindUnknown
}
