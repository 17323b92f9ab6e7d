package enums

import "strings"

// EntityKind - грубая классификация сущности для ID, логов и DTO.
// Поведение определяется компонентами, а не видом.
type EntityKind uint8

const (
	EntityKindUnknown EntityKind = iota
	EntityKindPlayer
	EntityKindMonster
	EntityKindItem
	EntityKindCorpse
)

var entityKindToString = map[EntityKind]string{
	EntityKindPlayer:  "PLAYER",
	EntityKindMonster: "MONSTER",
	EntityKindItem:    "ITEM",
	EntityKindCorpse:  "CORPSE",
}

var entityKindStringToKind = map[string]EntityKind{
	"PLAYER":  EntityKindPlayer,
	"MONSTER": EntityKindMonster,
	"ITEM":    EntityKindItem,
	"CORPSE":  EntityKindCorpse,
}

func (e EntityKind) String() string {
	if val, ok := entityKindToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityKind нечувствителен к регистру.
func ParseEntityKind(s string) EntityKind {
	if val, ok := entityKindStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return EntityKindUnknown
}
