package enums

// AIKind выбирает стратегию хода монстра.
type AIKind uint8

const (
	AINone AIKind = iota
	// AIBasic идёт к игроку, если видит его, и бьёт вплотную.
	AIBasic
	// AIConfused бродит случайно, пока не кончится счётчик.
	AIConfused
)

var aiKindToString = map[AIKind]string{
	AINone:     "NONE",
	AIBasic:    "BASIC",
	AIConfused: "CONFUSED",
}

func (k AIKind) String() string {
	if val, ok := aiKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}
