package enums

// ItemEffect - что делает предмет при использовании.
type ItemEffect uint8

const (
	EffectNone ItemEffect = iota
	EffectHeal
	EffectLightning
	EffectConfuse
)

var itemEffectToString = map[ItemEffect]string{
	EffectNone:      "NONE",
	EffectHeal:      "HEAL",
	EffectLightning: "LIGHTNING",
	EffectConfuse:   "CONFUSE",
}

func (e ItemEffect) String() string {
	if val, ok := itemEffectToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// DeathEffect - превращение, которое выполняется при гибели бойца.
type DeathEffect uint8

const (
	// DeathCorpse: труп, не блокирует проход, без боя и ИИ, "remains of X".
	DeathCorpse DeathEffect = iota
	// DeathPlayer: игрок становится трупом, сессия переходит в Dead.
	DeathPlayer
)

func (d DeathEffect) String() string {
	switch d {
	case DeathCorpse:
		return "CORPSE"
	case DeathPlayer:
		return "PLAYER"
	default:
		return "UNKNOWN"
	}
}
