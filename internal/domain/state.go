package domain

// GameState - состояние сессии. Dead терминальное.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateDead
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "PLAYING"
	case StateDead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}
