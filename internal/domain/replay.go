package domain

import "time"

// ReplayAction - одно принятое намерение игрока.
type ReplayAction struct {
	Turn   int    `json:"turn"`
	Intent Intent `json:"intent"`
}

// ReplaySession - журнал партии: сид и все намерения по порядку.
// Повторная подача тех же намерений в сессию с тем же сидом
// воспроизводит партию целиком.
type ReplaySession struct {
	Seed      int64          `json:"seed"`
	Timestamp int64          `json:"timestamp"` // Unix seconds, начало партии
	Actions   []ReplayAction `json:"actions"`
}

func NewReplaySession(seed int64) *ReplaySession {
	return &ReplaySession{
		Seed:      seed,
		Timestamp: time.Now().Unix(),
		Actions:   make([]ReplayAction, 0, 64),
	}
}

func (r *ReplaySession) Record(turn int, intent Intent) {
	r.Actions = append(r.Actions, ReplayAction{Turn: turn, Intent: intent})
}
