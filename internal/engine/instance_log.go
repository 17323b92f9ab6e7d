package engine

import (
	"rogue-engine/internal/core/types"
	"rogue-engine/internal/domain"
	"rogue-engine/internal/engine/handlers"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// addLog переносит сообщение хендлера в игровой лог сессии
func (s *Session) addLog(result handlers.Result) {
	if result.Msg == "" {
		return
	}
	msgType := result.MsgType
	if msgType == "" {
		msgType = domain.MsgInfo
	}
	color := result.Color
	if color == 0 {
		color = types.ColorWhite
	}
	s.log.Add(result.Msg, color, msgType)

	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"seed":      s.cfg.Seed,
		"log_type":  string(msgType),
	}).Debug(result.Msg)
}
