package handlers

import (
	"rogue-engine/internal/domain"
	"rogue-engine/internal/systems"
)

// Context передает хендлеру состояние хода.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Turn  *systems.TurnContext
	Actor *domain.Entity // Тот, кто выполняет команду
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет сообщение сам, он возвращает данные; записи систем
// (удары, смерти, эффекты) уже лежат в логе к этому моменту.
type Result struct {
	Msg     string
	MsgType domain.MessageType
	Color   uint32

	// TookTurn - намерение потратило ход, после него ходят монстры.
	TookTurn bool
	// FOVDirty - поле зрения надо пересчитать до хода монстров.
	FOVDirty bool
}

// HandlerFunc - это контракт для любой команды (MOVE, USE, etc).
type HandlerFunc func(ctx Context, intent domain.Intent) (Result, error)

// EmptyResult - вспомогательная функция для пустого ответа без хода
func EmptyResult() Result {
	return Result{}
}

// TurnResult - ход потрачен, сообщать нечего.
func TurnResult() Result {
	return Result{TookTurn: true}
}
