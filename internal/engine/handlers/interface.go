package handlers

import (
	"encoding/json"

	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/internal/engine"
)

// Context передает хендлеру игровую сессию.
// Хендлер может менять её состояние через операции Game.
type Context struct {
	Game *engine.Game
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в лог сессии напрямую, он возвращает данные.
type Result struct {
	Msg     string         // Служебный текст для клиента
	MsgType string         // Тип текста (INFO, COMBAT, ERROR)
	Events  []domain.Event // События хода для игровой ленты
}

// HandlerFunc - это контракт для любой команды (MOVE, WAIT, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
