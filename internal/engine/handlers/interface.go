package handlers

import (
	"encoding/json"
	"math/rand"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
)

// Context передает хендлеру состояние уровня.
// Хендлеры - единственные точки коммита: только они мутируют Level
// (через его узкие аксессоры), системы лишь читают.
type Context struct {
	Level *domain.Level
	Actor *domain.Actor // Тот, кто выполняет команду (Игрок или Монстр)

	// Rng - локальный генератор уровня. Передается явно:
	// скрытых глобальных источников случайности в движке нет.
	Rng *rand.Rand
}

// Event - событие, которое хендлер возвращает движку на обработку
// (переходы между уровнями, победа)
type Event struct {
	Type    domain.EventType
	ToDepth int
}

// Result - результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, ERROR)

	// ConsumesTurn false для отвергнутых действий (ход в стену, невидимая
	// или слишком далекая цель): игрок остается активным, планировщик
	// не двигается.
	ConsumesTurn bool

	Event *Event // Событие для движка (переход, победа)
}

// HandlerFunc - контракт для любой команды (MOVE, ATTACK, ZAP, ...)
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - пустой успешный ответ без траты хода
func EmptyResult() Result {
	return Result{}
}
