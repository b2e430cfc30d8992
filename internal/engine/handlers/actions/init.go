package actions

import "github.com/dirkkok101/roguelike-sub004/internal/engine/handlers"

// HandleInit возвращает стартовый стейт. Хода не тратит:
// клиент шлет INIT при подключении для первой отрисовки.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Вы спускаетесь в подземелье.",
		MsgType: "INFO",
	}, nil
}
