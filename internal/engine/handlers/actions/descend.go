package actions

import (
	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/internal/engine/handlers"
)

// HandleDescend - спуск по лестнице. Работает только стоя на клетке "stairs".
// С последнего этажа спуск означает победу.
func HandleDescend(ctx handlers.Context) (handlers.Result, error) {
	tile := ctx.Level.Grid.Tiles[ctx.Actor.Pos.Y][ctx.Actor.Pos.X]
	if tile.Env != "stairs" {
		return handlers.Result{Msg: "Здесь нет лестницы вниз.", MsgType: "ERROR"}, nil
	}

	if ctx.Level.Depth >= domain.MaxDepth {
		return handlers.Result{
			Msg:          "Вы выбираетесь из подземелья с добычей!",
			MsgType:      "INFO",
			ConsumesTurn: true,
			Event:        &handlers.Event{Type: domain.EventVictory},
		}, nil
	}

	return handlers.Result{
		Msg:          "Вы спускаетесь глубже...",
		MsgType:      "INFO",
		ConsumesTurn: true,
		Event: &handlers.Event{
			Type:    domain.EventLevelTransition,
			ToDepth: ctx.Level.Depth + 1,
		},
	}, nil
}
