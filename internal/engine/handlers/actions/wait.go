package actions

import (
	"github.com/dirkkok101/roguelike-sub004/internal/engine/handlers"
)

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{ConsumesTurn: true}, nil
}
