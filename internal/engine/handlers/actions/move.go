package actions

import (
	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/internal/engine/handlers"
	"github.com/dirkkok101/roguelike-sub004/internal/systems"
	"github.com/dirkkok101/roguelike-sub004/pkg/api"
)

func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	res := systems.CalculateMove(ctx.Actor, p.Dx, p.Dy, ctx.Level)

	// Врезались в кого-то живого - возможно, это bump-атака
	if res.BlockedBy != nil {
		actorHostile := ctx.Actor.Brain != nil && ctx.Actor.Brain.Hostile
		targetHostile := res.BlockedBy.Brain != nil && res.BlockedBy.Brain.Hostile

		// Игрок бьет монстров, монстры бьют игрока. Своих не трогаем.
		if ctx.Actor.Kind != res.BlockedBy.Kind || actorHostile != targetHostile {
			logMsg := systems.ApplyAttack(ctx.Actor, res.BlockedBy)
			return handlers.Result{Msg: logMsg, MsgType: "COMBAT", ConsumesTurn: true}, nil
		}

		return handlers.Result{Msg: "Путь прегражден.", MsgType: "ERROR"}, nil
	}

	if res.HasMoved {
		if err := ctx.Level.MoveActor(ctx.Actor, res.NewPos); err != nil {
			return handlers.Result{Msg: "Путь прегражден.", MsgType: "ERROR"}, nil
		}
		return handlers.Result{ConsumesTurn: true}, nil
	}

	// Стена. Движение в стену хода НЕ тратит.
	if ctx.Actor.Kind == domain.ActorKindPlayer {
		return handlers.Result{Msg: "Путь прегражден.", MsgType: "ERROR"}, nil
	}
	return handlers.EmptyResult(), nil
}
