package actions

import (
	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/internal/engine/handlers"
	"github.com/dirkkok101/roguelike-sub004/internal/systems"
	"github.com/dirkkok101/roguelike-sub004/pkg/api"
)

// HandleThrow - бросок в точку карты. В отличие от ZAP цель - клетка,
// а не актор: снаряд может долететь до пустого пола и "угаснуть".
func HandleThrow(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	targetPos := domain.Position{X: p.X, Y: p.Y}
	effect := domain.ThrownRockEffect

	check := systems.ValidateRangedAction(ctx.Actor, targetPos, effect.Range, ctx.Level)
	if !check.OK {
		return handlers.Result{Msg: check.Message, MsgType: "ERROR"}, nil
	}

	res := systems.Trace(ctx.Level, ctx.Actor.ID, ctx.Actor.Pos, targetPos, effect.Range)

	logMsg, consumed := systems.ApplyRangedEffect(ctx.Level, ctx.Actor, effect, res)
	return handlers.Result{Msg: logMsg, MsgType: "COMBAT", ConsumesTurn: consumed}, nil
}
