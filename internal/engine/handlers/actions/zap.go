package actions

import (
	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/internal/engine/handlers"
	"github.com/dirkkok101/roguelike-sub004/internal/systems"
	"github.com/dirkkok101/roguelike-sub004/pkg/api"
)

// HandleZap - дальнобойная атака по актору-цели.
// Снаряд летит по прямой и бьет ПЕРВОГО, кто окажется на пути:
// попасть можно и не в того, в кого целился.
func HandleZap(ctx handlers.Context, p api.ActorPayload) (handlers.Result, error) {
	target := ctx.Level.GetActor(domain.ActorID(p.TargetID))
	if target == nil {
		return handlers.Result{Msg: "Цель не найдена.", MsgType: "ERROR"}, nil
	}

	// Снаряд стрелка: у монстров свой (Brain.Missile), у игрока - жезл огня
	effect := domain.FireboltEffect
	if ctx.Actor.Brain != nil && ctx.Actor.Brain.Missile != nil {
		effect = *ctx.Actor.Brain.Missile
	}

	// Единый чекпоинт: дальность и line-of-sight проверяются ЗДЕСЬ,
	// до трассировки. Отказ хода не тратит.
	check := systems.ValidateRangedAction(ctx.Actor, target.Pos, effect.Range, ctx.Level)
	if !check.OK {
		return handlers.Result{Msg: check.Message, MsgType: "ERROR"}, nil
	}

	res := systems.Trace(ctx.Level, ctx.Actor.ID, ctx.Actor.Pos, target.Pos, effect.Range)

	logMsg, consumed := systems.ApplyRangedEffect(ctx.Level, ctx.Actor, effect, res)
	return handlers.Result{Msg: logMsg, MsgType: "COMBAT", ConsumesTurn: consumed}, nil
}
