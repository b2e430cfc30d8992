package actions

import (
	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/internal/engine/handlers"
	"github.com/dirkkok101/roguelike-sub004/internal/systems"
	"github.com/dirkkok101/roguelike-sub004/pkg/api"
)

func HandleAttack(ctx handlers.Context, p api.ActorPayload) (handlers.Result, error) {
	// 1. Поиск цели
	target := ctx.Level.GetActor(domain.ActorID(p.TargetID))
	if target == nil {
		return handlers.Result{Msg: "Цель не найдена.", MsgType: "ERROR"}, nil
	}

	// 2. Проверка дистанции (рукопашная = соседняя клетка, включая диагональ)
	if !ctx.Actor.Pos.IsAdjacent(target.Pos) {
		return handlers.Result{Msg: "Цель слишком далеко.", MsgType: "ERROR"}, nil
	}

	// 3. Сквозь угол стены бить нельзя
	if !systems.HasLineOfSight(ctx.Level.Grid, ctx.Actor.Pos, target.Pos) {
		return handlers.Result{Msg: "Вы не видите цель.", MsgType: "ERROR"}, nil
	}

	// 4. Вызов системы боя
	logMsg := systems.ApplyAttack(ctx.Actor, target)

	return handlers.Result{Msg: logMsg, MsgType: "COMBAT", ConsumesTurn: true}, nil
}
