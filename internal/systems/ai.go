package systems

import (
	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/pkg/logger"
	"github.com/sirupsen/logrus"
)

// NPCDecision - решение монстра на его ход
type NPCDecision struct {
	Action domain.ActionType
	Target *domain.Actor // Для ATTACK и ZAP
	Dx, Dy int           // Для MOVE
}

// ComputeNPCAction решает, что делать монстру. Чистая функция над снимком
// уровня: применение решения (команда движку) - забота вызывающего.
func ComputeNPCAction(npc, target *domain.Actor, level *domain.Level) NPCDecision {
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"npc_id":    npc.ID,
		"npc_name":  npc.Name,
	})

	if npc.Brain == nil || !npc.Alive() || !npc.Brain.Hostile {
		return NPCDecision{Action: domain.ActionWait}
	}
	if target == nil || !target.Alive() {
		return NPCDecision{Action: domain.ActionWait}
	}

	// Обнаружение цели: монстр "видит" игрока тем же движком видимости,
	// что и игрок монстра
	radius := domain.VisionRadius
	if npc.Vision != nil {
		radius = npc.Vision.Radius
	}
	fov := ComputeVisible(level.Grid, npc.Pos, radius)
	if !fov.Visible(level.Grid, target.Pos) {
		aiLogger.Debug("Target not visible. Waiting.")
		return NPCDecision{Action: domain.ActionWait}
	}

	// Рукопашная, если цель в соседней клетке
	if npc.Pos.IsAdjacent(target.Pos) {
		aiLogger.Debug("Target in melee range. Attacking.")
		return NPCDecision{Action: domain.ActionAttack, Target: target}
	}

	// Дальнобойная атака через тот же чекпоинт, что и у игрока
	if npc.Brain.Missile != nil {
		check := ValidateRangedAction(npc, target.Pos, npc.Brain.Missile.Range, level)
		if check.OK {
			aiLogger.Debug("Target in missile range. Firing.")
			return NPCDecision{Action: domain.ActionZap, Target: target}
		}
	}

	// Видим, но цель за пределами агро-радиуса - не гонимся.
	// Сравниваем квадраты дистанций, корень тут не нужен.
	if npc.Pos.DistanceSquaredTo(target.Pos) > domain.AggroRadius*domain.AggroRadius {
		return NPCDecision{Action: domain.ActionWait}
	}

	// Преследование
	dx, dy := calculateSmartMove(npc, target, level)
	if dx == 0 && dy == 0 {
		aiLogger.Debug("Path is blocked. Waiting.")
		return NPCDecision{Action: domain.ActionWait}
	}

	return NPCDecision{Action: domain.ActionMove, Dx: dx, Dy: dy}
}

// calculateSmartMove выбирает шаг к цели с обходом препятствий (Smart Sliding)
func calculateSmartMove(npc, target *domain.Actor, level *domain.Level) (int, int) {
	dxRaw := target.Pos.X - npc.Pos.X
	dyRaw := target.Pos.Y - npc.Pos.Y

	stepX, stepY := npc.Pos.DirectionTo(target.Pos)

	// Попытка 1: идеальный путь (диагональ или прямая)
	if checkMove(npc, stepX, stepY, level) {
		return stepX, stepY
	}

	// Попытка 2: приоритетная ось - та, где расстояние больше
	tryXFirst := abs(dxRaw) > abs(dyRaw)

	if tryXFirst {
		if stepX != 0 && checkMove(npc, stepX, 0, level) {
			return stepX, 0
		}
		if stepY != 0 && checkMove(npc, 0, stepY, level) {
			return 0, stepY
		}
	} else {
		if stepY != 0 && checkMove(npc, 0, stepY, level) {
			return 0, stepY
		}
		if stepX != 0 && checkMove(npc, stepX, 0, level) {
			return stepX, 0
		}
	}

	return 0, 0 // Тупик
}

func checkMove(a *domain.Actor, dx, dy int, level *domain.Level) bool {
	res := CalculateMove(a, dx, dy, level)
	return res.HasMoved
}
