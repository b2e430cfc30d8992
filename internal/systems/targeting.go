package systems

import (
	"fmt"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
)

// RangedFailure - причина отказа единого чекпоинта дальнобойных действий
type RangedFailure uint8

const (
	RangedOK RangedFailure = iota
	RangedNoTarget
	RangedOutOfRange
	RangedNotVisible
)

// RangedValidation - результат проверки цели.
// Ни один из отказов не тратит ход: сообщение уходит игроку, планировщик
// не двигается.
type RangedValidation struct {
	OK      bool
	Failure RangedFailure
	Message string // Сообщение об ошибке, если OK == false
}

// ValidateRangedAction - ЕДИНСТВЕННАЯ точка, где перед выстрелом проверяется
// line-of-sight. Через нее проходят и хендлеры игрока (ZAP, THROW), и
// дальнобойный AI монстров: Trace предусловий не проверяет.
//
// Параметры:
// - target: точка, куда летит снаряд (позиция актора-цели или клетка карты)
// - maxRange: дальность снаряда в шагах Чебышева
func ValidateRangedAction(actor *domain.Actor, target domain.Position, maxRange int, level *domain.Level) RangedValidation {
	// 1. Цель должна существовать и не совпадать со стрелком
	if actor.Pos == target || maxRange <= 0 {
		return RangedValidation{Failure: RangedNoTarget, Message: "Нет цели."}
	}

	// 2. Проверка дистанции
	if actor.Pos.ChebyshevTo(target) > maxRange {
		return RangedValidation{
			Failure: RangedOutOfRange,
			Message: fmt.Sprintf("Цель слишком далеко. Дальность: %d", maxRange),
		}
	}

	// 3. Проверка видимости (Line of Sight)
	if !HasLineOfSight(level.Grid, actor.Pos, target) {
		return RangedValidation{Failure: RangedNotVisible, Message: "Вы не видите цель."}
	}

	return RangedValidation{OK: true}
}
