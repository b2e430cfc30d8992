package systems

import (
	"github.com/dirkkok101/roguelike-sub004/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewPos    domain.Position
	HasMoved  bool
	BlockedBy *domain.Actor // Если врезались в кого-то (для bump-атаки)
	IsWall    bool          // Если врезались в стену
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира:
// применение движения - забота вызывающего (точка коммита оркестратора).
func CalculateMove(a *domain.Actor, dx, dy int, level *domain.Level) MovementResult {
	targetPos := a.Pos.Shift(dx, dy)

	res := MovementResult{NewPos: targetPos}

	// 1. Стены и границы (IsWalkable за границами возвращает false)
	if !level.Grid.IsWalkable(targetPos) {
		res.IsWall = true
		return res
	}

	// 2. Живые акторы блокируют клетку, трупы - нет
	for _, other := range level.ActorsAt(targetPos) {
		if other.ID == a.ID {
			continue
		}
		if other.Alive() {
			res.BlockedBy = other
			return res
		}
	}

	res.HasMoved = true
	return res
}
