package systems

import (
	"github.com/dirkkok101/roguelike-sub004/internal/domain"
)

// TraceOutcome - исход трассировки. Все восстановимые случаи - теговые
// варианты, а не ошибки: решение о сообщении игроку принимает вызывающий.
type TraceOutcome uint8

const (
	// TraceNoTarget - цель не задана (origin == target или дальность <= 0).
	// Ход не тратится.
	TraceNoTarget TraceOutcome = iota

	// TraceOutOfRange - цель дальше max_range. Отличается от NoTarget:
	// клиент показывает "Дальность: N". Ход не тратится.
	TraceOutOfRange

	// TraceHitWall - снаряд уперся в непроходимую клетку
	TraceHitWall

	// TraceHitActor - снаряд попал в первого актора на пути
	TraceHitActor

	// TraceReachedTarget - путь пройден до конца, снаряд "угас" в пустой клетке
	TraceReachedTarget
)

var traceOutcomeToString = map[TraceOutcome]string{
	TraceNoTarget:      "NO_TARGET",
	TraceOutOfRange:    "OUT_OF_RANGE",
	TraceHitWall:       "HIT_WALL",
	TraceHitActor:      "HIT_ACTOR",
	TraceReachedTarget: "REACHED_TARGET",
}

func (o TraceOutcome) String() string {
	if val, ok := traceOutcomeToString[o]; ok {
		return val
	}
	return "UNKNOWN"
}

// TrajectoryResult - результат трассировки снаряда.
// Производится один раз на выстрел, потребляется боевой системой и
// выбрасывается.
type TrajectoryResult struct {
	// Path - пройденные клетки по порядку, БЕЗ origin.
	// Последняя клетка - та, где снаряд остановился.
	Path []domain.Position

	Outcome TraceOutcome

	// HitActorID заполнен при Outcome == TraceHitActor
	HitActorID domain.ActorID

	// Stopped - клетка остановки (стена для HitWall, актор для HitActor,
	// последняя клетка пути для ReachedTarget)
	Stopped domain.Position
}

// Trace ведет снаряд по прямой от origin к target, останавливаясь на первом
// препятствии или акторе. Дальность меряется шагами Чебышева.
//
// Видимость цели здесь НЕ проверяется: line-of-sight - предусловие
// вызывающего (см. ValidateRangedAction). Trace только читает Level.
//
// Путь детерминирован и не зависит от направления: trace(A,B) дает те же
// клетки, что trace(B,A), в обратном порядке.
func Trace(level *domain.Level, shooter domain.ActorID, origin, target domain.Position, maxRange int) TrajectoryResult {
	// Валидация до трассировки
	if origin == target || maxRange <= 0 {
		return TrajectoryResult{Outcome: TraceNoTarget}
	}
	if origin.ChebyshevTo(target) > maxRange {
		return TrajectoryResult{Outcome: TraceOutOfRange}
	}

	cells := lineCells(origin, target)

	res := TrajectoryResult{Path: make([]domain.Position, 0, len(cells))}

	// cells[0] == origin, его не проверяем и в путь не включаем
	for _, cell := range cells[1:] {
		res.Path = append(res.Path, cell)

		// Стена (или выход за границы - там тоже "стена")
		if !level.Grid.IsWalkable(cell) {
			res.Outcome = TraceHitWall
			res.Stopped = cell
			return res
		}

		// Первый живой актор на пути, кроме стрелка.
		// Пробивающие/площадные эффекты - отдельная механика, здесь ее нет.
		for _, occ := range level.ActorsAt(cell) {
			if occ.ID == shooter || !occ.Alive() {
				continue
			}
			res.Outcome = TraceHitActor
			res.HitActorID = occ.ID
			res.Stopped = cell
			return res
		}
	}

	// Путь исчерпан: снаряд долетел до цели и угас
	res.Outcome = TraceReachedTarget
	if len(res.Path) > 0 {
		res.Stopped = res.Path[len(res.Path)-1]
	}
	return res
}

// lineCells возвращает клетки прямой Брезенхэма от a до b включительно.
// Линия всегда строится из канонической точки (меньшей по Y, затем по X)
// и при необходимости разворачивается: так путь не зависит от направления,
// что особенно важно на диагоналях.
func lineCells(a, b domain.Position) []domain.Position {
	flip := b.Y < a.Y || (b.Y == a.Y && b.X < a.X)
	if flip {
		a, b = b, a
	}

	cells := bresenham(a, b)

	if flip {
		for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
			cells[i], cells[j] = cells[j], cells[i]
		}
	}
	return cells
}

func bresenham(from, to domain.Position) []domain.Position {
	x0, y0 := from.X, from.Y
	x1, y1 := to.X, to.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := from.DirectionTo(to)

	err := dx - dy
	cells := []domain.Position{{X: x0, Y: y0}}

	for x0 != x1 || y0 != y1 {
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
		cells = append(cells, domain.Position{X: x0, Y: y0})
	}
	return cells
}
