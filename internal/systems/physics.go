package systems

import (
	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/pkg/logger"
	"github.com/sirupsen/logrus"
)

// HasLineOfSight проверяет прямую видимость между двумя точками.
// Использует оптимизированный алгоритм Брезенхэма (только целочисленная
// арифметика). Взгляд блокируют непрозрачные клетки СТРОГО МЕЖДУ точками:
// сами конечные точки могут быть непрозрачными (стену, на которую
// смотришь, видно).
//
// Результат симметричен: линия строится из канонической точки (тот же
// разворот, что в lineCells), поэтому LOS(A,B) == LOS(B,A) всегда.
func HasLineOfSight(g *domain.Grid, p1, p2 domain.Position) bool {
	losLogger := logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"function":  "HasLineOfSight",
		"start_pos": p1,
		"end_pos":   p2,
	})

	if p1 == p2 {
		return true
	}

	// Промежуточные клетки проверяются все равно в каком порядке,
	// а канонический порядок дает один и тот же набор клеток
	// для обоих направлений
	if p2.Y < p1.Y || (p2.Y == p1.Y && p2.X < p1.X) {
		p1, p2 = p2, p1
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx, sy := p1.DirectionTo(p2)

	err := dx - dy

	for {
		// Проверяем препятствия, ИСКЛЮЧАЯ стартовую и конечную точки.
		isStartPoint := x0 == p1.X && y0 == p1.Y
		isEndPoint := x0 == p2.X && y0 == p2.Y

		if !isStartPoint && !isEndPoint {
			// IsTransparent возвращает false и за границами карты
			if !g.IsTransparent(domain.Position{X: x0, Y: y0}) {
				losLogger.WithField("blocking_point", map[string]int{"x": x0, "y": y0}).
					Debug("Line of sight blocked.")
				return false
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
