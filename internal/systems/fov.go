package systems

import (
	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/pkg/logger"
	"github.com/sirupsen/logrus"
)

// VisibilitySet - множество видимых клеток (ключ - линейный индекс Grid.Index).
// Эфемерный результат: пересчитывается на каждый запрос, нигде не хранится.
type VisibilitySet map[int]bool

// Visible проверяет, видна ли точка
func (v VisibilitySet) Visible(g *domain.Grid, p domain.Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return v[g.Index(p.X, p.Y)]
}

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisible возвращает множество клеток, видимых из origin в заданном
// радиусе. Чистая функция от (origin, radius, снимок карты).
//
// Радиус круговой: клетка проходит тест дистанции при dx*dx+dy*dy <= r*r.
// Непрозрачная клетка сама по себе видима (стену, на которую смотришь,
// видно), но сквозь нее - нет.
func ComputeVisible(g *domain.Grid, origin domain.Position, radius int) VisibilitySet {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
		"radius":       radius,
	})

	visible := make(VisibilitySet)

	// Центр виден всегда, даже при нулевом радиусе
	if g.InBounds(origin) {
		visible[g.Index(origin.X, origin.Y)] = true
	}

	if radius <= 0 {
		return visible
	}

	// Рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(g, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	// Shadowcasting у углов изредка пропускает клетки, до которых прямая
	// Брезенхэма доходит без помех. Добираем их: прямая симметрична,
	// поэтому две клетки со свободной прямой между ними видят друг друга
	// взаимно. Полной взаимности за углами это не гарантирует - см. тесты.
	radiusSq := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radiusSq {
				continue
			}
			p := domain.Position{X: origin.X + dx, Y: origin.Y + dy}
			if !g.InBounds(p) {
				continue
			}
			idx := g.Index(p.X, p.Y)
			if visible[idx] {
				continue
			}
			if HasLineOfSight(g, origin, p) {
				visible[idx] = true
			}
		}
	}

	fovLogger.WithField("visible_tiles", len(visible)).Debug("FOV calculation complete.")

	return visible
}

func castLight(g *domain.Grid, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible VisibilitySet) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			p := domain.Position{
				X: cx + dx*xx + dy*xy,
				Y: cy + dx*yx + dy*yy,
			}

			// Проверка границ и кругового радиуса
			if g.InBounds(p) && dx*dx+dy*dy <= radiusSq {
				visible[g.Index(p.X, p.Y)] = true
			}

			// Логика теней
			if blocked {
				// Идем вдоль стены...
				if isOpaque(g, p) {
					newStart = rSlope
					continue
				}
				// Стена кончилась, началась пустота
				blocked = false
				start = newStart
			} else {
				// Шли по пустоте и наткнулись на стену
				if isOpaque(g, p) && j < radius {
					blocked = true
					// Рекурсивно сканируем следующий ряд
					castLight(g, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}

// isOpaque проверяет, блокирует ли клетка взгляд.
// Выход за границы считается блокирующим.
func isOpaque(g *domain.Grid, p domain.Position) bool {
	return !g.IsTransparent(p)
}
