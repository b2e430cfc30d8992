package dungeon

import (
	"math/rand"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/pkg/utils"
)

// Константы генерации
const (
	MapWidth  = 48
	MapHeight = 28
	MaxRooms  = 9
	MinSize   = 4
	MaxSize   = 10
)

// Rect - вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// Generate создает уровень глубины depth из сида.
// ВСЯ случайность идет через локальный rng: один и тот же сид
// обязан давать байт-в-байт одинаковую карту и тех же монстров.
func Generate(seed int64, depth int) (*domain.Level, []*domain.Actor, domain.Position) {
	rng := utils.NewRNG(seed)

	// 1. Сплошная скала
	grid := domain.NewGrid(MapWidth, MapHeight)

	var rooms []Rect
	var monsters []*domain.Actor

	// 2. Нарезаем комнаты
	for i := 0; i < MaxRooms; i++ {
		w := randRange(rng, MinSize, MaxSize)
		h := randRange(rng, MinSize, MaxSize)
		x := randRange(rng, 1, MapWidth-w-1)
		y := randRange(rng, 1, MapHeight-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}
		failed := false

		for _, other := range rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}

		if !failed {
			carveRoom(grid, newRoom)

			if len(rooms) > 0 {
				// Соединяем с предыдущей комнатой
				prevX, prevY := rooms[len(rooms)-1].Center()
				currX, currY := newRoom.Center()

				if rng.Intn(2) == 0 {
					carveHCorridor(grid, prevX, currX, prevY)
					carveVCorridor(grid, prevY, currY, currX)
				} else {
					carveVCorridor(grid, prevY, currY, prevX)
					carveHCorridor(grid, prevX, currX, currY)
				}
			}
			rooms = append(rooms, newRoom)
		}
	}

	// 3. Точка входа - центр первой комнаты
	startPos := domain.Position{X: 1, Y: 1}
	if len(rooms) > 0 {
		cx, cy := rooms[0].Center()
		startPos = domain.Position{X: cx, Y: cy}
	}

	// 4. Пропасти: непроходимы, но просматриваются насквозь.
	// Режем их в случайных комнатах (кроме первой), по краю.
	for i := 1; i < len(rooms); i++ {
		if rng.Float32() > 0.35 {
			continue
		}
		room := rooms[i]
		cy := room.Y + 1 + rng.Intn(room.H-1)
		for x := room.X + 1; x < room.X+room.W; x++ {
			if rng.Float32() < 0.5 {
				grid.SetTile(domain.Position{X: x, Y: cy}, domain.Tile{Walkable: false, Transparent: true, Env: "chasm"})
			}
		}
	}

	// 5. Монстры - во всех комнатах кроме первой
	for i := 1; i < len(rooms); i++ {
		room := rooms[i]
		cx, cy := room.Center()

		if rng.Float32() > 0.3 {
			kind := MonsterGoblin
			roll := rng.Float32()
			switch {
			case roll > 0.8:
				kind = MonsterArcher
			case roll > 0.55 || depth > 2:
				kind = MonsterOrc
			}

			pos := domain.Position{
				X: cx + randRange(rng, -1, 1),
				Y: cy + randRange(rng, -1, 1),
			}
			if !grid.IsWalkable(pos) {
				pos = domain.Position{X: cx, Y: cy}
			}

			monsters = append(monsters, CreateMonster(kind, pos, depth, rng))
		}
	}

	// 6. Лестница вниз - в последней комнате
	if len(rooms) > 0 {
		lastRoom := rooms[len(rooms)-1]
		lx, ly := lastRoom.Center()
		grid.SetTile(domain.Position{X: lx, Y: ly}, domain.Tile{Walkable: true, Transparent: true, Env: "stairs"})
	}

	level := domain.NewLevel(depth, grid)
	return level, monsters, startPos
}

// --- Вспомогательные функции ---

func carveRoom(grid *domain.Grid, room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			grid.SetTile(domain.Position{X: x, Y: y}, domain.Tile{Walkable: true, Transparent: true, Env: "floor"})
		}
	}
}

func carveHCorridor(grid *domain.Grid, x1, x2, y int) {
	start := min(x1, x2)
	end := max(x1, x2)
	for x := start; x <= end; x++ {
		grid.SetTile(domain.Position{X: x, Y: y}, domain.Tile{Walkable: true, Transparent: true, Env: "floor"})
	}
}

func carveVCorridor(grid *domain.Grid, y1, y2, x int) {
	start := min(y1, y2)
	end := max(y1, y2)
	for y := start; y <= end; y++ {
		grid.SetTile(domain.Position{X: x, Y: y}, domain.Tile{Walkable: true, Transparent: true, Env: "floor"})
	}
}

func randRange(rng *rand.Rand, lo, hi int) int {
	return rng.Intn(hi-lo+1) + lo
}
