package domain

import "fmt"

// Tile - одна клетка карты.
// Walkable и Transparent независимы: пропасть непроходима, но просматривается,
// закрытая дверь проходима после открытия, но непрозрачна до него.
type Tile struct {
	Walkable    bool   `json:"walkable"`
	Transparent bool   `json:"transparent"`
	Env         string `json:"env"` // floor, wall, chasm, door...
}

// Grid - прямоугольная карта уровня. Создается один раз генератором,
// при переходе на другой уровень заменяется целиком, никогда не ресайзится.
type Grid struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  [][]Tile `json:"tiles"`
}

// NewGrid создает карту, залитую сплошной стеной (генератор "вырезает" комнаты)
func NewGrid(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := 0; y < height; y++ {
		tiles[y] = make([]Tile, width)
		for x := 0; x < width; x++ {
			tiles[y][x] = Tile{Walkable: false, Transparent: false, Env: "wall"}
		}
	}
	return &Grid{Width: width, Height: height, Tiles: tiles}
}

// InBounds проверяет, лежит ли точка внутри карты
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width && p.Y < g.Height
}

// IsWalkable возвращает проходимость клетки.
// Выход за границы - всегда "стена": лучи и движение не могут обернуться
// вокруг края карты или уронить индексацию.
func (g *Grid) IsWalkable(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.Tiles[p.Y][p.X].Walkable
}

// IsTransparent возвращает прозрачность клетки. За границами - непрозрачно.
func (g *Grid) IsTransparent(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.Tiles[p.Y][p.X].Transparent
}

// Index превращает координаты в линейный индекс (ключ для VisibilitySet и памяти)
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// SetTile - узкий мутатор. Вызывается только генератором и точками коммита
// оркестратора (открытие двери и т.п.), никогда из систем.
func (g *Grid) SetTile(p Position, t Tile) {
	if !g.InBounds(p) {
		return
	}
	g.Tiles[p.Y][p.X] = t
}

// Validate проверяет целостность карты. Ошибка здесь - не игровое событие,
// а нарушение контракта генератора: тик с такой картой не запускается.
func (g *Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("grid has corrupted dimensions %dx%d", g.Width, g.Height)
	}
	if len(g.Tiles) != g.Height {
		return fmt.Errorf("grid row count %d does not match height %d", len(g.Tiles), g.Height)
	}
	for y, row := range g.Tiles {
		if len(row) != g.Width {
			return fmt.Errorf("grid row %d has width %d, want %d", y, len(row), g.Width)
		}
	}
	return nil
}
