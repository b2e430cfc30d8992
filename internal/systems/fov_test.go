package systems

import (
	"testing"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
)

func TestComputeVisible_OriginAlwaysVisible(t *testing.T) {
	l := createTestLevel(10, 10)
	origin := domain.Position{X: 5, Y: 5}

	fov := ComputeVisible(l.Grid, origin, domain.VisionRadius)
	if !fov.Visible(l.Grid, origin) {
		t.Fatal("Origin must always be visible")
	}

	// Нулевой радиус: видна только своя клетка
	fov = ComputeVisible(l.Grid, origin, 0)
	if len(fov) != 1 || !fov.Visible(l.Grid, origin) {
		t.Fatalf("With radius 0 only origin should be visible, got %d tiles", len(fov))
	}
}

func TestComputeVisible_CircularRadius(t *testing.T) {
	l := createTestLevel(20, 20)
	origin := domain.Position{X: 10, Y: 10}
	radius := 5

	fov := ComputeVisible(l.Grid, origin, radius)

	for idx := range fov {
		x := idx % l.Grid.Width
		y := idx / l.Grid.Width
		dx := x - origin.X
		dy := y - origin.Y
		if dx*dx+dy*dy > radius*radius {
			t.Errorf("Tile (%d,%d) outside circular radius %d is visible", x, y, radius)
		}
	}

	// Клетка строго на границе круга (5,0) видна, диагональный угол (4,4) - нет
	if !fov.Visible(l.Grid, domain.Position{X: 15, Y: 10}) {
		t.Error("Tile on the exact radius edge should be visible")
	}
	if fov.Visible(l.Grid, domain.Position{X: 14, Y: 14}) {
		t.Error("Diagonal corner outside the circle should not be visible")
	}
}

func TestComputeVisible_WallFaceAndShadow(t *testing.T) {
	l := createTestLevel(12, 12)
	origin := domain.Position{X: 2, Y: 5}
	setWall(l, 5, 5)

	fov := ComputeVisible(l.Grid, origin, 8)

	// Сама стена видна (на нее смотрим в упор по прямой)
	if !fov.Visible(l.Grid, domain.Position{X: 5, Y: 5}) {
		t.Error("The wall face itself should be visible")
	}

	// Клетка сразу за стеной - в тени
	if fov.Visible(l.Grid, domain.Position{X: 6, Y: 5}) {
		t.Error("Tile directly behind the wall should be shadowed")
	}
	if fov.Visible(l.Grid, domain.Position{X: 7, Y: 5}) {
		t.Error("Deeper tile behind the wall should be shadowed")
	}
}

func TestComputeVisible_ChasmDoesNotBlock(t *testing.T) {
	l := createTestLevel(12, 12)
	origin := domain.Position{X: 2, Y: 5}
	setChasm(l, 5, 5)

	fov := ComputeVisible(l.Grid, origin, 8)

	if !fov.Visible(l.Grid, domain.Position{X: 6, Y: 5}) {
		t.Error("Chasm is transparent, tiles behind it should be visible")
	}
}

// Меньший радиус дает строгое подмножество большего:
// форма поля зрения не зависит от радиуса, только обрезается им
func TestComputeVisible_RadiusMonotonicity(t *testing.T) {
	l := createTestLevel(20, 20)
	setWall(l, 8, 10)
	setWall(l, 12, 9)
	origin := domain.Position{X: 10, Y: 10}

	small := ComputeVisible(l.Grid, origin, 4)
	big := ComputeVisible(l.Grid, origin, 8)

	for idx := range small {
		if !big[idx] {
			t.Errorf("Tile %d visible at radius 4 but not at radius 8", idx)
		}
	}
}

// На открытой местности видимость полностью взаимна:
// каждая пара клеток в радиусе видит друг друга в обе стороны
func TestComputeVisible_ReciprocityOpenGround(t *testing.T) {
	l := createTestLevel(10, 10)
	radius := 4

	fovs := make(map[domain.Position]VisibilitySet)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			p := domain.Position{X: x, Y: y}
			fovs[p] = ComputeVisible(l.Grid, p, radius)
		}
	}

	for a, fovA := range fovs {
		for b, fovB := range fovs {
			if fovA.Visible(l.Grid, b) != fovB.Visible(l.Grid, a) {
				t.Fatalf("One-way visibility on open ground: %v vs %v", a, b)
			}
		}
	}
}

// Гарантия взаимности на препятствиях: если прямая между двумя
// проходимыми для взгляда клетками свободна, обе видят друг друга.
// За углами (прямая задета, но shadowcasting клетку достает) полная
// взаимность НЕ гарантируется - это документированное ограничение.
func TestComputeVisible_MutualOnClearLine(t *testing.T) {
	l := createTestLevel(14, 14)
	setWall(l, 4, 4)
	setWall(l, 5, 4)
	setWall(l, 6, 4)
	setWall(l, 9, 8)
	setWall(l, 9, 9)
	setWall(l, 3, 10)
	radius := 6

	fovs := make(map[domain.Position]VisibilitySet)
	for y := 0; y < 14; y++ {
		for x := 0; x < 14; x++ {
			p := domain.Position{X: x, Y: y}
			if l.Grid.IsTransparent(p) {
				fovs[p] = ComputeVisible(l.Grid, p, radius)
			}
		}
	}

	for a, fovA := range fovs {
		for b, fovB := range fovs {
			if a == b || a.DistanceSquaredTo(b) > radius*radius {
				continue
			}
			if !HasLineOfSight(l.Grid, a, b) {
				continue
			}
			if !fovA.Visible(l.Grid, b) || !fovB.Visible(l.Grid, a) {
				t.Fatalf("Clear line %v-%v but visibility is not mutual", a, b)
			}
		}
	}
}

func TestComputeVisible_NearMapEdge(t *testing.T) {
	l := createTestLevel(10, 10)
	origin := domain.Position{X: 0, Y: 0}

	// Не должно паниковать и не должно "заворачивать" за край
	fov := ComputeVisible(l.Grid, origin, 8)

	if !fov.Visible(l.Grid, origin) {
		t.Fatal("Origin in the corner must be visible")
	}
	for idx := range fov {
		x := idx % l.Grid.Width
		y := idx / l.Grid.Width
		if x < 0 || y < 0 || x >= l.Grid.Width || y >= l.Grid.Height {
			t.Errorf("Visible tile (%d,%d) is out of bounds", x, y)
		}
	}
}
