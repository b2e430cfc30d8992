package domain

import "testing"

func TestGrid_OutOfBoundsPolicy(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetTile(Position{X: 2, Y: 2}, Tile{Walkable: true, Transparent: true, Env: "floor"})

	oob := []Position{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 5, Y: 0},
		{X: 0, Y: 5},
		{X: 100, Y: 100},
	}

	for _, p := range oob {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v) = true", p)
		}
		// За краем карты - непроходимо и непрозрачно, без паник
		if g.IsWalkable(p) {
			t.Errorf("IsWalkable(%v) = true, out of bounds must behave like a wall", p)
		}
		if g.IsTransparent(p) {
			t.Errorf("IsTransparent(%v) = true, out of bounds must block sight", p)
		}
	}

	// SetTile за границей - no-op, не паника
	g.SetTile(Position{X: -1, Y: -1}, Tile{Walkable: true})
}

func TestGrid_Validate(t *testing.T) {
	g := NewGrid(4, 3)
	if err := g.Validate(); err != nil {
		t.Fatalf("Fresh grid should validate: %v", err)
	}

	// Битая строка
	g.Tiles[1] = g.Tiles[1][:2]
	if err := g.Validate(); err == nil {
		t.Error("Expected error for a short row")
	}

	bad := &Grid{Width: 0, Height: 5}
	if err := bad.Validate(); err == nil {
		t.Error("Expected error for zero width")
	}
}

func TestStats_TakeDamage(t *testing.T) {
	s := &StatsComponent{HP: 5, MaxHP: 10}

	if died := s.TakeDamage(3); died || s.HP != 2 {
		t.Errorf("HP = %d, died = %v", s.HP, died)
	}

	// Урон больше остатка: HP зажимается в 0, смерть фиксируется
	if died := s.TakeDamage(10); !died || s.HP != 0 || !s.IsDead {
		t.Errorf("Overkill: HP = %d, IsDead = %v", s.HP, s.IsDead)
	}
}
