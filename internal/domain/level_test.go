package domain

import "testing"

func floorLevel(w, h int) *Level {
	g := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.SetTile(Position{X: x, Y: y}, Tile{Walkable: true, Transparent: true, Env: "floor"})
		}
	}
	return NewLevel(1, g)
}

func TestLevel_SpawnSeqOrder(t *testing.T) {
	l := floorLevel(10, 10)

	a := &Actor{ID: "a", Pos: Position{X: 1, Y: 1}}
	b := &Actor{ID: "b", Pos: Position{X: 2, Y: 1}}
	l.AddActor(a)
	l.AddActor(b)

	if a.SpawnSeq >= b.SpawnSeq {
		t.Errorf("Spawn order broken: a=%d b=%d", a.SpawnSeq, b.SpawnSeq)
	}

	// Номера не переиспользуются после удаления
	l.RemoveActor("a")
	c := &Actor{ID: "c", Pos: Position{X: 3, Y: 1}}
	l.AddActor(c)
	if c.SpawnSeq <= b.SpawnSeq {
		t.Errorf("SpawnSeq reused: c=%d b=%d", c.SpawnSeq, b.SpawnSeq)
	}
}

func TestLevel_MoveActorKeepsIndex(t *testing.T) {
	l := floorLevel(10, 10)
	a := &Actor{ID: "a", Pos: Position{X: 1, Y: 1}}
	l.AddActor(a)

	if err := l.MoveActor(a, Position{X: 2, Y: 2}); err != nil {
		t.Fatal(err)
	}

	if len(l.ActorsAt(Position{X: 1, Y: 1})) != 0 {
		t.Error("Old cell still lists the actor")
	}
	got := l.ActorsAt(Position{X: 2, Y: 2})
	if len(got) != 1 || got[0].ID != "a" {
		t.Error("New cell does not list the actor")
	}

	if err := l.MoveActor(a, Position{X: -1, Y: 0}); err == nil {
		t.Error("Expected error moving out of bounds")
	}
}

func TestLevel_Validate(t *testing.T) {
	l := floorLevel(10, 10)
	a := &Actor{ID: "a", Pos: Position{X: 1, Y: 1}}
	l.AddActor(a)

	if err := l.Validate(); err != nil {
		t.Fatalf("Healthy level should validate: %v", err)
	}

	// Актор за границей карты - нарушение контракта
	a.Pos = Position{X: 50, Y: 50}
	if err := l.Validate(); err == nil {
		t.Error("Expected error for an out-of-bounds actor")
	}
}
