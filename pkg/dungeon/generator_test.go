package dungeon

import (
	"math/rand"
	"testing"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
)

// Один сид - одна карта. На этом держатся реплеи и переходы между уровнями.
func TestGenerate_Deterministic(t *testing.T) {
	l1, m1, e1 := Generate(42, 1)
	l2, m2, e2 := Generate(42, 1)

	if e1 != e2 {
		t.Fatalf("Entry points differ: %v vs %v", e1, e2)
	}
	if len(m1) != len(m2) {
		t.Fatalf("Monster counts differ: %d vs %d", len(m1), len(m2))
	}
	for i := range m1 {
		if m1[i].Pos != m2[i].Pos || m1[i].Name != m2[i].Name {
			t.Errorf("Monster %d differs: %s@%v vs %s@%v", i, m1[i].Name, m1[i].Pos, m2[i].Name, m2[i].Pos)
		}
	}
	for y := 0; y < l1.Grid.Height; y++ {
		for x := 0; x < l1.Grid.Width; x++ {
			if l1.Grid.Tiles[y][x] != l2.Grid.Tiles[y][x] {
				t.Fatalf("Tile (%d,%d) differs between runs", x, y)
			}
		}
	}
}

func TestGenerate_DifferentSeeds(t *testing.T) {
	l1, _, _ := Generate(42, 1)
	l2, _, _ := Generate(43, 1)

	same := true
	for y := 0; y < l1.Grid.Height && same; y++ {
		for x := 0; x < l1.Grid.Width; x++ {
			if l1.Grid.Tiles[y][x] != l2.Grid.Tiles[y][x] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Different seeds produced identical maps")
	}
}

func TestGenerate_ValidLevel(t *testing.T) {
	level, monsters, entry := Generate(7, 1)

	if err := level.Validate(); err != nil {
		t.Fatalf("Generated level is corrupted: %v", err)
	}
	if !level.Grid.IsWalkable(entry) {
		t.Errorf("Entry point %v is not walkable", entry)
	}

	// Лестница вниз обязана существовать
	foundStairs := false
	for y := 0; y < level.Grid.Height; y++ {
		for x := 0; x < level.Grid.Width; x++ {
			if level.Grid.Tiles[y][x].Env == "stairs" {
				foundStairs = true
			}
		}
	}
	if !foundStairs {
		t.Error("Level has no stairs down")
	}

	for _, m := range monsters {
		if m.Kind != domain.ActorKindMonster {
			t.Errorf("Generator spawned a non-monster actor %s", m.ID)
		}
		if m.Energy == nil || m.Energy.Speed <= 0 {
			t.Errorf("Monster %s has no usable energy component", m.Name)
		}
		if m.Energy != nil && (m.Energy.Energy < 0 || m.Energy.Energy >= domain.SpawnEnergyJitter) {
			t.Errorf("Monster %s spawn energy %d outside [0,%d)", m.Name, m.Energy.Energy, domain.SpawnEnergyJitter)
		}
	}
}

func TestCreateMonster_Kinds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pos := domain.Position{X: 3, Y: 3}

	archer := CreateMonster(MonsterArcher, pos, 1, rng)
	if archer.Brain == nil || archer.Brain.Missile == nil {
		t.Error("Archer must carry a missile effect")
	}

	orc := CreateMonster(MonsterOrc, pos, 1, rng)
	goblin := CreateMonster(MonsterGoblin, pos, 1, rng)
	if orc.Energy.Speed >= goblin.Energy.Speed {
		t.Error("Orcs are expected to be slower than goblins")
	}
	if goblin.Brain.Missile != nil {
		t.Error("Melee monsters must not carry a missile effect")
	}

	// Глубина масштабирует статы
	deep := CreateMonster(MonsterOrc, pos, 3, rng)
	if deep.Stats.MaxHP <= orc.Stats.MaxHP {
		t.Error("Deeper monsters should have more HP")
	}
}
