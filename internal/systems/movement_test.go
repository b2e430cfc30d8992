package systems

import (
	"testing"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
)

func TestCalculateMove(t *testing.T) {
	l := createTestLevel(10, 10)
	setWall(l, 5, 5)

	actor := spawnActor(l, "hero", domain.ActorKindPlayer, 4, 5)

	// Test 1: Move into empty space
	res := CalculateMove(actor, 0, -1, l) // Move Up (from 4,5 to 4,4)
	if !res.HasMoved {
		t.Error("Expected move to succeed")
	}
	if res.NewPos != (domain.Position{X: 4, Y: 4}) {
		t.Errorf("Expected pos (4,4), got %v", res.NewPos)
	}

	// Test 2: Move into wall
	res = CalculateMove(actor, 1, 0, l) // Move Right (from 4,5 to 5,5 - WALL)
	if res.HasMoved {
		t.Error("Expected move to fail (wall)")
	}
	if !res.IsWall {
		t.Error("Expected IsWall=true")
	}

	// Test 3: Move OOB
	actor.Pos = domain.Position{X: 0, Y: 0}
	res = CalculateMove(actor, -1, 0, l)
	if res.HasMoved {
		t.Error("Expected move to fail (OOB)")
	}
	if !res.IsWall {
		t.Error("Expected OOB to look like a wall")
	}
}

func TestCalculateMove_ActorsBlock(t *testing.T) {
	l := createTestLevel(10, 10)
	actor := spawnActor(l, "hero", domain.ActorKindPlayer, 4, 5)
	blocker := spawnActor(l, "goblin", domain.ActorKindMonster, 5, 5)

	res := CalculateMove(actor, 1, 0, l)
	if res.HasMoved {
		t.Error("Expected move to be blocked by a living actor")
	}
	if res.BlockedBy == nil || res.BlockedBy.ID != blocker.ID {
		t.Error("Expected BlockedBy to point at the goblin")
	}

	// Труп клетку не держит
	blocker.Stats.IsDead = true
	res = CalculateMove(actor, 1, 0, l)
	if !res.HasMoved {
		t.Error("Expected move onto a corpse tile to succeed")
	}
}

// Пропасть непроходима, хотя и прозрачна
func TestCalculateMove_ChasmBlocks(t *testing.T) {
	l := createTestLevel(10, 10)
	setChasm(l, 5, 5)
	actor := spawnActor(l, "hero", domain.ActorKindPlayer, 4, 5)

	res := CalculateMove(actor, 1, 0, l)
	if res.HasMoved {
		t.Error("Expected chasm to block movement")
	}
}
