package systems

import (
	"strings"
	"testing"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
)

func TestApplyAttack(t *testing.T) {
	l := createTestLevel(10, 10)
	attacker := spawnActor(l, "hero", domain.ActorKindPlayer, 4, 5)
	target := spawnActor(l, "goblin", domain.ActorKindMonster, 5, 5)
	target.Render = &domain.RenderComponent{Symbol: "g", Color: "#22C55E"}
	target.Brain = &domain.BrainComponent{Hostile: true}

	msg := ApplyAttack(attacker, target)

	if target.Stats.HP != 10-attacker.Stats.Strength {
		t.Errorf("Target HP = %d, want %d", target.Stats.HP, 10-attacker.Stats.Strength)
	}
	if msg == "" {
		t.Error("Attack should produce a log message")
	}

	// Добиваем
	target.Stats.HP = 1
	msg = ApplyAttack(attacker, target)

	if !target.Stats.IsDead {
		t.Fatal("Target should be dead")
	}
	if !strings.Contains(msg, "погибает") {
		t.Errorf("Kill message should mention death, got %q", msg)
	}
	// Труп: символ меняется, агрессия снимается
	if target.Render.Symbol != "%" {
		t.Errorf("Corpse symbol = %q, want %%", target.Render.Symbol)
	}
	if target.Brain.Hostile {
		t.Error("Corpse should not stay hostile")
	}
}

func TestApplyRangedEffect_TurnConsumption(t *testing.T) {
	l := createTestLevel(10, 10)
	caster := spawnActor(l, "hero", domain.ActorKindPlayer, 5, 5)

	tests := []struct {
		name         string
		res          TrajectoryResult
		wantConsumed bool
	}{
		{"No target keeps the turn", TrajectoryResult{Outcome: TraceNoTarget}, false},
		{"Out of range keeps the turn", TrajectoryResult{Outcome: TraceOutOfRange}, false},
		{"Wall hit spends the turn", TrajectoryResult{Outcome: TraceHitWall, Stopped: domain.Position{X: 7, Y: 5}}, true},
		{"Fizzle spends the turn", TrajectoryResult{Outcome: TraceReachedTarget, Stopped: domain.Position{X: 8, Y: 5}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, consumed := ApplyRangedEffect(l, caster, domain.FireboltEffect, tt.res)
			if consumed != tt.wantConsumed {
				t.Errorf("consumed = %v, want %v", consumed, tt.wantConsumed)
			}
		})
	}
}

func TestApplyRangedEffect_HitActor(t *testing.T) {
	l := createTestLevel(10, 10)
	caster := spawnActor(l, "hero", domain.ActorKindPlayer, 5, 5)
	target := spawnActor(l, "goblin", domain.ActorKindMonster, 8, 5)

	res := Trace(l, caster.ID, caster.Pos, target.Pos, domain.FireboltEffect.Range)
	msg, consumed := ApplyRangedEffect(l, caster, domain.FireboltEffect, res)

	if !consumed {
		t.Error("Successful hit must consume the turn")
	}
	if target.Stats.HP != 10-domain.FireboltEffect.Power {
		t.Errorf("Target HP = %d, want %d", target.Stats.HP, 10-domain.FireboltEffect.Power)
	}
	if !strings.Contains(msg, "Огненная стрела") {
		t.Errorf("Message should name the projectile, got %q", msg)
	}
}
