package systems

import (
	"testing"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
)

func TestValidateRangedAction(t *testing.T) {
	l := createTestLevel(12, 12)
	shooter := spawnActor(l, "hero", domain.ActorKindPlayer, 2, 5)
	setWall(l, 5, 5)

	tests := []struct {
		name   string
		target domain.Position
		rng    int
		want   RangedFailure
		wantOK bool
	}{
		{"Valid shot", domain.Position{X: 4, Y: 5}, 7, RangedOK, true},
		{"Self target", domain.Position{X: 2, Y: 5}, 7, RangedNoTarget, false},
		{"Zero range", domain.Position{X: 4, Y: 5}, 0, RangedNoTarget, false},
		{"Too far", domain.Position{X: 10, Y: 5}, 5, RangedOutOfRange, false},
		{"Behind wall", domain.Position{X: 7, Y: 5}, 7, RangedNotVisible, false},
		{"Wall itself", domain.Position{X: 5, Y: 5}, 7, RangedOK, true}, // Стену, на которую смотрим, видно
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateRangedAction(shooter, tt.target, tt.rng, l)
			if got.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v (msg: %s)", got.OK, tt.wantOK, got.Message)
			}
			if got.Failure != tt.want {
				t.Errorf("Failure = %d, want %d", got.Failure, tt.want)
			}
		})
	}
}

// Отказ чекпоинта несет сообщение для игрока
func TestValidateRangedAction_Messages(t *testing.T) {
	l := createTestLevel(12, 12)
	shooter := spawnActor(l, "hero", domain.ActorKindPlayer, 2, 5)

	got := ValidateRangedAction(shooter, domain.Position{X: 11, Y: 5}, 5, l)
	if got.OK || got.Message == "" {
		t.Error("Out-of-range rejection should carry a message for the player")
	}
}
