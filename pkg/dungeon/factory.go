package dungeon

import (
	"math/rand"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/pkg/utils"
)

// Виды монстров
const (
	MonsterGoblin = "goblin"
	MonsterOrc    = "orc"
	MonsterArcher = "archer"
)

// CreatePlayer создает актора-игрока.
// Стартовая энергия рандомизируется, чтобы игроки, зашедшие одновременно,
// не ходили строго в порядке подключения.
func CreatePlayer(name, controllerID string, pos domain.Position, depth int, rng *rand.Rand) *domain.Actor {
	if name == "" {
		name = "Герой"
	}

	return &domain.Actor{
		ID:           utils.GenerateID(),
		Kind:         domain.ActorKindPlayer,
		Name:         name,
		ControllerID: controllerID,
		Pos:          pos,
		Depth:        depth,

		Render: &domain.RenderComponent{Symbol: "@", Color: "#22D3EE"},
		Stats:  &domain.StatsComponent{HP: 30, MaxHP: 30, Strength: 5},
		Energy: &domain.EnergyComponent{
			Speed:  domain.BaseSpeed,
			Energy: rng.Intn(domain.SpawnEnergyJitter),
		},
		Vision: &domain.VisionComponent{Radius: domain.VisionRadius},
		Memory: &domain.MemoryComponent{ExploredPerLevel: make(map[int]map[int]bool)},
	}
}

// CreateMonster создает монстра указанного вида.
// Глубина масштабирует здоровье и силу.
func CreateMonster(kind string, pos domain.Position, depth int, rng *rand.Rand) *domain.Actor {
	m := &domain.Actor{
		ID:    utils.GenerateID(),
		Kind:  domain.ActorKindMonster,
		Pos:   pos,
		Depth: depth,

		Energy: &domain.EnergyComponent{
			Speed:  domain.BaseSpeed,
			Energy: rng.Intn(domain.SpawnEnergyJitter),
		},
		Brain:  &domain.BrainComponent{Hostile: true, State: "IDLE"},
		Vision: &domain.VisionComponent{Radius: domain.VisionRadius},
	}

	switch kind {
	case MonsterOrc:
		m.Name = "Свирепый Орк"
		m.Render = &domain.RenderComponent{Symbol: "O", Color: "#DC2626"}
		m.Stats = &domain.StatsComponent{
			HP: 16 + depth*4, MaxHP: 16 + depth*4,
			Strength: 4 + depth,
		}
		m.Energy.Speed = domain.BaseSpeed - 2 // Орки медленные

	case MonsterArcher:
		m.Name = "Скелет-лучник"
		m.Render = &domain.RenderComponent{Symbol: "s", Color: "#E5E7EB"}
		m.Stats = &domain.StatsComponent{
			HP: 8 + depth*2, MaxHP: 8 + depth*2,
			Strength: 2,
		}
		m.Brain.Missile = &domain.ArrowEffect

	default: // goblin
		m.Name = "Хитрый Гоблин"
		m.Render = &domain.RenderComponent{Symbol: "g", Color: "#22C55E"}
		m.Stats = &domain.StatsComponent{
			HP: 7 + depth*2, MaxHP: 7 + depth*2,
			Strength: 2 + depth/2,
		}
		m.Energy.Speed = domain.BaseSpeed + 2 // Гоблины юркие
	}

	return m
}
