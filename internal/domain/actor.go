package domain

// ActorID - строковый идентификатор актора (hex из pkg/utils.GenerateID
// либо известное имя вроде "hero_1" для отладки)
type ActorID string

func (id ActorID) String() string { return string(id) }

// Виды акторов
const (
	ActorKindPlayer  = "PLAYER"
	ActorKindMonster = "MONSTER"
)

// --- КОМПОНЕНТЫ ---

// RenderComponent - визуализация (клиент)
type RenderComponent struct {
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

// StatsComponent - здоровье и сила
type StatsComponent struct {
	HP       int  `json:"hp"`
	MaxHP    int  `json:"maxHp"`
	Strength int  `json:"strength"`
	IsDead   bool `json:"isDead"`
}

// EnergyComponent - аккумулятор хода. Скорость 10 = один ход за цикл.
// Энергия при спавне рандомизируется в [0,100), чтобы рассинхронизировать
// акторов, созданных в один момент.
type EnergyComponent struct {
	Speed  int `json:"speed"`
	Energy int `json:"energy"`
}

// BrainComponent - поведение монстра. У игрока его нет.
type BrainComponent struct {
	Hostile bool    `json:"hostile"`
	State   string  `json:"state,omitempty"` // IDLE / COMBAT
	Missile *Effect `json:"missile,omitempty"`
}

// VisionComponent - настройки зрения
type VisionComponent struct {
	Radius int `json:"radius"`
}

// MemoryComponent - туман войны: индексы клеток, которые актор уже видел,
// отдельно на каждый уровень
type MemoryComponent struct {
	ExploredPerLevel map[int]map[int]bool `json:"-"`
}

// --- АКТОР ---

type Actor struct {
	ID   ActorID `json:"id"`
	Kind string  `json:"kind"`
	Name string  `json:"name"`

	// ControllerID - ID сессии, управляющей актором. Пусто - управляет AI.
	ControllerID string `json:"controllerId,omitempty"`

	Pos   Position `json:"pos"`
	Depth int      `json:"depth"` // На каком уровне находится

	// SpawnSeq - порядковый номер спавна на уровне. Единственный тай-брейк
	// планировщика: одинаковый стартовый стейт всегда дает одинаковый
	// порядок ходов (нужно для реплеев).
	SpawnSeq uint64 `json:"spawnSeq"`

	// Компоненты (nil = свойство отсутствует)
	Render *RenderComponent `json:"render,omitempty"`
	Stats  *StatsComponent  `json:"stats,omitempty"`
	Energy *EnergyComponent `json:"energy,omitempty"`
	Brain  *BrainComponent  `json:"brain,omitempty"`
	Vision *VisionComponent `json:"vision,omitempty"`
	Memory *MemoryComponent `json:"memory,omitempty"`
}

// Alive - жив ли актор (есть тело и оно не мертво)
func (a *Actor) Alive() bool {
	return a.Stats != nil && !a.Stats.IsDead
}
