package domain

import (
	"errors"
	"fmt"
)

// Level владеет картой и акторами одного этажа подземелья.
// Системы (fov, trajectory, movement) читают его, но не мутируют;
// вся запись идет через точки коммита оркестратора.
type Level struct {
	Depth int   `json:"depth"`
	Grid  *Grid `json:"grid"`

	// spatialHash: линейный индекс клетки -> акторы в ней
	spatialHash map[int][]*Actor
	registry    map[ActorID]*Actor

	nextSpawnSeq uint64
}

func NewLevel(depth int, grid *Grid) *Level {
	return &Level{
		Depth:       depth,
		Grid:        grid,
		spatialHash: make(map[int][]*Actor),
		registry:    make(map[ActorID]*Actor),
	}
}

// AddActor регистрирует актора на уровне и выдает ему порядковый номер спавна
func (l *Level) AddActor(a *Actor) {
	a.Depth = l.Depth
	a.SpawnSeq = l.nextSpawnSeq
	l.nextSpawnSeq++

	l.registry[a.ID] = a
	idx := l.Grid.Index(a.Pos.X, a.Pos.Y)
	l.spatialHash[idx] = append(l.spatialHash[idx], a)
}

// RemoveActor удаляет актора из индексов (смерть, переход на другой уровень)
func (l *Level) RemoveActor(id ActorID) {
	a, ok := l.registry[id]
	if !ok {
		return
	}
	delete(l.registry, id)

	idx := l.Grid.Index(a.Pos.X, a.Pos.Y)
	bucket := l.spatialHash[idx]
	for i, other := range bucket {
		if other.ID == id {
			// Swap with last: порядок внутри клетки не важен
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			l.spatialHash[idx] = bucket[:last]
			break
		}
	}
}

// MoveActor перемещает актора в индексе. Единственный легальный способ
// поменять позицию: прямую запись в a.Pos мимо индекса поймать нельзя.
func (l *Level) MoveActor(a *Actor, to Position) error {
	if !l.Grid.InBounds(to) {
		return errors.New("out of bounds")
	}

	from := l.Grid.Index(a.Pos.X, a.Pos.Y)
	bucket := l.spatialHash[from]
	for i, other := range bucket {
		if other.ID == a.ID {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			l.spatialHash[from] = bucket[:last]
			break
		}
	}

	a.Pos = to
	idx := l.Grid.Index(to.X, to.Y)
	l.spatialHash[idx] = append(l.spatialHash[idx], a)
	return nil
}

// ActorsAt возвращает акторов в конкретной клетке (быстро!)
func (l *Level) ActorsAt(p Position) []*Actor {
	if !l.Grid.InBounds(p) {
		return nil
	}
	return l.spatialHash[l.Grid.Index(p.X, p.Y)]
}

// GetActor ищет актора по ID
func (l *Level) GetActor(id ActorID) *Actor {
	return l.registry[id]
}

// Actors возвращает всех акторов уровня. Порядок не определен,
// планировщик сортирует сам.
func (l *Level) Actors() []*Actor {
	out := make([]*Actor, 0, len(l.registry))
	for _, a := range l.registry {
		out = append(out, a)
	}
	return out
}

// Validate проверяет целостность уровня перед запуском тиков.
// Дубликаты ID и битая карта - фатальные нарушения контракта генерации.
func (l *Level) Validate() error {
	if l.Grid == nil {
		return errors.New("level has no grid")
	}
	if err := l.Grid.Validate(); err != nil {
		return err
	}
	seen := make(map[ActorID]bool, len(l.registry))
	for id, a := range l.registry {
		if a == nil {
			return fmt.Errorf("actor %s is nil in registry", id)
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate actor id %s", a.ID)
		}
		seen[a.ID] = true
		if !l.Grid.InBounds(a.Pos) {
			return fmt.Errorf("actor %s is out of bounds at (%d,%d)", a.ID, a.Pos.X, a.Pos.Y)
		}
	}
	return nil
}
