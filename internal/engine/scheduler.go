package engine

import (
	"sort"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
)

// Scheduler - энергетический планировщик ходов.
//
// Каждый мировой тик актор получает Speed единиц энергии. Перешагнув
// ActionThreshold (100), он получает право на ОДНО действие, и порог
// вычитается (не обнуляется!): излишек сохраняется, поэтому актор со
// скоростью 20 ходит вдвое чаще актора со скоростью 10.
//
// Планировщик работает только над переданным ему срезом и ничего не знает
// о смерти акторов после возврата: вызывающий обязан перепроверить
// существование актора перед диспетчеризацией его хода.
type Scheduler struct{}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AdvanceTick продвигает один мировой тик и возвращает ID акторов,
// получивших право хода, в детерминированном порядке.
//
// Тай-брейк - возрастающий номер спавна (SpawnSeq), никогда не порядок
// итерации по мапе: одинаковый стартовый стейт всегда дает одинаковую
// очередь ходов, на этом держится реплей.
func (s *Scheduler) AdvanceTick(actors []*domain.Actor) []domain.ActorID {
	eligible := make([]*domain.Actor, 0)

	for _, a := range actors {
		if a.Energy == nil || !a.Alive() {
			continue
		}

		// Скорость <= 0 встречаться не должна. Если встретилась -
		// актор вечно неходящий, а не деление на ноль.
		if a.Energy.Speed <= 0 {
			continue
		}

		a.Energy.Energy += a.Energy.Speed

		if a.Energy.Energy >= domain.ActionThreshold {
			a.Energy.Energy -= domain.ActionThreshold
			eligible = append(eligible, a)
		}
	}

	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].SpawnSeq < eligible[j].SpawnSeq
	})

	order := make([]domain.ActorID, len(eligible))
	for i, a := range eligible {
		order[i] = a.ID
	}
	return order
}
