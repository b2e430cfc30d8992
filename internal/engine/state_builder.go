package engine

import (
	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/internal/systems"
	"github.com/dirkkok101/roguelike-sub004/pkg/api"
)

// publishUpdate рассылает состояние уровня всем подключенным на нем игрокам.
// Каждый получает персональный слепок: только то, что видит его актор.
func (s *GameService) publishUpdate(activeID domain.ActorID, inst *Instance) {
	for _, a := range inst.Level.Actors() {
		if s.Hub.HasSubscriber(a.ID) {
			state := s.BuildStateFor(a, activeID, inst)
			s.Hub.SendTo(a.ID, *state)
		}
	}

	// Логи рассылаются один раз и очищаются
	inst.Logs = []api.LogEntry{}
}

// BuildStateFor создает персональный слепок мира для observer.
// Видимость считается заново (VisibilitySet эфемерен), туман войны
// берется из памяти актора.
func (s *GameService) BuildStateFor(observer *domain.Actor, activeID domain.ActorID, inst *Instance) *api.ServerResponse {
	grid := inst.Level.Grid

	// 1. Расчет поля зрения
	var visible systems.VisibilitySet
	if observer.Vision != nil {
		visible = systems.ComputeVisible(grid, observer.Pos, observer.Vision.Radius)
	} else {
		visible = systems.VisibilitySet{grid.Index(observer.Pos.X, observer.Pos.Y): true}
	}

	var explored map[int]bool
	if observer.Memory != nil {
		explored = observer.Memory.ExploredPerLevel[inst.Depth]
	}

	// 2. Карта: шлем только исследованные клетки
	var mapDTO []api.TileView
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			idx := grid.Index(x, y)

			isVisible := visible[idx]
			isExplored := isVisible || explored[idx]
			if !isExplored {
				continue
			}

			tile := grid.Tiles[y][x]
			tView := api.TileView{
				X: x, Y: y,
				Walkable:   tile.Walkable,
				IsVisible:  isVisible,
				IsExplored: true,
				Symbol:     ".", Color: "#333333",
			}
			switch {
			case !tile.Walkable && !tile.Transparent:
				tView.Symbol = "#"
				tView.Color = "#666666"
			case !tile.Walkable && tile.Transparent:
				tView.Symbol = ":" // Пропасть: не пройти, но видно насквозь
				tView.Color = "#1E3A5F"
			case tile.Env == "stairs":
				tView.Symbol = ">"
				tView.Color = "#FACC15"
			}
			mapDTO = append(mapDTO, tView)
		}
	}

	// 3. Акторы: себя видим всегда, остальных - только в поле зрения
	var viewActors []api.ActorView
	for _, a := range inst.Level.Actors() {
		if a.ID != observer.ID && !visible.Visible(grid, a.Pos) {
			continue
		}
		viewActors = append(viewActors, toActorView(a, observer))
	}

	logsCopy := make([]api.LogEntry, len(inst.Logs))
	copy(logsCopy, inst.Logs)

	return &api.ServerResponse{
		Type:          "UPDATE",
		Tick:          inst.CurrentTick,
		MyActorID:     observer.ID.String(),
		ActiveActorID: activeID.String(),
		Depth:         inst.Depth,
		Grid:          &api.GridMeta{Width: grid.Width, Height: grid.Height},
		Map:           mapDTO,
		Actors:        viewActors,
		Logs:          logsCopy,
	}
}

// toActorView конвертирует актора в DTO с учетом прав наблюдателя
func toActorView(target *domain.Actor, observer *domain.Actor) api.ActorView {
	view := api.ActorView{
		ID:   target.ID.String(),
		Kind: target.Kind,
		Name: target.Name,
	}
	view.Pos.X = target.Pos.X
	view.Pos.Y = target.Pos.Y

	if target.Render != nil {
		view.Render.Symbol = target.Render.Symbol
		view.Render.Color = target.Render.Color
	} else {
		view.Render.Symbol = "?"
		view.Render.Color = "#fff"
	}

	if target.Stats == nil {
		return view
	}

	if target.ID == observer.ID {
		// Владелец видит все, включая энергетический аккумулятор
		stats := &api.StatsView{
			HP: target.Stats.HP, MaxHP: target.Stats.MaxHP,
			Strength: target.Stats.Strength,
			IsDead:   target.Stats.IsDead,
		}
		if target.Energy != nil {
			stats.Energy = target.Energy.Energy
			stats.Speed = target.Energy.Speed
		}
		view.Stats = stats
	} else {
		view.Stats = &api.StatsView{
			HP: target.Stats.HP, MaxHP: target.Stats.MaxHP,
			IsDead: target.Stats.IsDead,
		}
	}

	return view
}
