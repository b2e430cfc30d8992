package engine

import (
	"fmt"
	"sync"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/internal/engine/handlers"
	"github.com/dirkkok101/roguelike-sub004/internal/engine/handlers/actions"
	"github.com/dirkkok101/roguelike-sub004/internal/infrastructure/storage"
	"github.com/dirkkok101/roguelike-sub004/internal/network"
	"github.com/dirkkok101/roguelike-sub004/pkg/api"
	"github.com/dirkkok101/roguelike-sub004/pkg/dungeon"
	"github.com/dirkkok101/roguelike-sub004/pkg/logger"
	"github.com/sirupsen/logrus"
)

// GameService - владелец всех запущенных уровней и маршрутизатор команд.
// Каждый уровень крутится в своем Instance (своя горутина, свой Rng),
// сервис лишь раздает команды и переселяет акторов между уровнями.
type GameService struct {
	Config Config
	Hub    *network.Broadcaster

	// mu защищает instances и routing. В структуры Level сервис НЕ лезет:
	// их мутирует только горутина инстанса, а маршрутизация команд идет
	// по отдельной таблице актор -> глубина, обновляемой в точках коммита.
	mu        sync.RWMutex
	instances map[int]*Instance
	routing   map[domain.ActorID]int

	actionHandlers map[domain.ActionType]handlers.HandlerFunc
}

func NewService(cfg Config) *GameService {
	s := &GameService{
		Config:         cfg,
		Hub:            network.NewBroadcaster(),
		instances:      make(map[int]*Instance),
		routing:        make(map[domain.ActorID]int),
		actionHandlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	s.registerHandlers()
	return s
}

// trackActor регистрирует актора в таблице маршрутизации
func (s *GameService) trackActor(id domain.ActorID, depth int) {
	s.mu.Lock()
	s.routing[id] = depth
	s.mu.Unlock()
}

// untrackActor убирает актора из таблицы маршрутизации
// (дисконнект, смерть, победа)
func (s *GameService) untrackActor(id domain.ActorID) {
	s.mu.Lock()
	delete(s.routing, id)
	s.mu.Unlock()
}

func (s *GameService) registerHandlers() {
	s.actionHandlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.actionHandlers[domain.ActionAttack] = handlers.WithPayload(actions.HandleAttack)
	s.actionHandlers[domain.ActionZap] = handlers.WithPayload(actions.HandleZap)
	s.actionHandlers[domain.ActionThrow] = handlers.WithPayload(actions.HandleThrow)
	s.actionHandlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
	s.actionHandlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.actionHandlers[domain.ActionDescend] = handlers.WithEmptyPayload(actions.HandleDescend)
}

// Start поднимает первый этаж
func (s *GameService) Start() {
	s.getOrCreateInstance(1)
}

// getOrCreateInstance лениво генерирует уровень.
// Сид уровня = мастер-сид + глубина: одинаковый мастер-сид всегда
// дает одинаковое подземелье целиком.
func (s *GameService) getOrCreateInstance(depth int) *Instance {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inst, ok := s.instances[depth]; ok {
		return inst
	}

	levelSeed := s.Config.Seed + int64(depth)
	level, monsters, entry := dungeon.Generate(levelSeed, depth)

	inst := NewInstance(depth, level, s, levelSeed)
	inst.EntryPos = entry

	for _, m := range monsters {
		level.AddActor(m)
	}

	s.instances[depth] = inst

	go func() {
		if err := inst.Run(); err != nil {
			logger.Log.WithError(err).WithField("depth", depth).Error("Instance terminated")
		}
	}()

	logger.Log.WithFields(logrus.Fields{
		"depth":    depth,
		"seed":     levelSeed,
		"monsters": len(monsters),
	}).Info("Level instance created")

	return inst
}

// JoinPlayer создает актора-игрока на первом этаже и подписывает его на апдейты.
// Возвращает актора и личный канал для writePump.
func (s *GameService) JoinPlayer(name, controllerID string) (*domain.Actor, chan api.ServerResponse) {
	inst := s.getOrCreateInstance(1)

	player := dungeon.CreatePlayer(name, controllerID, inst.EntryPos, 1, inst.Rng)

	ch := s.Hub.Register(player.ID)
	s.trackActor(player.ID, inst.Depth)
	inst.JoinChan <- player

	logger.Log.WithFields(logrus.Fields{
		"actor": player.ID,
		"name":  name,
	}).Info("Player joined")

	return player, ch
}

// LeavePlayer убирает игрока из мира (дисконнект)
func (s *GameService) LeavePlayer(id domain.ActorID) {
	s.Hub.Unregister(id)

	inst := s.findInstanceOf(id)
	s.untrackActor(id)
	if inst != nil {
		inst.LeaveChan <- id
	}
}

// ProcessCommand принимает команду от внешнего мира (WebSocket)
// и маршрутизирует ее на уровень, где живет актор.
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithField("action", externalCmd.Action).Warn("Unknown action")
		return
	}

	token := domain.ActorID(externalCmd.Token)
	inst := s.findInstanceOf(token)
	if inst == nil {
		logger.Log.WithField("token", externalCmd.Token).Warn("Command for unknown actor")
		return
	}

	inst.CommandChan <- InstanceCommand{
		Cmd: domain.InternalCommand{
			Action:  actionType,
			Token:   token,
			Payload: externalCmd.Payload,
		},
	}
}

// findInstanceOf ищет уровень, на котором зарегистрирован актор.
// Ходит только по таблице маршрутизации: читать Level из чужой
// горутины нельзя.
func (s *GameService) findInstanceOf(id domain.ActorID) *Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	depth, ok := s.routing[id]
	if !ok {
		return nil
	}
	return s.instances[depth]
}

// InstancesSnapshot возвращает копию мапы инстансов.
// Сами инстансы наружу отдают только свои слепки (Instance.Snapshot).
func (s *GameService) InstancesSnapshot() map[int]*Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int]*Instance, len(s.instances))
	for d, inst := range s.instances {
		out[d] = inst
	}
	return out
}

// processEvent обрабатывает события движка (вызывается из горутины
// инстанса-источника, поэтому его уровень можно мутировать напрямую).
func (s *GameService) processEvent(actor *domain.Actor, from *Instance, ev *handlers.Event) {
	switch ev.Type {
	case domain.EventLevelTransition:
		from.Level.RemoveActor(actor.ID)

		next := s.getOrCreateInstance(ev.ToDepth)
		actor.Depth = ev.ToDepth
		actor.Pos = next.EntryPos
		s.trackActor(actor.ID, ev.ToDepth)
		// Энергетический аккумулятор переезжает как есть: излишек не сгорает
		next.JoinChan <- actor

		logger.Log.WithFields(logrus.Fields{
			"actor": actor.ID,
			"from":  from.Depth,
			"to":    ev.ToDepth,
		}).Info("Level transition")

	case domain.EventVictory:
		if s.Hub.HasSubscriber(actor.ID) {
			s.Hub.SendTo(actor.ID, api.ServerResponse{
				Type:      "VICTORY",
				Tick:      from.CurrentTick,
				MyActorID: actor.ID.String(),
				Depth:     from.Depth,
			})
		}
		from.Level.RemoveActor(actor.ID)
		s.untrackActor(actor.ID)
		s.saveReplay(from)

		logger.Log.WithField("actor", actor.ID).Info("Victory")
	}
}

// StartPlayback поднимает уровень из файла реплея и скармливает ему
// записанные действия. Сид из заголовка дает ту же карту и тех же
// монстров, лента - те же команды, итог обязан сойтись с живой сессией.
func (s *GameService) StartPlayback(path string) error {
	session, err := storage.LoadReplay(path)
	if err != nil {
		return err
	}

	level, monsters, entry := dungeon.Generate(session.Seed, session.Depth)
	inst := NewInstance(session.Depth, level, s, session.Seed)
	inst.EntryPos = entry

	for _, m := range monsters {
		level.AddActor(m)
	}

	s.mu.Lock()
	s.instances[session.Depth] = inst
	s.mu.Unlock()

	go func() {
		if err := inst.Run(); err != nil {
			logger.Log.WithError(err).Error("Playback instance terminated")
		}
	}()

	// Воссоздаем акторов-игроков под записанными токенами
	seen := make(map[domain.ActorID]bool)
	for _, act := range session.Actions {
		if seen[act.Token] {
			continue
		}
		seen[act.Token] = true

		player := dungeon.CreatePlayer("", "playback", entry, session.Depth, inst.Rng)
		player.ID = act.Token
		s.trackActor(player.ID, inst.Depth)
		inst.JoinChan <- player
	}

	logger.Log.WithFields(logrus.Fields{
		"path":    path,
		"depth":   session.Depth,
		"seed":    session.Seed,
		"actions": len(session.Actions),
	}).Info("Replay playback started")

	go func() {
		for _, act := range session.Actions {
			inst.CommandChan <- InstanceCommand{
				Cmd: domain.InternalCommand{
					Action:  act.Action,
					Token:   act.Token,
					Payload: act.Payload,
				},
			}
		}
	}()

	return nil
}

// SaveReplays сбрасывает ленты всех активных уровней (graceful shutdown)
func (s *GameService) SaveReplays() {
	for _, inst := range s.InstancesSnapshot() {
		s.saveReplay(inst)
	}
}

// saveReplay сбрасывает ленту действий уровня на диск
func (s *GameService) saveReplay(inst *Instance) {
	if s.Config.ReplayDir == "" || len(inst.Replay.Actions) == 0 {
		return
	}

	path := fmt.Sprintf("%s/session_%d_d%d.rlrp", s.Config.ReplayDir, inst.Replay.Timestamp, inst.Depth)
	if err := storage.SaveReplay(path, inst.Replay); err != nil {
		logger.Log.WithError(err).Warn("Failed to save replay")
		return
	}
	logger.Log.WithField("path", path).Info("Replay saved")
}
