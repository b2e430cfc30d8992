package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/dirkkok101/roguelike-sub004/internal/domain"
	"github.com/dirkkok101/roguelike-sub004/internal/engine/handlers"
	"github.com/dirkkok101/roguelike-sub004/internal/systems"
	"github.com/dirkkok101/roguelike-sub004/pkg/api"
	"github.com/dirkkok101/roguelike-sub004/pkg/logger"
	"github.com/dirkkok101/roguelike-sub004/pkg/utils"
	"github.com/sirupsen/logrus"
)

// TickState - фаза оркестратора внутри одного игрового тика
type TickState uint8

const (
	StateAwaitingPlayerInput TickState = iota
	StateResolvingPlayerAction
	StateAdvancingMonsters
	StateRefreshingVisibility
	StateGameOver
)

var tickStateToString = map[TickState]string{
	StateAwaitingPlayerInput:   "AWAITING_PLAYER_INPUT",
	StateResolvingPlayerAction: "RESOLVING_PLAYER_ACTION",
	StateAdvancingMonsters:     "ADVANCING_MONSTERS",
	StateRefreshingVisibility:  "REFRESHING_VISIBILITY",
	StateGameOver:              "GAME_OVER",
}

func (s TickState) String() string {
	if val, ok := tickStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// InstanceCommand - обертка для команды, пришедшей в инстанс
type InstanceCommand struct {
	Cmd domain.InternalCommand
}

// Instance - один изолированный запущенный уровень (этаж подземелья).
// Симуляция строго однопоточная: все мутации Level происходят внутри
// Run в точках коммита, системы получают уровень только на чтение,
// поэтому блокировки не нужны.
type Instance struct {
	Depth int
	Level *domain.Level

	// EntryPos - точка, куда ставим приходящих на уровень игроков
	EntryPos domain.Position

	Scheduler *Scheduler
	State     TickState

	// Каналы коммуникации
	CommandChan chan InstanceCommand // Команды от игроков
	JoinChan    chan *domain.Actor   // Вход новых игроков
	LeaveChan   chan domain.ActorID  // Выход/дисконнект игроков

	// Ссылка на Service для доступа к Hub и глобальным настройкам
	Service *GameService

	CurrentTick int // Локальное время уровня в мировых тиках

	Logs []api.LogEntry // Локальные логи уровня

	Rng    *rand.Rand            // Локальный генератор
	Seed   int64                 // Сид, с которого начался уровень
	Replay *domain.ReplaySession // Лента действий для реплея

	// Слепок для debug-роутов: пишет горутина Run, читают HTTP-хендлеры
	snapMu   sync.RWMutex
	snapshot DebugSnapshot
}

// ActorSnapshot - копия публичного состояния актора на момент слепка
type ActorSnapshot struct {
	ID       domain.ActorID  `json:"id"`
	Kind     string          `json:"kind"`
	Name     string          `json:"name"`
	Pos      domain.Position `json:"pos"`
	SpawnSeq uint64          `json:"spawnSeq"`
	HP       int             `json:"hp"`
	MaxHP    int             `json:"maxHp"`
	Energy   int             `json:"energy"`
	Speed    int             `json:"speed"`
	IsDead   bool            `json:"isDead"`
}

// DebugSnapshot - слепок состояния инстанса. Снимается в точке коммита
// игрового цикла, поэтому наружу никогда не утекает наполовину
// примененный тик.
type DebugSnapshot struct {
	Depth  int             `json:"depth"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Tick   int             `json:"tick"`
	State  string          `json:"state"`
	Actors []ActorSnapshot `json:"actors"`
}

func NewInstance(depth int, level *domain.Level, service *GameService, seed int64) *Instance {
	i := &Instance{
		Depth:       depth,
		Level:       level,
		Scheduler:   NewScheduler(),
		State:       StateAwaitingPlayerInput,
		CommandChan: make(chan InstanceCommand, 100),
		JoinChan:    make(chan *domain.Actor, 10),
		LeaveChan:   make(chan domain.ActorID, 10),
		Service:     service,
		Logs:        []api.LogEntry{},
		Seed:        seed,
		Rng:         utils.NewRNG(seed),
		Replay: &domain.ReplaySession{
			Depth:     depth,
			Seed:      seed,
			Timestamp: time.Now().Unix(),
			Actions:   make([]domain.ReplayAction, 0),
		},
	}
	// Первый слепок до старта горутины: debug-роуты видят уровень сразу
	i.refreshSnapshot()
	return i
}

// Run запускает игровой цикл ЭТОГО инстанса.
// Возвращает ошибку только при нарушении контракта данных (битая карта,
// дубликаты акторов): такое не лечится на лету, тик не запускается.
func (i *Instance) Run() error {
	if err := i.Level.Validate(); err != nil {
		logger.Log.WithError(err).WithField("depth", i.Depth).Error("Corrupted level, instance refuses to run")
		return err
	}

	logger.Log.WithField("depth", i.Depth).Info("Instance loop started")

	for {
		i.refreshSnapshot()

		// 1. Вход/выход (неблокирующая обработка)
		select {
		case newActor := <-i.JoinChan:
			i.addActor(newActor)
		case leftID := <-i.LeaveChan:
			i.removeActor(leftID)
		default:
		}

		// 2. Терминальное состояние: симуляция заморожена,
		// ждем нового игрока
		if i.State == StateGameOver {
			select {
			case newActor := <-i.JoinChan:
				i.addActor(newActor)
				i.State = StateAwaitingPlayerInput
			case leftID := <-i.LeaveChan:
				i.removeActor(leftID)
			case <-time.After(time.Second):
			}
			continue
		}

		// 3. Пустой уровень - спим
		if len(i.Level.Actors()) == 0 {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		// 4. Мировой тик: планировщик раздает право хода
		order := i.Scheduler.AdvanceTick(i.Level.Actors())
		i.CurrentTick++

		for _, id := range order {
			// Актор мог умереть или уйти раньше по списку этого же тика -
			// перепроверяем существование перед диспетчеризацией
			actor := i.Level.GetActor(id)
			if actor == nil || !actor.Alive() {
				continue
			}

			if actor.Kind == domain.ActorKindPlayer {
				i.runPlayerTurn(actor)
			} else {
				i.State = StateAdvancingMonsters
				i.runMonsterTurn(actor)
			}

			// 5. Свежая видимость после каждого разрешенного действия:
			// от нее зависят обнаружение монстров и туман войны
			i.State = StateRefreshingVisibility
			i.refreshVisibility()

			i.cleanupDead()
			if i.State == StateGameOver {
				break
			}
		}

		i.State = StateAwaitingPlayerInput
	}
}

// runPlayerTurn ждет от игрока команду, тратящую ход.
// Отвергнутые действия (ход в стену, невидимая цель) возвращают управление
// игроку, НЕ двигая планировщик.
func (i *Instance) runPlayerTurn(actor *domain.Actor) {
	i.State = StateAwaitingPlayerInput
	i.publishUpdate(actor.ID)

	timeout := time.After(i.Service.Config.TurnTimeout)

	for {
		select {
		case newActor := <-i.JoinChan:
			i.addActor(newActor)

		case leftID := <-i.LeaveChan:
			i.removeActor(leftID)
			if leftID == actor.ID {
				return // Активный игрок ушел - ход сгорает
			}

		case wrapper := <-i.CommandChan:
			cmd := wrapper.Cmd
			if cmd.Token != actor.ID && cmd.Action != domain.ActionInit {
				continue // Чужая команда не в свой ход
			}

			if cmd.Action == domain.ActionInit {
				// INIT просто возвращает стейт, хода не тратит
				i.executeCommand(cmd, actor)
				i.publishUpdate(actor.ID)
				continue
			}

			i.State = StateResolvingPlayerAction
			consumed := i.executeCommand(cmd, actor)
			if consumed {
				return
			}

			// Действие отвергнуто: сообщаем и ждем следующую команду
			i.State = StateAwaitingPlayerInput
			i.publishUpdate(actor.ID)

		case <-timeout:
			logger.Log.WithFields(logrus.Fields{
				"depth": i.Depth,
				"actor": actor.ID,
			}).Warn("Turn timed out")
			return // Пропуск хода
		}
	}
}

// runMonsterTurn выполняет ход AI-актора
func (i *Instance) runMonsterTurn(npc *domain.Actor) {
	target := i.findNearestPlayer(npc)
	decision := systems.ComputeNPCAction(npc, target, i.Level)

	switch decision.Action {
	case domain.ActionAttack:
		logMsg := systems.ApplyAttack(npc, decision.Target)
		i.AddLog(logMsg, "COMBAT")

	case domain.ActionZap:
		effect := domain.ArrowEffect
		if npc.Brain != nil && npc.Brain.Missile != nil {
			effect = *npc.Brain.Missile
		}
		res := systems.Trace(i.Level, npc.ID, npc.Pos, decision.Target.Pos, effect.Range)
		logMsg, _ := systems.ApplyRangedEffect(i.Level, npc, effect, res)
		i.AddLog(logMsg, "COMBAT")

	case domain.ActionMove:
		moveRes := systems.CalculateMove(npc, decision.Dx, decision.Dy, i.Level)
		if moveRes.HasMoved {
			_ = i.Level.MoveActor(npc, moveRes.NewPos)
		}

	default:
		// Wait: энергия уже потрачена планировщиком, делать нечего
	}
}

// findNearestPlayer ищет ближайшего живого игрока на уровне
func (i *Instance) findNearestPlayer(npc *domain.Actor) *domain.Actor {
	var target *domain.Actor
	minDist := 999.0

	for _, other := range i.Level.Actors() {
		if other.Kind != domain.ActorKindPlayer || !other.Alive() {
			continue
		}
		dist := npc.Pos.DistanceTo(other.Pos)
		if dist < minDist {
			minDist = dist
			target = other
		}
	}
	return target
}

// refreshVisibility пересчитывает поле зрения игроков и обновляет
// туман войны. VisibilitySet эфемерен - хранится только память о
// посещенных клетках.
func (i *Instance) refreshVisibility() {
	for _, a := range i.Level.Actors() {
		if a.Kind != domain.ActorKindPlayer || !a.Alive() || a.Vision == nil {
			continue
		}

		fov := systems.ComputeVisible(i.Level.Grid, a.Pos, a.Vision.Radius)

		if a.Memory != nil {
			if a.Memory.ExploredPerLevel == nil {
				a.Memory.ExploredPerLevel = make(map[int]map[int]bool)
			}
			explored := a.Memory.ExploredPerLevel[i.Depth]
			if explored == nil {
				explored = make(map[int]bool)
				a.Memory.ExploredPerLevel[i.Depth] = explored
			}
			for idx := range fov {
				explored[idx] = true
			}
		}
	}
}

// cleanupDead убирает мертвых акторов с уровня (точка коммита).
// Мертвый игрок получает GAME_OVER; если живых игроков не осталось,
// инстанс замирает в терминальном состоянии.
func (i *Instance) cleanupDead() {
	playerDied := false

	for _, a := range i.Level.Actors() {
		if a.Stats == nil || !a.Stats.IsDead {
			continue
		}

		if a.Kind == domain.ActorKindPlayer {
			playerDied = true
			if i.Service.Hub.HasSubscriber(a.ID) {
				i.Service.Hub.SendTo(a.ID, api.ServerResponse{
					Type:      "GAME_OVER",
					Tick:      i.CurrentTick,
					MyActorID: a.ID.String(),
					Depth:     i.Depth,
				})
			}
			i.Level.RemoveActor(a.ID)
			i.Service.untrackActor(a.ID)
		}
		// Трупы монстров остаются лежать (непроходимость они уже не дают)
	}

	if playerDied && !i.hasLivingPlayers() {
		logger.Log.WithField("depth", i.Depth).Info("Last player died, instance frozen")
		i.State = StateGameOver
	}
}

func (i *Instance) hasLivingPlayers() bool {
	for _, a := range i.Level.Actors() {
		if a.Kind == domain.ActorKindPlayer && a.Alive() {
			return true
		}
	}
	return false
}

// executeCommand выполняет команду в контексте уровня.
// Возвращает true, если действие потратило ход.
func (i *Instance) executeCommand(cmd domain.InternalCommand, actor *domain.Actor) bool {
	// Действия подконтрольных игрокам акторов пишем в ленту реплея
	if actor.ControllerID != "" && cmd.Action != domain.ActionInit {
		i.recordAction(cmd, i.CurrentTick)
	}

	handler, ok := i.Service.actionHandlers[cmd.Action]
	if !ok {
		return false
	}

	ctx := handlers.Context{
		Level: i.Level,
		Actor: actor,
		Rng:   i.Rng,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		logger.Log.WithError(err).WithField("action", cmd.Action.String()).Warn("Handler rejected command")
		i.AddLog("Неверная команда.", "ERROR")
		return false
	}

	if result.Msg != "" {
		i.AddLog(result.Msg, result.MsgType)
	}

	if result.Event != nil {
		i.Service.processEvent(actor, i, result.Event)
	}

	return result.ConsumesTurn
}

func (i *Instance) recordAction(cmd domain.InternalCommand, tick int) {
	i.Replay.Actions = append(i.Replay.Actions, domain.ReplayAction{
		Tick:    tick,
		Token:   cmd.Token,
		Action:  cmd.Action,
		Payload: cmd.Payload,
	})
}

// addActor добавляет актора в структуры уровня
func (i *Instance) addActor(a *domain.Actor) {
	i.Level.AddActor(a)
	i.publishUpdate(a.ID)
}

// removeActor удаляет актора с уровня
func (i *Instance) removeActor(id domain.ActorID) {
	i.Level.RemoveActor(id)
}

// publishUpdate рассылает состояние подписчикам этого уровня
func (i *Instance) publishUpdate(activeID domain.ActorID) {
	i.Service.publishUpdate(activeID, i)
}

// refreshSnapshot фиксирует слепок уровня. Вызывается ТОЛЬКО из горутины
// Run: копирует данные под замком, чтобы debug-роуты читали их безопасно.
func (i *Instance) refreshSnapshot() {
	actors := i.Level.Actors()
	snap := DebugSnapshot{
		Depth:  i.Depth,
		Width:  i.Level.Grid.Width,
		Height: i.Level.Grid.Height,
		Tick:   i.CurrentTick,
		State:  i.State.String(),
		Actors: make([]ActorSnapshot, 0, len(actors)),
	}

	for _, a := range actors {
		as := ActorSnapshot{
			ID:       a.ID,
			Kind:     a.Kind,
			Name:     a.Name,
			Pos:      a.Pos,
			SpawnSeq: a.SpawnSeq,
		}
		if a.Stats != nil {
			as.HP = a.Stats.HP
			as.MaxHP = a.Stats.MaxHP
			as.IsDead = a.Stats.IsDead
		}
		if a.Energy != nil {
			as.Energy = a.Energy.Energy
			as.Speed = a.Energy.Speed
		}
		snap.Actors = append(snap.Actors, as)
	}

	i.snapMu.Lock()
	i.snapshot = snap
	i.snapMu.Unlock()
}

// Snapshot возвращает последний зафиксированный слепок уровня
func (i *Instance) Snapshot() DebugSnapshot {
	i.snapMu.RLock()
	defer i.snapMu.RUnlock()
	return i.snapshot
}
