package engine

import (
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/dirkkok101/roguelike-sub004/pkg/api"
	"github.com/dirkkok101/roguelike-sub004/pkg/logger"
	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	logger.Init()
	// Инстансы болтливы, в тестах слушаем только ошибки
	logger.Log.SetLevel(logrus.ErrorLevel)
	os.Exit(m.Run())
}

// Маршрутизация команд идет по таблице актор -> глубина,
// а не по живым структурам Level чужих горутин
func TestService_RoutingTable(t *testing.T) {
	s := NewService(Config{Seed: 99, TurnTimeout: 20 * time.Millisecond})
	s.Start()

	p, _ := s.JoinPlayer("router", "test-conn")

	// Маршрут известен сразу после входа, еще до того как горутина
	// инстанса обработала JoinChan
	inst := s.findInstanceOf(p.ID)
	if inst == nil {
		t.Fatal("Player should be routable right after JoinPlayer")
	}
	if inst.Depth != 1 {
		t.Errorf("Player routed to depth %d, want 1", inst.Depth)
	}

	s.ProcessCommand(api.ClientCommand{Action: "WAIT", Token: p.ID.String()})

	s.LeavePlayer(p.ID)
	if s.findInstanceOf(p.ID) != nil {
		t.Error("Player should not be routable after LeavePlayer")
	}

	if s.findInstanceOf("stranger") != nil {
		t.Error("Unknown token should not resolve to an instance")
	}
}

// Команды и вход/выход игроков идут из разных горутин одновременно:
// сервис обязан переживать это без гонок по структурам уровня
func TestService_CommandRoutingUnderChurn(t *testing.T) {
	s := NewService(Config{Seed: 7, TurnTimeout: 10 * time.Millisecond})
	s.Start()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for k := 0; k < 20; k++ {
			p, _ := s.JoinPlayer(fmt.Sprintf("p%d", k), "churn")
			s.ProcessCommand(api.ClientCommand{Action: "WAIT", Token: p.ID.String()})
			s.LeavePlayer(p.ID)
		}
	}()

	go func() {
		defer wg.Done()
		for k := 0; k < 200; k++ {
			s.ProcessCommand(api.ClientCommand{Action: "WAIT", Token: "ghost"})
			s.findInstanceOf("ghost")
		}
	}()

	wg.Wait()
}
