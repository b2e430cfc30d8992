package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dirkkok101/roguelike-sub004/internal/engine"
	"github.com/dirkkok101/roguelike-sub004/internal/server"
	"github.com/dirkkok101/roguelike-sub004/internal/version"
	"github.com/dirkkok101/roguelike-sub004/pkg/logger"
	"github.com/dirkkok101/roguelike-sub004/pkg/utils"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var seedPhrase string
	var replayPath string
	flag.Int64Var(&seed, "seed", 0, "Master world seed (0 for random)")
	flag.StringVar(&seedPhrase, "seed-phrase", "", "Derive the master seed from a phrase")
	flag.StringVar(&replayPath, "replay", "", "Path to .rlrp replay file to simulate")
	flag.Parse()

	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.Fatal("Config error:", err)
	}
	if seedPhrase != "" {
		seed = utils.StringToSeed(seedPhrase)
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	logger.Log.Info("Starting dungeon server...")
	logger.Log.Info(version.String())
	logger.Log.Infof("🎲 Master seed: %d", cfg.Seed)

	gameService := engine.NewService(cfg)

	// РЕЖИМ РЕПЛЕЯ: поднимаем уровень из файла и проигрываем ленту
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Replay Simulation")

		if err := gameService.StartPlayback(replayPath); err != nil {
			logger.Log.Fatal("Failed to load replay:", err)
		}

		// Даем симуляции дорешать все записанные действия
		time.Sleep(5 * time.Second)
		return
	}

	// 2. Живой режим
	gameService.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	srv := server.New(gameService, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	gameService.SaveReplays()

	logger.Log.Info("Done.")
}
