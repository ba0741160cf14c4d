package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpruizc/rustoguelike/internal/engine"
	"github.com/rpruizc/rustoguelike/internal/server"
	"github.com/rpruizc/rustoguelike/internal/version"
	"github.com/rpruizc/rustoguelike/pkg/dungeon"
	"github.com/rpruizc/rustoguelike/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var omniscient bool
	var port string
	flag.Int64Var(&seed, "seed", 0, "World seed (0 = random per connection)")
	flag.BoolVar(&omniscient, "omniscient", false, "Start sessions with full map visibility")
	flag.StringVar(&port, "port", "", "HTTP port (defaults to RL_PORT or 8080)")
	flag.Parse()

	logger.Log.Info("Starting dungeon server...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	cfg.Seed = seed
	cfg.Omniscient = omniscient
	if seed != 0 {
		logger.Log.Infof("🎲 Using explicit master seed: %d", seed)
	} else {
		logger.Log.Info("🎲 Each connection rolls its own seed")
	}

	if port == "" {
		port = os.Getenv("RL_PORT")
	}
	if port == "" {
		port = "8080"
	}

	// 2. Запуск сервера
	srv := server.New(cfg, dungeon.NewGenerator(), port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Infof("Shutting down. Active sessions: %d", srv.Registry.Len())
	logger.Log.Info("Done.")
}
