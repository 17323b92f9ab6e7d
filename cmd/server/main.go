package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"rogue-engine/internal/agent"
	"rogue-engine/internal/engine"
	"rogue-engine/internal/infrastructure/storage"
	"rogue-engine/internal/network"
	"rogue-engine/internal/server"
	"rogue-engine/internal/version"
	"rogue-engine/pkg/api"
	"rogue-engine/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()
	logger.Init()

	// 1. Парсинг конфигурации
	var (
		seed       int64
		port       string
		replayDir  string
		replayPath string
		bots       int
		botTurns   int
	)
	flag.Int64Var(&seed, "seed", 0, "Master seed (0: CD_SEED or random)")
	flag.StringVar(&port, "port", envOr("CD_PORT", "8080"), "HTTP port")
	flag.StringVar(&replayDir, "replays", os.Getenv("CD_REPLAY_DIR"), "Directory for .cdrp journals (empty: do not save)")
	flag.StringVar(&replayPath, "replay", "", "Path to .cdrp journal to re-simulate and exit")
	flag.IntVar(&bots, "bots", 0, "Number of bot-driven instances to start")
	flag.IntVar(&botTurns, "bot-turns", 500, "Turns after which a bot quits")
	flag.Parse()

	logger.Log.Info("Starting Rogue Engine...")
	logger.Log.Info(version.String())

	cfg := engine.ConfigFromEnv()
	if seed != 0 {
		cfg.Seed = seed
	}

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		if err := runReplay(cfg, replayPath); err != nil {
			logger.Log.WithError(err).Fatal("Failed to replay journal")
		}
		return
	}
	logger.Log.WithField("seed", cfg.Seed).Info("Using master seed")

	var replays *storage.ReplayService
	if replayDir != "" {
		replays = storage.NewReplayService(replayDir)
	}

	// 2. Ядро
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := network.NewBroadcaster()
	gameService := engine.NewService(cfg, hub, replays)

	for i := 0; i < bots; i++ {
		inst, updates := gameService.CreateInstance(ctx)
		bot := agent.NewBot()
		go bot.Run(ctx, updates, inst.Submit, botTurns)
	}

	// 3. Сервер
	srv := server.New(ctx, gameService, port)
	if err := srv.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("Server error")
	}

	logger.Log.Info("Shutting down...")
	hub.Broadcast(api.ServerResponse{Type: "ERROR", Error: "server shutting down"})
	// Отмена инстансов сохраняет их журналы
	gameService.Shutdown()
	logger.Log.Info("Done.")
}

// runReplay прогоняет журнал через движок и печатает итог партии.
func runReplay(cfg engine.Config, path string) error {
	journal, err := (&storage.ReplayService{SaveDir: filepath.Dir(path)}).Load(path)
	if err != nil {
		return err
	}

	s := engine.Replay(cfg, journal)
	p := s.Player()
	logger.Log.WithFields(logrus.Fields{
		"seed":    journal.Seed,
		"actions": len(journal.Actions),
		"turn":    s.Turn(),
		"state":   s.State().String(),
		"done":    s.Done(),
		"x":       p.Pos.X,
		"y":       p.Pos.Y,
		"hp":      p.Fighter.HP,
	}).Info("Replay finished")
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
