package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rogue-engine/internal/engine"
	"rogue-engine/internal/infrastructure/storage"
	"rogue-engine/internal/terminal"
	"rogue-engine/internal/version"
	"rogue-engine/pkg/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	logger.Init()

	var (
		seed      int64
		autoplay  bool
		delay     time.Duration
		logPath   string
		replayDir string
	)
	flag.Int64Var(&seed, "seed", 0, "Dungeon seed (0: CD_SEED or random)")
	flag.BoolVar(&autoplay, "autoplay", false, "Let the bot play")
	flag.DurationVar(&delay, "delay", terminal.DefaultAutoplayDelay, "Pause between bot turns")
	flag.StringVar(&logPath, "log", "", "Log file (empty: logs are discarded)")
	flag.StringVar(&replayDir, "replays", os.Getenv("CD_REPLAY_DIR"), "Directory to save the journal to on exit")
	flag.Parse()

	// stdout занят экраном
	closer, err := logger.RedirectToFile(logPath)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Log.Info(version.String())

	cfg := engine.ConfigFromEnv()
	if seed != 0 {
		cfg.Seed = seed
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := engine.NewSession(cfg)
	app := terminal.NewApp(session, screen, terminal.Options{Autoplay: autoplay, Delay: delay})
	runErr := app.Run(ctx)
	screen.Fini()

	logger.Log.WithFields(logrus.Fields{
		"seed":  cfg.Seed,
		"turn":  session.Turn(),
		"state": session.State().String(),
	}).Info("Game over")

	if replayDir != "" {
		path, err := storage.NewReplayService(replayDir).Save(session.Journal())
		if err != nil {
			return fmt.Errorf("save journal: %w", err)
		}
		fmt.Printf("Journal saved to %s\n", path)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}
