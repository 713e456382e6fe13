package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Boxfort/rustlike/internal/agent"
	"github.com/Boxfort/rustlike/internal/engine"
	"github.com/Boxfort/rustlike/internal/infrastructure/storage"
	"github.com/Boxfort/rustlike/internal/version"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/Boxfort/rustlike/pkg/rng"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const defaultLogFile = "rustlike.log"

func main() {
	// .env необязателен: без него работают значения по умолчанию
	envErr := godotenv.Load()
	logger.Init()
	defer logger.Close()
	if envErr != nil {
		logger.Log.Debug("No .env file loaded, using environment as is")
	}

	// 1. Парсинг флагов
	var (
		seed       int64
		configPath string
		recordPath string
		replayPath string
		showVer    bool
		autoplay   bool
	)
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for config/random)")
	flag.StringVar(&configPath, "config", "", "Path to TOML config")
	flag.StringVar(&recordPath, "record", "", "Write pressed keys to this .rlkr file")
	flag.StringVar(&replayPath, "replay", "", "Replay a .rlkr file headlessly and exit")
	flag.BoolVar(&autoplay, "autoplay", false, "Let the bot play; keys only quit")
	flag.BoolVar(&showVer, "version", false, "Print build info and exit")
	flag.Parse()

	if showVer {
		fmt.Println(version.Current())
		return
	}

	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if recordPath != "" {
		cfg.RecordPath = recordPath
	}

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		if err := replay(replayPath, cfg); err != nil {
			logger.Log.WithError(err).Fatal("Replay failed")
		}
		return
	}

	if err := run(cfg, autoplay); err != nil {
		logger.Log.WithError(err).Error("Game stopped")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func replay(path string, cfg engine.Config) error {
	log, err := storage.Load(path)
	if err != nil {
		return err
	}
	g, err := engine.Replay(log, cfg, 0)
	if err != nil {
		return err
	}
	digest, err := g.TakeSnapshot().Digest()
	if err != nil {
		return err
	}
	fmt.Printf("seed=%d ticks=%d state=%s digest=%016x\n", log.Seed, g.Ticks(), g.State(), digest)
	return nil
}

func run(cfg engine.Config, autoplay bool) error {
	g, err := engine.NewGame(cfg)
	if err != nil {
		return err
	}

	var rec *storage.KeyLog
	if cfg.RecordPath != "" {
		rec = &storage.KeyLog{Seed: cfg.Seed, Timestamp: time.Now().Unix()}
		defer func() {
			if err := storage.Save(cfg.RecordPath, rec); err != nil {
				logger.Log.WithError(err).Error("Failed to save key log")
				return
			}
			logger.Log.WithFields(logrus.Fields{
				"path":    cfg.RecordPath,
				"records": len(rec.Records),
			}).Info("Key log saved")
		}()
	}

	// Экран принадлежит tcell, лог уходит в файл
	if os.Getenv("LOG_FILE") == "" {
		if err := logger.SetFile(defaultLogFile); err != nil {
			return err
		}
	}

	term, err := NewTerminal()
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer term.Close()

	var input engine.Input = term
	if autoplay {
		input = agent.NewBot(g, rng.New(cfg.Seed))
	}

	logger.Log.WithFields(logrus.Fields{
		"seed":  cfg.Seed,
		"build": version.Current().String(),
	}).Info("Starting rustlike...")

	ticker := time.NewTicker(max(cfg.FrameDelay, time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-term.Quit():
			logger.Log.WithField("ticks", g.Ticks()).Info("Quit requested")
			return nil
		case <-ticker.C:
			if err := g.Step(input.Poll(), rec); err != nil {
				return err
			}
			engine.Draw(g, term)
			term.Show()
		}
	}
}
