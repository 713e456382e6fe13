package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Boxfort/rustlike/internal/agent"
	"github.com/Boxfort/rustlike/internal/engine"
	"github.com/Boxfort/rustlike/internal/infrastructure/storage"
	"github.com/Boxfort/rustlike/internal/version"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/Boxfort/rustlike/pkg/rng"
)

// Коды выхода
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	logger.Init()
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run разбирает аргументы и выполняет команду, возвращая код выхода.
func run(args []string, out io.Writer) int {
	if len(args) < 2 {
		printHelp(out)
		return exitUsage
	}

	var err error
	switch args[0] {
	case "info":
		err = info(out, args[1])
	case "check":
		runs := 2
		if len(args) > 2 {
			runs, err = strconv.Atoi(args[2])
			if err != nil || runs < 2 {
				fmt.Fprintf(out, "Invalid run count: %s\n", args[2])
				return exitUsage
			}
		}
		err = check(out, args[1], runs)
	case "record":
		if len(args) < 4 {
			printHelp(out)
			return exitUsage
		}
		seed, perr := strconv.ParseInt(args[1], 10, 64)
		ticks, terr := strconv.Atoi(args[2])
		if perr != nil || terr != nil || ticks < 1 {
			fmt.Fprintf(out, "Invalid seed or tick count: %s %s\n", args[1], args[2])
			return exitUsage
		}
		err = record(out, seed, ticks, args[3])
	default:
		printHelp(out)
		return exitUsage
	}

	if err != nil {
		fmt.Fprintln(out, err)
		return exitError
	}
	return exitOK
}

func info(out io.Writer, path string) error {
	l, err := storage.Load(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "seed:     %d\n", l.Seed)
	fmt.Fprintf(out, "recorded: %s\n", time.Unix(l.Timestamp, 0).Format(time.RFC3339))
	fmt.Fprintf(out, "keys:     %d\n", len(l.Records))
	fmt.Fprintf(out, "last:     tick %d\n", l.LastTick())
	for _, r := range l.Records {
		fmt.Fprintf(out, "  %6d %s\n", r.Tick, r.Key)
	}
	return nil
}

// check проигрывает запись несколько раз и сравнивает дайджесты итогового состояния.
func check(out io.Writer, path string, runs int) error {
	l, err := storage.Load(path)
	if err != nil {
		return err
	}

	var first uint64
	for i := 0; i < runs; i++ {
		g, err := engine.Replay(l, engine.NewConfig(), 0)
		if err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
		digest, err := g.TakeSnapshot().Digest()
		if err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
		fmt.Fprintf(out, "run %d: ticks=%d state=%s digest=%016x\n", i, g.Ticks(), g.State(), digest)

		if i == 0 {
			first = digest
		} else if digest != first {
			return fmt.Errorf("run %d diverged: %016x != %016x", i, digest, first)
		}
	}
	fmt.Fprintf(out, "OK: replay is deterministic (%s)\n", version.Current())
	return nil
}

// record даёт боту сыграть ticks тиков и сохраняет его нажатия.
func record(out io.Writer, seed int64, ticks int, path string) error {
	cfg := engine.NewConfig()
	cfg.Seed = seed
	g, err := engine.NewGame(cfg)
	if err != nil {
		return err
	}

	bot := agent.NewBot(g, rng.New(seed))
	rec := &storage.KeyLog{Seed: seed, Timestamp: time.Now().Unix()}
	for g.Ticks() < ticks {
		if err := g.Step(bot.Poll(), rec); err != nil {
			return err
		}
	}
	if err := storage.Save(path, rec); err != nil {
		return err
	}

	digest, err := g.TakeSnapshot().Digest()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "recorded %d keys over %d ticks, state=%s digest=%016x\n", len(rec.Records), g.Ticks(), g.State(), digest)
	return nil
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, `Replay Check - проверка детерминизма записей ввода
Commands:
  info <file.rlkr>          - заголовок и список нажатий
  check <file.rlkr> [runs]  - проиграть запись runs раз (по умолчанию 2) и сравнить состояние
  record <seed> <ticks> <file.rlkr> - записать автоигру бота`)
}
