package engine

import (
	"fmt"

	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/infrastructure/storage"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Step выполняет тик и заносит нажатие в запись (если она ведётся).
func (g *Game) Step(key domain.VirtualKey, rec *storage.KeyLog) error {
	tick := g.tick
	if err := g.Tick(key); err != nil {
		return err
	}
	if rec != nil {
		rec.Record(tick, key)
	}
	return nil
}

// Replay заново проигрывает запись: строит игру с сидом записи и подаёт
// нажатия на те же тики. Остальные параметры берутся из cfg.
//
// Пустые тики в конце партии в запись не попадают, поэтому minTicks
// позволяет доиграть их; 0 - остановиться после последнего нажатия.
func Replay(log *storage.KeyLog, cfg Config, minTicks int) (*Game, error) {
	cfg.Seed = log.Seed
	g, err := NewGame(cfg)
	if err != nil {
		return nil, err
	}

	p := storage.NewPlayer(log)
	until := max(minTicks, log.LastTick()+1)
	for g.tick < until {
		if err := g.Tick(p.KeyAt(g.tick)); err != nil {
			return nil, fmt.Errorf("replay: %w", err)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "replay",
		"seed":      log.Seed,
		"records":   len(log.Records),
		"ticks":     g.tick,
		"state":     g.State(),
	}).Info("Replay finished")
	return g, nil
}
