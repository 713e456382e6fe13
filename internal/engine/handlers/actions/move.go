package actions

import (
	"fmt"

	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/engine/handlers"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// HandleMove двигает игрока или ставит атаку, если в клетке живой противник.
// Стена, занятая клетка и край карты хода не тратят.
func HandleMove(ctx handlers.Context, p domain.DirectionPayload) (handlers.Result, error) {
	w := ctx.World
	pos, ok := w.Positions.Get(ctx.Actor)
	if !ok {
		return handlers.Result{}, fmt.Errorf("move %s: Position: %w", ctx.Actor, handlers.ErrMissingComponent)
	}
	m := w.Map()
	x, y := pos.X+p.DX, pos.Y+p.DY
	if !m.InBounds(x, y) || !m.Contains(x, y) {
		return handlers.Stay(ctx), nil
	}
	idx := m.Idx(x, y)

	moveLogger := logger.Log.WithFields(logrus.Fields{
		"component": "move_handler",
		"actor_id":  ctx.Actor,
		"x":         x,
		"y":         y,
	})

	// В клетке живой противник - атакуем вместо шага
	for _, target := range m.TileContent[idx] {
		if target == ctx.Actor {
			continue
		}
		if stats, ok := w.CombatStats.Get(target); ok && stats.IsAlive() {
			w.WantsToMelee.Insert(ctx.Actor, domain.WantsToMelee{Target: target})
			moveLogger.WithField("target_id", target).Debug("Move turned into melee")
			return handlers.TurnTaken(), nil
		}
	}

	if m.Blocked[idx] {
		return handlers.Stay(ctx), nil
	}

	pos.X, pos.Y = x, y
	if w.IsPlayer(ctx.Actor) {
		pp := w.PlayerPosition()
		pp.X, pp.Y = x, y
	}
	if vs, ok := w.Viewsheds.Get(ctx.Actor); ok {
		vs.Dirty = true
	}

	moveLogger.Debug("Actor moved")
	return handlers.TurnTaken(), nil
}
