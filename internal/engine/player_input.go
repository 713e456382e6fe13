package engine

import (
	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/engine/handlers"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// playerInput переводит клавишу в команду и отдаёт её хендлеру состояния.
// Без клавиши или с неизвестной клавишей состояние не меняется.
func (g *Game) playerInput(player types.EntityID, state domain.RunState, key domain.VirtualKey) (domain.RunState, error) {
	if key == domain.KeyNone {
		return state, nil
	}

	cmd, ok := g.keys[key]
	if !ok {
		return state, nil
	}

	handler, ok := g.routes[state][cmd.Action]
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "player_input",
			"state":     state,
			"action":    cmd.Action,
		}).Debug("Command ignored in this state")
		return state, nil
	}

	res, err := handler(handlers.Context{
		World: g.World,
		Actor: player,
		State: state,
	}, cmd.Payload)
	if err != nil {
		return state, err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "player_input",
		"key":       key,
		"action":    cmd.Action,
		"next":      res.Next,
	}).Debug("Command handled")
	return res.Next, nil
}
