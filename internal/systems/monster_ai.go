package systems

import (
	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/core/types/enums"
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/ecs"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/Boxfort/rustlike/pkg/pathfinding"
	"github.com/sirupsen/logrus"
)

// meleeReach - расстояние, с которого монстр бьёт (соседняя клетка, включая диагональ)
const meleeReach = 1.5

// MonsterAISystem выбирает действие каждого монстра. Работает только в MonsterTurn.
//
// Монстры ходят в порядке идентификаторов. После шага Map.Blocked
// обновляется сразу, чтобы следующий монстр не встал на ту же клетку.
func MonsterAISystem(w *domain.World) {
	if *w.RunState() != domain.StateMonsterTurn {
		return
	}
	player, ok := w.Player()
	if !ok {
		return
	}
	target := w.PlayerPosition().Point()
	m := w.Map()

	ecs.Join3(w.Monsters, w.Viewsheds, w.Positions, func(id types.EntityID, mon *domain.Monster, vs *domain.Viewshed, pos *domain.Position) {
		// Мёртвые ждут уборки и не ходят
		if stats, ok := w.CombatStats.Get(id); ok && !stats.IsAlive() {
			return
		}

		aiLogger := logger.Log.WithFields(logrus.Fields{
			"component": "monster_ai_system",
			"entity_id": id,
			"behavior":  mon.Behavior,
		})

		if pos.DistanceTo(target) < meleeReach {
			w.WantsToMelee.Insert(id, domain.WantsToMelee{Target: player})
			aiLogger.Debug("Monster attacks the player")
			return
		}

		if mon.Behavior == enums.AIBehaviorStationary || !vs.VisibleTiles[target] {
			return
		}

		from := m.Idx(pos.X, pos.Y)
		path := pathfinding.AStar(from, m.Idx(target.X, target.Y), m)
		if !path.Success || len(path.Steps) < 2 {
			return
		}

		next := path.Steps[1]
		m.Blocked[from] = m.Tiles[from] == domain.TileWall
		pos.X, pos.Y = m.XY(next)
		m.Blocked[next] = true
		vs.Dirty = true

		aiLogger.WithFields(logrus.Fields{
			"x": pos.X,
			"y": pos.Y,
		}).Debug("Monster chases the player")
	})
}
