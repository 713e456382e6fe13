package systems

import (
	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/ecs"
	"github.com/Boxfort/rustlike/pkg/fov"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// VisibilitySystem пересчитывает грязные поля зрения.
// Для игрока заодно переписывает Map.Visible и дополняет Map.Revealed.
func VisibilitySystem(w *domain.World) {
	m := w.Map()

	ecs.Join2(w.Viewsheds, w.Positions, func(id types.EntityID, vs *domain.Viewshed, pos *domain.Position) {
		if !vs.Dirty {
			return
		}
		vs.Dirty = false
		vs.VisibleTiles = fov.Compute(pos.Point(), vs.Range, m)

		logger.Log.WithFields(logrus.Fields{
			"component": "visibility_system",
			"entity_id": id,
			"visible":   len(vs.VisibleTiles),
		}).Debug("Viewshed recomputed")

		if !w.IsPlayer(id) {
			return
		}
		clear(m.Visible)
		for p := range vs.VisibleTiles {
			if !m.Contains(p.X, p.Y) {
				continue
			}
			idx := m.Idx(p.X, p.Y)
			m.Visible[idx] = true
			m.Revealed[idx] = true
		}
	})
}
