package systems

import (
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// MapIndexingSystem пересобирает Map.Blocked и Map.TileContent
// по текущим позициям сущностей.
func MapIndexingSystem(w *domain.World) {
	m := w.Map()
	m.PopulateBlocked()
	m.ClearContentIndex()

	for _, id := range w.Positions.Entities() {
		pos, _ := w.Positions.Get(id)
		if !m.Contains(pos.X, pos.Y) {
			logger.Log.WithFields(logrus.Fields{
				"component": "map_indexing_system",
				"entity_id": id,
				"x":         pos.X,
				"y":         pos.Y,
			}).Warn("Entity outside the map, skipped")
			continue
		}
		idx := m.Idx(pos.X, pos.Y)
		if w.BlocksTiles.Has(id) {
			m.Blocked[idx] = true
		}
		m.TileContent[idx] = append(m.TileContent[idx], id)
	}
}
