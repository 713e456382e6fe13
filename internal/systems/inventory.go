package systems

import (
	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/ecs"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// BackpackCapacity - по одной букве меню на предмет
const BackpackCapacity = 26

// ItemCollectionSystem переносит предметы с пола в рюкзак.
func ItemCollectionSystem(w *domain.World) {
	for _, id := range w.WantsPickup.Entities() {
		want, _ := w.WantsPickup.Get(id)
		if !w.Items.Has(want.Item) || !w.Positions.Has(want.Item) {
			continue
		}

		w.Positions.Remove(want.Item)
		w.InBackpacks.Insert(want.Item, domain.InBackpack{Owner: want.CollectedBy})

		logger.Log.WithFields(logrus.Fields{
			"component": "inventory_system",
			"owner_id":  want.CollectedBy,
			"item_id":   want.Item,
		}).Debug("Item picked up")

		if w.IsPlayer(want.CollectedBy) {
			w.Logf("You pick up the %s", w.NameOf(want.Item))
		}
	}

	w.WantsPickup.Clear()
}

// PotionUseSystem лечит выпившего и удаляет зелье.
func PotionUseSystem(w *domain.World) {
	ecs.Join2(w.WantsDrink, w.CombatStats, func(id types.EntityID, want *domain.WantsToDrinkPotion, stats *domain.CombatStats) {
		potion, ok := w.Potions.Get(want.Potion)
		if !ok {
			return
		}

		stats.Heal(potion.HealAmount)
		if w.IsPlayer(id) {
			w.Logf("You drink the %s, healing %d hp", w.NameOf(want.Potion), potion.HealAmount)
		}
		if err := w.Delete(want.Potion); err != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "inventory_system",
				"item_id":   want.Potion,
			}).WithError(err).Error("Failed to queue potion for deletion")
		}
	})

	w.WantsDrink.Clear()
}

// ItemDropSystem кладёт предмет из рюкзака на клетку владельца.
func ItemDropSystem(w *domain.World) {
	for _, id := range w.WantsDrop.Entities() {
		want, _ := w.WantsDrop.Get(id)
		pos, ok := w.Positions.Get(id)
		if !ok {
			continue
		}
		owned, ok := w.InBackpacks.Get(want.Item)
		if !ok || owned.Owner != id {
			continue
		}

		w.Positions.Insert(want.Item, *pos)
		w.InBackpacks.Remove(want.Item)

		if w.IsPlayer(id) {
			w.Logf("You drop the %s", w.NameOf(want.Item))
		}
	}

	w.WantsDrop.Clear()
}

// Backpack возвращает предметы владельца в порядке идентификаторов.
func Backpack(w *domain.World, owner types.EntityID) []types.EntityID {
	var items []types.EntityID
	for _, id := range w.InBackpacks.Entities() {
		if b, _ := w.InBackpacks.Get(id); b.Owner == owner {
			items = append(items, id)
		}
	}
	return items
}

// ItemsAt возвращает предметы, лежащие на клетке, по индексу содержимого карты.
func ItemsAt(w *domain.World, x, y int) []types.EntityID {
	m := w.Map()
	if !m.Contains(x, y) {
		return nil
	}
	var items []types.EntityID
	for _, id := range m.TileContent[m.Idx(x, y)] {
		if w.Items.Has(id) {
			items = append(items, id)
		}
	}
	return items
}
