package systems

import (
	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/ecs"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// DamageSystem применяет накопленный урон и очищает SufferDamage.
func DamageSystem(w *domain.World) {
	ecs.Join2(w.CombatStats, w.SufferDamage, func(id types.EntityID, stats *domain.CombatStats, dmg *domain.SufferDamage) {
		hpBefore := stats.HP
		stats.TakeDamage(dmg.Amount)

		logger.Log.WithFields(logrus.Fields{
			"component": "damage_system",
			"entity_id": id,
			"amount":    dmg.Amount,
			"hp_before": hpBefore,
			"hp_after":  stats.HP,
		}).Debug("Damage applied")
	})

	w.SufferDamage.Clear()
}

// DeleteTheDead убирает сущности с HP < 1.
// Игрок не удаляется: игра переходит в GameOver, "You are dead" пишется один раз.
// Удаление отложенное, его применяет Maintain.
func DeleteTheDead(w *domain.World) {
	state := w.RunState()

	for _, id := range w.CombatStats.Entities() {
		stats, _ := w.CombatStats.Get(id)
		if stats.IsAlive() {
			continue
		}

		if w.IsPlayer(id) {
			if *state != domain.StateGameOver {
				w.Logf("You are dead")
				*state = domain.StateGameOver
			}
			continue
		}

		w.Logf("%s is dead", w.NameOf(id))
		if err := w.Delete(id); err != nil {
			logger.Log.WithFields(logrus.Fields{
				"component": "damage_system",
				"entity_id": id,
			}).WithError(err).Error("Failed to queue dead entity for deletion")
		}
	}
}
