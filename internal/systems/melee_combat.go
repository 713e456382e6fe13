package systems

import (
	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/ecs"
	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// MeleeCombatSystem превращает WantsToMelee в SufferDamage.
// Мёртвые атакующие и цели пропускаются молча.
func MeleeCombatSystem(w *domain.World) {
	ecs.Join3(w.WantsToMelee, w.Names, w.CombatStats, func(id types.EntityID, want *domain.WantsToMelee, name *domain.Name, stats *domain.CombatStats) {
		if !stats.IsAlive() {
			return
		}
		targetStats, ok := w.CombatStats.Get(want.Target)
		if !ok || !targetStats.IsAlive() {
			return
		}

		targetName := w.NameOf(want.Target)
		damage := stats.MeleeDamageAgainst(targetStats)

		logger.Log.WithFields(logrus.Fields{
			"component":   "melee_combat_system",
			"attacker_id": id,
			"target_id":   want.Target,
			"damage":      damage,
		}).Debug("Attack resolved")

		if damage == 0 {
			w.Logf("%s is unable to hurt %s", name.Name, targetName)
			return
		}
		w.Logf("%s hits %s for %d damage", name.Name, targetName, damage)
		InflictDamage(w, want.Target, damage)
	})

	w.WantsToMelee.Clear()
}

// InflictDamage добавляет урон к уже накопленному за тик.
func InflictDamage(w *domain.World, target types.EntityID, amount int) {
	if d, ok := w.SufferDamage.Get(target); ok {
		d.Merge(amount)
		return
	}
	w.SufferDamage.Insert(target, domain.SufferDamage{Amount: amount})
}
