package actions

import (
	"fmt"

	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/engine/handlers"
	"github.com/Boxfort/rustlike/internal/systems"
)

// HandlePickup обрабатывает команду PICKUP - подбор предмета с земли.
// Подбирается первый предмет клетки; сам перенос делает ItemCollectionSystem.
func HandlePickup(ctx handlers.Context) (handlers.Result, error) {
	w := ctx.World
	pos, ok := w.Positions.Get(ctx.Actor)
	if !ok {
		return handlers.Result{}, fmt.Errorf("pickup %s: Position: %w", ctx.Actor, handlers.ErrMissingComponent)
	}

	items := systems.ItemsAt(w, pos.X, pos.Y)
	if len(items) == 0 {
		w.Logf("There is nothing here to pick up.")
		return handlers.Stay(ctx), nil
	}
	if len(systems.Backpack(w, ctx.Actor)) >= systems.BackpackCapacity {
		w.Logf("Your backpack is full.")
		return handlers.Stay(ctx), nil
	}

	w.WantsPickup.Insert(ctx.Actor, domain.WantsToPickupItem{
		CollectedBy: ctx.Actor,
		Item:        items[0],
	})
	return handlers.TurnTaken(), nil
}
