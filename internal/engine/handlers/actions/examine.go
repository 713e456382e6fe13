package actions

import (
	"fmt"

	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/engine/handlers"
)

// HandleExamine ставит курсор на игрока и включает режим осмотра.
func HandleExamine(ctx handlers.Context) (handlers.Result, error) {
	pos, ok := ctx.World.Positions.Get(ctx.Actor)
	if !ok {
		return handlers.Result{}, fmt.Errorf("examine %s: Position: %w", ctx.Actor, handlers.ErrMissingComponent)
	}
	c := ctx.World.Cursor()
	c.X, c.Y = pos.X, pos.Y
	return handlers.GoTo(domain.StateExamining), nil
}

// HandleCursorMove двигает курсор осмотра в пределах карты. Симуляцию не трогает.
func HandleCursorMove(ctx handlers.Context, p domain.DirectionPayload) (handlers.Result, error) {
	c := ctx.World.Cursor()
	m := ctx.World.Map()
	if x, y := c.X+p.DX, c.Y+p.DY; m.Contains(x, y) {
		c.X, c.Y = x, y
	}
	return handlers.Stay(ctx), nil
}

// HandleStopExamine возвращает к ожиданию ввода
func HandleStopExamine(_ handlers.Context) (handlers.Result, error) {
	return handlers.GoTo(domain.StateAwaitingInput), nil
}
