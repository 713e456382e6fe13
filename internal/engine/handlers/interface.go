package handlers

import (
	"errors"

	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
)

// ErrMissingComponent возвращается, если у актора нет обязательного компонента.
// Это ошибка программиста: тик прерывается.
var ErrMissingComponent = errors.New("missing required component")

// Context передает хендлеру состояние мира.
// Мир передаётся по ссылке, чтобы хендлер мог ставить намерения и двигать актора.
type Context struct {
	World *domain.World
	Actor types.EntityID  // Тот, кто выполняет команду (игрок)
	State domain.RunState // Состояние, в котором нажата клавиша
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ меняет RunState сам, он возвращает следующее состояние.
type Result struct {
	Next domain.RunState
}

// HandlerFunc - это контракт для любой команды (MOVE, PICKUP, etc).
type HandlerFunc func(ctx Context, payload any) (Result, error)

// Stay - команда не потратила ход, состояние не меняется
func Stay(ctx Context) Result {
	return Result{Next: ctx.State}
}

// TurnTaken - игрок сделал действие, ходят монстры
func TurnTaken() Result {
	return Result{Next: domain.StateMonsterTurn}
}

// GoTo - переход в другое состояние без хода
func GoTo(state domain.RunState) Result {
	return Result{Next: state}
}
