package actions

import (
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/engine/handlers"
)

// HandleShowInventory открывает меню использования предметов
func HandleShowInventory(_ handlers.Context) (handlers.Result, error) {
	return handlers.GoTo(domain.StateShowInventory), nil
}

// HandleShowDrop открывает меню выбрасывания предметов
func HandleShowDrop(_ handlers.Context) (handlers.Result, error) {
	return handlers.GoTo(domain.StateShowDropItem), nil
}
