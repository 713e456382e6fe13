package engine

import (
	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/internal/systems"
)

// MenuKind - итог опроса меню предметов
type MenuKind uint8

const (
	MenuNoResponse MenuKind = iota
	MenuCancel
	MenuSelected
)

// MenuResult - ответ меню. Item заполнен только при MenuSelected.
type MenuResult struct {
	Kind MenuKind
	Item types.EntityID
}

// InventoryItems возвращает рюкзак владельца в порядке пунктов меню.
func InventoryItems(w *domain.World, owner types.EntityID) []types.EntityID {
	return systems.Backpack(w, owner)
}

// QueryItemMenu разбирает нажатие в меню рюкзака:
// Escape закрывает меню, буква выбирает пункт, остальное игнорируется.
func QueryItemMenu(w *domain.World, owner types.EntityID, key domain.VirtualKey) MenuResult {
	if key == domain.KeyEscape {
		return MenuResult{Kind: MenuCancel}
	}

	i := key.LetterIndex()
	if i < 0 {
		return MenuResult{Kind: MenuNoResponse}
	}
	items := InventoryItems(w, owner)
	if i >= len(items) {
		return MenuResult{Kind: MenuNoResponse}
	}
	return MenuResult{Kind: MenuSelected, Item: items[i]}
}
