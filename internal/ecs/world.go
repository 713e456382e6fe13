package ecs

import (
	"errors"
	"fmt"

	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/core/types/enums"
)

// ErrNoSuchEntity возвращается, когда идентификатор не указывает на живую сущность.
var ErrNoSuchEntity = errors.New("no such entity")

// slot — запись о слоте сущности.
type slot struct {
	gen   uint16
	kind  enums.EntityKind
	alive bool
}

// World — хранилище сущностей: выдаёт идентификаторы, держит список
// зарегистрированных хранилищ компонентов и ресурсы-синглтоны.
//
// Удаление сущностей отложенное: Delete только ставит сущность в
// очередь, а Maintain в конце прохода систем снимает её со всех
// хранилищ разом.
type World struct {
	slots   []slot // slots[0] не используется, индексы начинаются с 1
	free    []uint32
	pending []types.EntityID
	stores  []AnyStore

	Resources *ResourceStore
}

// NewWorld создаёт пустой мир.
func NewWorld() *World {
	return &World{
		slots:     make([]slot, 1, 128),
		Resources: NewResourceStore(),
	}
}

// Register создаёт типизированное хранилище и привязывает его к миру.
func Register[T any](w *World) *Store[T] {
	s := NewStore[T]()
	w.stores = append(w.stores, s)
	return s
}

// CreateEntity выдаёт новый идентификатор. Освободившиеся слоты
// переиспользуются в порядке освобождения с увеличенным поколением.
func (w *World) CreateEntity(kind enums.EntityKind) types.EntityID {
	var index uint32
	if len(w.free) > 0 {
		index = w.free[0]
		w.free = w.free[1:]
	} else {
		index = uint32(len(w.slots))
		w.slots = append(w.slots, slot{})
	}

	s := &w.slots[index]
	s.alive = true
	s.kind = kind
	return types.PackEntityID(kind, s.gen, index)
}

// IsAlive проверяет, что сущность существует и ссылка не устарела.
// Сущность, поставленная в очередь на удаление, жива до Maintain.
func (w *World) IsAlive(id types.EntityID) bool {
	index := id.Index()
	if index == 0 || int(index) >= len(w.slots) {
		return false
	}
	s := w.slots[index]
	return s.alive && s.gen == id.Generation() && s.kind == id.Kind()
}

// Delete ставит сущность в очередь на удаление.
// Повторный вызов для той же сущности ничего не делает.
func (w *World) Delete(id types.EntityID) error {
	if !w.IsAlive(id) {
		return fmt.Errorf("delete %s: %w", id, ErrNoSuchEntity)
	}
	for _, p := range w.pending {
		if p == id {
			return nil
		}
	}
	w.pending = append(w.pending, id)
	return nil
}

// PendingDeletes возвращает число сущностей, ожидающих удаления.
func (w *World) PendingDeletes() int {
	return len(w.pending)
}

// Maintain применяет отложенные удаления: снимает сущности со всех
// хранилищ, увеличивает поколение слота и освобождает индекс.
// Возвращает число удалённых сущностей.
func (w *World) Maintain() int {
	if len(w.pending) == 0 {
		return 0
	}

	reaped := 0
	for _, id := range w.pending {
		if !w.IsAlive(id) {
			continue
		}
		for _, s := range w.stores {
			s.Remove(id)
		}
		sl := &w.slots[id.Index()]
		sl.alive = false
		sl.gen++
		w.free = append(w.free, id.Index())
		reaped++
	}
	w.pending = w.pending[:0]
	return reaped
}

// Entities возвращает все живые сущности в порядке индексов.
func (w *World) Entities() []types.EntityID {
	result := make([]types.EntityID, 0, len(w.slots))
	for i := 1; i < len(w.slots); i++ {
		s := w.slots[i]
		if s.alive {
			result = append(result, types.PackEntityID(s.kind, s.gen, uint32(i)))
		}
	}
	return result
}

// Len возвращает число живых сущностей.
func (w *World) Len() int {
	n := 0
	for i := 1; i < len(w.slots); i++ {
		if w.slots[i].alive {
			n++
		}
	}
	return n
}
