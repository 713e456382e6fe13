package ecs

import (
	"sort"

	"github.com/Boxfort/rustlike/internal/core/types"
)

// AnyStore — нетипизированный интерфейс хранилища. Нужен миру, чтобы
// чистить все хранилища при удалении сущности, и запросам, чтобы
// пересекать множества сущностей.
type AnyStore interface {
	Has(id types.EntityID) bool
	Remove(id types.EntityID)
	Entities() []types.EntityID
	Len() int
	Clear()
}

// Store — разреженное хранилище компонента типа T.
//
// Значения хранятся по указателю, поэтому Get отдаёт ссылку, которую
// система может менять на месте. Список сущностей всегда отсортирован
// по EntityID.Less: от этого зависит детерминизм итерации.
//
// Хранилище не потокобезопасно: симуляция однопоточная.
type Store[T any] struct {
	components map[types.EntityID]*T
	entities   []types.EntityID
}

// NewStore создаёт пустое хранилище. Обычно вызывается через Register.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[types.EntityID]*T),
		entities:   make([]types.EntityID, 0, 64),
	}
}

// Insert добавляет или заменяет компонент сущности.
func (s *Store[T]) Insert(id types.EntityID, val T) {
	if existing, ok := s.components[id]; ok {
		*existing = val
		return
	}
	v := val
	s.components[id] = &v

	i := sort.Search(len(s.entities), func(i int) bool {
		return !s.entities[i].Less(id)
	})
	s.entities = append(s.entities, types.NilEntityID)
	copy(s.entities[i+1:], s.entities[i:])
	s.entities[i] = id
}

// Get возвращает указатель на компонент сущности.
func (s *Store[T]) Get(id types.EntityID) (*T, bool) {
	val, ok := s.components[id]
	return val, ok
}

// Has проверяет, есть ли у сущности этот компонент.
func (s *Store[T]) Has(id types.EntityID) bool {
	_, ok := s.components[id]
	return ok
}

// Remove удаляет компонент сущности. Отсутствие компонента не ошибка.
func (s *Store[T]) Remove(id types.EntityID) {
	if _, ok := s.components[id]; !ok {
		return
	}
	delete(s.components, id)

	i := sort.Search(len(s.entities), func(i int) bool {
		return !s.entities[i].Less(id)
	})
	if i < len(s.entities) && s.entities[i] == id {
		s.entities = append(s.entities[:i], s.entities[i+1:]...)
	}
}

// Entities возвращает копию отсортированного списка сущностей.
// Копия позволяет менять хранилище во время обхода.
func (s *Store[T]) Entities() []types.EntityID {
	result := make([]types.EntityID, len(s.entities))
	copy(result, s.entities)
	return result
}

// Len возвращает число сущностей с этим компонентом.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Clear удаляет компонент у всех сущностей. Так системы сбрасывают
// обработанные намерения (WantsToMelee и т.п.).
func (s *Store[T]) Clear() {
	s.components = make(map[types.EntityID]*T)
	s.entities = s.entities[:0]
}
