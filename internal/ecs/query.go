package ecs

import (
	"sort"

	"github.com/Boxfort/rustlike/internal/core/types"
)

// Query возвращает сущности, у которых есть компоненты во всех
// переданных хранилищах, в порядке EntityID.Less.
//
// Пересечение начинается с самого маленького хранилища.
// Результат — снимок: его можно обходить, меняя хранилища.
func Query(stores ...AnyStore) []types.EntityID {
	if len(stores) == 0 {
		return []types.EntityID{}
	}

	ordered := make([]AnyStore, len(stores))
	copy(ordered, stores)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Len() < ordered[j].Len()
	})

	// Entities() уже отсортирован, фильтрация порядок сохраняет
	candidates := ordered[0].Entities()
	for _, s := range ordered[1:] {
		n := 0
		for _, id := range candidates {
			if s.Has(id) {
				candidates[n] = id
				n++
			}
		}
		candidates = candidates[:n]
		if n == 0 {
			break
		}
	}
	return candidates
}

// Each обходит все сущности хранилища.
func Each[A any](a *Store[A], fn func(id types.EntityID, a *A)) {
	for _, id := range a.Entities() {
		ca, ok := a.Get(id)
		if !ok {
			continue
		}
		fn(id, ca)
	}
}

// Join2 обходит сущности, у которых есть оба компонента.
// Каждая строка перечитывается в момент обхода, поэтому сущность,
// потерявшая компонент посреди прохода, пропускается.
func Join2[A, B any](a *Store[A], b *Store[B], fn func(id types.EntityID, a *A, b *B)) {
	for _, id := range Query(a, b) {
		ca, okA := a.Get(id)
		cb, okB := b.Get(id)
		if !okA || !okB {
			continue
		}
		fn(id, ca, cb)
	}
}

// Join3 — то же для трёх компонентов.
func Join3[A, B, C any](a *Store[A], b *Store[B], c *Store[C], fn func(id types.EntityID, a *A, b *B, c *C)) {
	for _, id := range Query(a, b, c) {
		ca, okA := a.Get(id)
		cb, okB := b.Get(id)
		cc, okC := c.Get(id)
		if !okA || !okB || !okC {
			continue
		}
		fn(id, ca, cb, cc)
	}
}

// Join4 — то же для четырёх компонентов.
func Join4[A, B, C, D any](a *Store[A], b *Store[B], c *Store[C], d *Store[D], fn func(id types.EntityID, a *A, b *B, c *C, d *D)) {
	for _, id := range Query(a, b, c, d) {
		ca, okA := a.Get(id)
		cb, okB := b.Get(id)
		cc, okC := c.Get(id)
		cd, okD := d.Get(id)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(id, ca, cb, cc, cd)
	}
}
