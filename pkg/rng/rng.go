package rng

import (
	"math/rand"
	"time"
)

// Source — источник случайных чисел для симуляции.
// Подменяется в тестах, чтобы прогон был воспроизводимым.
type Source interface {
	// Range возвращает равномерное целое из [lo, hi).
	Range(lo, hi int) int
	// RollDice возвращает сумму n бросков кубика d (каждый из [1, d]).
	RollDice(n, d int) int
}

// Rand — Source поверх math/rand с собственным зерном.
type Rand struct {
	r    *rand.Rand
	seed int64
}

// New создаёт генератор с заданным зерном.
// Одинаковое зерно даёт одинаковую последовательность.
func New(seed int64) *Rand {
	return &Rand{
		r:    rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// RandomSeed возвращает зерно на основе текущего времени.
func RandomSeed() int64 {
	return time.Now().UnixNano()
}

// Seed возвращает зерно, с которым создан генератор.
func (g *Rand) Seed() int64 {
	return g.seed
}

// Range возвращает равномерное целое из [lo, hi).
// Пустой диапазон (hi <= lo) даёт lo.
func (g *Rand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo)
}

// RollDice возвращает сумму n бросков кубика d.
// Кубик с d < 1 ничего не добавляет.
func (g *Rand) RollDice(n, d int) int {
	if d < 1 {
		return 0
	}
	total := 0
	for i := 0; i < n; i++ {
		total += g.r.Intn(d) + 1
	}
	return total
}
