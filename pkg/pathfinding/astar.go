// Package pathfinding ищет путь A* по графу клеток, который описывает карта.
package pathfinding

import (
	"container/heap"

	"github.com/Boxfort/rustlike/pkg/logger"
	"github.com/sirupsen/logrus"
)

// MaxSteps ограничивает число раскрытых узлов одного поиска.
const MaxSteps = 65536

// Exit — соседняя клетка и стоимость шага в неё.
type Exit struct {
	Idx  int
	Cost float64
}

// Graph — то, что A* нужно знать о карте.
type Graph interface {
	AvailableExits(idx int) []Exit
	Heuristic(from, to int) float64
}

// Path — результат поиска. Steps[0] — старт, Steps[1] — первый шаг.
type Path struct {
	Success bool
	Steps   []int
}

// AStar ищет кратчайший путь от start до end.
//
// При равных f раньше раскрывается узел, добавленный раньше, поэтому
// при одинаковой карте путь всегда один и тот же.
func AStar(start, end int, g Graph) Path {
	if start == end {
		return Path{Success: true, Steps: []int{start}}
	}

	open := &openSet{}
	seq := 0
	heap.Push(open, &node{idx: start, f: g.Heuristic(start, end), seq: seq})

	bestG := map[int]float64{start: 0}
	parent := make(map[int]int)
	closed := make(map[int]bool)

	steps := 0
	for open.Len() > 0 && steps < MaxSteps {
		steps++
		q := heap.Pop(open).(*node)
		if closed[q.idx] {
			continue
		}
		if q.idx == end {
			return Path{Success: true, Steps: reconstruct(parent, start, end)}
		}
		closed[q.idx] = true

		for _, exit := range g.AvailableExits(q.idx) {
			if closed[exit.Idx] {
				continue
			}
			cost := q.g + exit.Cost
			if known, ok := bestG[exit.Idx]; ok && known <= cost {
				continue
			}
			bestG[exit.Idx] = cost
			parent[exit.Idx] = q.idx
			seq++
			heap.Push(open, &node{
				idx: exit.Idx,
				g:   cost,
				f:   cost + g.Heuristic(exit.Idx, end),
				seq: seq,
			})
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "pathfinding",
		"start":     start,
		"end":       end,
		"expanded":  steps,
	}).Debug("A* found no path.")
	return Path{Success: false}
}

func reconstruct(parent map[int]int, start, end int) []int {
	var reversed []int
	for cur := end; cur != start; cur = parent[cur] {
		reversed = append(reversed, cur)
	}
	reversed = append(reversed, start)

	steps := make([]int, len(reversed))
	for i, idx := range reversed {
		steps[len(reversed)-1-i] = idx
	}
	return steps
}
