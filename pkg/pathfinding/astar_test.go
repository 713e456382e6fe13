package pathfinding

import (
	"math"
	"os"
	"testing"

	"github.com/Boxfort/rustlike/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// gridGraph — простая 8-связная сетка для тестов
type gridGraph struct {
	w, h    int
	blocked []bool
}

func newGridGraph(w, h int) *gridGraph {
	return &gridGraph{w: w, h: h, blocked: make([]bool, w*h)}
}

func (g *gridGraph) idx(x, y int) int { return y*g.w + x }

func (g *gridGraph) AvailableExits(idx int) []Exit {
	x, y := idx%g.w, idx/g.w
	var exits []Exit
	for _, d := range [][3]float64{
		{-1, 0, 1}, {1, 0, 1}, {0, -1, 1}, {0, 1, 1},
		{-1, -1, 1.45}, {1, -1, 1.45}, {-1, 1, 1.45}, {1, 1, 1.45},
	} {
		nx, ny := x+int(d[0]), y+int(d[1])
		if nx < 0 || ny < 0 || nx >= g.w || ny >= g.h || g.blocked[g.idx(nx, ny)] {
			continue
		}
		exits = append(exits, Exit{Idx: g.idx(nx, ny), Cost: d[2]})
	}
	return exits
}

func (g *gridGraph) Heuristic(from, to int) float64 {
	dx := float64(from%g.w - to%g.w)
	dy := float64(from/g.w - to/g.w)
	return math.Sqrt(dx*dx + dy*dy)
}

func TestAStar(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(g *gridGraph)
		start     [2]int
		end       [2]int
		success   bool
		wantSteps int
	}{
		{
			name:      "Straight line",
			start:     [2]int{1, 1},
			end:       [2]int{5, 1},
			success:   true,
			wantSteps: 5,
		},
		{
			name:      "Diagonal",
			start:     [2]int{0, 0},
			end:       [2]int{3, 3},
			success:   true,
			wantSteps: 4,
		},
		{
			name:      "Same tile",
			start:     [2]int{2, 2},
			end:       [2]int{2, 2},
			success:   true,
			wantSteps: 1,
		},
		{
			name: "Around a wall",
			setup: func(g *gridGraph) {
				for y := 0; y < 6; y++ {
					g.blocked[g.idx(4, y)] = true
				}
			},
			start:   [2]int{1, 1},
			end:     [2]int{7, 1},
			success: true,
		},
		{
			name: "Walled off",
			setup: func(g *gridGraph) {
				for y := 0; y < g.h; y++ {
					g.blocked[g.idx(4, y)] = true
				}
			},
			start:   [2]int{1, 1},
			end:     [2]int{7, 1},
			success: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGridGraph(10, 8)
			if tt.setup != nil {
				tt.setup(g)
			}
			start := g.idx(tt.start[0], tt.start[1])
			end := g.idx(tt.end[0], tt.end[1])

			path := AStar(start, end, g)
			if path.Success != tt.success {
				t.Fatalf("Success = %v, want %v", path.Success, tt.success)
			}
			if !tt.success {
				return
			}
			if path.Steps[0] != start || path.Steps[len(path.Steps)-1] != end {
				t.Errorf("path %v must run from %d to %d", path.Steps, start, end)
			}
			if tt.wantSteps > 0 && len(path.Steps) != tt.wantSteps {
				t.Errorf("len(Steps) = %d, want %d", len(path.Steps), tt.wantSteps)
			}
			for i := 1; i < len(path.Steps); i++ {
				if g.blocked[path.Steps[i]] {
					t.Errorf("step %d enters a blocked tile", i)
				}
			}
		})
	}
}

func TestAStar_Deterministic(t *testing.T) {
	g := newGridGraph(12, 12)
	start, end := g.idx(0, 0), g.idx(11, 7)

	first := AStar(start, end, g)
	for i := 0; i < 10; i++ {
		again := AStar(start, end, g)
		if len(again.Steps) != len(first.Steps) {
			t.Fatalf("path length changed between runs")
		}
		for j := range again.Steps {
			if again.Steps[j] != first.Steps[j] {
				t.Fatalf("path differs at step %d", j)
			}
		}
	}
}
