package systems

import (
	"testing"

	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/pkg/dungeon"
)

func TestVisibilitySystem_PlayerMarksMap(t *testing.T) {
	w, player := arena(t, func(b *dungeon.LevelBuilder) {
		b.WithWall(7, 5)
	})
	m := w.Map()

	VisibilitySystem(w)

	vs, _ := w.Viewsheds.Get(player)
	if vs.Dirty {
		t.Error("viewshed must be clean after the pass")
	}
	if !vs.VisibleTiles[types.Pt(5, 5)] || !m.Visible[m.Idx(5, 5)] {
		t.Error("player tile must be visible")
	}
	if !m.Visible[m.Idx(7, 5)] {
		t.Error("the wall itself must be visible")
	}
	if m.Visible[m.Idx(8, 5)] {
		t.Error("tile behind the wall must be hidden")
	}
	for i := range m.Visible {
		if m.Visible[i] && !m.Revealed[i] {
			t.Fatalf("visible tile %d not revealed", i)
		}
	}
}

func TestVisibilitySystem_RevealIsMonotone(t *testing.T) {
	w, player := arena(t, nil)
	m := w.Map()

	VisibilitySystem(w)
	before := append([]bool(nil), m.Revealed...)

	// Отходим к правой стене: часть старых клеток пропадает из вида
	pos, _ := w.Positions.Get(player)
	pos.X = 17
	vs, _ := w.Viewsheds.Get(player)
	vs.Dirty = true
	VisibilitySystem(w)

	for i := range before {
		if before[i] && !m.Revealed[i] {
			t.Fatalf("tile %d was revealed and got hidden again", i)
		}
	}
	if m.Visible[m.Idx(1, 1)] {
		t.Error("far corner must no longer be visible")
	}
	if !m.Revealed[m.Idx(1, 5)] {
		t.Error("previously seen tile must stay revealed")
	}
}

func TestVisibilitySystem_CleanViewshedIsKept(t *testing.T) {
	w, player := arena(t, nil)
	vs, _ := w.Viewsheds.Get(player)
	vs.Dirty = false
	vs.VisibleTiles = map[types.Point]bool{types.Pt(1, 1): true}

	VisibilitySystem(w)

	if len(vs.VisibleTiles) != 1 {
		t.Error("clean viewshed must not be recomputed")
	}
	if w.Map().Visible[w.Map().Idx(5, 5)] {
		t.Error("map visibility changes only with a recomputed player viewshed")
	}
}

func TestVisibilitySystem_MonsterDoesNotTouchMap(t *testing.T) {
	w, player := arena(t, func(b *dungeon.LevelBuilder) {
		b.WithMonster("Orc", 11, 8)
	})
	vs, _ := w.Viewsheds.Get(player)
	vs.Dirty = false

	VisibilitySystem(w)

	orc := monsterAt(t, w, 11, 8)
	ovs, _ := w.Viewsheds.Get(orc)
	if !ovs.VisibleTiles[types.Pt(5, 5)] {
		t.Error("orc must see the player across the open hall")
	}
	for i, v := range w.Map().Visible {
		if v {
			t.Fatalf("monster FOV leaked into map visibility at %d", i)
		}
	}
}
