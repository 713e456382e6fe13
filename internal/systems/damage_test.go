package systems

import (
	"testing"

	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/pkg/dungeon"
)

func TestDamageSystem(t *testing.T) {
	w, player := arena(t, func(b *dungeon.LevelBuilder) {
		b.WithMonster("Orc", 6, 5)
	})
	orc := monsterAt(t, w, 6, 5)

	InflictDamage(w, orc, 3)
	InflictDamage(w, orc, 2)
	InflictDamage(w, player, 1)
	DamageSystem(w)

	if s, _ := w.CombatStats.Get(orc); s.HP != 4 {
		t.Errorf("orc hp = %d, want 4", s.HP)
	}
	if s, _ := w.CombatStats.Get(player); s.HP != 32 {
		t.Errorf("player hp = %d, want 32", s.HP)
	}
	if w.SufferDamage.Len() != 0 {
		t.Error("damage intents must be drained")
	}
}

func TestDeleteTheDead_Monster(t *testing.T) {
	w, _ := arena(t, func(b *dungeon.LevelBuilder) {
		b.WithMonster("Orc", 6, 5)
	})
	orc := monsterAt(t, w, 6, 5)
	MapIndexingSystem(w)

	InflictDamage(w, orc, 9)
	DamageSystem(w)
	DeleteTheDead(w)

	if w.PendingDeletes() != 1 {
		t.Fatalf("pending deletes = %d, want 1", w.PendingDeletes())
	}
	if last := w.Log().Last(1); len(last) != 1 || last[0] != "Orc #0 is dead" {
		t.Errorf("log = %v", last)
	}
	w.Maintain()
	if w.IsAlive(orc) || w.Positions.Has(orc) {
		t.Error("dead orc must be gone after Maintain")
	}

	MapIndexingSystem(w)
	if w.Map().Blocked[w.Map().Idx(6, 5)] {
		t.Error("floor tile must be free after the orc is reaped")
	}
}

func TestDeleteTheDead_Player(t *testing.T) {
	w, player := arena(t, nil)
	setState(w, domain.StateAwaitingInput)
	s, _ := w.CombatStats.Get(player)
	s.HP = 1

	InflictDamage(w, player, 5)
	DamageSystem(w)
	DeleteTheDead(w)
	DeleteTheDead(w)

	if s.HP != -4 {
		t.Errorf("player hp = %d, want -4", s.HP)
	}
	if w.PendingDeletes() != 0 || !w.IsAlive(player) {
		t.Error("player must never be deleted")
	}
	if *w.RunState() != domain.StateGameOver {
		t.Errorf("state = %v, want GAME_OVER", *w.RunState())
	}
	if w.Log().Len() != 1 || w.Log().Last(1)[0] != "You are dead" {
		t.Errorf("log = %v, want a single death line", w.Log().Entries)
	}
}
