package dungeon

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/pkg/rng"
)

func generatedLevel(t *testing.T, seed int64) (*domain.World, *domain.Map) {
	t.Helper()
	w := domain.NewWorld()
	_, err := NewLevel(w, rng.New(seed), nil).WithRooms().WithPlayer().Populate().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return w, w.Map()
}

func TestSpawner_Populate(t *testing.T) {
	for _, seed := range []int64{1, 42, 31337} {
		w, m := generatedLevel(t, seed)
		first := m.Rooms[0]

		for _, id := range w.Positions.Entities() {
			if w.IsPlayer(id) {
				continue
			}
			pos, _ := w.Positions.Get(id)

			// Первая комната пустая
			if pos.X > first.X1 && pos.X <= first.X2 && pos.Y > first.Y1 && pos.Y <= first.Y2 {
				t.Errorf("seed %d: %s spawned in the first room", seed, w.NameOf(id))
			}
			if m.Tiles[m.Idx(pos.X, pos.Y)] != domain.TileFloor {
				t.Errorf("seed %d: %s spawned in a wall at %+v", seed, w.NameOf(id), *pos)
			}
		}

		// Два монстра на одной клетке недопустимы
		seen := make(map[domain.Position]bool)
		for _, id := range w.Monsters.Entities() {
			pos, _ := w.Positions.Get(id)
			if seen[*pos] {
				t.Errorf("seed %d: two monsters at %+v", seed, *pos)
			}
			seen[*pos] = true

			for _, ok := range []bool{w.Viewsheds.Has(id), w.CombatStats.Has(id), w.Names.Has(id), w.BlocksTiles.Has(id)} {
				if !ok {
					t.Errorf("seed %d: monster %v misses a required component", seed, id)
				}
			}
		}
	}
}

func TestSpawner_MonsterNamesAreNumbered(t *testing.T) {
	w, _ := generatedLevel(t, 42)
	for i, id := range w.Monsters.Entities() {
		name := w.NameOf(id)
		if !strings.HasSuffix(name, " #"+strconv.Itoa(i)) {
			t.Errorf("monster %d is named %q", i, name)
		}
	}
}

func TestSpawner_PlayerDoesNotBlock(t *testing.T) {
	w, m := generatedLevel(t, 7)
	id, ok := w.Player()
	if !ok {
		t.Fatal("no player")
	}
	if w.BlocksTiles.Has(id) {
		t.Error("player must not carry BlocksTile")
	}
	pos, _ := w.Positions.Get(id)
	if c := m.Rooms[0].Center(); pos.X != c.X || pos.Y != c.Y {
		t.Errorf("player at %+v, want %v", *pos, c)
	}
	stats, _ := w.CombatStats.Get(id)
	if *stats != (domain.CombatStats{MaxHP: 33, HP: 33, Defence: 1, Power: 4}) {
		t.Errorf("player stats = %+v", *stats)
	}
}

func TestSpawner_Deterministic(t *testing.T) {
	a, _ := generatedLevel(t, 42)
	b, _ := generatedLevel(t, 42)

	ea, eb := a.Entities(), b.Entities()
	if len(ea) != len(eb) {
		t.Fatalf("entity count %d != %d", len(ea), len(eb))
	}
	for i := range ea {
		pa, _ := a.Positions.Get(ea[i])
		pb, _ := b.Positions.Get(eb[i])
		if ea[i] != eb[i] || *pa != *pb || a.NameOf(ea[i]) != b.NameOf(eb[i]) {
			t.Errorf("entity %d differs: %v %+v vs %v %+v", i, ea[i], *pa, eb[i], *pb)
		}
	}
}

func TestSpawnPoints_Unique(t *testing.T) {
	m := domain.NewMap(domain.MapWidth, domain.MapHeight)
	room := domain.NewRect(10, 10, 6, 6)
	points := spawnPoints(m, rng.New(9), room, 20)
	if len(points) != 20 {
		t.Fatalf("got %d points, want 20", len(points))
	}
	seen := make(map[int]bool)
	for _, idx := range points {
		x, y := m.XY(idx)
		if x <= room.X1 || x > room.X2 || y <= room.Y1 || y > room.Y2 {
			t.Errorf("point (%d,%d) outside room interior", x, y)
		}
		if seen[idx] {
			t.Errorf("duplicate point (%d,%d)", x, y)
		}
		seen[idx] = true
	}
	if spawnPoints(m, rng.New(9), room, -2) != nil {
		t.Error("negative count must yield no points")
	}
}

func TestLevelBuilder_Errors(t *testing.T) {
	t.Run("Spawn before map", func(t *testing.T) {
		_, err := NewLevel(domain.NewWorld(), rng.New(1), nil).WithPlayerAt(5, 5).Build()
		if !errors.Is(err, ErrNoMap) {
			t.Errorf("error = %v, want ErrNoMap", err)
		}
	})

	t.Run("Unknown monster", func(t *testing.T) {
		_, err := NewLevel(domain.NewWorld(), rng.New(1), nil).
			WithMap(domain.NewMap(20, 20)).
			WithFloor(1, 1, 18, 18).
			WithPlayerAt(5, 5).
			WithMonster("Dragon", 6, 5).
			Build()
		if !errors.Is(err, ErrInvalidTemplate) {
			t.Errorf("error = %v, want ErrInvalidTemplate", err)
		}
	})

	t.Run("No player", func(t *testing.T) {
		_, err := NewLevel(domain.NewWorld(), rng.New(1), nil).WithMap(domain.NewMap(20, 20)).Build()
		if err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("Handmade level", func(t *testing.T) {
		w := domain.NewWorld()
		id, err := NewLevel(w, rng.New(1), nil).
			WithMap(domain.NewMap(20, 20)).
			WithFloor(1, 1, 18, 18).
			WithWall(7, 5).
			WithPlayerAt(5, 5).
			WithMonster("Orc", 6, 5).
			WithItem("Health Potion", 5, 5).
			Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if !w.IsPlayer(id) || w.Monsters.Len() != 1 || w.Potions.Len() != 1 {
			t.Error("level content mismatch")
		}
		if orc := w.Monsters.Entities()[0]; w.NameOf(orc) != "Orc #0" {
			t.Errorf("orc name = %q", w.NameOf(orc))
		}
		if !w.Map().Blocked[w.Map().Idx(7, 5)] {
			t.Error("wall must be blocked")
		}
	})
}
