package engine

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
)

// EntitySnapshot - компоненты одной сущности. Отсутствующий компонент - nil.
type EntitySnapshot struct {
	ID         types.EntityID      `json:"id"`
	Name       string              `json:"name,omitempty"`
	Player     bool                `json:"player,omitempty"`
	Item       bool                `json:"item,omitempty"`
	BlocksTile bool                `json:"blocks_tile,omitempty"`
	Position   *domain.Position    `json:"position,omitempty"`
	Renderable *domain.Renderable  `json:"renderable,omitempty"`
	Stats      *domain.CombatStats `json:"stats,omitempty"`
	Monster    *domain.Monster     `json:"monster,omitempty"`
	Potion     *domain.Potion      `json:"potion,omitempty"`
	InBackpack *domain.InBackpack  `json:"in_backpack,omitempty"`
	Visible    []types.Point       `json:"visible,omitempty"`
}

// Snapshot - срез состояния игры, не зависящий от порядка обхода map.
// Два прогона с одним сидом и одинаковым вводом дают равные снимки.
type Snapshot struct {
	Tick     int              `json:"tick"`
	State    domain.RunState  `json:"state"`
	Entities []EntitySnapshot `json:"entities"`
	Revealed []bool           `json:"revealed"`
	Blocked  []bool           `json:"blocked"`
	Log      []string         `json:"log"`
}

// TakeSnapshot копирует состояние игры.
func (g *Game) TakeSnapshot() Snapshot {
	w := g.World
	m := w.Map()

	snap := Snapshot{
		Tick:     g.tick,
		State:    g.State(),
		Revealed: append([]bool(nil), m.Revealed...),
		Blocked:  append([]bool(nil), m.Blocked...),
		Log:      w.Log().Last(w.Log().Len()),
	}

	for _, id := range w.Entities() {
		e := EntitySnapshot{
			ID:         id,
			Player:     w.Players.Has(id),
			Item:       w.Items.Has(id),
			BlocksTile: w.BlocksTiles.Has(id),
			Position:   copyOf[domain.Position](w.Positions.Get(id)),
			Renderable: copyOf[domain.Renderable](w.Renderables.Get(id)),
			Stats:      copyOf[domain.CombatStats](w.CombatStats.Get(id)),
			Monster:    copyOf[domain.Monster](w.Monsters.Get(id)),
			Potion:     copyOf[domain.Potion](w.Potions.Get(id)),
			InBackpack: copyOf[domain.InBackpack](w.InBackpacks.Get(id)),
		}
		if n, ok := w.Names.Get(id); ok {
			e.Name = n.Name
		}
		if vs, ok := w.Viewsheds.Get(id); ok {
			e.Visible = sortedPoints(vs.VisibleTiles)
		}
		snap.Entities = append(snap.Entities, e)
	}
	return snap
}

// Digest - FNV-64a от JSON снимка. Используется для сверки повторов.
func (s Snapshot) Digest() (uint64, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return 0, fmt.Errorf("encode snapshot: %w", err)
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64(), nil
}

func copyOf[T any](v *T, ok bool) *T {
	if !ok {
		return nil
	}
	c := *v
	return &c
}

func sortedPoints(set map[types.Point]bool) []types.Point {
	pts := make([]types.Point, 0, len(set))
	for p, ok := range set {
		if ok {
			pts = append(pts, p)
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}
