package engine

import (
	"strings"
	"testing"

	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/Boxfort/rustlike/pkg/dungeon"
	"github.com/Boxfort/rustlike/pkg/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cell struct {
	fg, bg types.RGB
	ch     rune
}

// bufferConsole - консоль в памяти для проверки кадра
type bufferConsole struct {
	w, h  int
	cells map[types.Point]cell
}

func newBufferConsole() *bufferConsole {
	return &bufferConsole{w: 80, h: 50, cells: make(map[types.Point]cell)}
}

func (c *bufferConsole) Clear() {
	c.cells = make(map[types.Point]cell)
}

func (c *bufferConsole) Set(x, y int, fg, bg types.RGB, ch rune) {
	c.cells[types.Pt(x, y)] = cell{fg: fg, bg: bg, ch: ch}
}

func (c *bufferConsole) Print(x, y int, fg, bg types.RGB, s string) {
	for i, ch := range []rune(s) {
		c.Set(x+i, y, fg, bg, ch)
	}
}

func (c *bufferConsole) Size() (int, int) {
	return c.w, c.h
}

func (c *bufferConsole) at(x, y int) cell {
	return c.cells[types.Pt(x, y)]
}

// row читает n символов строки начиная с x
func (c *bufferConsole) row(x, y, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		ch := c.at(x+i, y).ch
		if ch == 0 {
			ch = ' '
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestDraw_MapAndPanel(t *testing.T) {
	g, player := newArena(t, func(b *dungeon.LevelBuilder) {
		b.WithMonster("Orc", 8, 5)
	})
	g.World.Logf("Welcome")
	stats, _ := g.World.CombatStats.Get(player)
	stats.HP = 20

	c := newBufferConsole()
	Draw(g, c)

	assert.Equal(t, '@', c.at(5, 5).ch)
	assert.Equal(t, types.Yellow, c.at(5, 5).fg)
	assert.Equal(t, 'o', c.at(8, 5).ch)
	assert.Equal(t, '.', c.at(6, 5).ch)
	assert.Equal(t, floorColor, c.at(6, 5).fg)
	assert.Equal(t, '#', c.at(0, 5).ch)
	assert.Equal(t, wallColor, c.at(0, 5).fg)

	assert.Equal(t, " HP: 20 / 33 ", c.row(hpLabelX, panelY, 13))
	assert.Equal(t, types.Yellow, c.at(hpLabelX+1, panelY).fg)
	assert.Equal(t, '▓', c.at(hpBarX, panelY).ch)
	assert.Equal(t, '░', c.at(hpBarX+hpBarWidth-1, panelY).ch)
	assert.Equal(t, "Welcome", c.row(logX, panelY+1, 7))
	assert.Equal(t, '┌', c.at(panelX, panelY).ch)
}

func TestDraw_RememberedTilesAreGrey(t *testing.T) {
	g, _ := newArena(t, nil)
	m := g.World.Map()
	idx := m.Idx(6, 5)
	m.Visible[idx] = false

	c := newBufferConsole()
	Draw(g, c)

	assert.Equal(t, floorColor.Greyscale(), c.at(6, 5).fg)
}

func TestDraw_HiddenTilesAreBlank(t *testing.T) {
	g, _ := newArena(t, nil)
	m := g.World.Map()
	for i := range m.Revealed {
		m.Revealed[i] = false
		m.Visible[i] = false
	}

	c := newBufferConsole()
	Draw(g, c)

	assert.Zero(t, c.at(6, 5).ch)
	assert.Zero(t, c.at(5, 5).ch, "entities on unseen tiles are not drawn")
}

func TestDraw_LogNewestFirst(t *testing.T) {
	g, _ := newArena(t, nil)
	for _, s := range []string{"one", "two", "three", "four", "five", "six"} {
		g.World.Logf("%s", s)
	}

	c := newBufferConsole()
	Draw(g, c)

	assert.Equal(t, "six", c.row(logX, panelY+1, 3))
	assert.Equal(t, "two", c.row(logX, panelY+5, 3))
}

func TestDraw_ItemMenu(t *testing.T) {
	tests := []struct {
		name  string
		state domain.RunState
		title string
	}{
		{"Inventory", domain.StateShowInventory, "Inventory"},
		{"Drop", domain.StateShowDropItem, "Drop which item?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, player := newArena(t, func(b *dungeon.LevelBuilder) {
				b.WithItem("Health Potion", 2, 2)
			})
			potion := g.World.Potions.Entities()[0]
			g.World.Positions.Remove(potion)
			g.World.InBackpacks.Insert(potion, domain.InBackpack{Owner: player})
			*g.World.RunState() = tt.state

			c := newBufferConsole()
			Draw(g, c)

			y := 25
			assert.Equal(t, tt.title, c.row(menuX+3, y-2, len(tt.title)))
			assert.Equal(t, "(a) Health Potion", c.row(menuX+2, y, 17))
			assert.Equal(t, "ESCAPE to cancel", c.row(menuX+3, y+2, 16))
		})
	}
}

func TestDraw_ExamineTooltip(t *testing.T) {
	g, _ := newArena(t, func(b *dungeon.LevelBuilder) {
		b.WithMonster("Goblin", 7, 5)
	})
	require.NoError(t, g.Tick(domain.KeyX))
	require.NoError(t, g.Tick(domain.KeyRight))
	require.NoError(t, g.Tick(domain.KeyRight))
	require.Equal(t, domain.Cursor{X: 7, Y: 5}, *g.World.Cursor())

	c := newBufferConsole()
	Draw(g, c)

	assert.Equal(t, 'X', c.at(7, 5).ch)
	assert.Equal(t, "<- Goblin #0", c.row(8, 5, 12))
}

func TestDrawTooltip_Placement(t *testing.T) {
	tests := []struct {
		name    string
		playerX int
		goblinX int
		rowX    int
		want    string
	}{
		{"Left of the cursor", 20, 22, 10, "Goblin #0 ->X"},
		{"Right half flips", 45, 47, 47, "X<- Goblin #0"},
		{"No room on the left", 5, 7, 7, "X<- Goblin #0"},
		{"Hidden tile shows no names", 20, 35, 23, "            X  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := domain.NewWorld()
			_, err := dungeon.NewLevel(w, rng.New(1), nil).
				WithMap(domain.NewMap(60, 12)).
				WithFloor(1, 1, 58, 10).
				WithPlayerAt(tt.playerX, 5).
				WithMonster("Goblin", tt.goblinX, 5).
				Build()
			require.NoError(t, err)
			g, err := NewGameWithWorld(w, NewConfig())
			require.NoError(t, err)
			require.NoError(t, g.Tick(domain.KeyNone))

			cur := w.Cursor()
			cur.X, cur.Y = tt.goblinX, 5
			c := newBufferConsole()
			drawTooltip(w, c)

			assert.Equal(t, tt.want, c.row(tt.rowX, 5, len(tt.want)))
		})
	}
}

func TestDrawBar(t *testing.T) {
	tests := []struct {
		name       string
		value, max int
		wantFilled int
	}{
		{"Full", 10, 10, 10},
		{"Half", 5, 10, 5},
		{"Negative", -3, 10, 0},
		{"Zero max", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newBufferConsole()
			drawBar(c, 0, 0, 10, tt.value, tt.max, types.Red, types.Black)
			assert.Equal(t, strings.Repeat("▓", tt.wantFilled)+strings.Repeat("░", 10-tt.wantFilled), c.row(0, 0, 10))
		})
	}
}
