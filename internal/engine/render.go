package engine

import (
	"fmt"
	"sort"

	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
)

// Console - поверхность, на которую рисуется кадр (терминал или тестовый буфер).
type Console interface {
	Clear()
	Set(x, y int, fg, bg types.RGB, ch rune)
	Print(x, y int, fg, bg types.RGB, s string)
	Size() (int, int)
}

// Input - неблокирующий источник клавиш. KeyNone, если ничего не нажато.
type Input interface {
	Poll() domain.VirtualKey
}

// Раскладка экрана
const (
	panelX      = 0
	panelY      = domain.MapHeight
	panelWidth  = 79
	panelHeight = 6

	hpLabelX    = 12
	hpBarX      = 28
	hpBarWidth  = 51
	logX        = 2
	logLines    = 5
	menuX       = 15
	menuWidth   = 31
	tooltipFlip = 40
)

var (
	floorColor = types.RGBFromFloat(0, 0.5, 0.5)
	wallColor  = types.Green
)

// Draw рисует кадр: карту, сущности, панель и меню текущего состояния.
func Draw(g *Game, c Console) {
	c.Clear()
	w := g.World

	drawMap(w.Map(), c)
	drawEntities(w, c)
	drawPanel(w, c)

	switch g.State() {
	case domain.StateExamining:
		drawTooltip(w, c)
	case domain.StateShowInventory:
		if player, ok := w.Player(); ok {
			drawItemMenu(w, c, player, "Inventory")
		}
	case domain.StateShowDropItem:
		if player, ok := w.Player(); ok {
			drawItemMenu(w, c, player, "Drop which item?")
		}
	}
}

func drawMap(m *domain.Map, c Console) {
	for idx, tile := range m.Tiles {
		if !m.Revealed[idx] {
			continue
		}
		ch, fg := '.', floorColor
		if tile == domain.TileWall {
			ch, fg = '#', wallColor
		}
		if !m.Visible[idx] {
			fg = fg.Greyscale()
		}
		x, y := m.XY(idx)
		c.Set(x, y, fg, types.Black, ch)
	}
}

func drawEntities(w *domain.World, c Console) {
	type sprite struct {
		pos domain.Position
		r   domain.Renderable
	}

	m := w.Map()
	var sprites []sprite
	for _, id := range w.Renderables.Entities() {
		pos, ok := w.Positions.Get(id)
		if !ok || !m.Contains(pos.X, pos.Y) || !m.Visible[m.Idx(pos.X, pos.Y)] {
			continue
		}
		r, _ := w.Renderables.Get(id)
		sprites = append(sprites, sprite{pos: *pos, r: *r})
	}

	// Стабильная сортировка: при равном слое порядок по id
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].r.Order < sprites[j].r.Order
	})
	for _, s := range sprites {
		c.Set(s.pos.X, s.pos.Y, s.r.FG, s.r.BG, rune(s.r.Glyph))
	}
}

func drawPanel(w *domain.World, c Console) {
	drawBox(c, panelX, panelY, panelWidth, panelHeight, types.White, types.Black)

	if player, ok := w.Player(); ok {
		if stats, ok := w.CombatStats.Get(player); ok {
			c.Print(hpLabelX, panelY, types.Yellow, types.Black, fmt.Sprintf(" HP: %d / %d ", stats.HP, stats.MaxHP))
			drawBar(c, hpBarX, panelY, hpBarWidth, stats.HP, stats.MaxHP, types.Red, types.Black)
		}
	}

	y := panelY + 1
	for _, line := range w.Log().Last(logLines) {
		if y >= panelY+panelHeight {
			break
		}
		c.Print(logX, y, types.White, types.Black, line)
		y++
	}
}

// drawTooltip рисует курсор осмотра и имена сущностей под ним.
// Подсказка стоит слева от курсора со стрелкой "->" и уходит вправо
// ("<-"), когда курсор в правой половине экрана или слева не хватает места.
func drawTooltip(w *domain.World, c Console) {
	cur := w.Cursor()
	c.Set(cur.X, cur.Y, types.Black, types.Magenta, 'X')

	m := w.Map()
	if !m.Contains(cur.X, cur.Y) || !m.Visible[m.Idx(cur.X, cur.Y)] {
		return
	}

	var names []string
	longest := 0
	for _, id := range w.Names.Entities() {
		if pos, ok := w.Positions.Get(id); ok && pos.X == cur.X && pos.Y == cur.Y {
			name := w.NameOf(id)
			names = append(names, name)
			longest = max(longest, len(name))
		}
	}

	// имя, пробел и стрелка
	width := longest + 3
	left := cur.X <= tooltipFlip && cur.X-width >= 0
	for i, name := range names {
		y := cur.Y + i
		if left {
			c.Print(cur.X-width, y, types.White, types.DarkGray, name+" ")
			c.Print(cur.X-2, y, types.White, types.DarkGray, "->")
		} else {
			c.Print(cur.X+1, y, types.White, types.DarkGray, "<-")
			c.Print(cur.X+3, y, types.White, types.DarkGray, " "+name)
		}
	}
}

func drawItemMenu(w *domain.World, c Console, owner types.EntityID, title string) {
	items := InventoryItems(w, owner)
	y := 25 - len(items)/2
	height := len(items) + 3

	drawBox(c, menuX, y-2, menuWidth, height, types.White, types.Black)
	c.Print(menuX+3, y-2, types.Yellow, types.Black, title)
	c.Print(menuX+3, y+len(items)+1, types.Yellow, types.Black, "ESCAPE to cancel")

	for i, id := range items {
		c.Print(menuX+2, y, types.White, types.Black, fmt.Sprintf("(%c) %s", 'a'+rune(i), w.NameOf(id)))
		y++
	}
}

// drawBox рисует рамку шириной w+1 и высотой h+1, как это делает консоль игры.
func drawBox(c Console, x, y, w, h int, fg, bg types.RGB) {
	for i := x; i <= x+w; i++ {
		for j := y; j <= y+h; j++ {
			c.Set(i, j, fg, bg, ' ')
		}
	}
	for i := x + 1; i < x+w; i++ {
		c.Set(i, y, fg, bg, '─')
		c.Set(i, y+h, fg, bg, '─')
	}
	for j := y + 1; j < y+h; j++ {
		c.Set(x, j, fg, bg, '│')
		c.Set(x+w, j, fg, bg, '│')
	}
	c.Set(x, y, fg, bg, '┌')
	c.Set(x+w, y, fg, bg, '┐')
	c.Set(x, y+h, fg, bg, '└')
	c.Set(x+w, y+h, fg, bg, '┘')
}

// drawBar рисует горизонтальную полосу value/max.
func drawBar(c Console, x, y, width, value, maxValue int, fg, bg types.RGB) {
	filled := 0
	if maxValue > 0 {
		filled = min(width, max(0, value*width/maxValue))
	}
	for i := 0; i < width; i++ {
		ch := '░'
		if i < filled {
			ch = '▓'
		}
		c.Set(x+i, y, fg, bg, ch)
	}
}
