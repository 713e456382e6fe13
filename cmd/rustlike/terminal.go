package main

import (
	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/gdamore/tcell/v2"
)

// keyBuffer - сколько нажатий ждёт симуляцию, прежде чем лишние отбрасываются
const keyBuffer = 16

// Terminal реализует engine.Console и engine.Input поверх tcell.
type Terminal struct {
	screen tcell.Screen
	keys   chan domain.VirtualKey
	quit   chan struct{}
}

func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		keys:   make(chan domain.VirtualKey, keyBuffer),
		quit:   make(chan struct{}),
	}
	go t.pollEvents()
	return t, nil
}

// pollEvents читает события tcell в своей горутине.
// Симуляция забирает нажатия через Poll не чаще одного за тик.
func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'Q') {
				close(t.quit)
				return
			}
			key := translateKey(ev.Key(), ev.Rune())
			if key == domain.KeyNone {
				continue
			}
			select {
			case t.keys <- key:
			default:
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Quit закрывается, когда игрок просит выйти (Ctrl+C или Shift+Q).
func (t *Terminal) Quit() <-chan struct{} {
	return t.quit
}

// Poll не блокирует: KeyNone, если нажатий нет.
func (t *Terminal) Poll() domain.VirtualKey {
	select {
	case k := <-t.keys:
		return k
	default:
		return domain.KeyNone
	}
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Set(x, y int, fg, bg types.RGB, ch rune) {
	t.screen.SetContent(x, y, ch, nil, style(fg, bg))
}

func (t *Terminal) Print(x, y int, fg, bg types.RGB, s string) {
	st := style(fg, bg)
	for i, ch := range []rune(s) {
		t.screen.SetContent(x+i, y, ch, nil, st)
	}
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Show выводит нарисованный кадр.
func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

func style(fg, bg types.RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R()), int32(fg.G()), int32(fg.B()))).
		Background(tcell.NewRGBColor(int32(bg.R()), int32(bg.G()), int32(bg.B())))
}

var specialKeys = map[tcell.Key]domain.VirtualKey{
	tcell.KeyLeft:   domain.KeyLeft,
	tcell.KeyRight:  domain.KeyRight,
	tcell.KeyUp:     domain.KeyUp,
	tcell.KeyDown:   domain.KeyDown,
	tcell.KeyEscape: domain.KeyEscape,
	tcell.KeyHome:   domain.KeyNumpad7,
	tcell.KeyPgUp:   domain.KeyNumpad9,
	tcell.KeyEnd:    domain.KeyNumpad1,
	tcell.KeyPgDn:   domain.KeyNumpad3,
}

// Терминал не отличает цифры нумпада от обычных
var digitKeys = map[rune]domain.VirtualKey{
	'1': domain.KeyNumpad1,
	'2': domain.KeyNumpad2,
	'3': domain.KeyNumpad3,
	'4': domain.KeyNumpad4,
	'6': domain.KeyNumpad6,
	'7': domain.KeyNumpad7,
	'8': domain.KeyNumpad8,
	'9': domain.KeyNumpad9,
}

func translateKey(key tcell.Key, r rune) domain.VirtualKey {
	if key != tcell.KeyRune {
		return specialKeys[key]
	}
	if k, ok := digitKeys[r]; ok {
		return k
	}
	if r >= 'a' && r <= 'z' {
		k, _ := domain.LetterKey(int(r - 'a'))
		return k
	}
	return domain.KeyNone
}
