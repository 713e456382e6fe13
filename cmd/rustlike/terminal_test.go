package main

import (
	"testing"

	"github.com/Boxfort/rustlike/internal/domain"
	"github.com/gdamore/tcell/v2"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want domain.VirtualKey
	}{
		{"Arrow", tcell.KeyLeft, 0, domain.KeyLeft},
		{"Escape", tcell.KeyEscape, 0, domain.KeyEscape},
		{"Home is numpad 7", tcell.KeyHome, 0, domain.KeyNumpad7},
		{"Digit", tcell.KeyRune, '9', domain.KeyNumpad9},
		{"Digit 5 is unbound", tcell.KeyRune, '5', domain.KeyNone},
		{"Letter", tcell.KeyRune, 'g', domain.KeyG},
		{"Upper case is ignored", tcell.KeyRune, 'G', domain.KeyNone},
		{"Unmapped special key", tcell.KeyF1, 0, domain.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateKey(tt.key, tt.r); got != tt.want {
				t.Errorf("translateKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminal_SimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 50)

	term := &Terminal{screen: screen, keys: make(chan domain.VirtualKey, keyBuffer), quit: make(chan struct{})}
	term.Print(2, 3, 0xFFFF00, 0x000000, "HP")
	term.Show()

	if w, h := term.Size(); w != 80 || h != 50 {
		t.Errorf("Size() = %dx%d, want 80x50", w, h)
	}
	if k := term.Poll(); k != domain.KeyNone {
		t.Errorf("Poll() = %v on an empty queue", k)
	}

	term.keys <- domain.KeyG
	if k := term.Poll(); k != domain.KeyG {
		t.Errorf("Poll() = %v, want G", k)
	}
}
