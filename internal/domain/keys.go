package domain

import "strings"

// VirtualKey - клавиша, прочитанная фронтендом за тик.
// KeyNone означает, что за тик ничего не нажато.
type VirtualKey uint8

const (
	KeyNone VirtualKey = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyEscape
	// KeyA..KeyZ идут подряд, чтобы меню могло считать букву как KeyA+i
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

var keyToString = map[VirtualKey]string{
	KeyNone:    "NONE",
	KeyLeft:    "LEFT",
	KeyRight:   "RIGHT",
	KeyUp:      "UP",
	KeyDown:    "DOWN",
	KeyNumpad1: "NUMPAD1",
	KeyNumpad2: "NUMPAD2",
	KeyNumpad3: "NUMPAD3",
	KeyNumpad4: "NUMPAD4",
	KeyNumpad6: "NUMPAD6",
	KeyNumpad7: "NUMPAD7",
	KeyNumpad8: "NUMPAD8",
	KeyNumpad9: "NUMPAD9",
	KeyEscape:  "ESCAPE",
}

var stringToKey = func() map[string]VirtualKey {
	m := make(map[string]VirtualKey, len(keyToString)+26)
	for k, s := range keyToString {
		m[s] = k
	}
	for k := KeyA; k <= KeyZ; k++ {
		m[k.String()] = k
	}
	return m
}()

func (k VirtualKey) String() string {
	if k >= KeyA && k <= KeyZ {
		return string(rune('A' + int(k-KeyA)))
	}
	if val, ok := keyToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseKey разбирает имя клавиши из конфига ("left", "Numpad7", "g").
func ParseKey(s string) (VirtualKey, bool) {
	val, ok := stringToKey[strings.ToUpper(strings.TrimSpace(s))]
	return val, ok
}

// LetterKey возвращает клавишу буквы по номеру (0 -> A). ok=false за пределами алфавита.
func LetterKey(i int) (VirtualKey, bool) {
	if i < 0 || i > int(KeyZ-KeyA) {
		return KeyNone, false
	}
	return KeyA + VirtualKey(i), true
}

// LetterIndex - обратное к LetterKey: -1, если клавиша не буква
func (k VirtualKey) LetterIndex() int {
	if k < KeyA || k > KeyZ {
		return -1
	}
	return int(k - KeyA)
}
