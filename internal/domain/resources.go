package domain

import "github.com/Boxfort/rustlike/internal/core/types"

// PlayerEntity - ресурс с идентификатором игрока
type PlayerEntity struct {
	ID types.EntityID
}

// PlayerPosition - копия Position игрока, обновляется при каждом шаге
type PlayerPosition struct {
	X int
	Y int
}

func (p PlayerPosition) Point() types.Point {
	return types.Point{X: p.X, Y: p.Y}
}

// Cursor - курсор режима осмотра, независим от позиции игрока
type Cursor struct {
	X int
	Y int
}

// GameLog - сообщения для игрока в порядке появления
type GameLog struct {
	Entries []string
}

// Append добавляет строку в конец журнала.
func (l *GameLog) Append(msg string) {
	l.Entries = append(l.Entries, msg)
}

// Last возвращает до n последних записей, новые первыми.
func (l *GameLog) Last(n int) []string {
	if n > len(l.Entries) {
		n = len(l.Entries)
	}
	out := make([]string, 0, max(n, 0))
	for i := len(l.Entries) - 1; i >= len(l.Entries)-n; i-- {
		out = append(out, l.Entries[i])
	}
	return out
}

// Len - количество записей
func (l *GameLog) Len() int {
	return len(l.Entries)
}
