package storage

import (
	"errors"

	"github.com/Boxfort/rustlike/internal/domain"
)

// ErrBadKeyLog возвращается, если файл не является записью ввода.
var ErrBadKeyLog = errors.New("bad key log")

// KeyRecord - клавиша, нажатая на тике Tick
type KeyRecord struct {
	Tick int
	Key  domain.VirtualKey
}

// KeyLog - запись партии: сид и все нажатия. Тики без нажатий не пишутся,
// при воспроизведении им соответствует KeyNone.
type KeyLog struct {
	Seed      int64
	Timestamp int64
	Records   []KeyRecord
}

// Record добавляет нажатие. KeyNone пропускается.
func (l *KeyLog) Record(tick int, key domain.VirtualKey) {
	if key == domain.KeyNone {
		return
	}
	l.Records = append(l.Records, KeyRecord{Tick: tick, Key: key})
}

// LastTick - тик последнего нажатия или -1 для пустой записи
func (l *KeyLog) LastTick() int {
	if len(l.Records) == 0 {
		return -1
	}
	return l.Records[len(l.Records)-1].Tick
}

// Player воспроизводит запись тик за тиком.
type Player struct {
	log  *KeyLog
	next int
}

// NewPlayer начинает воспроизведение с первого тика.
func NewPlayer(l *KeyLog) *Player {
	return &Player{log: l}
}

// KeyAt возвращает клавишу для тика. Тики нужно запрашивать по возрастанию.
func (p *Player) KeyAt(tick int) domain.VirtualKey {
	for p.next < len(p.log.Records) && p.log.Records[p.next].Tick < tick {
		p.next++
	}
	if p.next < len(p.log.Records) && p.log.Records[p.next].Tick == tick {
		key := p.log.Records[p.next].Key
		p.next++
		return key
	}
	return domain.KeyNone
}

// Done - все записанные нажатия выданы
func (p *Player) Done() bool {
	return p.next >= len(p.log.Records)
}
