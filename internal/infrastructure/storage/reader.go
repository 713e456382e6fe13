package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/Boxfort/rustlike/internal/domain"
)

// Load читает запись из файла.
func Load(path string) (*KeyLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open key log: %w", err)
	}
	defer f.Close()

	return ReadKeyLog(bufio.NewReader(f))
}

// ReadKeyLog декодирует запись, проверяя заголовок и порядок тиков.
func ReadKeyLog(r io.Reader) (*KeyLog, error) {
	// 1. Читаем заголовок целиком
	var header KeyLogHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic %q: %w", header.Magic[:], ErrBadKeyLog)
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d): %w", header.Version, Version1, ErrBadKeyLog)
	}
	if header.Count < 0 {
		return nil, fmt.Errorf("negative record count %d: %w", header.Count, ErrBadKeyLog)
	}

	l := &KeyLog{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Records:   make([]KeyRecord, 0, min(int(header.Count), 1<<16)),
	}

	// 2. Читаем нажатия
	prev := -1
	for i := 0; i < int(header.Count); i++ {
		var rh RecordHeader
		if err := binary.Read(r, binary.LittleEndian, &rh); err != nil {
			return nil, fmt.Errorf("failed to read record %d: %w", i, err)
		}

		tick := int(rh.Tick)
		if tick <= prev {
			return nil, fmt.Errorf("record %d: tick %d after %d: %w", i, tick, prev, ErrBadKeyLog)
		}
		prev = tick

		l.Records = append(l.Records, KeyRecord{Tick: tick, Key: domain.VirtualKey(rh.Key)})
	}

	return l, nil
}
