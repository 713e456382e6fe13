package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

const (
	MagicHeader string = `RLKR` // 4 байта
	Version1    uint32 = 1
)

// KeyLogHeader — точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: тут нет слайсов и строк, только массивы и числа.
type KeyLogHeader struct {
	Magic     [4]byte // 4 байта
	Version   uint32  // 4 байта
	Seed      int64   // 8 байт
	Timestamp int64   // 8 байт
	Count     int32   // 4 байта
}

// RecordHeader — одна запись нажатия.
type RecordHeader struct {
	Tick int32 // 4
	Key  uint8 // 1
}

// Save пишет запись в файл, создавая каталог при необходимости.
func Save(path string, l *KeyLog) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create key log dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create key log: %w", err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	if err := WriteKeyLog(buf, l); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flush key log: %w", err)
	}
	return f.Close()
}

// WriteKeyLog кодирует запись в little-endian.
func WriteKeyLog(w io.Writer, l *KeyLog) error {
	if len(l.Records) > math.MaxInt32 {
		return fmt.Errorf("too many records: %d", len(l.Records))
	}

	header := KeyLogHeader{
		Version:   Version1,
		Seed:      l.Seed,
		Timestamp: l.Timestamp,
		Count:     int32(len(l.Records)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range l.Records {
		if rec.Tick < 0 || rec.Tick > math.MaxInt32 {
			return fmt.Errorf("record %d: tick %d out of range", i, rec.Tick)
		}
		rh := RecordHeader{
			Tick: int32(rec.Tick),
			Key:  uint8(rec.Key),
		}
		if err := binary.Write(w, binary.LittleEndian, &rh); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return nil
}
