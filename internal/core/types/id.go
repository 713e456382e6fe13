package types

import (
	"fmt"

	"github.com/Boxfort/rustlike/internal/core/types/enums"
)

// EntityID — 64-битный идентификатор сущности.
//
// EntityID является value-type и предназначен для дешёвого копирования
// и сравнения. Сам по себе он ничего не хранит: все данные сущности
// лежат в хранилищах компонентов, ключом которых служит EntityID.
//
// Формат битов (от старших к младшим):
//
//	[ Reserved (8) | Kind (8) | Generation (16) | Index (32) ]
//
// Где:
//   - Kind — вид сущности (Player, Monster, Item)
//   - Generation — версия слота сущности (защита от устаревших ссылок)
//   - Index — индекс слота в хранилище, начиная с 1
//
// Порядок итерации по сущностям определяется Index, поэтому он
// стабилен при одинаковом сиде.
type EntityID uint64

// NilEntityID — нулевой идентификатор сущности.
//
// Индексы выдаются начиная с 1, поэтому NilEntityID никогда не
// совпадает с живой сущностью.
const NilEntityID EntityID = 0

// Конфигурация битов EntityID.
const (
	// bitsIndex — количество бит под индекс слота.
	bitsIndex = 32

	// bitsGen — количество бит для поколения слота.
	// Поколение увеличивается при каждом переиспользовании слота.
	bitsGen = 16

	// bitsKind — количество бит для вида сущности.
	bitsKind = 8

	// Сдвиги битов
	shiftGen  = bitsIndex
	shiftKind = bitsIndex + bitsGen

	// Маски для извлечения значений
	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID собирает EntityID из составных частей.
//
// Функция не выполняет проверок диапазонов значений: лишние старшие
// биты каждого поля отбрасываются маской.
func PackEntityID(kind enums.EntityKind, gen uint16, index uint32) EntityID {
	return EntityID(
		(uint64(uint8(kind)&maskKind) << shiftKind) |
			(uint64(gen) << shiftGen) |
			uint64(index),
	)
}

// Index возвращает индекс слота сущности.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота сущности.
//
// Используется для обнаружения устаревших ссылок на удалённые сущности.
func (id EntityID) Generation() uint16 {
	return uint16((id >> shiftGen) & maskGen)
}

// Kind возвращает вид сущности.
func (id EntityID) Kind() enums.EntityKind {
	return enums.EntityKind((id >> shiftKind) & maskKind)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// Less задаёт порядок итерации: сначала по индексу, затем по поколению.
func (id EntityID) Less(other EntityID) bool {
	if id.Index() != other.Index() {
		return id.Index() < other.Index()
	}
	return id.Generation() < other.Generation()
}

// String возвращает человекочитаемое строковое представление EntityID.
//
// Предназначено для логирования и отладки.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf(
		"[kind=%s gen=%d idx=%d]",
		id.Kind(),
		id.Generation(),
		id.Index(),
	)
}
