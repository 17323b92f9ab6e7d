package types

import (
	"fmt"
	"strconv"

	"rogue-engine/internal/core/types/enums"
)

// EntityID - 64-битный идентификатор сущности внутри одной сессии.
//
// Формат битов (от старших к младшим):
//
//	[ reserved (24) | Kind (8) | Index (32) ]
//
// Index - номер слота в арене сущностей сессии. Слоты не переиспользуются,
// поэтому ID, однажды выданный, никогда не указывает на другую сущность.
type EntityID uint64

// NilEntityID - отсутствие сущности.
const NilEntityID EntityID = 0

const (
	bitsIndex = 32
	bitsKind  = 8

	shiftKind = bitsIndex

	maskIndex = (1 << bitsIndex) - 1
	maskKind  = (1 << bitsKind) - 1
)

// NewEntityID упаковывает вид сущности и индекс слота.
// Индекс 0 зарезервирован под NilEntityID, арена начинает с 1.
func NewEntityID(kind enums.EntityKind, index uint32) EntityID {
	return EntityID(uint64(kind)&maskKind)<<shiftKind | EntityID(uint64(index)&maskIndex)
}

func (id EntityID) Kind() enums.EntityKind {
	return enums.EntityKind((id >> shiftKind) & maskKind)
}

func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// MarshalJSON пишет ID строкой: JS теряет точность на больших uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON принимает как строку, так и число.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	val, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("parse entity id %q: %w", string(data), err)
	}
	*id = EntityID(val)
	return nil
}

// String для логов: [MONSTER:12]
func (id EntityID) String() string {
	if id.IsNil() {
		return "[nil]"
	}
	return fmt.Sprintf("[%s:%d]", id.Kind(), id.Index())
}
