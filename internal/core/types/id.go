package types

import (
	"fmt"
	"strconv"
)

// EntityID — 64-битный идентификатор сущности.
//
// EntityID является value-type и предназначен для дешёвого копирования,
// сериализации и сравнения.
//
// Формат битов (от старших к младшим):
//
//	[ Generation (32) | Index (32) ]
//
// Где:
//   - Generation — версия слота сущности (защита от устаревших ссылок)
//   - Index — индекс слота в аллокаторе
//
// Такой формат позволяет:
//   - быстро адресовать сущности в плотных массивах компонентов
//   - безопасно обнаруживать stale references после переиспользования слота
type EntityID uint64

// NilEntityID — нулевой идентификатор сущности.
//
// Используется как аналог nil для случаев, когда сущность отсутствует
// или ссылка ещё не инициализирована.
const NilEntityID EntityID = 0

// Конфигурация битов EntityID.
//
// Общее количество бит — 64.
const (
	// bitsIndex — количество бит, выделенных под индекс слота.
	// Позволяет адресовать до ~4.29 миллиарда сущностей.
	bitsIndex = 32

	// bitsGen — количество бит для поколения слота.
	// Поколение 0 зарезервировано: живые сущности начинают с поколения 1.
	bitsGen = 32

	// Сдвиги битов
	shiftGen = bitsIndex

	// Маски для извлечения значений
	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
)

// PackEntityID собирает EntityID из составных частей.
//
// Параметры:
//   - gen — поколение слота сущности
//   - index — индекс слота в аллокаторе
//
// Функция не выполняет проверок диапазонов значений и предполагает,
// что входные данные валидны.
func PackEntityID(gen uint32, index uint32) EntityID {
	return EntityID((uint64(gen) << shiftGen) | uint64(index))
}

// Index возвращает индекс слота сущности.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота сущности.
//
// Используется для обнаружения устаревших ссылок на уничтоженные сущности.
func (id EntityID) Generation() uint32 {
	return uint32((id >> shiftGen) & maskGen)
}

// IsNil проверяет, является ли идентификатор нулевым.
//
// Поколение 0 зарезервировано, поэтому любой идентификатор без поколения
// считается отсутствующей сущностью.
func (id EntityID) IsNil() bool {
	return id.Generation() == 0
}

// String возвращает человекочитаемое строковое представление EntityID.
//
// Предназначено для логирования и отладки.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf("[gen=%d idx=%d]", id.Generation(), id.Index())
}

// MarshalJSON сериализует EntityID в JSON как строку.
//
// Это необходимо для предотвращения потери точности при работе с
// JavaScript и другими средами, не поддерживающими uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON десериализует EntityID из JSON.
//
// Поддерживаются как строковое, так и числовое представление.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*id = EntityID(v)
	return nil
}
