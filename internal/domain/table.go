package domain

import "github.com/rpruizc/rustoguelike/internal/core/types"

type tableEntry[T any] struct {
	id    types.EntityID
	value T
}

// Table — плотное хранилище компонентов одного типа.
//
// Записи лежат в одном срезе в порядке вставки; удаление сдвигает хвост,
// поэтому порядок обхода детерминирован и совпадает с порядком вставки.
// Детерминизм обхода важен: от него зависит порядок ходов NPC.
type Table[T any] struct {
	indexOf map[types.EntityID]int
	entries []tableEntry[T]
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{indexOf: make(map[types.EntityID]int)}
}

// Insert добавляет компонент или заменяет существующий.
func (t *Table[T]) Insert(id types.EntityID, value T) {
	if id.IsNil() {
		return
	}

	if i, ok := t.indexOf[id]; ok {
		t.entries[i].value = value
		return
	}

	t.indexOf[id] = len(t.entries)
	t.entries = append(t.entries, tableEntry[T]{id: id, value: value})
}

// Get возвращает копию компонента.
func (t *Table[T]) Get(id types.EntityID) (T, bool) {
	if i, ok := t.indexOf[id]; ok {
		return t.entries[i].value, true
	}

	var zero T
	return zero, false
}

// GetMut возвращает указатель на компонент для изменения на месте.
// Указатель действителен только до следующей мутации таблицы.
func (t *Table[T]) GetMut(id types.EntityID) (*T, bool) {
	if i, ok := t.indexOf[id]; ok {
		return &t.entries[i].value, true
	}
	return nil, false
}

// Contains проверяет наличие компонента у сущности.
func (t *Table[T]) Contains(id types.EntityID) bool {
	_, ok := t.indexOf[id]
	return ok
}

// Remove удаляет компонент сущности.
// Порядок остальных записей сохраняется.
func (t *Table[T]) Remove(id types.EntityID) bool {
	i, ok := t.indexOf[id]
	if !ok {
		return false
	}

	copy(t.entries[i:], t.entries[i+1:])
	t.entries[len(t.entries)-1] = tableEntry[T]{}
	t.entries = t.entries[:len(t.entries)-1]
	delete(t.indexOf, id)

	// Индексы сдвинутого хвоста устарели
	for j := i; j < len(t.entries); j++ {
		t.indexOf[t.entries[j].id] = j
	}
	return true
}

// Len возвращает количество компонентов в таблице.
func (t *Table[T]) Len() int {
	return len(t.entries)
}

// ForEach обходит компоненты в порядке вставки.
// Мутировать таблицу внутри обхода нельзя.
func (t *Table[T]) ForEach(fn func(id types.EntityID, value *T)) {
	for i := range t.entries {
		fn(t.entries[i].id, &t.entries[i].value)
	}
}

// IDs возвращает срез сущностей таблицы в порядке вставки.
// Срез принадлежит вызывающему: его можно фильтровать, не трогая таблицу.
func (t *Table[T]) IDs() []types.EntityID {
	ids := make([]types.EntityID, len(t.entries))
	for i := range t.entries {
		ids[i] = t.entries[i].id
	}
	return ids
}
