package domain

import "github.com/rpruizc/rustoguelike/internal/core/types"

// EntityAllocator выдаёт и освобождает идентификаторы сущностей.
//
// Слоты переиспользуются через free-list; каждое освобождение повышает
// поколение слота, поэтому устаревший идентификатор перестаёт проходить
// проверку Alive, а операции с ним становятся no-op.
type EntityAllocator struct {
	generations []uint32 // поколение каждого слота
	freeIndices []uint32 // индексы освобождённых слотов
}

func NewEntityAllocator() *EntityAllocator {
	return &EntityAllocator{}
}

// Alloc выдаёт живой идентификатор за амортизированное O(1).
func (a *EntityAllocator) Alloc() types.EntityID {
	if n := len(a.freeIndices); n > 0 {
		idx := a.freeIndices[n-1]
		a.freeIndices = a.freeIndices[:n-1]
		return types.PackEntityID(a.generations[idx], idx)
	}

	idx := uint32(len(a.generations))
	a.generations = append(a.generations, 1) // поколение 0 зарезервировано под nil
	return types.PackEntityID(1, idx)
}

// Free освобождает слот идентификатора.
// Возвращает false для nil, чужих и устаревших идентификаторов.
func (a *EntityAllocator) Free(id types.EntityID) bool {
	if !a.Alive(id) {
		return false
	}

	idx := id.Index()
	a.generations[idx]++
	a.freeIndices = append(a.freeIndices, idx)
	return true
}

// Alive проверяет, что идентификатор указывает на живой слот.
func (a *EntityAllocator) Alive(id types.EntityID) bool {
	if id.IsNil() {
		return false
	}

	idx := id.Index()
	return idx < uint32(len(a.generations)) && a.generations[idx] == id.Generation()
}

// Len возвращает количество живых сущностей.
func (a *EntityAllocator) Len() int {
	return len(a.generations) - len(a.freeIndices)
}
