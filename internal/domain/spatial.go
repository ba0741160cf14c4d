package domain

import (
	"fmt"

	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
)

// Location — позиция сущности: координата плюс слой.
// Слой LayerNone означает "занимает клетку, но не слот".
type Location struct {
	Coord Coord       `json:"coord"`
	Layer enums.Layer `json:"layer"`
}

// LayerSlots — занятость слоёв одной клетки.
// Пустой слот содержит types.NilEntityID.
type LayerSlots struct {
	Floor     types.EntityID `json:"floor"`
	Feature   types.EntityID `json:"feature"`
	Character types.EntityID `json:"character"`
	Corpse    types.EntityID `json:"corpse"`
}

// Get возвращает занимателя слоя.
func (s LayerSlots) Get(l enums.Layer) types.EntityID {
	switch l {
	case enums.LayerFloor:
		return s.Floor
	case enums.LayerFeature:
		return s.Feature
	case enums.LayerCharacter:
		return s.Character
	case enums.LayerCorpse:
		return s.Corpse
	}
	return types.NilEntityID
}

func (s *LayerSlots) set(l enums.Layer, id types.EntityID) {
	switch l {
	case enums.LayerFloor:
		s.Floor = id
	case enums.LayerFeature:
		s.Feature = id
	case enums.LayerCharacter:
		s.Character = id
	case enums.LayerCorpse:
		s.Corpse = id
	}
}

// OccupiedError — слот уже занят другой сущностью.
// Вызывающий решает сам: отказаться от хода или вытеснить занимателя.
type OccupiedError struct {
	By types.EntityID
}

func (e *OccupiedError) Error() string {
	return fmt.Sprintf("slot occupied by entity %s", e.By)
}

// SpatialTable — авторитетный индекс занятости клеток.
//
// Держит два согласованных отображения: клетка+слой -> сущность и
// сущность -> позиция. Мутации только через checked-операции Update*,
// поэтому инвариант "не больше одной сущности в слоте, не больше одной
// позиции у сущности" не нарушается.
type SpatialTable struct {
	size      Size
	cells     []LayerSlots
	locations map[types.EntityID]Location
}

func NewSpatialTable(size Size) *SpatialTable {
	return &SpatialTable{
		size:      size,
		cells:     make([]LayerSlots, size.NumCells()),
		locations: make(map[types.EntityID]Location),
	}
}

// Size возвращает размеры сетки.
func (t *SpatialTable) Size() Size {
	return t.size
}

// Update перемещает сущность в новую позицию (или ставит впервые).
//
// Если целевой слот занят другой сущностью, возвращается *OccupiedError
// и состояние не меняется. Перестановка в собственный слот разрешена.
func (t *SpatialTable) Update(id types.EntityID, loc Location) error {
	if id.IsNil() {
		return fmt.Errorf("cannot place nil entity")
	}
	if !t.size.Contains(loc.Coord) {
		return fmt.Errorf("coord (%d,%d) outside grid %dx%d",
			loc.Coord.X, loc.Coord.Y, t.size.Width, t.size.Height)
	}

	if loc.Layer != enums.LayerNone {
		occupant := t.cells[t.size.Index(loc.Coord)].Get(loc.Layer)
		if !occupant.IsNil() && occupant != id {
			return &OccupiedError{By: occupant}
		}
	}

	// Проверки пройдены: снимаем старую привязку и ставим новую
	if old, ok := t.locations[id]; ok && old.Layer != enums.LayerNone {
		t.cells[t.size.Index(old.Coord)].set(old.Layer, types.NilEntityID)
	}
	if loc.Layer != enums.LayerNone {
		t.cells[t.size.Index(loc.Coord)].set(loc.Layer, id)
	}
	t.locations[id] = loc
	return nil
}

// UpdateCoord перемещает сущность на новую клетку, не меняя слой.
func (t *SpatialTable) UpdateCoord(id types.EntityID, c Coord) error {
	loc, ok := t.locations[id]
	if !ok {
		return fmt.Errorf("entity %s has no location", id)
	}
	loc.Coord = c
	return t.Update(id, loc)
}

// UpdateLayer переводит сущность в другой слой её клетки.
// Так персонаж становится трупом: Character -> Corpse.
func (t *SpatialTable) UpdateLayer(id types.EntityID, l enums.Layer) error {
	loc, ok := t.locations[id]
	if !ok {
		return fmt.Errorf("entity %s has no location", id)
	}
	loc.Layer = l
	return t.Update(id, loc)
}

// LocationOf возвращает позицию сущности.
// Отсутствие позиции — обычный исход, не ошибка.
func (t *SpatialTable) LocationOf(id types.EntityID) (Location, bool) {
	loc, ok := t.locations[id]
	return loc, ok
}

// CoordOf возвращает координату сущности.
func (t *SpatialTable) CoordOf(id types.EntityID) (Coord, bool) {
	loc, ok := t.locations[id]
	return loc.Coord, ok
}

// LayerOf возвращает слой сущности.
func (t *SpatialTable) LayerOf(id types.EntityID) (enums.Layer, bool) {
	loc, ok := t.locations[id]
	return loc.Layer, ok
}

// LayersAt возвращает слоты клетки. Для координаты вне сетки ok=false.
func (t *SpatialTable) LayersAt(c Coord) (LayerSlots, bool) {
	if !t.size.Contains(c) {
		return LayerSlots{}, false
	}
	return t.cells[t.size.Index(c)], true
}

// LayersAtChecked возвращает слоты клетки, считая координаты вне
// сетки пустыми. Удобно при обходе соседей у границы.
func (t *SpatialTable) LayersAtChecked(c Coord) LayerSlots {
	if !t.size.Contains(c) {
		return LayerSlots{}
	}
	return t.cells[t.size.Index(c)]
}

// Remove снимает сущность с сетки. Отсутствующая сущность — no-op.
func (t *SpatialTable) Remove(id types.EntityID) {
	loc, ok := t.locations[id]
	if !ok {
		return
	}
	if loc.Layer != enums.LayerNone {
		t.cells[t.size.Index(loc.Coord)].set(loc.Layer, types.NilEntityID)
	}
	delete(t.locations, id)
}

// Len возвращает количество размещённых сущностей.
func (t *SpatialTable) Len() int {
	return len(t.locations)
}
