package domain

import (
	"errors"
	"testing"

	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
)

func TestSpatialTable_UpdateAndLookup(t *testing.T) {
	st := NewSpatialTable(Size{Width: 10, Height: 10})
	id := types.PackEntityID(1, 0)
	loc := Location{Coord: Coord{X: 3, Y: 4}, Layer: enums.LayerCharacter}

	if err := st.Update(id, loc); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, ok := st.LocationOf(id)
	if !ok || got != loc {
		t.Errorf("LocationOf = %v ok=%v, want %v true", got, ok, loc)
	}

	slots, ok := st.LayersAt(loc.Coord)
	if !ok {
		t.Fatal("LayersAt inside grid returned ok=false")
	}
	if slots.Character != id {
		t.Errorf("Character slot = %v, want %v", slots.Character, id)
	}
}

func TestSpatialTable_UpdateOutOfBounds(t *testing.T) {
	st := NewSpatialTable(Size{Width: 5, Height: 5})
	id := types.PackEntityID(1, 0)

	tests := []struct {
		name string
		c    Coord
	}{
		{"Negative X", Coord{X: -1, Y: 2}},
		{"Negative Y", Coord{X: 2, Y: -1}},
		{"X at width", Coord{X: 5, Y: 0}},
		{"Y at height", Coord{X: 0, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := st.Update(id, Location{Coord: tt.c, Layer: enums.LayerFloor})
			if err == nil {
				t.Fatal("expected error for out-of-bounds coord")
			}
			var occ *OccupiedError
			if errors.As(err, &occ) {
				t.Error("out-of-bounds must not be reported as OccupiedError")
			}
			if st.Len() != 0 {
				t.Error("failed Update must not place anything")
			}
		})
	}
}

func TestSpatialTable_UpdateOccupied(t *testing.T) {
	st := NewSpatialTable(Size{Width: 5, Height: 5})
	c := Coord{X: 1, Y: 1}
	first := types.PackEntityID(1, 0)
	second := types.PackEntityID(1, 1)

	if err := st.Update(first, Location{Coord: c, Layer: enums.LayerCharacter}); err != nil {
		t.Fatalf("first Update failed: %v", err)
	}

	err := st.Update(second, Location{Coord: c, Layer: enums.LayerCharacter})
	var occ *OccupiedError
	if !errors.As(err, &occ) {
		t.Fatalf("expected *OccupiedError, got %v", err)
	}
	if occ.By != first {
		t.Errorf("OccupiedError.By = %v, want %v", occ.By, first)
	}

	// Отказ ничего не меняет: first на месте, second вне сетки
	if slots, _ := st.LayersAt(c); slots.Character != first {
		t.Error("occupant changed after rejected Update")
	}
	if _, ok := st.LocationOf(second); ok {
		t.Error("rejected entity must not get a location")
	}

	// Разные слои одной клетки друг другу не мешают
	if err := st.Update(second, Location{Coord: c, Layer: enums.LayerFloor}); err != nil {
		t.Errorf("different layer of same cell should be free: %v", err)
	}
}

func TestSpatialTable_UpdateSelfIsAllowed(t *testing.T) {
	st := NewSpatialTable(Size{Width: 5, Height: 5})
	id := types.PackEntityID(1, 0)
	loc := Location{Coord: Coord{X: 2, Y: 2}, Layer: enums.LayerCharacter}

	if err := st.Update(id, loc); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	// Повторная постановка в собственный слот — не конфликт
	if err := st.Update(id, loc); err != nil {
		t.Errorf("re-placing entity into its own slot failed: %v", err)
	}
}

func TestSpatialTable_MoveClearsOldCell(t *testing.T) {
	st := NewSpatialTable(Size{Width: 5, Height: 5})
	id := types.PackEntityID(1, 0)
	from := Coord{X: 0, Y: 0}
	to := Coord{X: 1, Y: 0}

	if err := st.Update(id, Location{Coord: from, Layer: enums.LayerCharacter}); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if err := st.UpdateCoord(id, to); err != nil {
		t.Fatalf("UpdateCoord failed: %v", err)
	}

	if slots, _ := st.LayersAt(from); !slots.Character.IsNil() {
		t.Error("old cell still holds the entity after move")
	}
	if slots, _ := st.LayersAt(to); slots.Character != id {
		t.Error("new cell does not hold the entity after move")
	}
}

func TestSpatialTable_UpdateLayer(t *testing.T) {
	st := NewSpatialTable(Size{Width: 5, Height: 5})
	id := types.PackEntityID(1, 0)
	c := Coord{X: 2, Y: 3}

	if err := st.Update(id, Location{Coord: c, Layer: enums.LayerCharacter}); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	// Персонаж умирает: Character -> Corpse
	if err := st.UpdateLayer(id, enums.LayerCorpse); err != nil {
		t.Fatalf("UpdateLayer failed: %v", err)
	}

	slots, _ := st.LayersAt(c)
	if !slots.Character.IsNil() {
		t.Error("Character slot not cleared after layer change")
	}
	if slots.Corpse != id {
		t.Error("Corpse slot not set after layer change")
	}

	layer, _ := st.LayerOf(id)
	if layer != enums.LayerCorpse {
		t.Errorf("LayerOf = %v, want CORPSE", layer)
	}
}

func TestSpatialTable_LayerNoneSkipsSlots(t *testing.T) {
	st := NewSpatialTable(Size{Width: 5, Height: 5})
	a := types.PackEntityID(1, 0)
	b := types.PackEntityID(1, 1)
	c := Coord{X: 2, Y: 2}

	if err := st.Update(a, Location{Coord: c, Layer: enums.LayerNone}); err != nil {
		t.Fatalf("Update with LayerNone failed: %v", err)
	}
	// Вторая бесслотовая сущность на той же клетке — не конфликт
	if err := st.Update(b, Location{Coord: c, Layer: enums.LayerNone}); err != nil {
		t.Errorf("two slotless entities on one cell should coexist: %v", err)
	}

	slots, _ := st.LayersAt(c)
	if slots != (LayerSlots{}) {
		t.Errorf("slotless entities must not appear in slots: %+v", slots)
	}
	if got, _ := st.CoordOf(a); got != c {
		t.Error("slotless entity lost its coord")
	}
}

func TestSpatialTable_Remove(t *testing.T) {
	st := NewSpatialTable(Size{Width: 5, Height: 5})
	id := types.PackEntityID(1, 0)
	c := Coord{X: 4, Y: 4}

	if err := st.Update(id, Location{Coord: c, Layer: enums.LayerFeature}); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	st.Remove(id)

	if _, ok := st.LocationOf(id); ok {
		t.Error("LocationOf after Remove should return ok=false")
	}
	if slots, _ := st.LayersAt(c); !slots.Feature.IsNil() {
		t.Error("cell slot not cleared after Remove")
	}

	// Remove отсутствующей сущности — no-op
	st.Remove(id)
	st.Remove(types.PackEntityID(9, 9))
}

func TestSpatialTable_LayersAtChecked(t *testing.T) {
	st := NewSpatialTable(Size{Width: 3, Height: 3})

	if got := st.LayersAtChecked(Coord{X: -1, Y: 0}); got != (LayerSlots{}) {
		t.Errorf("out-of-bounds cell must read as empty, got %+v", got)
	}
	if _, ok := st.LayersAt(Coord{X: -1, Y: 0}); ok {
		t.Error("LayersAt out of bounds must return ok=false")
	}
}

// Двусторонняя согласованность индекса: позиция каждой сущности
// указывает на клетку, чей слот указывает обратно на сущность,
// и ни один занятый слот не ссылается на сущность без позиции.
func TestSpatialTable_BidirectionalConsistency(t *testing.T) {
	st := NewSpatialTable(Size{Width: 4, Height: 4})

	ids := []types.EntityID{
		types.PackEntityID(1, 0),
		types.PackEntityID(1, 1),
		types.PackEntityID(1, 2),
		types.PackEntityID(1, 3),
	}
	st.Update(ids[0], Location{Coord: Coord{X: 0, Y: 0}, Layer: enums.LayerFloor})
	st.Update(ids[1], Location{Coord: Coord{X: 0, Y: 0}, Layer: enums.LayerCharacter})
	st.Update(ids[2], Location{Coord: Coord{X: 3, Y: 3}, Layer: enums.LayerFeature})
	st.Update(ids[3], Location{Coord: Coord{X: 1, Y: 2}, Layer: enums.LayerCorpse})

	// Перемешиваем: ход, смена слоя, удаление
	st.UpdateCoord(ids[1], Coord{X: 1, Y: 0})
	st.UpdateLayer(ids[3], enums.LayerCharacter)
	st.Remove(ids[2])

	checkConsistency(t, st)
}

// checkConsistency сверяет оба отображения SpatialTable между собой.
func checkConsistency(t *testing.T, st *SpatialTable) {
	t.Helper()

	size := st.Size()
	for _, id := range spatialIDs(st) {
		loc, _ := st.LocationOf(id)
		if loc.Layer == enums.LayerNone {
			continue
		}
		slots, ok := st.LayersAt(loc.Coord)
		if !ok {
			t.Errorf("entity %s located outside grid at (%d,%d)", id, loc.Coord.X, loc.Coord.Y)
			continue
		}
		if got := slots.Get(loc.Layer); got != id {
			t.Errorf("cell (%d,%d) layer %v holds %v, location says %v",
				loc.Coord.X, loc.Coord.Y, loc.Layer, got, id)
		}
	}

	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			slots, _ := st.LayersAt(Coord{X: x, Y: y})
			for _, l := range []enums.Layer{
				enums.LayerFloor, enums.LayerFeature, enums.LayerCharacter, enums.LayerCorpse,
			} {
				id := slots.Get(l)
				if id.IsNil() {
					continue
				}
				loc, ok := st.LocationOf(id)
				if !ok {
					t.Errorf("slot (%d,%d)/%v holds %v with no location", x, y, l, id)
					continue
				}
				if loc.Coord != (Coord{X: x, Y: y}) || loc.Layer != l {
					t.Errorf("slot (%d,%d)/%v holds %v, but its location is %+v", x, y, l, id, loc)
				}
			}
		}
	}
}

// spatialIDs собирает все размещённые сущности через обход клеток.
func spatialIDs(st *SpatialTable) []types.EntityID {
	var ids []types.EntityID
	size := st.Size()
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			slots, _ := st.LayersAt(Coord{X: x, Y: y})
			for _, id := range []types.EntityID{slots.Floor, slots.Feature, slots.Character, slots.Corpse} {
				if !id.IsNil() {
					ids = append(ids, id)
				}
			}
		}
	}
	return ids
}
