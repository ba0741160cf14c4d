package domain

import (
	"fmt"

	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
)

// World владеет аллокатором сущностей, таблицами компонентов и
// пространственным индексом. Всё состояние уровня меняется только
// через его операции.
type World struct {
	Allocator  *EntityAllocator
	Components *Components
	Spatial    *SpatialTable
}

func NewWorld(size Size) *World {
	return &World{
		Allocator:  NewEntityAllocator(),
		Components: NewComponents(),
		Spatial:    NewSpatialTable(size),
	}
}

// Size возвращает размеры сетки уровня.
func (w *World) Size() Size {
	return w.Spatial.Size()
}

// --- Спавн ---

// Каждая клетка уровня получает сущность пола, даже под стенами и
// персонажами: когда персонаж уходит или умирает, память игрока
// должна рисовать пол, а не пустоту.

func (w *World) SpawnFloor(c Coord) types.EntityID {
	id := w.Allocator.Alloc()
	w.mustPlace(id, Location{Coord: c, Layer: enums.LayerFloor})
	w.Components.Tiles.Insert(id, FloorTile())
	return id
}

func (w *World) SpawnWall(c Coord) types.EntityID {
	id := w.Allocator.Alloc()
	w.mustPlace(id, Location{Coord: c, Layer: enums.LayerFeature})
	w.Components.Tiles.Insert(id, WallTile())
	return id
}

func (w *World) SpawnNpc(c Coord, kind enums.NpcKind) types.EntityID {
	id := w.Allocator.Alloc()
	w.mustPlace(id, Location{Coord: c, Layer: enums.LayerCharacter})
	w.Components.Tiles.Insert(id, NpcTile(kind))
	w.Components.NpcKinds.Insert(id, kind)

	var hp HitPoints
	switch kind {
	case enums.NpcKindTroll:
		hp = NewFullHitPoints(TrollHitPoints)
	default:
		hp = NewFullHitPoints(OrcHitPoints)
	}
	w.Components.HitPoints.Insert(id, hp)
	w.Components.Agents.Insert(id, NewAgent())
	return id
}

func (w *World) SpawnPlayer(c Coord) types.EntityID {
	id := w.Allocator.Alloc()
	w.mustPlace(id, Location{Coord: c, Layer: enums.LayerCharacter})
	w.Components.Tiles.Insert(id, PlayerTile())
	w.Components.HitPoints.Insert(id, NewFullHitPoints(PlayerHitPoints))
	return id
}

// Спавн на занятый слот — ошибка генератора уровня, жить с ней нельзя.
func (w *World) mustPlace(id types.EntityID, loc Location) {
	if err := w.Spatial.Update(id, loc); err != nil {
		panic(fmt.Sprintf("spawn collision at (%d,%d): %v", loc.Coord.X, loc.Coord.Y, err))
	}
}

// --- Запросы ---

// EntityCoord возвращает координату сущности.
func (w *World) EntityCoord(id types.EntityID) (Coord, bool) {
	return w.Spatial.CoordOf(id)
}

// IsLivingCharacter: живой персонаж — тот, кто занимает слой Character.
// После смерти сущность переходит в слой Corpse и перестаёт им быть.
func (w *World) IsLivingCharacter(id types.EntityID) bool {
	layer, ok := w.Spatial.LayerOf(id)
	return ok && layer == enums.LayerCharacter
}

// IsNpc: принадлежность к NPC определяется наличием записи NpcKinds.
// У игрока её нет.
func (w *World) IsNpc(id types.EntityID) bool {
	return w.Components.NpcKinds.Contains(id)
}

// CanNpcEnter: клетка проходима для NPC, если в ней нет препятствия
// и другого NPC. Игрок проходимость не блокирует: шаг в его клетку
// превращается в атаку.
func (w *World) CanNpcEnter(c Coord) bool {
	slots, ok := w.Spatial.LayersAt(c)
	if !ok {
		return false
	}

	containsNpc := !slots.Character.IsNil() && w.IsNpc(slots.Character)
	return slots.Feature.IsNil() && !containsNpc
}

// CanNpcEnterIgnoringOtherNpcs — вариант для волнового поля расстояний.
// Другие NPC не считаются препятствием: к моменту шага они успеют уйти.
func (w *World) CanNpcEnterIgnoringOtherNpcs(c Coord) bool {
	slots, ok := w.Spatial.LayersAt(c)
	if !ok {
		return false
	}
	return slots.Feature.IsNil()
}

// OpacityAt возвращает непрозрачность клетки для поля зрения:
// 255 у препятствий, 0 у всего остального.
func (w *World) OpacityAt(c Coord) uint8 {
	if !w.Spatial.LayersAtChecked(c).Feature.IsNil() {
		return 255
	}
	return 0
}

// RememberedTileAt возвращает тайл, который останется в памяти игрока
// для клетки: верхний статичный слой (Feature > Corpse > Floor).
// Персонажи в память не попадают, они двигаются.
func (w *World) RememberedTileAt(c Coord) (Tile, bool) {
	slots := w.Spatial.LayersAtChecked(c)
	for _, id := range [...]types.EntityID{slots.Feature, slots.Corpse, slots.Floor} {
		if id.IsNil() {
			continue
		}
		if tile, ok := w.Components.Tiles.Get(id); ok {
			return tile, true
		}
	}
	return Tile{}, false
}

// --- Удаление ---

// RemoveEntity атомарно убирает сущность отовсюду: из всех таблиц
// компонентов, из пространственного индекса и из аллокатора.
// После возврата ни один запрос её не увидит.
func (w *World) RemoveEntity(id types.EntityID) {
	w.Components.RemoveEntity(id)
	w.Spatial.Remove(id)
	w.Allocator.Free(id)
}
