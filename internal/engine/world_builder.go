package engine

import (
	"fmt"
	"math/rand"

	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
)

// populateWorld заполняет пустой мир результатом генератора.
//
// Под каждой клеткой, что бы на ней ни стояло, спавнится пол: когда
// стена падает или персонаж уходит, в памяти игрока должна остаться
// земля, а не дыра. Возвращает сущность игрока.
//
// Нарушение контракта генератора (не ровно один игрок, чужой вид
// клетки) - ошибка сборки уровня, с которой жить нельзя: panic.
func populateWorld(w *domain.World, gen domain.TerrainGenerator, rng *rand.Rand) types.EntityID {
	player := types.NilEntityID

	for _, cell := range gen.Generate(w.Size(), rng) {
		switch cell.Kind {
		case enums.TileKindFloor:
			w.SpawnFloor(cell.Coord)

		case enums.TileKindWall:
			w.SpawnFloor(cell.Coord)
			w.SpawnWall(cell.Coord)

		case enums.TileKindNpc:
			w.SpawnFloor(cell.Coord)
			w.SpawnNpc(cell.Coord, cell.Npc)

		case enums.TileKindPlayer:
			if !player.IsNil() {
				panic("terrain generator produced a second player")
			}
			w.SpawnFloor(cell.Coord)
			player = w.SpawnPlayer(cell.Coord)

		default:
			panic(fmt.Sprintf("terrain generator produced %s at (%d,%d)",
				cell.Kind, cell.Coord.X, cell.Coord.Y))
		}
	}

	if player.IsNil() {
		panic("terrain generator produced no player")
	}
	return player
}
