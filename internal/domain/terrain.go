package domain

import (
	"math/rand"

	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
)

// TerrainCell — одна клетка результата генерации уровня.
// Npc заполняется только для Kind == NPC.
type TerrainCell struct {
	Coord Coord
	Kind  enums.TileKind
	Npc   enums.NpcKind
}

// TerrainGenerator производит начальную сетку уровня.
//
// Контракт: ровно одна клетка на каждую координату сетки, без пропусков
// и повторов. Допустимые виды: FLOOR, WALL, NPC (с разновидностью)
// и ровно один PLAYER.
type TerrainGenerator interface {
	Generate(size Size, rng *rand.Rand) []TerrainCell
}
