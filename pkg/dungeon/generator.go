package dungeon

import (
	"math/rand"

	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
)

// Константы генерации
const (
	MaxRooms    = 8
	MinRoomSize = 4
	MaxRoomSize = 10
	NpcsPerRoom = 2
)

// Generator реализует domain.TerrainGenerator: случайные непересекающиеся
// комнаты, Г-образные коридоры между соседними, игрок в центре первой
// комнаты, NPC по таблице спавна в остальных.
type Generator struct {
	MaxRooms    int
	NpcsPerRoom int
	Table       NpcTable
}

// NewGenerator создает генератор со стандартными параметрами.
func NewGenerator() *Generator {
	return &Generator{
		MaxRooms:    MaxRooms,
		NpcsPerRoom: NpcsPerRoom,
		Table:       DefaultNpcTable,
	}
}

func (g *Generator) Generate(size domain.Size, rng *rand.Rand) []domain.TerrainCell {
	return NewLevel(rng).
		WithSize(size.Width, size.Height).
		WithRooms(g.MaxRooms).
		PlacePlayer().
		PopulateRooms(g.Table, g.NpcsPerRoom).
		Build()
}

// BoxGenerator - пустая комната во всю сетку, обнесённая стеной.
// Игрок в центре, NPC нет. Годится инструментам и тестам движка,
// где важна предсказуемая геометрия, а не интересный уровень.
type BoxGenerator struct{}

func (BoxGenerator) Generate(size domain.Size, _ *rand.Rand) []domain.TerrainCell {
	center := domain.Coord{X: size.Width / 2, Y: size.Height / 2}

	cells := make([]domain.TerrainCell, 0, size.NumCells())
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			c := domain.Coord{X: x, Y: y}

			kind := enums.TileKindFloor
			switch {
			case c == center:
				kind = enums.TileKindPlayer
			case x == 0 || y == 0 || x == size.Width-1 || y == size.Height-1:
				kind = enums.TileKindWall
			}

			cells = append(cells, domain.TerrainCell{Coord: c, Kind: kind})
		}
	}
	return cells
}
