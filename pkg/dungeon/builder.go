package dungeon

import (
	"math/rand"

	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
)

// Rect - Вспомогательная структура для комнаты
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() domain.Coord {
	return domain.Coord{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// LevelBuilder предоставляет fluent API для создания уровней.
//
// Build выдаёт результат, совместимый с контрактом domain.TerrainGenerator:
// ровно одна клетка на каждую координату и ровно один игрок.
type LevelBuilder struct {
	size  domain.Size
	rooms []Rect

	// Содержимое клеток, row-major по size.Index
	kinds []enums.TileKind
	npcs  []enums.NpcKind

	playerPlaced bool
	rng          *rand.Rand
}

// NewLevel создает новый builder для уровня
func NewLevel(rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		size: domain.Size{Width: domain.DefaultGridWidth, Height: domain.DefaultGridHeight},
		rng:  rng,
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.size = domain.Size{Width: width, Height: height}
	return b
}

func (b *LevelBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}

// WithRooms заливает карту стеной и вырезает до maxRooms непересекающихся
// комнат, соединяя соседние Г-образными коридорами.
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	b.kinds = make([]enums.TileKind, b.size.NumCells())
	b.npcs = make([]enums.NpcKind, b.size.NumCells())
	for i := range b.kinds {
		b.kinds[i] = enums.TileKindWall
	}

	b.rooms = make([]Rect, 0, maxRooms)
	for i := 0; i < maxRooms; i++ {
		w := b.randRange(MinRoomSize, MaxRoomSize)
		h := b.randRange(MinRoomSize, MaxRoomSize)
		if w > b.size.Width-2 || h > b.size.Height-2 {
			continue // комната не помещается на такой карте
		}
		x := b.randRange(1, b.size.Width-w-1)
		y := b.randRange(1, b.size.Height-h-1)

		newRoom := Rect{X: x, Y: y, W: w, H: h}

		// Проверяем пересечения
		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}

		if !failed {
			b.carveRoom(newRoom)

			// Соединяем с предыдущей комнатой
			if len(b.rooms) > 0 {
				prev := b.rooms[len(b.rooms)-1].Center()
				curr := newRoom.Center()

				if b.rng.Intn(2) == 0 {
					b.carveHCorridor(prev.X, curr.X, prev.Y)
					b.carveVCorridor(prev.Y, curr.Y, curr.X)
				} else {
					b.carveVCorridor(prev.Y, curr.Y, prev.X)
					b.carveHCorridor(prev.X, curr.X, curr.Y)
				}
			}
			b.rooms = append(b.rooms, newRoom)
		}
	}

	return b
}

func (b *LevelBuilder) carveRoom(room Rect) {
	for y := room.Y + 1; y < room.Y+room.H; y++ {
		for x := room.X + 1; x < room.X+room.W; x++ {
			b.kinds[b.size.Index(domain.Coord{X: x, Y: y})] = enums.TileKindFloor
		}
	}
}

func (b *LevelBuilder) carveHCorridor(x1, x2, y int) {
	start := min(x1, x2)
	end := max(x1, x2)
	for x := start; x <= end; x++ {
		b.kinds[b.size.Index(domain.Coord{X: x, Y: y})] = enums.TileKindFloor
	}
}

func (b *LevelBuilder) carveVCorridor(y1, y2, x int) {
	start := min(y1, y2)
	end := max(y1, y2)
	for y := start; y <= end; y++ {
		b.kinds[b.size.Index(domain.Coord{X: x, Y: y})] = enums.TileKindFloor
	}
}

// PlacePlayer ставит игрока в центр первой комнаты.
func (b *LevelBuilder) PlacePlayer() *LevelBuilder {
	idx := b.size.Index(b.startCoord())
	b.kinds[idx] = enums.TileKindPlayer
	b.playerPlaced = true
	return b
}

// SpawnNpc расселяет count NPC заданного вида по случайным свободным
// клеткам пола вне первой комнаты (в первой появляется игрок).
func (b *LevelBuilder) SpawnNpc(kind enums.NpcKind, count int) *LevelBuilder {
	for i := 0; i < count && len(b.rooms) > 1; i++ {
		roomIdx := b.rng.Intn(len(b.rooms)-1) + 1 // Не в первой комнате
		b.placeNpcInRoom(b.rooms[roomIdx], kind)
	}
	return b
}

// PopulateRooms заселяет каждую комнату, кроме первой, perRoom NPC,
// выбирая вид по взвешенной таблице.
func (b *LevelBuilder) PopulateRooms(table NpcTable, perRoom int) *LevelBuilder {
	for roomIdx := 1; roomIdx < len(b.rooms); roomIdx++ {
		for i := 0; i < perRoom; i++ {
			b.placeNpcInRoom(b.rooms[roomIdx], table.Pick(b.rng))
		}
	}
	return b
}

// placeNpcInRoom ищет в комнате клетку чистого пола (макс 20 попыток).
// Если не нашлась, NPC просто не появляется.
func (b *LevelBuilder) placeNpcInRoom(room Rect, kind enums.NpcKind) {
	for attempt := 0; attempt < 20; attempt++ {
		c := domain.Coord{
			X: room.X + 1 + b.rng.Intn(room.W-1),
			Y: room.Y + 1 + b.rng.Intn(room.H-1),
		}
		if !b.size.Contains(c) {
			continue
		}
		idx := b.size.Index(c)
		if b.kinds[idx] != enums.TileKindFloor {
			continue
		}
		b.kinds[idx] = enums.TileKindNpc
		b.npcs[idx] = kind
		return
	}
}

// startCoord возвращает стартовую позицию (центр первой комнаты)
func (b *LevelBuilder) startCoord() domain.Coord {
	if len(b.rooms) > 0 {
		return b.rooms[0].Center()
	}
	return domain.Coord{X: b.size.Width / 2, Y: b.size.Height / 2}
}

// Build собирает готовую сетку. Если игрока не размещали явно,
// он добавляется в стартовую позицию: контракт генератора требует
// ровно одного игрока.
func (b *LevelBuilder) Build() []domain.TerrainCell {
	if b.kinds == nil {
		b.WithRooms(0)
	}
	if !b.playerPlaced {
		b.PlacePlayer()
	}

	cells := make([]domain.TerrainCell, 0, b.size.NumCells())
	for y := 0; y < b.size.Height; y++ {
		for x := 0; x < b.size.Width; x++ {
			c := domain.Coord{X: x, Y: y}
			idx := b.size.Index(c)
			cells = append(cells, domain.TerrainCell{
				Coord: c,
				Kind:  b.kinds[idx],
				Npc:   b.npcs[idx],
			})
		}
	}
	return cells
}
