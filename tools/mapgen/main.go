package main

// Утилита для подбора констант генератора: печатает уровень в ASCII,
// не поднимая ни одного фронтенда.
//
// Примеры:
//
//	go run ./tools/mapgen -seed 42
//	go run ./tools/mapgen -count 5 -width 60 -height 40

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/pkg/dungeon"
)

func main() {
	var seed int64
	var width, height, count int
	var box bool
	flag.Int64Var(&seed, "seed", 0, "Seed (0 = random)")
	flag.IntVar(&width, "width", domain.DefaultGridWidth, "Grid width")
	flag.IntVar(&height, "height", domain.DefaultGridHeight, "Grid height")
	flag.IntVar(&count, "count", 1, "How many maps to print")
	flag.BoolVar(&box, "box", false, "Use the box generator instead of rooms")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	size := domain.Size{Width: width, Height: height}
	for i := 0; i < count; i++ {
		printMap(size, seed+int64(i), box)
	}
}

func printMap(size domain.Size, seed int64, box bool) {
	var gen domain.TerrainGenerator = dungeon.NewGenerator()
	if box {
		gen = dungeon.BoxGenerator{}
	}

	rng := rand.New(rand.NewSource(seed))
	cells := gen.Generate(size, rng)

	rows := make([][]rune, size.Height)
	for y := range rows {
		rows[y] = make([]rune, size.Width)
	}

	floors, walls, npcs := 0, 0, 0
	for _, cell := range cells {
		var ch rune
		switch cell.Kind {
		case enums.TileKindWall:
			ch = '#'
			walls++
		case enums.TileKindFloor:
			ch = '.'
			floors++
		case enums.TileKindPlayer:
			ch = '@'
		case enums.TileKindNpc:
			ch = 'o'
			if cell.Npc == enums.NpcKindTroll {
				ch = 'T'
			}
			npcs++
		default:
			ch = '?'
		}
		rows[cell.Coord.Y][cell.Coord.X] = ch
	}

	fmt.Printf("seed=%d size=%dx%d floors=%d walls=%d npcs=%d\n",
		seed, size.Width, size.Height, floors, walls, npcs)
	for _, row := range rows {
		fmt.Println(string(row))
	}
	fmt.Println()
}
