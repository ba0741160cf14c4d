package engine

import (
	"math/rand"
	"os"
	"testing"

	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// asciiTerrain - генератор уровня из картинки для тестов:
// '#' стена, '.' пол, '@' игрок, 'o' орк, 'T' тролль.
type asciiTerrain []string

func (a asciiTerrain) Generate(size domain.Size, _ *rand.Rand) []domain.TerrainCell {
	cells := make([]domain.TerrainCell, 0, size.NumCells())
	for y, row := range a {
		for x := 0; x < len(row); x++ {
			cell := domain.TerrainCell{
				Coord: domain.Coord{X: x, Y: y},
				Kind:  enums.TileKindFloor,
			}
			switch row[x] {
			case '#':
				cell.Kind = enums.TileKindWall
			case '@':
				cell.Kind = enums.TileKindPlayer
			case 'o':
				cell.Kind = enums.TileKindNpc
				cell.Npc = enums.NpcKindOrc
			case 'T':
				cell.Kind = enums.TileKindNpc
				cell.Npc = enums.NpcKindTroll
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

// newTestGame создает сессию по картинке.
func newTestGame(t *testing.T, rows ...string) *Game {
	t.Helper()
	if len(rows) == 0 || len(rows[0]) == 0 {
		t.Fatal("test map must not be empty")
	}
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			t.Fatalf("ragged test map: row %q", row)
		}
	}

	cfg := NewConfig()
	cfg.Seed = 1
	cfg.Width = len(rows[0])
	cfg.Height = len(rows)
	return NewGame(cfg, asciiTerrain(rows))
}

func playerCoord(t *testing.T, g *Game) domain.Coord {
	t.Helper()
	c, ok := g.World().EntityCoord(g.Player())
	if !ok {
		t.Fatal("player has no location")
	}
	return c
}

func TestProcessTurn_MoveEast(t *testing.T) {
	g := newTestGame(t,
		"@...",
	)

	// Три шага на восток по чистому полу
	for i := 0; i < 3; i++ {
		g.ProcessTurn(domain.MoveCommand(enums.DirectionEast))
	}

	if got := playerCoord(t, g); (got != domain.Coord{X: 3, Y: 0}) {
		t.Errorf("player at %v, want (3,0)", got)
	}
	if g.Turn() != 3 {
		t.Errorf("turn counter = %d, want 3", g.Turn())
	}
}

func TestProcessTurn_WallBlocksSilently(t *testing.T) {
	g := newTestGame(t,
		"@#",
	)

	events := g.ProcessTurn(domain.MoveCommand(enums.DirectionEast))

	if got := playerCoord(t, g); (got != domain.Coord{X: 0, Y: 0}) {
		t.Errorf("player moved into a wall: %v", got)
	}
	if len(events) != 0 {
		t.Errorf("blocked move produced %d events, want 0", len(events))
	}
	// Ход потрачен: мир жил, даже если игрок упёрся в стену
	if g.Turn() != 1 {
		t.Errorf("turn counter = %d, want 1", g.Turn())
	}
}

func TestProcessTurn_OutOfBoundsIsNoOp(t *testing.T) {
	g := newTestGame(t,
		"@.",
	)

	g.ProcessTurn(domain.MoveCommand(enums.DirectionWest))

	if got := playerCoord(t, g); (got != domain.Coord{X: 0, Y: 0}) {
		t.Errorf("player left the grid: %v", got)
	}
}

func TestProcessTurn_BumpAttackKillsOrc(t *testing.T) {
	g := newTestGame(t,
		"@o.",
	)
	orcCell := domain.Coord{X: 1, Y: 0}
	slots, _ := g.World().Spatial.LayersAt(orcCell)
	orc := slots.Character

	// Первый удар: орк жив, игрок на месте
	events := g.ProcessTurn(domain.MoveCommand(enums.DirectionEast))
	if len(events) == 0 || events[0].Type != domain.EventAttack {
		t.Fatalf("first bump events = %v, want leading ATTACK", events)
	}
	if got := playerCoord(t, g); (got != domain.Coord{X: 0, Y: 0}) {
		t.Errorf("attacker moved during bump: %v", got)
	}

	// Второй удар: орк умирает
	events = g.ProcessTurn(domain.MoveCommand(enums.DirectionEast))
	var sawDeath bool
	for _, ev := range events {
		if ev.Type == domain.EventDeath && ev.Target == orc {
			sawDeath = true
		}
	}
	if !sawDeath {
		t.Fatalf("second bump events = %v, want DEATH of the orc", events)
	}

	tile, _ := g.World().Components.Tiles.Get(orc)
	want := domain.Tile{Kind: enums.TileKindNpcCorpse, Npc: enums.NpcKindOrc}
	if tile != want {
		t.Errorf("orc tile = %s, want %s", tile, want)
	}
	if g.World().Components.Agents.Contains(orc) {
		t.Error("dead orc still has an agent record")
	}

	// Клетка трупа теперь проходима
	g.ProcessTurn(domain.MoveCommand(enums.DirectionEast))
	if got := playerCoord(t, g); got != orcCell {
		t.Errorf("player at %v, want to stand on the corpse cell %v", got, orcCell)
	}
}

func TestProcessTurn_EventLogAccumulates(t *testing.T) {
	g := newTestGame(t,
		"@o",
	)

	g.ProcessTurn(domain.MoveCommand(enums.DirectionEast))
	g.ProcessTurn(domain.MoveCommand(enums.DirectionEast))

	// Ход 1: удар игрока и ответный удар орка.
	// Ход 2: добивающий удар и смерть. Итого четыре записи.
	log := g.EventLog()
	if len(log) != 4 {
		t.Fatalf("event log holds %d events, want 4", len(log))
	}
	if log[0].Type != domain.EventAttack || log[3].Type != domain.EventDeath {
		t.Errorf("unexpected event order: %v", log)
	}
}

func TestTeleportCheat(t *testing.T) {
	g := newTestGame(t,
		"@.#",
		"..o",
	)

	tests := []struct {
		name   string
		target domain.Coord
		want   bool
	}{
		{"open floor", domain.Coord{X: 1, Y: 1}, true},
		{"wall", domain.Coord{X: 2, Y: 0}, false},
		{"occupied by npc", domain.Coord{X: 2, Y: 1}, false},
		{"out of bounds", domain.Coord{X: 5, Y: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := playerCoord(t, g)
			got := g.TeleportPlayer(tt.target)
			if got != tt.want {
				t.Fatalf("TeleportPlayer(%v) = %v, want %v", tt.target, got, tt.want)
			}
			after := playerCoord(t, g)
			if tt.want && after != tt.target {
				t.Errorf("player at %v, want %v", after, tt.target)
			}
			if !tt.want && after != before {
				t.Errorf("failed teleport moved the player to %v", after)
			}
		})
	}

	// Телепорт не тратит ход
	if g.Turn() != 0 {
		t.Errorf("cheats consumed %d turns, want 0", g.Turn())
	}
}

func TestHealCheat(t *testing.T) {
	g := newTestGame(t,
		"@o",
	)

	// Орк бьёт ждущего игрока
	g.ProcessTurn(domain.WaitCommand())
	hp, _ := g.PlayerHitPoints()
	if hp.Current != domain.PlayerHitPoints-1 {
		t.Fatalf("player HP = %d, want %d after one orc hit", hp.Current, domain.PlayerHitPoints-1)
	}

	if !g.HealPlayer() {
		t.Fatal("HealPlayer() = false for a living player")
	}
	hp, _ = g.PlayerHitPoints()
	if hp.Current != hp.Max {
		t.Errorf("player HP = %d, want full %d", hp.Current, hp.Max)
	}
}

func TestPopulateWorld_RejectsPlayerlessTerrain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("populate accepted terrain without a player")
		}
	}()

	cfg := NewConfig()
	cfg.Seed = 1
	cfg.Width = 2
	cfg.Height = 1
	NewGame(cfg, asciiTerrain{".."})
}

func TestPopulateWorld_FloorUnderEverything(t *testing.T) {
	g := newTestGame(t,
		"@#o",
	)

	for x := 0; x < 3; x++ {
		slots, ok := g.World().Spatial.LayersAt(domain.Coord{X: x, Y: 0})
		if !ok || slots.Floor.IsNil() {
			t.Errorf("cell (%d,0) has no floor beneath its contents", x)
		}
	}
}
