package systems

import (
	"os"
	"testing"

	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// buildWorld собирает мир из ASCII-карты уровня:
//
//	# — стена, . — пол, @ — игрок, o — орк, T — тролль
//
// Пол подкладывается под каждую клетку, как это делает генератор.
// Возвращает мир и сущность игрока (nil, если '@' на карте нет).
func buildWorld(t *testing.T, rows ...string) (*domain.World, types.EntityID) {
	t.Helper()

	if len(rows) == 0 {
		t.Fatal("buildWorld: empty map")
	}

	size := domain.Size{Width: len(rows[0]), Height: len(rows)}
	w := domain.NewWorld(size)

	var player types.EntityID
	for y, row := range rows {
		if len(row) != size.Width {
			t.Fatalf("buildWorld: ragged row %d", y)
		}
		for x, ch := range row {
			c := domain.Coord{X: x, Y: y}
			w.SpawnFloor(c)

			switch ch {
			case '.':
			case '#':
				w.SpawnWall(c)
			case '@':
				player = w.SpawnPlayer(c)
			case 'o':
				w.SpawnNpc(c, enums.NpcKindOrc)
			case 'T':
				w.SpawnNpc(c, enums.NpcKindTroll)
			default:
				t.Fatalf("buildWorld: unknown cell %q at (%d,%d)", ch, x, y)
			}
		}
	}
	return w, player
}

// npcAt возвращает сущность персонажа в клетке.
func npcAt(t *testing.T, w *domain.World, c domain.Coord) types.EntityID {
	t.Helper()

	slots, ok := w.Spatial.LayersAt(c)
	if !ok || slots.Character.IsNil() {
		t.Fatalf("npcAt: no character at (%d,%d)", c.X, c.Y)
	}
	return slots.Character
}
