package systems

import (
	"testing"

	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
)

// Игрок в трёх клетках к востоку: NPC идёт на восток.
func TestBehaviourContext_ChasesPlayerEast(t *testing.T) {
	w, player := buildWorld(t, "o..@")
	playerCoord, _ := w.EntityCoord(player)
	npc := npcAt(t, w, domain.Coord{X: 0, Y: 0})

	b := NewBehaviourContext(w.Size())
	b.RebuildDistanceField(w, playerCoord)

	got := b.Decide(w, npc)
	want := domain.MoveCommand(enums.DirectionEast)
	if got != want {
		t.Errorf("Decide = %v, want %v", got, want)
	}
}

// Два равных пути: ничью решает порядок North, East, South, West.
func TestBehaviourContext_TieBreakNorthFirst(t *testing.T) {
	w, player := buildWorld(t,
		".....",
		".....",
		"..@..",
		"...o.",
		".....",
	)
	playerCoord, _ := w.EntityCoord(player)
	npc := npcAt(t, w, domain.Coord{X: 3, Y: 3})

	b := NewBehaviourContext(w.Size())
	b.RebuildDistanceField(w, playerCoord)

	// Север (3,2) и запад (2,3) оба на расстоянии 1; север первый
	got := b.Decide(w, npc)
	want := domain.MoveCommand(enums.DirectionNorth)
	if got != want {
		t.Errorf("Decide = %v, want %v", got, want)
	}
}

// Сосед игрока шагает в его клетку: исток волны имеет расстояние 0.
// В атаку этот шаг превращает оркестровка.
func TestBehaviourContext_AdjacentStepsOntoPlayer(t *testing.T) {
	w, player := buildWorld(t, "@o")
	playerCoord, _ := w.EntityCoord(player)
	npc := npcAt(t, w, domain.Coord{X: 1, Y: 0})

	b := NewBehaviourContext(w.Size())
	b.RebuildDistanceField(w, playerCoord)

	got := b.Decide(w, npc)
	want := domain.MoveCommand(enums.DirectionWest)
	if got != want {
		t.Errorf("Decide = %v, want %v", got, want)
	}
}

// Отрезанный стеной NPC ждёт.
func TestBehaviourContext_CutOffWaits(t *testing.T) {
	w, player := buildWorld(t, "@.#.o")
	playerCoord, _ := w.EntityCoord(player)
	npc := npcAt(t, w, domain.Coord{X: 4, Y: 0})

	b := NewBehaviourContext(w.Size())
	b.RebuildDistanceField(w, playerCoord)

	if got := b.DistanceAt(domain.Coord{X: 3, Y: 0}); got != Unreachable {
		t.Errorf("cell behind wall: distance = %d, want Unreachable", got)
	}
	if got := b.Decide(w, npc); got != domain.WaitCommand() {
		t.Errorf("Decide = %v, want WAIT", got)
	}
}

// Волна обходит препятствия: жадный шаг к игроку упёрся бы в стену,
// BFS ведёт в обход.
//
//	#####
//	#@..#
//	###.#
//	#o..#
//	#####
func TestBehaviourContext_RoutesAroundWalls(t *testing.T) {
	w, player := buildWorld(t,
		"#####",
		"#@..#",
		"###.#",
		"#o..#",
		"#####",
	)
	playerCoord, _ := w.EntityCoord(player)
	npc := npcAt(t, w, domain.Coord{X: 1, Y: 3})

	b := NewBehaviourContext(w.Size())
	b.RebuildDistanceField(w, playerCoord)

	got := b.Decide(w, npc)
	want := domain.MoveCommand(enums.DirectionEast)
	if got != want {
		t.Errorf("Decide = %v, want %v (the long way around)", got, want)
	}

	// Проверяем само поле: путь в обход длиннее прямой
	if got := b.DistanceAt(domain.Coord{X: 1, Y: 3}); got != 6 {
		t.Errorf("distance at npc cell = %d, want 6", got)
	}
}

// Другие NPC для волны прозрачны: затор не ломает поле расстояний.
func TestBehaviourContext_IgnoresOtherNpcs(t *testing.T) {
	w, player := buildWorld(t, "@To")
	playerCoord, _ := w.EntityCoord(player)
	rear := npcAt(t, w, domain.Coord{X: 2, Y: 0})

	b := NewBehaviourContext(w.Size())
	b.RebuildDistanceField(w, playerCoord)

	// Задний NPC видит расстояние сквозь переднего и хочет на запад;
	// упрётся он в него уже при применении хода
	got := b.Decide(w, rear)
	want := domain.MoveCommand(enums.DirectionWest)
	if got != want {
		t.Errorf("Decide = %v, want %v", got, want)
	}
}

func TestPruneDeadAgents(t *testing.T) {
	w, _ := buildWorld(t, "@oT")
	orc := npcAt(t, w, domain.Coord{X: 1, Y: 0})
	troll := npcAt(t, w, domain.Coord{X: 2, Y: 0})

	// Орк осиротел: слой сменился без вычистки компонентов
	if err := w.Spatial.UpdateLayer(orc, enums.LayerCorpse); err != nil {
		t.Fatalf("corpse transition failed: %v", err)
	}

	if got := PruneDeadAgents(w); got != 1 {
		t.Errorf("pruned = %d, want 1", got)
	}
	if w.Components.Agents.Contains(orc) {
		t.Error("dead NPC kept its agent record")
	}
	if !w.Components.Agents.Contains(troll) {
		t.Error("living NPC lost its agent record")
	}

	// Повторная вычистка ничего не находит
	if got := PruneDeadAgents(w); got != 0 {
		t.Errorf("second prune = %d, want 0", got)
	}
}
