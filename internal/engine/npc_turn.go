package engine

import (
	"fmt"

	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/internal/systems"
)

// npcDecision - отложенное решение одного NPC. Решения принимаются
// все разом по замороженному полю расстояний и только потом
// применяются: порядок обхода не влияет на то, кто что решил.
type npcDecision struct {
	id  types.EntityID
	cmd domain.Command
}

// npcTurns выполняет фазу NPC текущего хода: чистка мёртвых записей,
// пересчёт поля расстояний, решения, применение.
func (g *Game) npcTurns() []domain.Event {
	systems.PruneDeadAgents(g.world)

	playerCoord, ok := g.world.EntityCoord(g.player)
	if !ok {
		// Труп игрока вытеснен чужим трупом: наводиться не на что
		return nil
	}
	g.behaviour.RebuildDistanceField(g.world, playerCoord)

	// Фаза решений. Мир в ней не меняется.
	ids := g.world.Components.Agents.IDs()
	decisions := make([]npcDecision, 0, len(ids))
	for _, id := range ids {
		cmd := g.behaviour.Decide(g.world, id)
		if agent, ok := g.world.Components.Agents.GetMut(id); ok {
			agent.LastDecision = cmd
		}
		decisions = append(decisions, npcDecision{id: id, cmd: cmd})
	}

	// Фаза применения. Столкновения двух NPC, решивших идти в одну
	// клетку, разрешаются по факту: второй молча остаётся на месте.
	var events []domain.Event
	for _, d := range decisions {
		if d.cmd.Kind != domain.CommandMove {
			continue
		}

		res := systems.ResolveMove(g.world, d.id, d.cmd.Direction)
		switch res.Outcome {
		case systems.MoveFree:
			if err := g.world.Spatial.UpdateCoord(d.id, res.Target); err != nil {
				panic(fmt.Sprintf("free cell rejected NPC %v: %v", d.id, err))
			}
		case systems.MoveBump:
			events = append(events, systems.ApplyAttack(g.world, d.id, res.Victim)...)
		}
	}
	return events
}
