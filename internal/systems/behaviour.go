package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/pkg/logger"
)

// Unreachable — маркер клетки, до которой волна расстояний не дошла.
const Unreachable = -1

// BehaviourContext — планировщик решений NPC.
//
// Держит волновое поле расстояний до игрока, пересчитываемое раз в ход.
// Мир планировщик только читает; применяет решения оркестровка.
type BehaviourContext struct {
	size      domain.Size
	distances []int
	queue     []domain.Coord // переиспользуемый буфер волны
}

func NewBehaviourContext(size domain.Size) *BehaviourContext {
	return &BehaviourContext{
		size:      size,
		distances: make([]int, size.NumCells()),
	}
}

// RebuildDistanceField заливает поле расстояний волной от клетки игрока.
//
// Волна идёт по клеткам без препятствий. Другие NPC проходимыми
// считаются: к моменту шага они могут уйти, а утыкание в живого соседа
// оркестровка всё равно отсечёт.
func (b *BehaviourContext) RebuildDistanceField(w *domain.World, player domain.Coord) {
	for i := range b.distances {
		b.distances[i] = Unreachable
	}
	if !b.size.Contains(player) {
		return
	}

	b.distances[b.size.Index(player)] = 0
	b.queue = append(b.queue[:0], player)

	for len(b.queue) > 0 {
		cur := b.queue[0]
		b.queue = b.queue[1:]
		d := b.distances[b.size.Index(cur)]

		for _, dir := range enums.CardinalDirections {
			next := cur.ShiftDirection(dir)
			if !b.size.Contains(next) {
				continue
			}
			idx := b.size.Index(next)
			if b.distances[idx] != Unreachable {
				continue
			}
			if !w.CanNpcEnterIgnoringOtherNpcs(next) {
				continue
			}
			b.distances[idx] = d + 1
			b.queue = append(b.queue, next)
		}
	}
}

// DistanceAt возвращает расстояние от клетки до игрока по последнему
// построенному полю. Для недостижимых и внешних клеток — Unreachable.
func (b *BehaviourContext) DistanceAt(c domain.Coord) int {
	if !b.size.Contains(c) {
		return Unreachable
	}
	return b.distances[b.size.Index(c)]
}

// Decide выбирает ход одного NPC: кардинальный сосед со строго меньшим
// расстоянием до игрока. Ничьи решает порядок CardinalDirections.
//
// Клетка игрока — исток волны (расстояние 0), поэтому сосед игрока
// выберет её; в атаку этот шаг превращает оркестровка. Если собственная
// клетка уже минимальна или игрок недостижим, NPC ждёт.
func (b *BehaviourContext) Decide(w *domain.World, npc types.EntityID) domain.Command {
	coord, ok := w.EntityCoord(npc)
	if !ok {
		return domain.WaitCommand()
	}

	best := b.DistanceAt(coord)
	if best == Unreachable {
		logger.Log.WithFields(logrus.Fields{
			"component": "behaviour_system",
			"npc_id":    npc,
		}).Debug("NPC cut off from player. Decision: WAIT")
		return domain.WaitCommand()
	}

	decision := domain.WaitCommand()
	for _, dir := range enums.CardinalDirections {
		d := b.DistanceAt(coord.ShiftDirection(dir))
		if d == Unreachable {
			continue
		}
		if d < best {
			best = d
			decision = domain.MoveCommand(dir)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "behaviour_system",
		"npc_id":    npc,
		"distance":  best,
		"decision":  decision.String(),
	}).Debug("NPC decision computed.")

	return decision
}

// PruneDeadAgents снимает записи Agent у сущностей, которые больше не
// живые персонажи. Вызывается раз в ход до принятия решений: мёртвый
// NPC не ходит. Возвращает количество вычищенных записей.
func PruneDeadAgents(w *domain.World) int {
	var stale []types.EntityID
	w.Components.Agents.ForEach(func(id types.EntityID, _ *domain.Agent) {
		if !w.IsLivingCharacter(id) {
			stale = append(stale, id)
		}
	})

	for _, id := range stale {
		w.Components.Agents.Remove(id)
	}

	if len(stale) > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "behaviour_system",
			"pruned":    len(stale),
		}).Debug("Dead agents pruned before scheduling.")
	}
	return len(stale)
}
