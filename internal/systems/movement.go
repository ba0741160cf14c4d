package systems

import (
	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
)

// MoveOutcome - классификация попытки шага
type MoveOutcome uint8

const (
	// MoveBlocked — граница, стена или союзник: шаг отменяется молча.
	MoveBlocked MoveOutcome = iota
	// MoveFree — целевая клетка свободна, персонаж переходит.
	MoveFree
	// MoveBump — в клетке враждебный персонаж: шаг становится атакой.
	MoveBump
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	Outcome MoveOutcome
	Target  domain.Coord
	Victim  types.EntityID // заполнен для MoveBump
}

// ResolveMove классифицирует шаг персонажа. Не меняет состояние мира!
//
// Порядок проверок: граница, затем персонаж в клетке (враг — удар,
// союзник — отказ), затем препятствие. Атакующий при ударе остаётся
// на месте.
func ResolveMove(w *domain.World, mover types.EntityID, dir enums.Direction) MovementResult {
	from, ok := w.EntityCoord(mover)
	if !ok {
		return MovementResult{Outcome: MoveBlocked}
	}

	target := from.ShiftDirection(dir)
	res := MovementResult{Outcome: MoveBlocked, Target: target}

	slots, ok := w.Spatial.LayersAt(target)
	if !ok {
		return res // за границей сетки
	}

	if occupant := slots.Character; !occupant.IsNil() && occupant != mover {
		if w.IsNpc(mover) != w.IsNpc(occupant) {
			res.Outcome = MoveBump
			res.Victim = occupant
		}
		// Союзник: ни шага, ни удара
		return res
	}

	if !slots.Feature.IsNil() {
		return res // стена
	}

	res.Outcome = MoveFree
	return res
}
