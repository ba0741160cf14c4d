package actions

import (
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/internal/engine/handlers"
	"github.com/rpruizc/rustoguelike/pkg/api"
)

// HandleMove превращает сетевой вектор в шаг игрока и прокручивает ход.
// Заблокированный шаг - тихий no-op, но ход он всё равно тратит:
// NPC своё отыграют.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	dir, ok := enums.DirectionFromDelta(p.Dx, p.Dy)
	if !ok {
		// Валидатор такое не пропускает, но хендлер обязан быть глух к мусору
		return handlers.EmptyResult(), nil
	}

	events := ctx.Game.ProcessTurn(domain.MoveCommand(dir))
	return handlers.Result{Events: events}, nil
}
