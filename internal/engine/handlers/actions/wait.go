package actions

import (
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/internal/engine/handlers"
)

// HandleWait пропускает ход игрока. NPC при этом ходят как обычно.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	events := ctx.Game.ProcessTurn(domain.WaitCommand())
	return handlers.Result{Events: events}, nil
}
