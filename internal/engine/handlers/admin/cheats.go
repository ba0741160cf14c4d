package admin

import (
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/internal/engine/handlers"
	"github.com/rpruizc/rustoguelike/pkg/api"
)

// Читы не тратят ход: NPC на них не реагируют.

func HandleTeleport(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	if !ctx.Game.TeleportPlayer(domain.Coord{X: p.X, Y: p.Y}) {
		return handlers.Result{Msg: "Teleport failed: cell is not enterable", MsgType: "ERROR"}, nil
	}
	return handlers.Result{Msg: "⚡ Teleported", MsgType: "INFO"}, nil
}

func HandleHeal(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Game.HealPlayer() {
		return handlers.Result{Msg: "Nothing left to heal", MsgType: "ERROR"}, nil
	}
	return handlers.Result{Msg: "❤️ Fully Healed", MsgType: "INFO"}, nil
}

func HandleToggleOmni(ctx handlers.Context) (handlers.Result, error) {
	on := !ctx.Game.Omniscient()
	ctx.Game.SetOmniscient(on)

	status := "OFF"
	if on {
		status = "ON"
	}
	return handlers.Result{Msg: "👁️ God Vision toggled " + status, MsgType: "INFO"}, nil
}
