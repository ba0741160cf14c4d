package actions

import "github.com/rpruizc/rustoguelike/internal/engine/handlers"

// HandleInit ничего не симулирует: это приветствие первого кадра.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Welcome to the dungeon. Arrow keys to move, space to wait.",
		MsgType: "INFO",
	}, nil
}
