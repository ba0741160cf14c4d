package domain

import "github.com/rpruizc/rustoguelike/internal/core/types/enums"

// CommandKind - внутренний числовой идентификатор команды ядра
type CommandKind uint8

const (
	CommandWait CommandKind = iota
	CommandMove
)

// Command — команда ядра на один ход: подождать или шагнуть.
// Те же значения планировщик возвращает как решения NPC.
type Command struct {
	Kind      CommandKind     `json:"kind"`
	Direction enums.Direction `json:"direction,omitempty"`
}

func WaitCommand() Command {
	return Command{Kind: CommandWait}
}

func MoveCommand(d enums.Direction) Command {
	return Command{Kind: CommandMove, Direction: d}
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (c Command) String() string {
	if c.Kind == CommandMove {
		return "MOVE_" + c.Direction.String()
	}
	return "WAIT"
}
