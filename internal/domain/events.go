package domain

import (
	"strings"

	"github.com/rpruizc/rustoguelike/internal/core/types"
)

// EventType - Внутренний числовой идентификатор события
type EventType uint8

// Event types constants
const (
	EventUnknown EventType = iota
	EventAttack
	EventDeath
)

// Маппинг для конвертации JSON -> Domain
var eventStringToCmd = map[string]EventType{
	"ATTACK": EventAttack,
	"DEATH":  EventDeath,
}

// Маппинг для логов Domain -> String
var eventCmdToString = map[EventType]string{
	EventAttack: "ATTACK",
	EventDeath:  "DEATH",
}

// ParseEvent конвертирует строку из JSON в EventType
func ParseEvent(s string) EventType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := eventStringToCmd[upper]; ok {
		return val
	}
	return EventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a EventType) String() string {
	if val, ok := eventCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Event — боевое событие одного хода. Накопленный за ход список
// отдаётся вызывающему, журнал событий строится из него.
type Event struct {
	Type   EventType      `json:"type"`
	Actor  types.EntityID `json:"actor"`
	Target types.EntityID `json:"target,omitempty"`
	Text   string         `json:"text"`
}

func AttackEvent(actor, target types.EntityID, text string) Event {
	return Event{Type: EventAttack, Actor: actor, Target: target, Text: text}
}

// DeathEvent фиксирует гибель. Target — погибший, как и в AttackEvent.
func DeathEvent(target types.EntityID, text string) Event {
	return Event{Type: EventDeath, Target: target, Text: text}
}
