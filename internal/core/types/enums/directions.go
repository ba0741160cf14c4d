package enums

import "strings"

// Direction — одно из четырёх кардинальных направлений.
//
// Ось Y растёт вниз (север — это y-1), как и везде в движке.
type Direction uint8

const (
	DirectionNorth Direction = iota
	DirectionEast
	DirectionSouth
	DirectionWest
)

// CardinalDirections — фиксированный порядок обхода соседей.
//
// Порядок значим: планировщик NPC разрешает ничьи по первому
// минимальному соседу именно в этом порядке.
var CardinalDirections = [4]Direction{
	DirectionNorth,
	DirectionEast,
	DirectionSouth,
	DirectionWest,
}

var directionToString = map[Direction]string{
	DirectionNorth: "NORTH",
	DirectionEast:  "EAST",
	DirectionSouth: "SOUTH",
	DirectionWest:  "WEST",
}

var directionStringToDirection = map[string]Direction{
	"NORTH": DirectionNorth,
	"EAST":  DirectionEast,
	"SOUTH": DirectionSouth,
	"WEST":  DirectionWest,
}

// Delta возвращает смещение координат на один шаг.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionNorth:
		return 0, -1
	case DirectionEast:
		return 1, 0
	case DirectionSouth:
		return 0, 1
	case DirectionWest:
		return -1, 0
	}
	return 0, 0
}

// String возвращает строковое представление (для логов и дебага)
func (d Direction) String() string {
	if val, ok := directionToString[d]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseDirection конвертирует строку в Enum
func ParseDirection(s string) (Direction, bool) {
	upper := strings.ToUpper(s)
	val, ok := directionStringToDirection[upper]
	return val, ok
}

// DirectionFromDelta подбирает направление по единичному смещению.
//
// Нужен сетевому протоколу: клиенты присылают dx/dy, а не имя.
func DirectionFromDelta(dx, dy int) (Direction, bool) {
	switch {
	case dx == 0 && dy == -1:
		return DirectionNorth, true
	case dx == 1 && dy == 0:
		return DirectionEast, true
	case dx == 0 && dy == 1:
		return DirectionSouth, true
	case dx == -1 && dy == 0:
		return DirectionWest, true
	}
	return DirectionNorth, false
}
