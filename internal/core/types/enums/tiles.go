package enums

import "strings"

// TileKind — вид содержимого клетки, который видит рендер.
type TileKind uint8

const (
	TileKindUnknown TileKind = iota
	TileKindFloor
	TileKindWall
	TileKindNpc
	TileKindNpcCorpse
	TileKindPlayer
	TileKindPlayerCorpse
)

var tileKindToString = map[TileKind]string{
	TileKindFloor:        "FLOOR",
	TileKindWall:         "WALL",
	TileKindNpc:          "NPC",
	TileKindNpcCorpse:    "NPC_CORPSE",
	TileKindPlayer:       "PLAYER",
	TileKindPlayerCorpse: "PLAYER_CORPSE",
}

var tileKindStringToKind = map[string]TileKind{
	"FLOOR":         TileKindFloor,
	"WALL":          TileKindWall,
	"NPC":           TileKindNpc,
	"NPC_CORPSE":    TileKindNpcCorpse,
	"PLAYER":        TileKindPlayer,
	"PLAYER_CORPSE": TileKindPlayerCorpse,
}

// String возвращает строковое представление (для логов и дебага)
func (k TileKind) String() string {
	if val, ok := tileKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseTileKind конвертирует строку в Enum (нужно для загрузки шаблонов/конфигов)
func ParseTileKind(s string) TileKind {
	upper := strings.ToUpper(s)
	if val, ok := tileKindStringToKind[upper]; ok {
		return val
	}
	return TileKindUnknown
}

// NpcKind — разновидность NPC. Определяет глиф, здоровье и вид трупа.
type NpcKind uint8

const (
	NpcKindUnknown NpcKind = iota
	NpcKindOrc
	NpcKindTroll
)

var npcKindToString = map[NpcKind]string{
	NpcKindOrc:   "ORC",
	NpcKindTroll: "TROLL",
}

var npcKindStringToKind = map[string]NpcKind{
	"ORC":   NpcKindOrc,
	"TROLL": NpcKindTroll,
}

func (k NpcKind) String() string {
	if val, ok := npcKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseNpcKind(s string) NpcKind {
	upper := strings.ToUpper(s)
	if val, ok := npcKindStringToKind[upper]; ok {
		return val
	}
	return NpcKindUnknown
}
