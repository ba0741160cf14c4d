package domain

import (
	"fmt"

	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
)

// Tile — то, что рендер рисует для сущности.
// Для NPC и их трупов поле Npc уточняет разновидность.
type Tile struct {
	Kind enums.TileKind `json:"kind"`
	Npc  enums.NpcKind  `json:"npc,omitempty"`
}

func FloorTile() Tile {
	return Tile{Kind: enums.TileKindFloor}
}

func WallTile() Tile {
	return Tile{Kind: enums.TileKindWall}
}

func NpcTile(kind enums.NpcKind) Tile {
	return Tile{Kind: enums.TileKindNpc, Npc: kind}
}

func PlayerTile() Tile {
	return Tile{Kind: enums.TileKindPlayer}
}

// IsZero сообщает, что тайл не задан.
func (t Tile) IsZero() bool {
	return t.Kind == enums.TileKindUnknown
}

// CorpseTile конвертирует тайл персонажа в тайл его трупа.
// Паникует для тайлов, у которых трупа быть не может.
func (t Tile) CorpseTile() Tile {
	switch t.Kind {
	case enums.TileKindPlayer:
		return Tile{Kind: enums.TileKindPlayerCorpse}
	case enums.TileKindNpc:
		return Tile{Kind: enums.TileKindNpcCorpse, Npc: t.Npc}
	}
	panic(fmt.Sprintf("unexpected tile on character: %s", t))
}

// Glyph возвращает упакованный глиф тайла: символ плюс цвет.
//
// Палитра фиксированная: пол тусклый серый, стены бирюзовые,
// игрок белый, орки зелёные, тролли красные, трупы — '%' цвета владельца.
func (t Tile) Glyph() types.Glyph {
	switch t.Kind {
	case enums.TileKindFloor:
		return types.MakeGlyph(0x3F3F3F, '.')
	case enums.TileKindWall:
		return types.MakeGlyph(0x3F7F7F, '#')
	case enums.TileKindPlayer:
		return types.MakeGlyph(0xFFFFFF, '@')
	case enums.TileKindPlayerCorpse:
		return types.MakeGlyph(0xFFFFFF, '%')
	case enums.TileKindNpc:
		switch t.Npc {
		case enums.NpcKindOrc:
			return types.MakeGlyph(0x00BB00, 'o')
		case enums.NpcKindTroll:
			return types.MakeGlyph(0xBB0000, 'T')
		}
	case enums.TileKindNpcCorpse:
		switch t.Npc {
		case enums.NpcKindOrc:
			return types.MakeGlyph(0x00BB00, '%')
		case enums.NpcKindTroll:
			return types.MakeGlyph(0xBB0000, '%')
		}
	}
	// Неизвестный тайл заметен сразу
	return types.MakeGlyph(0xFF00FF, '?')
}

// String возвращает представление для логов: "NPC(ORC)", "WALL".
func (t Tile) String() string {
	switch t.Kind {
	case enums.TileKindNpc, enums.TileKindNpcCorpse:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Npc)
	}
	return t.Kind.String()
}
