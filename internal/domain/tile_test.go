package domain

import (
	"testing"

	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
)

func TestTile_CorpseTile(t *testing.T) {
	tests := []struct {
		name string
		in   Tile
		want Tile
	}{
		{"Player", PlayerTile(), Tile{Kind: enums.TileKindPlayerCorpse}},
		{"Orc", NpcTile(enums.NpcKindOrc), Tile{Kind: enums.TileKindNpcCorpse, Npc: enums.NpcKindOrc}},
		{"Troll", NpcTile(enums.NpcKindTroll), Tile{Kind: enums.TileKindNpcCorpse, Npc: enums.NpcKindTroll}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.CorpseTile(); got != tt.want {
				t.Errorf("CorpseTile() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTile_CorpseTilePanicsOnWall(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for wall tile")
		}
	}()
	WallTile().CorpseTile()
}

func TestTile_Glyph(t *testing.T) {
	tests := []struct {
		name      string
		tile      Tile
		wantChar  byte
		wantColor uint32
	}{
		{"Floor", FloorTile(), '.', 0x3F3F3F},
		{"Wall", WallTile(), '#', 0x3F7F7F},
		{"Player", PlayerTile(), '@', 0xFFFFFF},
		{"Orc", NpcTile(enums.NpcKindOrc), 'o', 0x00BB00},
		{"Troll", NpcTile(enums.NpcKindTroll), 'T', 0xBB0000},
		{"Orc corpse", Tile{Kind: enums.TileKindNpcCorpse, Npc: enums.NpcKindOrc}, '%', 0x00BB00},
		{"Player corpse", Tile{Kind: enums.TileKindPlayerCorpse}, '%', 0xFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.tile.Glyph()
			if g.Char() != tt.wantChar {
				t.Errorf("Char() = %q, want %q", g.Char(), tt.wantChar)
			}
			if g.Color() != tt.wantColor {
				t.Errorf("Color() = 0x%06X, want 0x%06X", g.Color(), tt.wantColor)
			}
		})
	}
}

func TestTile_GlyphUnknownIsVisible(t *testing.T) {
	g := Tile{}.Glyph()
	if g == types.MakeGlyph(0, 0) {
		t.Error("unknown tile must render as a visible marker, not an empty glyph")
	}
}

func TestTile_String(t *testing.T) {
	tests := []struct {
		tile Tile
		want string
	}{
		{WallTile(), "WALL"},
		{NpcTile(enums.NpcKindOrc), "NPC(ORC)"},
		{Tile{Kind: enums.TileKindNpcCorpse, Npc: enums.NpcKindTroll}, "NPC_CORPSE(TROLL)"},
	}

	for _, tt := range tests {
		if got := tt.tile.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
