package engine

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/pkg/api"
)

// BuildState создает персональный "снимок" мира для клиента: только
// разведанные клетки, только видимые сейчас персонажи.
//
// Статичные слои (пол, стены, трупы) идут в Map по памяти игрока,
// персонажи - отдельным списком Entities поверх карты.
func (g *Game) BuildState(msgType string, logs []api.LogEntry) *api.ServerResponse {
	size := g.Size()

	resp := &api.ServerResponse{
		Type:        msgType,
		Turn:        g.turn,
		PlayerAlive: g.IsPlayerAlive(),
		Grid:        &api.GridMeta{Width: size.Width, Height: size.Height},
		Logs:        logs,
	}

	// 1. Формирование карты (Map DTO)
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			c := domain.Coord{X: x, Y: y}

			state := g.visibility.StateAt(c)
			if state == enums.VisibilityNever {
				continue
			}
			tile, ok := g.RememberedTile(c)
			if !ok {
				continue
			}

			glyph := tile.Glyph()
			resp.Map = append(resp.Map, api.TileView{
				X: x, Y: y,
				Symbol:     string(rune(glyph.Char())),
				Color:      glyph.HexColor(),
				IsVisible:  state == enums.VisibilityCurrently,
				IsExplored: true,
			})
		}
	}

	// 2. Формирование списка сущностей (Entities DTO).
	// Только слой Character: трупы уже лежат в карте как статика.
	g.world.Components.Tiles.ForEach(func(id types.EntityID, tile *domain.Tile) {
		loc, ok := g.world.Spatial.LocationOf(id)
		if !ok || loc.Layer != enums.LayerCharacter {
			return
		}
		if g.visibility.StateAt(loc.Coord) != enums.VisibilityCurrently {
			return
		}
		resp.Entities = append(resp.Entities, g.toEntityView(id, *tile, loc.Coord))
	})

	return resp
}

// toEntityView конвертирует доменную сущность в DTO для отправки клиенту.
func (g *Game) toEntityView(id types.EntityID, tile domain.Tile, c domain.Coord) api.EntityView {
	view := api.EntityView{
		ID: strconv.FormatUint(uint64(id), 10),
	}
	view.Pos.X = c.X
	view.Pos.Y = c.Y

	glyph := tile.Glyph()
	view.Render.Symbol = string(rune(glyph.Char()))
	view.Render.Color = glyph.HexColor()

	if id == g.player {
		view.Type = "PLAYER"
		view.Name = "Player"
	} else {
		view.Type = "NPC"
		view.Name = tile.Npc.String()
	}

	if hp, ok := g.world.Components.HitPoints.Get(id); ok {
		view.Hp = &api.HpView{Current: hp.Current, Max: hp.Max}
	}

	return view
}

// LogEntriesFromEvents конвертирует события хода в записи игрового лога.
func LogEntriesFromEvents(events []domain.Event) []api.LogEntry {
	if len(events) == 0 {
		return nil
	}
	entries := make([]api.LogEntry, 0, len(events))
	for _, ev := range events {
		entries = append(entries, api.LogEntry{
			ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
			Text:      ev.Text,
			Type:      logTypeFor(ev.Type),
			Timestamp: time.Now().UnixMilli(),
		})
	}
	return entries
}

func logTypeFor(t domain.EventType) string {
	switch t {
	case domain.EventAttack, domain.EventDeath:
		return "COMBAT"
	}
	return "INFO"
}

