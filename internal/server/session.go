package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/internal/engine"
	"github.com/rpruizc/rustoguelike/internal/engine/handlers"
	"github.com/rpruizc/rustoguelike/internal/engine/handlers/actions"
	"github.com/rpruizc/rustoguelike/internal/engine/handlers/admin"
	"github.com/rpruizc/rustoguelike/pkg/api"
	"github.com/rpruizc/rustoguelike/pkg/logger"
)

// Session - приватная одиночная партия одного подключения.
//
// Каждый клиент получает собственный мир: общий стейт между
// подключениями не разделяется. Команды сессии выполняются строго
// последовательно под mu, поэтому ядро остается однопоточным.
type Session struct {
	ID      string
	Started time.Time

	mu       sync.Mutex
	game     *engine.Game
	handlers map[domain.ActionType]handlers.HandlerFunc
}

func NewSession(id string, game *engine.Game) *Session {
	s := &Session{
		ID:       id,
		Started:  time.Now(),
		game:     game,
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	s.registerHandlers()
	return s
}

func (s *Session) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)

	// Читы: доступны без отдельной авторизации, партия-то своя
	s.handlers[domain.ActionTeleport] = handlers.WithPayload(admin.HandleTeleport)
	s.handlers[domain.ActionHeal] = handlers.WithEmptyPayload(admin.HandleHeal)
	s.handlers[domain.ActionOmniscient] = handlers.WithEmptyPayload(admin.HandleToggleOmni)
}

// Execute выполняет команду клиента и собирает ответный снимок мира.
// Любой исход дает снимок: даже на мусорный ввод клиент получает
// актуальное состояние с записью об ошибке в логе.
func (s *Session) Execute(cmd api.ClientCommand) *api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionLogger := logger.Log.WithFields(logrus.Fields{
		"component":  "session",
		"session_id": s.ID,
		"action":     cmd.Action,
	})

	action := domain.ParseAction(cmd.Action)
	handler, ok := s.handlers[action]
	if !ok {
		sessionLogger.Warn("Unknown action received.")
		return s.game.BuildState("UPDATE", []api.LogEntry{
			newLogEntry(fmt.Sprintf("Unknown action: %s", cmd.Action), "ERROR"),
		})
	}

	result, err := handler(handlers.Context{Game: s.game}, cmd.Payload)
	if err != nil {
		sessionLogger.WithError(err).Warn("Command rejected.")
		return s.game.BuildState("UPDATE", []api.LogEntry{
			newLogEntry(err.Error(), "ERROR"),
		})
	}

	logs := engine.LogEntriesFromEvents(result.Events)
	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		logs = append(logs, newLogEntry(result.Msg, msgType))
	}

	msgType := "UPDATE"
	if action == domain.ActionInit {
		msgType = "INIT"
	}
	return s.game.BuildState(msgType, logs)
}

// Snapshot отдает состояние без выполнения команды. Для debug-ручек.
func (s *Session) Snapshot() *api.ServerResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.BuildState("UPDATE", nil)
}

// Summary — краткая сводка для списка сессий.
type Summary struct {
	ID          string    `json:"id"`
	Turn        uint64    `json:"turn"`
	Seed        int64     `json:"seed"`
	PlayerAlive bool      `json:"player_alive"`
	Entities    int       `json:"entities"`
	Started     time.Time `json:"started"`
}

func (s *Session) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summary{
		ID:          s.ID,
		Turn:        s.game.Turn(),
		Seed:        s.game.Seed(),
		PlayerAlive: s.game.IsPlayerAlive(),
		Entities:    s.game.World().Components.Tiles.Len(),
		Started:     s.Started,
	}
}

// RenderAscii отдает карту сессии в виде строк, как её помнит игрок.
// Невиданные клетки - пробел, персонажи рисуются поверх статики.
func (s *Session) RenderAscii() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.game.Size()
	rows := make([][]rune, size.Height)
	for y := range rows {
		rows[y] = make([]rune, size.Width)
		for x := range rows[y] {
			c := domain.Coord{X: x, Y: y}
			rows[y][x] = ' '
			if s.game.VisibilityAt(c) == enums.VisibilityNever {
				continue
			}
			if tile, ok := s.game.RememberedTile(c); ok {
				rows[y][x] = rune(tile.Glyph().Char())
			}
		}
	}

	// Живые персонажи поверх статики, только в прямой видимости
	for _, r := range s.game.Renderables() {
		if r.Location.Layer != enums.LayerCharacter || r.Visibility != enums.VisibilityCurrently {
			continue
		}
		c := r.Location.Coord
		rows[c.Y][c.X] = rune(r.Tile.Glyph().Char())
	}

	out := make([]string, size.Height)
	for y, row := range rows {
		out[y] = string(row)
	}
	return out
}

func newLogEntry(text, msgType string) api.LogEntry {
	return api.LogEntry{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Text:      text,
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
	}
}
