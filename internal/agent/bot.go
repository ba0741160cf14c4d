package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rpruizc/rustoguelike/pkg/api"
	"github.com/rpruizc/rustoguelike/pkg/logger"
)

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Это ВНЕШНИЙ клиент, который подключается к серверу так же, как обычный
// игрок через WebSocket: никакого доступа к движку, только кадры состояния
// и команды в ответ.
//
// Жизненный цикл:
//  1. NewBot -> конфигурация (адрес, число ходов, пауза между ходами).
//  2. Run -> dial /ws, чтение первого кадра (INIT).
//  3. На каждый кадр makeMove: восстановить локальную карту, найти цель,
//     отправить MOVE или WAIT. Сервер отвечает ровно одним кадром на команду,
//     поэтому цикл работает в lockstep.
//  4. Выход: лимит ходов, гибель игрока или обрыв соединения.
type Bot struct {
	URL   string        // ws://host:port/ws
	Moves int           // сколько ходов сделать до отключения
	Delay time.Duration // пауза между ходами, чтобы за ботом можно было наблюдать

	rng  *rand.Rand
	conn *websocket.Conn
}

func NewBot(url string, moves int, delay time.Duration, seed int64) *Bot {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Bot{
		URL:   url,
		Moves: moves,
		Delay: delay,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Run проигрывает партию и возвращает ошибку только при проблемах связи.
// Гибель игрока — штатный исход, а не ошибка.
func (b *Bot) Run(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, b.URL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", b.URL, err)
	}
	b.conn = conn
	defer conn.Close()

	logger.Log.WithField("url", b.URL).Info("🤖 Bot connected")

	for turn := 0; turn < b.Moves; turn++ {
		var state api.ServerResponse
		if err := conn.ReadJSON(&state); err != nil {
			return fmt.Errorf("read state: %w", err)
		}

		for _, entry := range state.Logs {
			logger.Log.WithField("turn", state.Turn).Info(entry.Text)
		}

		if !state.PlayerAlive {
			logger.Log.WithField("turn", state.Turn).Info("🤖 Bot died. Disconnecting.")
			return b.closePolitely()
		}

		// Пауза между ходами. Контекст обрывает ожидание мгновенно.
		select {
		case <-ctx.Done():
			return b.closePolitely()
		case <-time.After(b.Delay):
		}

		if err := b.makeMove(state); err != nil {
			return err
		}
	}

	logger.Log.WithField("moves", b.Moves).Info("🤖 Bot finished its run")
	return b.closePolitely()
}

// makeMove — мозг бота. Анализирует кадр состояния и отправляет одну команду.
func (b *Bot) makeMove(state api.ServerResponse) error {
	// --- ШАГ 1: ВОССТАНОВЛЕНИЕ ЛОКАЛЬНОЙ КАРТИНЫ МИРА ---
	// Сервер присылает только разведанные клетки. Всё остальное бот считает
	// стеной, чтобы не строить маршруты в неизвестность.
	grid := b.buildLocalMap(state)

	// --- ШАГ 2: ПОИСК АКТОРОВ В DTO ---
	me, target := findActors(state)
	if me == nil {
		// Себя не видно: кадр без игрока. Бывает только на битых данных.
		logger.Log.Warn("Bot is not present in the state frame. Waiting.")
		return b.sendWait()
	}

	// --- ШАГ 3: ВЫБОР ХОДА ---
	// Видим NPC: шаг в его сторону (соседство означает удар).
	// Никого не видим: случайный шаг по разведанному полу.
	if target != nil {
		if dx, dy, ok := chaseStep(grid, me, target); ok {
			return b.sendMove(dx, dy)
		}
	}
	if dx, dy, ok := b.exploreStep(grid, me); ok {
		return b.sendMove(dx, dy)
	}
	return b.sendWait()
}

// localMap — проходимость разведанной части карты. Ключ: упакованная координата.
type localMap struct {
	width, height int
	walkable      map[int]bool
}

func (m localMap) passable(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.walkable[y*m.width+x]
}

func (b *Bot) buildLocalMap(state api.ServerResponse) localMap {
	m := localMap{width: 50, height: 50, walkable: make(map[int]bool)}
	if state.Grid != nil {
		m.width, m.height = state.Grid.Width, state.Grid.Height
	}
	for _, tv := range state.Map {
		// Стены непроходимы, пол и трупы — проходимы.
		m.walkable[tv.Y*m.width+tv.X] = tv.Symbol != "#"
	}
	return m
}

// findActors ищет в кадре себя (PLAYER) и ближайшего видимого NPC.
func findActors(state api.ServerResponse) (me, target *api.EntityView) {
	for i := range state.Entities {
		if state.Entities[i].Type == "PLAYER" {
			me = &state.Entities[i]
			break
		}
	}
	if me == nil {
		return nil, nil
	}
	for i := range state.Entities {
		ev := &state.Entities[i]
		if ev.Type != "NPC" {
			continue
		}
		if target == nil || manhattan(me, ev) < manhattan(me, target) {
			target = ev
		}
	}
	return me, target
}

func manhattan(a, b *api.EntityView) int {
	dx := a.Pos.X - b.Pos.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Pos.Y - b.Pos.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// chaseStep выбирает кардинальный шаг в сторону цели.
// Сначала пробует ось с большей дистанцией. Шаг прямо в клетку цели
// разрешён всегда: это и есть удар.
func chaseStep(grid localMap, me, target *api.EntityView) (dx, dy int, ok bool) {
	stepX, stepY := 0, 0
	distX := target.Pos.X - me.Pos.X
	distY := target.Pos.Y - me.Pos.Y
	if distX > 0 {
		stepX = 1
	} else if distX < 0 {
		stepX = -1
	}
	if distY > 0 {
		stepY = 1
	} else if distY < 0 {
		stepY = -1
	}

	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}

	candidates := [][2]int{{stepX, 0}, {0, stepY}}
	if abs(distY) > abs(distX) {
		candidates[0], candidates[1] = candidates[1], candidates[0]
	}

	for _, c := range candidates {
		if c[0] == 0 && c[1] == 0 {
			continue
		}
		nx, ny := me.Pos.X+c[0], me.Pos.Y+c[1]
		if nx == target.Pos.X && ny == target.Pos.Y {
			return c[0], c[1], true
		}
		if grid.passable(nx, ny) {
			return c[0], c[1], true
		}
	}
	return 0, 0, false
}

// exploreStep выбирает случайное проходимое направление.
func (b *Bot) exploreStep(grid localMap, me *api.EntityView) (dx, dy int, ok bool) {
	dirs := [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	b.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	for _, d := range dirs {
		if grid.passable(me.Pos.X+d[0], me.Pos.Y+d[1]) {
			return d[0], d[1], true
		}
	}
	return 0, 0, false
}

// --- Хелперы для отправки команд на сервер ---

func (b *Bot) sendCommand(action string, payload interface{}) error {
	cmd := api.ClientCommand{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		cmd.Payload = raw
	}
	if err := b.conn.WriteJSON(cmd); err != nil {
		return fmt.Errorf("send %s: %w", action, err)
	}
	return nil
}

func (b *Bot) sendMove(dx, dy int) error {
	return b.sendCommand("MOVE", api.DirectionPayload{Dx: dx, Dy: dy})
}

func (b *Bot) sendWait() error {
	return b.sendCommand("WAIT", nil)
}

// closePolitely выполняет штатный close handshake, чтобы сервер
// не записывал обрыв в лог как ошибку.
func (b *Bot) closePolitely() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	deadline := time.Now().Add(time.Second)
	_ = b.conn.WriteControl(websocket.CloseMessage, msg, deadline)
	return nil
}
