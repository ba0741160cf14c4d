package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rpruizc/rustoguelike/pkg/api"
	"github.com/rpruizc/rustoguelike/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket-соединением и сессией.
// Все команды соединения выполняются из readPump, по одной.
type Client struct {
	session  *Session
	registry *Registry
	conn     *websocket.Conn
	send     chan *api.ServerResponse
}

func NewClient(session *Session, registry *Registry, conn *websocket.Conn) *Client {
	return &Client{
		session:  session,
		registry: registry,
		conn:     conn,
		send:     make(chan *api.ServerResponse, 64),
	}
}

// readPump читает команды клиента и исполняет их в сессии.
// Смерть соединения хоронит и сессию: мир живет ровно одно подключение.
func (c *Client) readPump() {
	defer func() {
		c.registry.Remove(c.session.ID)
		close(c.send)
		if err := c.conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("Websocket close failed in readPump.")
		}
		logger.Log.WithField("session_id", c.session.ID).Info("Client disconnected. Session dropped.")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("Failed to set read deadline.")
	}
	c.conn.SetPongHandler(func(string) error {
		if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("Failed to set pong read deadline.")
		}
		return nil
	})

	// Первый кадр клиент получает сразу, не спрашивая
	c.enqueue(c.session.Execute(api.ClientCommand{Action: "INIT"}))

	for {
		var cmd api.ClientCommand
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				logger.Log.WithError(err).Error("Websocket read failed.")
			}
			return
		}
		c.enqueue(c.session.Execute(cmd))
	}
}

// enqueue кладет ответ в очередь отправки. Медленный клиент теряет
// промежуточные кадры, но не подвешивает чтение команд.
func (c *Client) enqueue(resp *api.ServerResponse) {
	select {
	case c.send <- resp:
	default:
		logger.Log.WithField("session_id", c.session.ID).Warn("Send queue full. Frame dropped.")
	}
}

// writePump отправляет кадры клиенту и поддерживает соединение пингами.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("Websocket close failed in writePump.")
		}
	}()

	for {
		select {
		case resp, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("Failed to set write deadline.")
			}
			if !ok {
				if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("Write close message failed.")
				}
				return
			}
			if err := c.conn.WriteJSON(resp); err != nil {
				logger.Log.WithError(err).Debug("Write json message failed.")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("Failed to set ping write deadline.")
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("Ping failed.")
				return
			}
		}
	}
}
