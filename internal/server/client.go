package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/th3w1zard1/Andastra-sub005/internal/network"
	"github.com/th3w1zard1/Andastra-sub005/pkg/api"
	"github.com/th3w1zard1/Andastra-sub005/pkg/logger"
	"github.com/th3w1zard1/Andastra-sub005/pkg/utils"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - одно WebSocket-подключение наблюдателя.
// Наблюдатель получает кадры симуляции, но не управляет ею.
type Client struct {
	Hub       *network.Broadcaster
	Conn      *websocket.Conn
	Send      chan api.ServerResponse
	WatcherID string
}

func NewClient(hub *network.Broadcaster, conn *websocket.Conn) *Client {
	return &Client{
		Hub:  hub,
		Conn: conn,
		Send: make(chan api.ServerResponse, 256),
	}
}

// readPump держит соединение живым и реагирует на отключение
func (c *Client) readPump() {
	defer func() {
		if c.WatcherID != "" {
			c.Hub.Unregister(c.WatcherID)
			logger.Log.WithField("watcher_id", c.WatcherID).Info("Watcher disconnected")
		}
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE (WATCH)
	var cmd api.ClientCommand
	if err := c.Conn.ReadJSON(&cmd); err != nil {
		logger.Log.Warn("Handshake failed")
		return
	}
	if cmd.Action != "WATCH" {
		logger.Log.WithField("action", cmd.Action).Warn("Unknown handshake action")
		return
	}

	c.WatcherID = cmd.Token
	if c.WatcherID == "" {
		c.WatcherID = utils.GenerateID()
	}

	logger.Log.WithFields(logrus.Fields{
		"watcher_id": c.WatcherID,
	}).Info("Watcher connected")

	// 2. ПОДПИСКА НА КАДРЫ
	frames := c.Hub.Register(c.WatcherID)
	go c.forwardFrames(frames)

	// 3. ЦИКЛ ЧТЕНИЯ
	// Команды игнорируются, читаем только ради ping/pong и закрытия.
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
	}
}

// forwardFrames перекачивает кадры подписки в канал отправителя.
// Отправка неблокирующая: захлебнувшийся writePump теряет кадры,
// зато горутина гарантированно завершается вместе с подпиской
// (Unregister закрывает frames), даже если writePump уже умер.
func (c *Client) forwardFrames(frames <-chan api.ServerResponse) {
	defer close(c.Send)
	for msg := range frames {
		select {
		case c.Send <- msg:
		default:
		}
	}
}

// writePump отправляет кадры клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
