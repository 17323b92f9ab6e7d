package server

import (
	"context"
	"net/http"
	"time"

	"rogue-engine/internal/engine"
	"rogue-engine/pkg/api"
	"rogue-engine/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
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
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService.
// Одно соединение - один инстанс (одна партия).
type Client struct {
	Game  *engine.GameService
	Conn  *websocket.Conn
	Send  chan api.ServerResponse
	Token string

	// done закрывается, когда writePump вышел: слать в Send больше некому.
	done chan struct{}
	ctx  context.Context
	log  *logrus.Entry
}

func NewClient(ctx context.Context, game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game: game,
		Conn: conn,
		Send: make(chan api.ServerResponse, 256),
		done: make(chan struct{}),
		ctx:  ctx,
		log:  logger.Log.WithField("component", "ws_client"),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		if c.Token != "" {
			c.Game.Remove(c.Token)
			c.log.WithField("instance_id", c.Token).Info("Client disconnected")
		}
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE: первая команда создает партию
	var first api.ClientCommand
	if err := c.Conn.ReadJSON(&first); err != nil {
		c.log.WithError(err).Warn("Handshake failed")
		close(c.Send)
		return
	}

	inst, updates := c.Game.CreateInstance(c.ctx)
	c.Token = inst.ID
	c.log = c.log.WithField("instance_id", c.Token)
	c.log.Info("Client logged in")

	// 2. Пересылка снимков из Hub в writePump
	go func() {
		defer close(c.Send)
		for msg := range updates {
			select {
			case c.Send <- msg:
			case <-c.done:
				return
			}
		}
	}()

	c.dispatch(first)

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.WithError(err).Warn("WS read error")
			}
			return
		}
		c.dispatch(cmd)
	}
}

func (c *Client) dispatch(cmd api.ClientCommand) {
	cmd.Token = c.Token
	if err := c.Game.ProcessCommand(c.Token, cmd); err != nil {
		c.log.WithError(err).WithField("action", cmd.Action).Debug("Command rejected")
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				// Партия закончилась или удалена
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed")
				if err := c.Conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
