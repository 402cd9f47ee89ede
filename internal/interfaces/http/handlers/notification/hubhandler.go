// Package notification provides the WebSocket endpoint for ticket events.
package notification

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/realtime"
	"helpdesk/internal/shared/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Should be configured in production
	},
}

// joinMessage is the only inbound control message clients send.
type joinMessage struct {
	Type     string `json:"type"`
	TicketID uint   `json:"ticketId"`
}

const msgTypeJoinTicket = "joinTicket"

// HubHandler handles WebSocket connections for ticket notifications.
type HubHandler struct {
	hub    *realtime.Hub
	logger logger.Interface
}

// NewHubHandler creates a new HubHandler.
func NewHubHandler(hub *realtime.Hub, log logger.Interface) *HubHandler {
	return &HubHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWS handles WebSocket connections from browsers.
// GET /ws
func (h *HubHandler) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorw("failed to upgrade to websocket",
			"error", err,
			"ip", c.ClientIP(),
		)
		return
	}

	client := h.hub.Register(conn)

	// Start read and write pumps
	go h.writePump(conn, client.Send)
	h.readPump(client, conn)
}

// readPump reads control messages from the client WebSocket.
func (h *HubHandler) readPump(client *realtime.ClientConn, conn *websocket.Conn) {
	defer func() {
		h.hub.Unregister(client)
		conn.Close()
	}()

	conn.SetReadLimit(4096)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnw("websocket read error",
					"error", err,
				)
			}
			break
		}

		var msg joinMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			h.logger.Warnw("failed to parse websocket control message",
				"error", err,
			)
			continue
		}

		switch msg.Type {
		case msgTypeJoinTicket:
			if msg.TicketID == 0 {
				continue
			}
			h.hub.JoinRoom(client, ticket.RoomForTicket(msg.TicketID))
		default:
			h.logger.Warnw("unhandled websocket control message type",
				"type", msg.Type,
			)
		}
	}
}

// writePump writes frames to the client WebSocket.
func (h *HubHandler) writePump(conn *websocket.Conn, send chan *realtime.Frame) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case frame, ok := <-send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteJSON(frame); err != nil {
				h.logger.Warnw("failed to write to websocket",
					"error", err,
				)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
