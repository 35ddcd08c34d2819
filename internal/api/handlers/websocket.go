package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"election-monitor/internal/api/interfaces"
	"election-monitor/internal/mockdata"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Origin checking happens in the CORS middleware before upgrade
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WebSocketMessage represents a message sent over WebSocket
type WebSocketMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

// LiveUpdatesWebSocket streams dashboard stats and live agent location
// readings to the client. Stats go out on the configured polling interval;
// location batches arrive from the simulator callback in prototype mode.
func LiveUpdatesWebSocket(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			services.GetLogger().Error("WebSocket upgrade failed", "error", err.Error())
			return
		}
		defer conn.Close()

		services.GetLogger().Info("WebSocket connection established",
			"client_ip", c.ClientIP(), "user_id", c.GetString("user_id"))

		clientChan := make(chan WebSocketMessage, 100)
		go handleWebSocketClient(conn, clientChan, services)

		if sim := services.Simulator(); sim != nil {
			sim.SetReadingsCallback(func(readings []mockdata.AgentLocation) {
				msg := WebSocketMessage{
					Type:      "agent_locations",
					Data:      readings,
					Timestamp: time.Now().Unix(),
				}
				select {
				case clientChan <- msg:
				default:
					// Channel full, drop the batch
				}
			})
			defer sim.SetReadingsCallback(nil)
		}

		sendStats := func() bool {
			stats, err := services.DashboardService().Stats(c.Request.Context())
			if err != nil {
				services.GetLogger().Warning("Stats refresh for WebSocket failed", "error", err.Error())
				return true
			}

			msg := WebSocketMessage{
				Type:      "dashboard_stats",
				Data:      stats,
				Timestamp: time.Now().Unix(),
			}

			select {
			case clientChan <- msg:
				return true
			default:
				services.GetLogger().Warning("WebSocket client channel full")
				return false
			}
		}

		if !sendStats() {
			return
		}

		ticker := time.NewTicker(services.GetConfig().API.PollingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !sendStats() {
					return
				}
			case <-c.Request.Context().Done():
				services.GetLogger().Info("WebSocket client disconnected")
				return
			}
		}
	}
}

// handleWebSocketClient handles a WebSocket client connection
func handleWebSocketClient(conn *websocket.Conn, messageChan <-chan WebSocketMessage, services interfaces.Services) {
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	pingTicker := time.NewTicker(30 * time.Second)
	defer pingTicker.Stop()

	// Drain incoming messages in a separate goroutine
	go func() {
		defer conn.Close()
		for {
			messageType, message, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					services.GetLogger().Error("WebSocket read error", "error", err.Error())
				}
				break
			}

			if messageType == websocket.TextMessage {
				handleWebSocketMessage(message, services)
			}
		}
	}()

	for {
		select {
		case message, ok := <-messageChan:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(message); err != nil {
				services.GetLogger().Error("WebSocket write error", "error", err.Error())
				return
			}

		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleWebSocketMessage processes incoming WebSocket messages
func handleWebSocketMessage(message []byte, services interfaces.Services) {
	var msg map[string]interface{}
	if err := json.Unmarshal(message, &msg); err != nil {
		services.GetLogger().Error("Invalid WebSocket message", "error", err.Error())
		return
	}

	msgType, ok := msg["type"].(string)
	if !ok {
		return
	}

	switch msgType {
	case "ping":
		services.GetLogger().Debug("Received WebSocket ping")
	case "subscribe":
		if topics, ok := msg["topics"].([]interface{}); ok {
			services.GetLogger().Info("Client subscribed to topics", "topics", topics)
		}
	default:
		services.GetLogger().Warning("Unknown WebSocket message type", "type", msgType)
	}
}
