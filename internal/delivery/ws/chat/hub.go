package ws_chat

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/moviemind/core/internal/model"
)

type MessageType string

const (
	ReplyPosted MessageType = "reply_posted"
)

type Message struct {
	Type      MessageType            `json:"type"`
	SessionID string                 `json:"session_id"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

type Client struct {
	Hub       *Hub
	Conn      *websocket.Conn
	Send      chan []byte
	SessionID model.SessionID
}

// Hub pushes completed replies to the browsers subscribed to a session,
// so the transcript and poster panel update without polling.
type Hub struct {
	mu sync.RWMutex

	// Set of clients subscribed to each chat session
	sessions map[model.SessionID]map[*Client]bool

	logger *slog.Logger
}

func New(logger *slog.Logger) *Hub {
	return &Hub{
		sessions: make(map[model.SessionID]map[*Client]bool),
		logger:   logger,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[client.SessionID]; !ok {
		h.sessions[client.SessionID] = make(map[*Client]bool)
	}
	h.sessions[client.SessionID][client] = true

	h.logger.Info("client registered", "session_id", client.SessionID)
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if session, ok := h.sessions[client.SessionID]; ok {
		delete(session, client)
		if len(session) == 0 {
			delete(h.sessions, client.SessionID)
		}
	}
	h.logger.Info("client unregistered", "session_id", client.SessionID)
}

func (h *Hub) BroadcastToSession(sessionID model.SessionID, message Message) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal message", "session_id", sessionID, "error", err)
		return
	}

	// Full lock: eviction mutates the session map and closes Send, which
	// must not race with a concurrent broadcast to the same session.
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.sessions[sessionID]; ok {
		for client := range clients {
			select {
			case client.Send <- messageBytes:
			default:
				close(client.Send)
				delete(clients, client)
			}
		}
		if len(clients) == 0 {
			delete(h.sessions, sessionID)
		}
	}
}

// NotifyReply pushes a finished exchange to the session's subscribers.
func (h *Hub) NotifyReply(sessionID model.SessionID, payload model.DisplayPayload, galleryHTML string) {
	h.BroadcastToSession(sessionID, Message{
		Type:      ReplyPosted,
		SessionID: sessionID,
		Data: map[string]interface{}{
			"reply":        payload.CleanText,
			"posters":      payload.Gallery,
			"gallery_html": galleryHTML,
		},
	})
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.Conn.Close()
	}()

	for {
		_, _, err := client.Conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			break
		}
	}
}
