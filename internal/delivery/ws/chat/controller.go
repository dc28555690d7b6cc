package ws_chat

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/moviemind/core/internal/model"
)

type Controller struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewController(hub *Hub, logger *slog.Logger) *Controller {
	return &Controller{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

func (c *Controller) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/chat/ws", c.serve)
}

func (c *Controller) serve(ctx *gin.Context) {
	sessionID := ctx.Query("session_id")
	if sessionID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	client := &Client{
		Hub:       c.hub,
		Conn:      conn,
		Send:      make(chan []byte, 8),
		SessionID: model.SessionID(sessionID),
	}

	c.hub.RegisterClient(client)
	go c.hub.StartClientWriting(client)
	go c.hub.StartClientReading(client)
}
