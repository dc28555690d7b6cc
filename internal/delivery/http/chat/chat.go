package http_chat

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	ws_chat "github.com/moviemind/core/internal/delivery/ws/chat"
	"github.com/moviemind/core/internal/model"
	"github.com/moviemind/core/internal/service/formatter"
)

// ChatRequestDTO is one user message. A missing session_id starts a new
// conversation.
type ChatRequestDTO struct {
	SessionID string `json:"session_id" example:"7b7a3f6e-9f0c-4a7e-8f9d-2f1f3c7d9a10"`
	Message   string `json:"message" binding:"required" example:"something mind-bending like Inception"`
}

type PosterDTO struct {
	Title string `json:"title" example:"Inception"`
	URL   string `json:"url" example:"https://image.tmdb.org/t/p/w500/poster.jpg"`
}

type ChatResponseDTO struct {
	SessionID   string      `json:"session_id"`
	Reply       string      `json:"reply"`
	Posters     []PosterDTO `json:"posters"`
	GalleryHTML string      `json:"gallery_html,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

func ConvertFromGallery(cards []model.PosterCard) []PosterDTO {
	posters := make([]PosterDTO, len(cards))
	for i, card := range cards {
		posters[i] = PosterDTO{Title: card.Title, URL: card.URL}
	}
	return posters
}

type Recommender interface {
	GetResponse(ctx context.Context, userID model.UserID, sessionID model.SessionID, message string) string
}

type Controller struct {
	uc  Recommender
	hub *ws_chat.Hub

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithHub enables push delivery of finished replies over WebSocket.
func WithHub(hub *ws_chat.Hub) ControllerOption {
	return func(c *Controller) {
		c.hub = hub
	}
}

func New(uc Recommender, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", c.chat)
}

func (c *Controller) chat(ctx *gin.Context) {
	var req ChatRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid chat request", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	annotated := c.uc.GetResponse(ctx.Request.Context(), model.DefaultUserID, sessionID, req.Message)
	payload := formatter.Format(annotated)
	galleryHTML := RenderGalleryHTML(payload.Gallery)

	if c.hub != nil {
		c.hub.NotifyReply(sessionID, payload, galleryHTML)
	}

	ctx.JSON(http.StatusOK, ChatResponseDTO{
		SessionID:   sessionID,
		Reply:       payload.CleanText,
		Posters:     ConvertFromGallery(payload.Gallery),
		GalleryHTML: galleryHTML,
	})
}
