package http_transcript

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moviemind/core/internal/model"
)

// TurnDTO is one archived exchange; the assistant text is the annotated
// reply the user originally saw.
type TurnDTO struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

type TranscriptResponseDTO struct {
	SessionID string    `json:"session_id"`
	Turns     []TurnDTO `json:"turns"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

func ConvertFromTurns(turns []model.ConversationTurn) []TurnDTO {
	out := make([]TurnDTO, len(turns))
	for i, t := range turns {
		out[i] = TurnDTO{User: t.User, Assistant: t.Assistant}
	}
	return out
}

type TranscriptReader interface {
	BySession(ctx context.Context, sessionID model.SessionID) ([]model.ConversationTurn, error)
}

type Controller struct {
	reader TranscriptReader

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(reader TranscriptReader, opts ...ControllerOption) *Controller {
	c := &Controller{
		reader: reader,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/transcripts/:session_id", c.bySession)
}

func (c *Controller) bySession(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")

	turns, err := c.reader.BySession(ctx.Request.Context(), sessionID)
	if err != nil {
		c.logger.Error("failed to load transcript",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to load transcript",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, TranscriptResponseDTO{
		SessionID: sessionID,
		Turns:     ConvertFromTurns(turns),
	})
}
