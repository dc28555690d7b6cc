package http_favorites

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moviemind/core/internal/model"
)

// FavoriteRequestDTO names the movie to save.
type FavoriteRequestDTO struct {
	Title string `json:"title" binding:"required" example:"Inception"`
}

// StatusResponseDTO carries the short human-readable status line shown in
// the favorites panel.
type StatusResponseDTO struct {
	Status    string   `json:"status"`
	Favorites []string `json:"favorites,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

type PreferenceStore interface {
	SaveFavorite(userID model.UserID, title string) (bool, error)
	DeleteFavorite(userID model.UserID, title string) (bool, error)
	Favorites(userID model.UserID) ([]string, error)
}

type Controller struct {
	store PreferenceStore

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(store PreferenceStore, opts ...ControllerOption) *Controller {
	c := &Controller{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/preferences/favorites", c.saveFavorite)
	rg.DELETE("/preferences/favorites/:title", c.deleteFavorite)
	rg.GET("/preferences/favorites", c.listFavorites)
}

func (c *Controller) saveFavorite(ctx *gin.Context) {
	var req FavoriteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid favorite request", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  http.StatusBadRequest,
		})
		return
	}

	added, err := c.store.SaveFavorite(model.DefaultUserID, req.Title)
	if err != nil {
		c.logger.Error("failed to save favorite",
			slog.String("title", req.Title),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to save favorite",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if !added {
		ctx.JSON(http.StatusOK, StatusResponseDTO{
			Status: fmt.Sprintf("'%s' is already in favorites.", req.Title),
		})
		return
	}
	ctx.JSON(http.StatusOK, StatusResponseDTO{
		Status: fmt.Sprintf("'%s' saved to favorites!", req.Title),
	})
}

func (c *Controller) deleteFavorite(ctx *gin.Context) {
	title := ctx.Param("title")

	removed, err := c.store.DeleteFavorite(model.DefaultUserID, title)
	if err != nil {
		c.logger.Error("failed to delete favorite",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to delete favorite",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if !removed {
		ctx.JSON(http.StatusOK, StatusResponseDTO{
			Status: fmt.Sprintf("'%s' not found in favorites.", title),
		})
		return
	}
	ctx.JSON(http.StatusOK, StatusResponseDTO{
		Status: fmt.Sprintf("'%s' removed from favorites.", title),
	})
}

func (c *Controller) listFavorites(ctx *gin.Context) {
	favorites, err := c.store.Favorites(model.DefaultUserID)
	if err != nil {
		c.logger.Error("failed to list favorites", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to list favorites",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
		return
	}

	ctx.JSON(http.StatusOK, StatusResponseDTO{
		Status:    FormatFavoritesList(favorites),
		Favorites: favorites,
	})
}

// FormatFavoritesList renders the bullet list shown in the favorites
// panel, or the fixed empty-state message.
func FormatFavoritesList(favorites []string) string {
	if len(favorites) == 0 {
		return "You have no favorite movies yet."
	}
	lines := make([]string, len(favorites))
	for i, title := range favorites {
		lines[i] = "- " + title
	}
	return strings.Join(lines, "\n")
}
