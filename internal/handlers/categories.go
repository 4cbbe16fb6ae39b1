package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/models"
)

type CategoryStore interface {
	Categories(ctx context.Context) ([]models.Category, error)
	InsertCategory(ctx context.Context, slug, description string) (*models.Category, error)
}

type CategoryHandler struct {
	store CategoryStore
}

func NewCategoryHandler(s CategoryStore) *CategoryHandler {
	return &CategoryHandler{store: s}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.store.Categories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input models.CreateCategoryRequest
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	category, err := h.store.InsertCategory(c.Request.Context(), input.Slug, input.Description)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}
