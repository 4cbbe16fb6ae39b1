package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/models"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/pagination"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/store"
)

type UserStore interface {
	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, username string) (*models.User, error)
	InsertUser(ctx context.Context, username, name, avatarURL string) (*models.User, error)
	UserComments(ctx context.Context, username string, q pagination.Query) (store.CommentPage, error)
}

type UserHandler struct {
	store UserStore
}

func NewUserHandler(s UserStore) *UserHandler {
	return &UserHandler{store: s}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.store.Users(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser returns a user's profile
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.store.User(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.CreateUserRequest
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	user, err := h.store.InsertUser(c.Request.Context(), input.Username, input.Name, input.AvatarURL)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GetUserComments pages through everything a user has commented, newest first.
func (h *UserHandler) GetUserComments(c *gin.Context) {
	page, err := pagination.Parse(c.Query("limit"), c.Query("p"))
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.store.UserComments(c.Request.Context(), c.Param("username"), page)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments":    result.Comments,
		"total_count": result.TotalCount,
	})
}
