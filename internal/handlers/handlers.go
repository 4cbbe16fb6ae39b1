package handlers

import (
	"github.com/emilythestrangee/board-game-reviews/backend/internal/store"
)

// Handler combines all handler types
type Handler struct {
	API      *APIHandler
	Category *CategoryHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
	User     *UserHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(s *store.Store) *Handler {
	return &Handler{
		API:      NewAPIHandler(),
		Category: NewCategoryHandler(s),
		Review:   NewReviewHandler(s),
		Comment:  NewCommentHandler(s),
		User:     NewUserHandler(s),
	}
}
