package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/models"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/pagination"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/store"
)

type CommentStore interface {
	Comments(ctx context.Context, reviewID int, q pagination.Query) (store.CommentPage, error)
	InsertComment(ctx context.Context, reviewID int, author, body string) (*models.Comment, error)
	IncrementCommentVotes(ctx context.Context, id, delta int) (*models.Comment, error)
	DeleteComment(ctx context.Context, id int) error
}

type CommentHandler struct {
	store CommentStore
}

func NewCommentHandler(s CommentStore) *CommentHandler {
	return &CommentHandler{store: s}
}

// GetComments returns a page of comments on a review, newest first
func (h *CommentHandler) GetComments(c *gin.Context) {
	reviewID, err := paramID(c, "review_id")
	if err != nil {
		c.Error(err)
		return
	}

	page, err := pagination.Parse(c.Query("limit"), c.Query("p"))
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.store.Comments(c.Request.Context(), reviewID, page)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments":    result.Comments,
		"total_count": result.TotalCount,
	})
}

// CreateComment creates a new comment on a review
func (h *CommentHandler) CreateComment(c *gin.Context) {
	reviewID, err := paramID(c, "review_id")
	if err != nil {
		c.Error(err)
		return
	}

	var input models.CreateCommentRequest
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	comment, err := h.store.InsertComment(c.Request.Context(), reviewID, input.Username, input.Body)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (h *CommentHandler) VoteComment(c *gin.Context) {
	id, err := paramID(c, "comment_id")
	if err != nil {
		c.Error(err)
		return
	}

	var input models.VoteRequest
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	comment, err := h.store.IncrementCommentVotes(c.Request.Context(), id, int(input.IncVotes))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := paramID(c, "comment_id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.store.DeleteComment(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
