package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/models"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/pagination"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/store"
)

type ReviewStore interface {
	Reviews(ctx context.Context, f store.ReviewFilter) (store.ReviewPage, error)
	Review(ctx context.Context, id int) (*models.ReviewWithCount, error)
	InsertReview(ctx context.Context, in store.NewReview) (*models.ReviewWithCount, error)
	IncrementReviewVotes(ctx context.Context, id, delta int) (*models.Review, error)
	DeleteReview(ctx context.Context, id int) error
}

type ReviewHandler struct {
	store ReviewStore
}

func NewReviewHandler(s ReviewStore) *ReviewHandler {
	return &ReviewHandler{store: s}
}

// GetReviews lists reviews filtered by ?category, sorted by ?sort_by and
// ?order, one page of ?limit at a time starting from ?p.
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	page, err := pagination.Parse(c.Query("limit"), c.Query("p"))
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.store.Reviews(c.Request.Context(), store.ReviewFilter{
		SortBy:   c.Query("sort_by"),
		Order:    c.Query("order"),
		Category: c.Query("category"),
		Page:     page,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":     result.Reviews,
		"total_count": result.TotalCount,
	})
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, err := paramID(c, "review_id")
	if err != nil {
		c.Error(err)
		return
	}

	review, err := h.store.Review(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var input models.CreateReviewRequest
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	review, err := h.store.InsertReview(c.Request.Context(), store.NewReview{
		Owner:        input.Owner,
		Title:        input.Title,
		ReviewBody:   input.ReviewBody,
		Designer:     input.Designer,
		Category:     input.Category,
		ReviewImgURL: input.ReviewImgURL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// VoteReview adds inc_votes, which may be negative, to the review's votes.
func (h *ReviewHandler) VoteReview(c *gin.Context) {
	id, err := paramID(c, "review_id")
	if err != nil {
		c.Error(err)
		return
	}

	var input models.VoteRequest
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	review, err := h.store.IncrementReviewVotes(c.Request.Context(), id, int(input.IncVotes))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := paramID(c, "review_id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.store.DeleteReview(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
