package store

import (
	"strings"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/apperr"
)

const (
	defaultSortBy = "created_at"
	defaultOrder  = "desc"
)

// reviewSortColumns maps the accepted sort_by values to the SQL they sort on.
// Only these identifiers ever reach an ORDER BY clause.
var reviewSortColumns = map[string]string{
	"review_id":      "reviews.review_id",
	"title":          "reviews.title",
	"category":       "reviews.category",
	"designer":       "reviews.designer",
	"owner":          "reviews.owner",
	"review_body":    "reviews.review_body",
	"review_img_url": "reviews.review_img_url",
	"created_at":     "reviews.created_at",
	"votes":          "reviews.votes",
	"comment_count":  "comment_count",
}

func reviewSortColumn(sortBy string) (string, error) {
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	col, ok := reviewSortColumns[sortBy]
	if !ok {
		return "", apperr.ErrInvalidSort
	}
	return col, nil
}

// sortDirection returns the SQL keyword for order, which must be asc or desc.
func sortDirection(order string) (string, error) {
	if order == "" {
		order = defaultOrder
	}
	switch strings.ToLower(order) {
	case "asc":
		return "ASC", nil
	case "desc":
		return "DESC", nil
	default:
		return "", apperr.ErrInvalidOrder
	}
}
