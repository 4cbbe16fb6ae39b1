// Package store is the data-access layer of the review API. It validates
// query parameters, builds parameterized statements and checks that the rows
// a write refers to exist before touching them.
package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// exists reports whether table has a row whose column equals value. Table and
// column always come from the constants below, never from a request.
func (s *Store) exists(ctx context.Context, table, column string, value any) (bool, error) {
	var found bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = ?)", table, column)
	if err := s.db.WithContext(ctx).Raw(query, value).Scan(&found).Error; err != nil {
		return false, fmt.Errorf("check %s.%s: %w", table, column, err)
	}
	return found, nil
}

const (
	tableCategories = "categories"
	tableUsers      = "users"
	tableReviews    = "reviews"
	tableComments   = "comments"
)

func (s *Store) categoryExists(ctx context.Context, slug string) (bool, error) {
	return s.exists(ctx, tableCategories, "slug", slug)
}

func (s *Store) userExists(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, tableUsers, "username", username)
}

func (s *Store) reviewExists(ctx context.Context, id int) (bool, error) {
	return s.exists(ctx, tableReviews, "review_id", id)
}

func (s *Store) commentExists(ctx context.Context, id int) (bool, error) {
	return s.exists(ctx, tableComments, "comment_id", id)
}
