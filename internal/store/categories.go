package store

import (
	"context"
	"fmt"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/apperr"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/models"
)

func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.db.WithContext(ctx).Order("slug").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	return categories, nil
}

func (s *Store) InsertCategory(ctx context.Context, slug, description string) (*models.Category, error) {
	ok, err := s.categoryExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, apperr.ErrAlreadyExists
	}

	category := models.Category{Slug: slug, Description: description}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return &category, nil
}
