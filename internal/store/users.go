package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/apperr"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/models"
)

func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	return users, nil
}

func (s *Store) User(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user %s: %w", username, err)
	}
	return &user, nil
}

func (s *Store) InsertUser(ctx context.Context, username, name, avatarURL string) (*models.User, error) {
	ok, err := s.userExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, apperr.ErrAlreadyExists
	}

	user := models.User{Username: username, Name: name, AvatarURL: avatarURL}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}
