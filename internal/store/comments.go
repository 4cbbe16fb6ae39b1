package store

import (
	"context"
	"fmt"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/apperr"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/models"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/pagination"
)

type CommentPage struct {
	Comments   []models.Comment
	TotalCount int64
}

func (s *Store) Comments(ctx context.Context, reviewID int, q pagination.Query) (CommentPage, error) {
	ok, err := s.reviewExists(ctx, reviewID)
	if err != nil {
		return CommentPage{}, err
	}
	if !ok {
		return CommentPage{}, apperr.ErrNotFound
	}

	tx := s.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("review_id = ?", reviewID).
		Order("created_at DESC").
		Order("comment_id DESC")

	var comments []models.Comment
	total, err := pagination.Paginate(tx, q, &comments)
	if err != nil {
		return CommentPage{}, fmt.Errorf("select comments for review %d: %w", reviewID, err)
	}
	return CommentPage{Comments: comments, TotalCount: total}, nil
}

// UserComments lists everything username has written, newest first.
func (s *Store) UserComments(ctx context.Context, username string, q pagination.Query) (CommentPage, error) {
	ok, err := s.userExists(ctx, username)
	if err != nil {
		return CommentPage{}, err
	}
	if !ok {
		return CommentPage{}, apperr.ErrNotFound
	}

	tx := s.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("author = ?", username).
		Order("created_at DESC").
		Order("comment_id DESC")

	var comments []models.Comment
	total, err := pagination.Paginate(tx, q, &comments)
	if err != nil {
		return CommentPage{}, fmt.Errorf("select comments by %s: %w", username, err)
	}
	return CommentPage{Comments: comments, TotalCount: total}, nil
}

// InsertComment checks both the review and the author before inserting, so a
// bad reference never leaves a partial write behind.
func (s *Store) InsertComment(ctx context.Context, reviewID int, author, body string) (*models.Comment, error) {
	ok, err := s.reviewExists(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}

	ok, err = s.userExists(ctx, author)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}

	comment := models.Comment{
		ReviewID: reviewID,
		Author:   author,
		Body:     body,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &comment, nil
}

func (s *Store) IncrementCommentVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	ok, err := s.commentExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}

	var comment models.Comment
	res := s.db.WithContext(ctx).
		Raw("UPDATE comments SET votes = votes + ? WHERE comment_id = ? RETURNING *", delta, id).
		Scan(&comment)
	if res.Error != nil {
		return nil, fmt.Errorf("update comment %d votes: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return &comment, nil
}

func (s *Store) DeleteComment(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Where("comment_id = ?", id).Delete(&models.Comment{})
	if res.Error != nil {
		return fmt.Errorf("delete comment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
