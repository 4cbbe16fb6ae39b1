package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/apperr"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/models"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/pagination"
)

const reviewWithCountColumns = "reviews.*, COUNT(comments.comment_id) AS comment_count"

// ReviewFilter carries the raw listing parameters. SortBy and Order are
// validated here rather than trusted from the caller.
type ReviewFilter struct {
	SortBy   string
	Order    string
	Category string
	Page     pagination.Query
}

// ReviewPage is one page of reviews plus the size of the whole filtered set.
type ReviewPage struct {
	Reviews    []models.ReviewWithCount
	TotalCount int64
}

type reviewRow struct {
	models.ReviewWithCount
	TotalCount int64 `gorm:"column:total_count"`
}

func (s *Store) reviewsWithCount(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table(tableReviews).
		Joins("LEFT JOIN comments ON comments.review_id = reviews.review_id").
		Group("reviews.review_id")
}

func (s *Store) Reviews(ctx context.Context, f ReviewFilter) (ReviewPage, error) {
	col, err := reviewSortColumn(f.SortBy)
	if err != nil {
		return ReviewPage{}, err
	}
	dir, err := sortDirection(f.Order)
	if err != nil {
		return ReviewPage{}, err
	}

	page := f.Page
	if page.Limit == 0 {
		page = pagination.Default()
	}

	if f.Category != "" {
		ok, err := s.categoryExists(ctx, f.Category)
		if err != nil {
			return ReviewPage{}, err
		}
		if !ok {
			return ReviewPage{}, apperr.ErrNotFound
		}
	}

	tx := s.reviewsWithCount(ctx).
		Select(reviewWithCountColumns + ", COUNT(*) OVER() AS total_count")
	if f.Category != "" {
		tx = tx.Where("reviews.category = ?", f.Category)
	}

	var rows []reviewRow
	err = tx.Order(col + " " + dir).
		Order("reviews.review_id " + dir).
		Limit(page.Limit).
		Offset(page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return ReviewPage{}, fmt.Errorf("select reviews: %w", err)
	}

	result := ReviewPage{Reviews: make([]models.ReviewWithCount, 0, len(rows))}
	for _, r := range rows {
		result.Reviews = append(result.Reviews, r.ReviewWithCount)
		result.TotalCount = r.TotalCount
	}

	// The window count only rides along with returned rows; past the last
	// page it has to be counted separately.
	if len(rows) == 0 && page.Offset() > 0 {
		count := s.db.WithContext(ctx).Table(tableReviews)
		if f.Category != "" {
			count = count.Where("reviews.category = ?", f.Category)
		}
		if err := count.Count(&result.TotalCount).Error; err != nil {
			return ReviewPage{}, fmt.Errorf("count reviews: %w", err)
		}
	}

	return result, nil
}

func (s *Store) Review(ctx context.Context, id int) (*models.ReviewWithCount, error) {
	var review models.ReviewWithCount
	res := s.reviewsWithCount(ctx).
		Select(reviewWithCountColumns).
		Where("reviews.review_id = ?", id).
		Scan(&review)
	if res.Error != nil {
		return nil, fmt.Errorf("select review %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrIDNotFound
	}
	return &review, nil
}

type NewReview struct {
	Owner        string
	Title        string
	ReviewBody   string
	Designer     string
	Category     string
	ReviewImgURL string
}

func (s *Store) InsertReview(ctx context.Context, in NewReview) (*models.ReviewWithCount, error) {
	ok, err := s.userExists(ctx, in.Owner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}

	ok, err = s.categoryExists(ctx, in.Category)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}

	review := models.Review{
		Title:        in.Title,
		Designer:     in.Designer,
		Owner:        in.Owner,
		ReviewBody:   in.ReviewBody,
		ReviewImgURL: in.ReviewImgURL,
		Category:     in.Category,
	}
	if review.ReviewImgURL == "" {
		review.ReviewImgURL = models.DefaultReviewImgURL
	}

	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	return &models.ReviewWithCount{Review: review}, nil
}

// IncrementReviewVotes adds delta to the review's votes in a single statement
// so concurrent votes are not lost.
func (s *Store) IncrementReviewVotes(ctx context.Context, id, delta int) (*models.Review, error) {
	ok, err := s.reviewExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}

	var review models.Review
	res := s.db.WithContext(ctx).
		Raw("UPDATE reviews SET votes = votes + ? WHERE review_id = ? RETURNING *", delta, id).
		Scan(&review)
	if res.Error != nil {
		return nil, fmt.Errorf("update review %d votes: %w", id, res.Error)
	}
	// deleted between the check and the update
	if res.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return &review, nil
}

func (s *Store) DeleteReview(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Where("review_id = ?", id).Delete(&models.Review{})
	if res.Error != nil {
		return fmt.Errorf("delete review %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
