package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/models"
)

// Data is a full set of rows to load into an empty schema. Review and
// comment ids are assigned by the database in slice order, starting at 1.
type Data struct {
	Categories []models.Category
	Users      []models.User
	Reviews    []models.Review
	Comments   []models.Comment
}

// Seed empties every table, restarting the id sequences, and bulk-loads data
// inside one transaction. Tables are truncated rather than dropped so that
// connections already holding prepared statements keep working.
func (d *Database) Seed(ctx context.Context, data Data) error {
	if err := d.Initialize(ctx); err != nil {
		return err
	}

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, truncateAll); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}

	err = copyRows(ctx, tx, "categories", []string{"slug", "description"}, len(data.Categories), func(i int) []any {
		c := data.Categories[i]
		return []any{c.Slug, c.Description}
	})
	if err != nil {
		return err
	}

	err = copyRows(ctx, tx, "users", []string{"username", "name", "avatar_url"}, len(data.Users), func(i int) []any {
		u := data.Users[i]
		return []any{u.Username, u.Name, u.AvatarURL}
	})
	if err != nil {
		return err
	}

	reviewCols := []string{"title", "designer", "owner", "review_body", "review_img_url", "category", "votes", "created_at"}
	err = copyRows(ctx, tx, "reviews", reviewCols, len(data.Reviews), func(i int) []any {
		r := data.Reviews[i]
		img := r.ReviewImgURL
		if img == "" {
			img = models.DefaultReviewImgURL
		}
		return []any{r.Title, r.Designer, r.Owner, r.ReviewBody, img, r.Category, r.Votes, r.CreatedAt}
	})
	if err != nil {
		return err
	}

	commentCols := []string{"review_id", "author", "body", "votes", "created_at"}
	err = copyRows(ctx, tx, "comments", commentCols, len(data.Comments), func(i int) []any {
		c := data.Comments[i]
		return []any{c.ReviewID, c.Author, c.Body, c.Votes, c.CreatedAt}
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	d.log.Info("database seeded",
		zap.Int("categories", len(data.Categories)),
		zap.Int("users", len(data.Users)),
		zap.Int("reviews", len(data.Reviews)),
		zap.Int("comments", len(data.Comments)),
	)
	return nil
}

func copyRows(ctx context.Context, tx *sql.Tx, table string, columns []string, n int, row func(int) []any) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return fmt.Errorf("prepare copy into %s: %w", table, err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, row(i)...); err != nil {
			return fmt.Errorf("copy row %d into %s: %w", i, table, err)
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("flush copy into %s: %w", table, err)
	}
	return nil
}
