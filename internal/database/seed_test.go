package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/models"
)

func setupMockDatabase(t *testing.T) (*Database, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return &Database{DB: sqlDB, log: zap.NewNop()}, mock
}

var smallData = Data{
	Categories: []models.Category{{Slug: "dexterity", Description: "Games involving physical skill"}},
	Users:      []models.User{{Username: "dav3rid", Name: "dave", AvatarURL: placeholderImg}},
	Reviews: []models.Review{{
		Title: "Jenga", Designer: "Leslie Scott", Owner: "dav3rid",
		ReviewBody: "Fiddly fun", Category: "dexterity", Votes: 5,
		CreatedAt: time.Date(2021, 1, 18, 10, 1, 41, 0, time.UTC),
	}},
	Comments: []models.Comment{{ReviewID: 1, Author: "dav3rid", Body: "EPIC", Votes: 16, CreatedAt: time.Date(2017, 11, 22, 12, 36, 3, 0, time.UTC)}},
}

func TestSeed(t *testing.T) {
	db, mock := setupMockDatabase(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS categories`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectExec(`TRUNCATE comments, reviews, users, categories RESTART IDENTITY CASCADE`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	categories := mock.ExpectPrepare(`COPY "categories" \("slug", "description"\) FROM STDIN`)
	categories.ExpectExec().WithArgs("dexterity", "Games involving physical skill").WillReturnResult(sqlmock.NewResult(0, 1))
	categories.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 0))

	users := mock.ExpectPrepare(`COPY "users" \("username", "name", "avatar_url"\) FROM STDIN`)
	users.ExpectExec().WithArgs("dav3rid", "dave", placeholderImg).WillReturnResult(sqlmock.NewResult(0, 1))
	users.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 0))

	reviews := mock.ExpectPrepare(`COPY "reviews" \("title", "designer", "owner", "review_body", "review_img_url", "category", "votes", "created_at"\) FROM STDIN`)
	reviews.ExpectExec().
		WithArgs("Jenga", "Leslie Scott", "dav3rid", "Fiddly fun", models.DefaultReviewImgURL, "dexterity", 5, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	reviews.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 0))

	comments := mock.ExpectPrepare(`COPY "comments" \("review_id", "author", "body", "votes", "created_at"\) FROM STDIN`)
	comments.ExpectExec().WithArgs(1, "dav3rid", "EPIC", 16, sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
	comments.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectCommit()

	err := db.Seed(context.Background(), smallData)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed_RollsBackOnCopyFailure(t *testing.T) {
	db, mock := setupMockDatabase(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS categories`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectExec(`TRUNCATE`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectPrepare(`COPY "categories"`).WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err := db.Seed(context.Background(), smallData)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "prepare copy into categories")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReset(t *testing.T) {
	db, mock := setupMockDatabase(t)

	mock.ExpectExec(`DROP TABLE IF EXISTS comments`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS categories`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, db.Reset(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTestData_References(t *testing.T) {
	categories := map[string]bool{}
	for _, c := range TestData.Categories {
		categories[c.Slug] = true
	}
	users := map[string]bool{}
	for _, u := range TestData.Users {
		users[u.Username] = true
	}

	require.Len(t, TestData.Reviews, 13)
	for _, r := range TestData.Reviews {
		assert.True(t, users[r.Owner], "owner %s", r.Owner)
		assert.True(t, categories[r.Category], "category %s", r.Category)
	}

	perReview := map[int]int{}
	for _, c := range TestData.Comments {
		assert.True(t, users[c.Author], "author %s", c.Author)
		assert.LessOrEqual(t, c.ReviewID, len(TestData.Reviews))
		perReview[c.ReviewID]++
	}
	assert.Zero(t, perReview[1])
	assert.Equal(t, 3, perReview[2])
}
