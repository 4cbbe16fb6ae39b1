package models

import "time"

// DefaultReviewImgURL is used when a review is created without an image.
const DefaultReviewImgURL = "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg"

type Review struct {
	ReviewID     int       `gorm:"column:review_id;primaryKey" json:"review_id"`
	Title        string    `gorm:"column:title;not null" json:"title"`
	Designer     string    `gorm:"column:designer" json:"designer"`
	Owner        string    `gorm:"column:owner;not null" json:"owner"`
	ReviewBody   string    `gorm:"column:review_body;not null" json:"review_body"`
	ReviewImgURL string    `gorm:"column:review_img_url" json:"review_img_url"`
	Category     string    `gorm:"column:category;not null" json:"category"`
	Votes        int       `gorm:"column:votes" json:"votes"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewWithCount is a review joined with the number of comments left on it.
// The count is sent as a string, the way PostgreSQL hands back a bigint aggregate.
type ReviewWithCount struct {
	Review
	CommentCount int64 `gorm:"column:comment_count" json:"comment_count,string"`
}

type CreateReviewRequest struct {
	Owner        string `json:"owner" binding:"required"`
	Title        string `json:"title" binding:"required"`
	ReviewBody   string `json:"review_body" binding:"required"`
	Designer     string `json:"designer" binding:"required"`
	Category     string `json:"category" binding:"required"`
	ReviewImgURL string `json:"review_img_url"`
}

// VoteRequest is the body of a PATCH on a review or a comment. The votes
// columns are INT, so a delta outside int32 fails to decode.
type VoteRequest struct {
	IncVotes int32 `json:"inc_votes" binding:"required"`
}
