package models

import "time"

type Comment struct {
	CommentID int       `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	ReviewID  int       `gorm:"column:review_id;not null" json:"review_id"`
	Author    string    `gorm:"column:author;not null" json:"author"`
	Body      string    `gorm:"column:body;not null" json:"body"`
	Votes     int       `gorm:"column:votes" json:"votes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

type CreateCommentRequest struct {
	Username string `json:"username" binding:"required"`
	Body     string `json:"body" binding:"required"`
}
