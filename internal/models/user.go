package models

type User struct {
	Username  string `gorm:"column:username;primaryKey" json:"username"`
	Name      string `gorm:"column:name;not null" json:"name"`
	AvatarURL string `gorm:"column:avatar_url" json:"avatar_url"`
}

func (User) TableName() string {
	return "users"
}

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Name      string `json:"name" binding:"required"`
	AvatarURL string `json:"avatar_url" binding:"required"`
}
