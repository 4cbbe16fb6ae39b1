package models

type Category struct {
	Slug        string `gorm:"column:slug;primaryKey" json:"slug"`
	Description string `gorm:"column:description;not null" json:"description"`
}

func (Category) TableName() string {
	return "categories"
}

type CreateCategoryRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description" binding:"required"`
}
