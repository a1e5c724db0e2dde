package models

import (
	"time"
)

// News represents the news table. Content may carry markup; lists are
// ordered newest first.
type News struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Title     string    `json:"title" gorm:"column:title;not null"`
	Content   string    `json:"content" gorm:"column:content;type:text"`
	ImageURL  string    `json:"imageUrl" gorm:"column:image_url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the insert table name for News
func (News) TableName() string {
	return "news"
}
