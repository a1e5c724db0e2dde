package models

import (
	"time"
)

// Event represents the events table
type Event struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"column:title;not null"`
	Description string    `json:"description" gorm:"column:description"`
	Date        time.Time `json:"date" gorm:"column:date"`
	ImageURL    string    `json:"imageUrl" gorm:"column:image_url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName sets the insert table name for Event
func (Event) TableName() string {
	return "events"
}
