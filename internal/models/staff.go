package models

import (
	"time"
)

// Staff represents the staff_members table
type Staff struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	Position    string    `json:"position" gorm:"column:position;not null"`
	Description string    `json:"description" gorm:"column:description"`
	SortOrder   int       `json:"order" gorm:"column:sort_order"`
	ImageURL    string    `json:"imageUrl" gorm:"column:image_url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName sets the insert table name for Staff
func (Staff) TableName() string {
	return "staff_members"
}
