package models

import (
	"time"
)

// MenuCategory represents the menu_categories table
type MenuCategory struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"column:name;not null"`
	SortOrder int       `json:"order" gorm:"column:sort_order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the insert table name for MenuCategory
func (MenuCategory) TableName() string {
	return "menu_categories"
}
