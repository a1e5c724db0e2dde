package models

import (
	"time"
)

// MenuItem represents the menu_items table. CategoryID must reference an
// existing MenuCategory; the service layer enforces it before any write.
type MenuItem struct {
	ID          uint          `json:"id" gorm:"primarykey"`
	Name        string        `json:"name" gorm:"column:name;not null"`
	Description string        `json:"description" gorm:"column:description"`
	Price       float64       `json:"price" gorm:"column:price"`
	ImageURL    string        `json:"imageUrl" gorm:"column:image_url"`
	ArticleCode string        `json:"articleCode" gorm:"column:article_code"`
	CategoryID  uint          `json:"categoryId" gorm:"column:category_id;index"`
	Category    *MenuCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// TableName sets the insert table name for MenuItem
func (MenuItem) TableName() string {
	return "menu_items"
}
