package models

import (
	"time"
)

// AboutContentID is the fixed identifier of the singleton about row
const AboutContentID uint = 1

// AboutContent represents the about_contents table. Exactly one row exists;
// access is find-first-or-create-default, never keyed lookup from callers.
// Advantages is stored and transported as a JSON-encoded string.
type AboutContent struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Title      string    `json:"title" gorm:"column:title"`
	Content    string    `json:"content" gorm:"column:content;type:text"`
	Advantages string    `json:"advantages" gorm:"column:advantages;type:text"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName sets the insert table name for AboutContent
func (AboutContent) TableName() string {
	return "about_contents"
}

// Advantage is one parsed entry of the Advantages JSON string
type Advantage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
