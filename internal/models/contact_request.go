package models

import (
	"time"
)

// ContactRequest represents the contact_requests table. Requests are
// write-only from the public site and never updated afterwards.
type ContactRequest struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"column:name;not null"`
	Phone     string    `json:"phone" gorm:"column:phone;not null"`
	Message   string    `json:"message" gorm:"column:message"`
	Type      string    `json:"type" gorm:"column:type;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName sets the insert table name for ContactRequest
func (ContactRequest) TableName() string {
	return "contact_requests"
}
