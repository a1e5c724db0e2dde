package models

import (
	"time"
)

// AdminCredentialsID is the fixed identifier of the singleton credentials row
const AdminCredentialsID uint = 1

// AdminCredentials represents the admin_credentials table. A single row
// holds the bcrypt hash of the admin panel password.
type AdminCredentials struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName sets the insert table name for AdminCredentials
func (AdminCredentials) TableName() string {
	return "admin_credentials"
}

// User represents the users table. The IsAdmin flag is surfaced as the role
// claim of issued session tokens.
type User struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	DocumentID string    `json:"documentId" gorm:"column:document_id"`
	IsAdmin    bool      `json:"isAdmin" gorm:"column:is_admin"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "users"
}
