package repository

import (
	"gorm.io/gorm"

	"bardabar-be-svc/internal/models"
)

// ContactRepository defines data operations for contact requests.
// Requests are created and listed, never updated or removed.
type ContactRepository interface {
	List() ([]models.ContactRequest, error)
	Create(request *models.ContactRequest) error
}

// contactRepository implements ContactRepository
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact request repository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// List returns all contact requests, newest first
func (r *contactRepository) List() ([]models.ContactRequest, error) {
	var requests []models.ContactRequest
	err := r.db.Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (r *contactRepository) Create(request *models.ContactRequest) error {
	return r.db.Create(request).Error
}
