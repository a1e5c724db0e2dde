package repository

import (
	"gorm.io/gorm"

	"bardabar-be-svc/internal/models"
)

// AboutRepository defines data operations for the singleton about content
type AboutRepository interface {
	GetOrCreate(defaults *models.AboutContent) (*models.AboutContent, error)
	Save(content *models.AboutContent) error
}

// aboutRepository implements AboutRepository
type aboutRepository struct {
	db *gorm.DB
}

// NewAboutRepository creates a new about content repository
func NewAboutRepository(db *gorm.DB) AboutRepository {
	return &aboutRepository{db: db}
}

// GetOrCreate returns the singleton row, inserting defaults when absent.
// Repeated calls never create a second row.
func (r *aboutRepository) GetOrCreate(defaults *models.AboutContent) (*models.AboutContent, error) {
	var content models.AboutContent
	defaults.ID = models.AboutContentID
	err := r.db.Where(models.AboutContent{ID: models.AboutContentID}).
		Attrs(*defaults).
		FirstOrCreate(&content).Error
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *aboutRepository) Save(content *models.AboutContent) error {
	content.ID = models.AboutContentID
	return r.db.Save(content).Error
}
