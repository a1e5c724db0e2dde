package repository

import (
	"gorm.io/gorm"

	"bardabar-be-svc/internal/models"
)

// NewsRepository defines data operations for news posts
type NewsRepository interface {
	List() ([]models.News, error)
	Get(id uint) (*models.News, error)
	Create(news *models.News) error
	Save(news *models.News) error
	Delete(news *models.News) error
}

// newsRepository implements NewsRepository
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// List returns all news posts, newest first
func (r *newsRepository) List() ([]models.News, error) {
	var news []models.News
	err := r.db.Order("created_at desc").Find(&news).Error
	return news, err
}

func (r *newsRepository) Get(id uint) (*models.News, error) {
	var news models.News
	if err := r.db.First(&news, id).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *newsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

func (r *newsRepository) Save(news *models.News) error {
	return r.db.Save(news).Error
}

func (r *newsRepository) Delete(news *models.News) error {
	return r.db.Delete(news).Error
}
