package repository

import (
	"gorm.io/gorm"

	"bardabar-be-svc/internal/models"
)

// StaffRepository defines data operations for staff members
type StaffRepository interface {
	List() ([]models.Staff, error)
	Get(id uint) (*models.Staff, error)
	Create(staff *models.Staff) error
	Save(staff *models.Staff) error
	Delete(staff *models.Staff) error
}

// staffRepository implements StaffRepository
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

// List returns all staff members ordered by their display key
func (r *staffRepository) List() ([]models.Staff, error) {
	var staff []models.Staff
	err := r.db.Order("sort_order asc, id asc").Find(&staff).Error
	return staff, err
}

func (r *staffRepository) Get(id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) Create(staff *models.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepository) Save(staff *models.Staff) error {
	return r.db.Save(staff).Error
}

func (r *staffRepository) Delete(staff *models.Staff) error {
	return r.db.Delete(staff).Error
}
