package repository

import (
	"gorm.io/gorm"

	"bardabar-be-svc/internal/models"
)

// AdminRepository defines data operations for admin credentials and users
type AdminRepository interface {
	GetOrCreateCredentials(defaultHash string) (*models.AdminCredentials, error)
	SaveCredentials(credentials *models.AdminCredentials) error
	GetUser(id uint) (*models.User, error)
	GetOrCreateAdminUser(newDocumentID string) (*models.User, error)
}

// adminRepository implements AdminRepository
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// GetOrCreateCredentials returns the singleton credentials row, seeding it
// with defaultHash when absent
func (r *adminRepository) GetOrCreateCredentials(defaultHash string) (*models.AdminCredentials, error) {
	var credentials models.AdminCredentials
	err := r.db.Where(models.AdminCredentials{ID: models.AdminCredentialsID}).
		Attrs(models.AdminCredentials{ID: models.AdminCredentialsID, PasswordHash: defaultHash}).
		FirstOrCreate(&credentials).Error
	if err != nil {
		return nil, err
	}
	return &credentials, nil
}

func (r *adminRepository) SaveCredentials(credentials *models.AdminCredentials) error {
	credentials.ID = models.AdminCredentialsID
	return r.db.Save(credentials).Error
}

func (r *adminRepository) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetOrCreateAdminUser returns the admin user, creating it with
// newDocumentID when no admin exists yet
func (r *adminRepository) GetOrCreateAdminUser(newDocumentID string) (*models.User, error) {
	var user models.User
	err := r.db.Where(models.User{IsAdmin: true}).
		Attrs(models.User{DocumentID: newDocumentID, IsAdmin: true}).
		FirstOrCreate(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
