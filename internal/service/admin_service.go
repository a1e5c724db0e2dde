package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bardabar-be-svc/internal/config"
	"bardabar-be-svc/internal/models"
	"bardabar-be-svc/internal/models/response"
	"bardabar-be-svc/internal/repository"
	"bardabar-be-svc/pkg/auth"
	"bardabar-be-svc/pkg/logger"
)

// DefaultAdminPassword seeds the credentials row on first access
const DefaultAdminPassword = "admin123"

// AdminService interface defines admin authorization operations
type AdminService interface {
	VerifyPassword(password string) (*response.VerifyPasswordResponse, error)
	SetPassword(password string) error
	Status(userID uint) bool
	EnsureAdmin(userID uint) error
}

// adminService implements AdminService interface
type adminService struct {
	adminRepo repository.AdminRepository
	jwtConfig config.JWTConfig
	logger    *logger.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(adminRepo repository.AdminRepository, jwtConfig config.JWTConfig, logger *logger.Logger) AdminService {
	return &adminService{
		adminRepo: adminRepo,
		jwtConfig: jwtConfig,
		logger:    logger,
	}
}

// VerifyPassword checks the admin panel password and, on success, issues a
// session token carrying the admin role claim.
func (s *adminService) VerifyPassword(password string) (*response.VerifyPasswordResponse, error) {
	credentials, err := s.loadCredentials()
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(credentials.PasswordHash), []byte(password)) != nil {
		s.logger.Warn("Admin password verification failed")
		return &response.VerifyPasswordResponse{Success: false}, nil
	}

	user, err := s.adminRepo.GetOrCreateAdminUser(uuid.NewString())
	if err != nil {
		s.logger.WithError(err).Error("Failed to resolve admin user")
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID, auth.RoleAdmin, s.jwtConfig.Secret,
		time.Duration(s.jwtConfig.TTLHours)*time.Hour)
	if err != nil {
		s.logger.WithError(err).Error("Failed to issue admin session token")
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("Admin session issued")
	return &response.VerifyPasswordResponse{Success: true, Token: token}, nil
}

// SetPassword stores a new admin panel password
func (s *adminService) SetPassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}

	credentials, err := s.loadCredentials()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	credentials.PasswordHash = string(hash)
	if err := s.adminRepo.SaveCredentials(credentials); err != nil {
		s.logger.WithError(err).Error("Failed to store admin password")
		return err
	}

	s.logger.Info("Admin password updated")
	return nil
}

// Status reports whether userID belongs to an admin. Unknown identities are
// simply not admins, never an error.
func (s *adminService) Status(userID uint) bool {
	if userID == 0 {
		return false
	}
	user, err := s.adminRepo.GetUser(userID)
	if err != nil {
		return false
	}
	return user.IsAdmin
}

// EnsureAdmin fails closed unless userID belongs to an admin user
func (s *adminService) EnsureAdmin(userID uint) error {
	user, err := s.adminRepo.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnauthorized
		}
		return err
	}
	if !user.IsAdmin {
		return ErrUnauthorized
	}
	return nil
}

func (s *adminService) loadCredentials() (*models.AdminCredentials, error) {
	defaultHash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	credentials, err := s.adminRepo.GetOrCreateCredentials(string(defaultHash))
	if err != nil {
		s.logger.WithError(err).Error("Failed to load admin credentials")
		return nil, err
	}
	return credentials, nil
}
