package service

import (
	"fmt"

	"bardabar-be-svc/internal/models"
	"bardabar-be-svc/internal/repository"
	"bardabar-be-svc/internal/upload"
	"bardabar-be-svc/pkg/logger"
)

// CreateStaffInput carries fields for a new staff member
type CreateStaffInput struct {
	Name        string
	Position    string
	Description string
	Order       int
	ImageBase64 string
}

// UpdateStaffInput carries a partial staff update
type UpdateStaffInput struct {
	Name        *string
	Position    *string
	Description *string
	Order       *int
	ImageBase64 string
}

// StaffService interface defines staff business operations
type StaffService interface {
	List() ([]models.Staff, error)
	Create(input CreateStaffInput) (*models.Staff, error)
	Update(id uint, input UpdateStaffInput) (*models.Staff, error)
	Delete(id uint) error
}

// staffService implements StaffService interface
type staffService struct {
	staffRepo repository.StaffRepository
	uploader  *upload.Uploader
	logger    *logger.Logger
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repository.StaffRepository, uploader *upload.Uploader, logger *logger.Logger) StaffService {
	return &staffService{
		staffRepo: staffRepo,
		uploader:  uploader,
		logger:    logger,
	}
}

func (s *staffService) List() ([]models.Staff, error) {
	return s.staffRepo.List()
}

func (s *staffService) Create(input CreateStaffInput) (*models.Staff, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: staff name is required", ErrValidation)
	}
	if input.Position == "" {
		return nil, fmt.Errorf("%w: staff position is required", ErrValidation)
	}

	staff := &models.Staff{
		Name:        input.Name,
		Position:    input.Position,
		Description: input.Description,
		SortOrder:   input.Order,
	}

	if input.ImageBase64 != "" {
		url, err := s.uploader.SaveDataURL(input.ImageBase64, upload.ImageFileName("staff", input.Name))
		if err != nil {
			s.logger.WithError(err).Error("Failed to store staff photo")
			return nil, err
		}
		staff.ImageURL = url
	}

	if err := s.staffRepo.Create(staff); err != nil {
		s.logger.WithError(err).Error("Failed to create staff member")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"staff_id": staff.ID,
		"name":     staff.Name,
	}).Info("Staff member created")

	return staff, nil
}

func (s *staffService) Update(id uint, input UpdateStaffInput) (*models.Staff, error) {
	staff, err := s.staffRepo.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: staff name cannot be empty", ErrValidation)
		}
		staff.Name = *input.Name
	}
	if input.Position != nil {
		staff.Position = *input.Position
	}
	if input.Description != nil {
		staff.Description = *input.Description
	}
	if input.Order != nil {
		staff.SortOrder = *input.Order
	}

	if input.ImageBase64 != "" {
		url, err := s.uploader.SaveDataURL(input.ImageBase64, upload.ImageFileName("staff", staff.Name))
		if err != nil {
			s.logger.WithError(err).WithField("staff_id", id).Error("Failed to store staff photo")
			return nil, err
		}
		staff.ImageURL = url
	}

	if err := s.staffRepo.Save(staff); err != nil {
		s.logger.WithError(err).WithField("staff_id", id).Error("Failed to update staff member")
		return nil, err
	}
	return staff, nil
}

func (s *staffService) Delete(id uint) error {
	staff, err := s.staffRepo.Get(id)
	if err != nil {
		return err
	}
	if err := s.staffRepo.Delete(staff); err != nil {
		s.logger.WithError(err).WithField("staff_id", id).Error("Failed to delete staff member")
		return err
	}
	return nil
}
