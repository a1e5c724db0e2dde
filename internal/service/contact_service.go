package service

import (
	"fmt"

	"bardabar-be-svc/internal/models"
	"bardabar-be-svc/internal/repository"
	"bardabar-be-svc/pkg/logger"
)

// SubmitContactInput carries a booking or contact request from the public site
type SubmitContactInput struct {
	Name    string
	Phone   string
	Message string
	Type    string
}

// ContactService interface defines contact request operations
type ContactService interface {
	Submit(input SubmitContactInput) (*models.ContactRequest, error)
	List() ([]models.ContactRequest, error)
}

// contactService implements ContactService interface
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *logger.Logger
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repository.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Submit creates a contact request. This is the only public write of the API.
func (s *contactService) Submit(input SubmitContactInput) (*models.ContactRequest, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if input.Type == "" {
		return nil, fmt.Errorf("%w: request type is required", ErrValidation)
	}

	request := &models.ContactRequest{
		Name:    input.Name,
		Phone:   input.Phone,
		Message: input.Message,
		Type:    input.Type,
	}
	if err := s.contactRepo.Create(request); err != nil {
		s.logger.WithError(err).Error("Failed to create contact request")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"request_id": request.ID,
		"type":       request.Type,
	}).Info("Contact request submitted")

	return request, nil
}

func (s *contactService) List() ([]models.ContactRequest, error) {
	return s.contactRepo.List()
}
