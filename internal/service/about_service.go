package service

import (
	"encoding/json"
	"fmt"

	"bardabar-be-svc/internal/models"
	"bardabar-be-svc/internal/repository"
	"bardabar-be-svc/pkg/logger"
)

// UpdateAboutInput carries the about page content. Advantages is a
// JSON-encoded array of {title, description} pairs, kept as a string on
// the wire and in storage.
type UpdateAboutInput struct {
	Title      *string
	Content    string
	Advantages string
}

// AboutService interface defines about content operations
type AboutService interface {
	Get() (*models.AboutContent, error)
	Update(input UpdateAboutInput) (*models.AboutContent, error)
}

// aboutService implements AboutService interface
type aboutService struct {
	aboutRepo repository.AboutRepository
	logger    *logger.Logger
}

// NewAboutService creates a new about content service
func NewAboutService(aboutRepo repository.AboutRepository, logger *logger.Logger) AboutService {
	return &aboutService{
		aboutRepo: aboutRepo,
		logger:    logger,
	}
}

// Get returns the singleton about content, creating the default row on
// first access. A stored advantages string that no longer parses is
// surfaced as an empty array rather than an error.
func (s *aboutService) Get() (*models.AboutContent, error) {
	content, err := s.aboutRepo.GetOrCreate(&models.AboutContent{
		Title:      "О нас",
		Content:    "Добро пожаловать в кафе Бар-да-бар!",
		Advantages: "[]",
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to load about content")
		return nil, err
	}

	var advantages []models.Advantage
	if err := json.Unmarshal([]byte(content.Advantages), &advantages); err != nil {
		content.Advantages = "[]"
	}

	return content, nil
}

// Update validates the advantages string parses before any write; invalid
// input leaves the stored content untouched.
func (s *aboutService) Update(input UpdateAboutInput) (*models.AboutContent, error) {
	var advantages []models.Advantage
	if err := json.Unmarshal([]byte(input.Advantages), &advantages); err != nil {
		return nil, fmt.Errorf("%w: invalid advantages JSON", ErrValidation)
	}

	content, err := s.aboutRepo.GetOrCreate(&models.AboutContent{
		Title:      "О нас",
		Content:    "",
		Advantages: "[]",
	})
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		content.Title = *input.Title
	}
	content.Content = input.Content
	content.Advantages = input.Advantages

	if err := s.aboutRepo.Save(content); err != nil {
		s.logger.WithError(err).Error("Failed to update about content")
		return nil, err
	}

	s.logger.Info("About content updated")
	return content, nil
}
