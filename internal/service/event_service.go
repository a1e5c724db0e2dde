package service

import (
	"fmt"
	"time"

	"bardabar-be-svc/internal/models"
	"bardabar-be-svc/internal/repository"
	"bardabar-be-svc/internal/upload"
	"bardabar-be-svc/pkg/logger"
)

// CreateEventInput carries fields for a new event
type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	ImageBase64 string
}

// UpdateEventInput carries a partial event update
type UpdateEventInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	ImageBase64 string
}

// EventService interface defines event business operations
type EventService interface {
	List() ([]models.Event, error)
	Create(input CreateEventInput) (*models.Event, error)
	Update(id uint, input UpdateEventInput) (*models.Event, error)
	Delete(id uint) error
}

// eventService implements EventService interface
type eventService struct {
	eventRepo repository.EventRepository
	uploader  *upload.Uploader
	logger    *logger.Logger
}

// NewEventService creates a new event service
func NewEventService(eventRepo repository.EventRepository, uploader *upload.Uploader, logger *logger.Logger) EventService {
	return &eventService{
		eventRepo: eventRepo,
		uploader:  uploader,
		logger:    logger,
	}
}

func (s *eventService) List() ([]models.Event, error) {
	return s.eventRepo.List()
}

func (s *eventService) Create(input CreateEventInput) (*models.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: event title is required", ErrValidation)
	}

	event := &models.Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
	}

	if input.ImageBase64 != "" {
		url, err := s.uploader.SaveDataURL(input.ImageBase64, upload.ImageFileName("events", input.Title))
		if err != nil {
			s.logger.WithError(err).Error("Failed to store event image")
			return nil, err
		}
		event.ImageURL = url
	}

	if err := s.eventRepo.Create(event); err != nil {
		s.logger.WithError(err).Error("Failed to create event")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"event_id": event.ID,
		"title":    event.Title,
	}).Info("Event created")

	return event, nil
}

func (s *eventService) Update(id uint, input UpdateEventInput) (*models.Event, error) {
	event, err := s.eventRepo.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: event title cannot be empty", ErrValidation)
		}
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Date != nil {
		event.Date = *input.Date
	}

	if input.ImageBase64 != "" {
		url, err := s.uploader.SaveDataURL(input.ImageBase64, upload.ImageFileName("events", event.Title))
		if err != nil {
			s.logger.WithError(err).WithField("event_id", id).Error("Failed to store event image")
			return nil, err
		}
		event.ImageURL = url
	}

	if err := s.eventRepo.Save(event); err != nil {
		s.logger.WithError(err).WithField("event_id", id).Error("Failed to update event")
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(id uint) error {
	event, err := s.eventRepo.Get(id)
	if err != nil {
		return err
	}
	if err := s.eventRepo.Delete(event); err != nil {
		s.logger.WithError(err).WithField("event_id", id).Error("Failed to delete event")
		return err
	}
	return nil
}
