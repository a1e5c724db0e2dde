package repository

import (
	"gorm.io/gorm"

	"bardabar-be-svc/internal/models"
)

// EventRepository defines data operations for events
type EventRepository interface {
	List() ([]models.Event, error)
	Get(id uint) (*models.Event, error)
	Create(event *models.Event) error
	Save(event *models.Event) error
	Delete(event *models.Event) error
}

// eventRepository implements EventRepository
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// List returns all events ordered by date, earliest first
func (r *eventRepository) List() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("date asc").Find(&events).Error
	return events, err
}

func (r *eventRepository) Get(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) Save(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(event *models.Event) error {
	return r.db.Delete(event).Error
}
