package event

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository defines the interface for event data operations.
type EventRepository interface {
	Create(event *Event) error
	GetByID(id uuid.UUID) (*Event, error)
	ListChronological() ([]Event, error)
	Update(event *Event) error
	Delete(id uuid.UUID) error
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) GetByID(id uuid.UUID) (*Event, error) {
	var e Event
	if err := r.db.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) ListChronological() ([]Event, error) {
	var events []Event
	if err := r.db.Order("start_date asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Update(event *Event) error {
	return r.db.Save(event).Error
}

func (r *eventRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Event{}, "id = ?", id).Error
}
