package event

import "github.com/google/uuid"

// TeamBrief is the slice of a team rendered inside an event detail. It is a
// read model only; membership actions go through the team routes.
type TeamBrief struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	OwnerID       uuid.UUID `json:"owner_id"`
	OwnerUsername string    `json:"owner_username"`
	MaxSize       int       `json:"max_size"`
	CurrentSize   int       `json:"current_size"`
	IsFull        bool      `json:"is_full"`
	IsOpen        bool      `json:"is_open"`
}

// TeamLister supplies the teams registered under an event. Implemented by
// the team package; declared here so the dependency points outward.
type TeamLister interface {
	ListByEvent(eventID uuid.UUID) ([]TeamBrief, error)
}

// EventDetail is the single-event view: the event row plus its teams.
type EventDetail struct {
	Event
	Teams []TeamBrief `json:"teams"`
}
