package team

import (
	"github.com/google/uuid"

	"github.com/wrendann/teamfinder/internal/event"
)

// EventTeamLister adapts the team repository to the event detail view, which
// embeds the teams registered under an event.
type EventTeamLister struct {
	repo TeamRepository
}

// NewEventTeamLister creates the adapter used by the event routes.
func NewEventTeamLister(repo TeamRepository) *EventTeamLister {
	return &EventTeamLister{repo: repo}
}

func (l *EventTeamLister) ListByEvent(eventID uuid.UUID) ([]event.TeamBrief, error) {
	teams, err := l.repo.GetTeamsByEvent(eventID)
	if err != nil {
		return nil, err
	}

	briefs := make([]event.TeamBrief, 0, len(teams))
	for i := range teams {
		t := &teams[i]
		briefs = append(briefs, event.TeamBrief{
			ID:            t.ID,
			Name:          t.Name,
			Description:   t.Description,
			OwnerID:       t.OwnerID,
			OwnerUsername: t.Owner.Username,
			MaxSize:       t.MaxSize,
			CurrentSize:   len(t.Members),
			IsFull:        len(t.Members) >= t.MaxSize,
			IsOpen:        t.IsOpen,
		})
	}
	return briefs, nil
}
