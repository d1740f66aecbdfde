package event

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wrendann/teamfinder/internal/models"
)

type stubEventRepo struct {
	event *Event
}

func (s *stubEventRepo) Create(event *Event) error { return nil }

func (s *stubEventRepo) ListChronological() ([]Event, error) { return nil, nil }

func (s *stubEventRepo) Update(event *Event) error { return nil }

func (s *stubEventRepo) Delete(id uuid.UUID) error { return nil }

func (s *stubEventRepo) GetByID(id uuid.UUID) (*Event, error) {
	if s.event != nil && s.event.ID == id {
		return s.event, nil
	}
	return nil, nil
}

type stubTeamLister struct {
	teams []TeamBrief
}

func (s *stubTeamLister) ListByEvent(eventID uuid.UUID) ([]TeamBrief, error) {
	return s.teams, nil
}

func TestGetEventByIDIncludesTeams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Now()
	ev := &Event{
		Base:      models.Base{ID: uuid.New()},
		Name:      "Spring Hackathon",
		StartDate: now,
		EndDate:   now.Add(48 * time.Hour),
	}
	lister := &stubTeamLister{teams: []TeamBrief{
		{ID: uuid.New(), Name: "Alpha", MaxSize: 5, CurrentSize: 2, IsOpen: true},
		{ID: uuid.New(), Name: "Beta", MaxSize: 3, CurrentSize: 3, IsFull: true},
	}}
	ec := NewEventController(&stubEventRepo{event: ev}, lister, nil, zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/events/"+ev.ID.String(), nil)
	c.Params = gin.Params{{Key: "event_id", Value: ev.ID.String()}}

	ec.GetEventByID(c)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data EventDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Spring Hackathon", body.Data.Name)
	require.Len(t, body.Data.Teams, 2)
	assert.Equal(t, "Alpha", body.Data.Teams[0].Name)
	assert.True(t, body.Data.Teams[1].IsFull)
}

func TestGetEventByIDNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ec := NewEventController(&stubEventRepo{}, &stubTeamLister{}, nil, zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	unknown := uuid.New().String()
	c.Request = httptest.NewRequest(http.MethodGet, "/events/"+unknown, nil)
	c.Params = gin.Params{{Key: "event_id", Value: unknown}}

	ec.GetEventByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
