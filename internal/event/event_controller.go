package event

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wrendann/teamfinder/pkg/cache"
	"github.com/wrendann/teamfinder/pkg/responses"
)

const (
	eventListCacheKey = "events:all"
	eventListCacheTTL = 60 * time.Second
)

// EventController handles event directory HTTP requests.
type EventController struct {
	repo   EventRepository
	teams  TeamLister
	cache  *cache.Client
	logger *zap.Logger
}

// NewEventController creates a new event controller.
func NewEventController(repo EventRepository, teams TeamLister, cacheClient *cache.Client, logger *zap.Logger) *EventController {
	return &EventController{
		repo:   repo,
		teams:  teams,
		cache:  cacheClient,
		logger: logger,
	}
}

type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required,min=3,max=200"`
	Description string    `json:"description" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	Location    string    `json:"location" binding:"max=200"`
}

// ListEvents godoc
// @Summary List events
// @Description Retrieves events in chronological order, optionally filtered by a name substring. Past events are excluded unless include_past is set.
// @Tags Events
// @Produce json
// @Param name query string false "Name substring filter (case-insensitive)"
// @Param include_past query bool false "Include events that already ended" default(false)
// @Success 200 {object} responses.SuccessResponse{data=[]Event} "List of events"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /events [get]
func (ec *EventController) ListEvents(c *gin.Context) {
	var events []Event
	if err := ec.cache.GetJSON(c.Request.Context(), eventListCacheKey, &events); err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			ec.logger.Warn("event list cache read failed", zap.Error(err))
		}
		var dbErr error
		events, dbErr = ec.repo.ListChronological()
		if dbErr != nil {
			responses.InternalServerError(c, "Failed to retrieve events: "+dbErr.Error())
			return
		}
		ec.cache.SetJSON(c.Request.Context(), eventListCacheKey, events, eventListCacheTTL)
	}

	events = FilterByName(events, c.Query("name"))
	events = SortChronological(events)

	includePast, _ := strconv.ParseBool(c.DefaultQuery("include_past", "false"))
	if !includePast {
		events, _ = SplitUpcoming(events, time.Now())
	}

	responses.SendSuccess(c, http.StatusOK, "Events retrieved successfully", events)
}

// GetEventByID godoc
// @Summary Get an event
// @Description Retrieves a single event together with the teams registered under it.
// @Tags Events
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} responses.SuccessResponse{data=EventDetail} "Event details with teams"
// @Failure 400 {object} responses.ErrorResponse "Invalid event ID"
// @Failure 404 {object} responses.ErrorResponse "Event not found"
// @Security ApiKeyAuth
// @Router /events/{event_id} [get]
func (ec *EventController) GetEventByID(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("event_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid event ID")
		return
	}

	event, err := ec.repo.GetByID(eventID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve event: "+err.Error())
		return
	}
	if event == nil {
		responses.NotFound(c, "Event")
		return
	}

	teams, err := ec.teams.ListByEvent(eventID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve event teams: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Event retrieved successfully", EventDetail{
		Event: *event,
		Teams: teams,
	})
}

// CreateEvent godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event details"
// @Success 201 {object} responses.SuccessResponse{data=Event} "Event created"
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /events [post]
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if !req.EndDate.After(req.StartDate) {
		responses.BadRequest(c, "End date must be after start date")
		return
	}

	event := Event{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
	}
	if err := ec.repo.Create(&event); err != nil {
		responses.InternalServerError(c, "Failed to create event: "+err.Error())
		return
	}

	ec.cache.Delete(c.Request.Context(), eventListCacheKey)
	responses.SendSuccess(c, http.StatusCreated, "Event created successfully", event)
}
