package event

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	mw "github.com/wrendann/teamfinder/internal/middleware"
	"github.com/wrendann/teamfinder/pkg/cache"
)

// EventRoutes sets up the event directory routes. The team lister comes from
// the team package; the detail view embeds an event's teams.
func EventRoutes(router *gin.RouterGroup, db *gorm.DB, teamLister TeamLister, cacheClient *cache.Client, jwtSecret string, logger *zap.Logger) {
	eventRepo := NewEventRepository(db)
	eventController := NewEventController(eventRepo, teamLister, cacheClient, logger)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("/events", eventController.ListEvents)
		authRoutes.GET("/events/:event_id", eventController.GetEventByID)
		authRoutes.POST("/events", eventController.CreateEvent)
	}
}
