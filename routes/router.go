package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wrendann/teamfinder/config"
	"github.com/wrendann/teamfinder/internal/auth"
	"github.com/wrendann/teamfinder/internal/event"
	mw "github.com/wrendann/teamfinder/internal/middleware"
	"github.com/wrendann/teamfinder/internal/team"
	"github.com/wrendann/teamfinder/internal/user"
	"github.com/wrendann/teamfinder/pkg/cache"
)

// SetupRoutes builds the gin engine with all application routes mounted
// under /api.
func SetupRoutes(db *gorm.DB, appConfig *config.Config, cacheClient *cache.Client, logger *zap.Logger) *gin.Engine {
	if appConfig.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(mw.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig, logger)
	user.UserRoutes(api, db, appConfig.JWT.AccessTokenSecret)
	teamLister := team.NewEventTeamLister(team.NewTeamRepository(db))
	event.EventRoutes(api, db, teamLister, cacheClient, appConfig.JWT.AccessTokenSecret, logger)
	team.TeamRoutes(api, db, appConfig, logger)

	return r
}
