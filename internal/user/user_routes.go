package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/wrendann/teamfinder/internal/middleware"
)

// UserRoutes sets up the public-profile routes.
func UserRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	userRepo := NewUserRepository(db)
	userController := NewUserController(userRepo)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("/users", userController.ListUsers)
		authRoutes.GET("/users/:user_id", userController.GetUserByID)
	}
}
