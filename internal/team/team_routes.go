package team

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wrendann/teamfinder/config"
	mw "github.com/wrendann/teamfinder/internal/middleware"
	"github.com/wrendann/teamfinder/internal/user"
)

// TeamRoutes sets up the team directory and membership transition routes.
// Everything here requires a signed-in caller.
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, logger *zap.Logger) {
	teamRepo := NewTeamRepository(db)
	userRepo := user.NewUserRepository(db)
	engine := NewMembershipEngine(teamRepo, appConfig.Team.AllowRejoinAfterRejection)
	teamController := NewTeamController(teamRepo, userRepo, engine, logger)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.GET("/teams", teamController.GetAllTeams)
		authRoutes.POST("/teams", teamController.CreateTeam)
		authRoutes.GET("/teams/:team_id", teamController.GetTeamByID)
		authRoutes.PATCH("/teams/:team_id", teamController.UpdateTeam)
		authRoutes.DELETE("/teams/:team_id", teamController.DeleteTeam)

		authRoutes.POST("/teams/:team_id/join", teamController.RequestJoin)
		authRoutes.POST("/teams/:team_id/invite", teamController.InviteMember)
		authRoutes.POST("/teams/:team_id/members/accept", teamController.AcceptRequest)
		authRoutes.POST("/teams/:team_id/members/reject", teamController.RejectRequest)
		authRoutes.POST("/teams/:team_id/members/kick", teamController.KickMember)
		authRoutes.PATCH("/teams/:team_id/members/role", teamController.UpdateMemberRole)
		authRoutes.POST("/teams/:team_id/members/leave", teamController.LeaveTeam)
		authRoutes.POST("/teams/:team_id/members/accept_invitation", teamController.AcceptInvitation)
		authRoutes.POST("/teams/:team_id/members/reject_invitation", teamController.RejectInvitation)

		// Caller-scoped views live under /me to keep the /teams tree
		// resource-shaped.
		authRoutes.GET("/me/teams", teamController.GetMyTeams)
		authRoutes.GET("/me/join-requests", teamController.GetMyJoinRequests)
		authRoutes.GET("/me/invitations", teamController.GetMyInvitations)
	}
}
