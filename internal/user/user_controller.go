package user

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wrendann/teamfinder/pkg/responses"
)

// UserController serves public user profiles. Display names shown next to
// teams always come from here (or joins against the users table), never from
// client-side guesses.
type UserController struct {
	repo UserRepository
}

// NewUserController creates a new user controller.
func NewUserController(repo UserRepository) *UserController {
	return &UserController{repo: repo}
}

// PublicProfile is the profile shape exposed to other signed-in users.
type PublicProfile struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Bio            string    `json:"bio"`
	Skills         []string  `json:"skills"`
	Interests      []string  `json:"interests"`
	Location       string    `json:"location"`
	ProfilePicture string    `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToPublicProfile strips account-private fields from a user record.
func ToPublicProfile(u *User) PublicProfile {
	return PublicProfile{
		ID:             u.ID,
		Username:       u.Username,
		Bio:            u.Bio,
		Skills:         u.Skills,
		Interests:      u.Interests,
		Location:       u.Location,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}

// ListUsers godoc
// @Summary List user profiles
// @Description Retrieves public user profiles, optionally filtered by a username substring.
// @Tags Users
// @Produce json
// @Param search query string false "Username substring filter (case-insensitive)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]PublicProfile} "List of profiles"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	users, total, err := uc.repo.List(c.Query("search"), page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve users: "+err.Error())
		return
	}

	profiles := make([]PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, ToPublicProfile(&users[i]))
	}
	responses.SendPaginated(c, http.StatusOK, "Users retrieved successfully", profiles, total, page, limit)
}

// GetUserByID godoc
// @Summary Get a user profile
// @Description Retrieves a single public user profile by id.
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=PublicProfile} "Profile"
// @Failure 400 {object} responses.ErrorResponse "Invalid user ID"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Security ApiKeyAuth
// @Router /users/{user_id} [get]
func (uc *UserController) GetUserByID(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}

	u, err := uc.repo.GetByID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve user: "+err.Error())
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User retrieved successfully", ToPublicProfile(u))
}
