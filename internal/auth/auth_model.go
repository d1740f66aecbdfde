package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/wrendann/teamfinder/internal/models"
	"github.com/wrendann/teamfinder/internal/user"
)

// RefreshToken is the server-side record of an issued refresh token. Logout
// deletes it, so a stolen token cannot mint new sessions afterwards.
type RefreshToken struct {
	models.Base
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=30"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8,max=72"`
	Bio      string   `json:"bio,omitempty" binding:"max=500"`
	Skills   []string `json:"skills,omitempty"`
	Location string   `json:"location,omitempty"`
}

type LoginRequest struct {
	// Email or username.
	LoginIdentifier string `json:"login_identifier" binding:"required" example:"jane@example.com"`
	Password        string `json:"password" binding:"required" example:"password123"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken          string `json:"refresh_token"`
	InvalidateAllSessions bool   `json:"invalidate_all_sessions"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=NewPassword"`
}

type UpdateProfileRequest struct {
	Bio            *string   `json:"bio,omitempty" binding:"omitempty,max=500"`
	Skills         *[]string `json:"skills,omitempty"`
	Interests      *[]string `json:"interests,omitempty"`
	Location       *string   `json:"location,omitempty" binding:"omitempty,max=100"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Bio            string    `json:"bio"`
	Skills         []string  `json:"skills"`
	Interests      []string  `json:"interests"`
	Location       string    `json:"location"`
	ProfilePicture string    `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FilterUserRecord maps a user row to the response shape the session owner
// sees about themselves.
func FilterUserRecord(u *user.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Bio:            u.Bio,
		Skills:         u.Skills,
		Interests:      u.Interests,
		Location:       u.Location,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
