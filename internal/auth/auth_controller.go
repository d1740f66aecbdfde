package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wrendann/teamfinder/config"
	"github.com/wrendann/teamfinder/internal/middleware"
	"github.com/wrendann/teamfinder/internal/user"
	"github.com/wrendann/teamfinder/pkg/responses"
	"github.com/wrendann/teamfinder/pkg/token"
	"github.com/wrendann/teamfinder/pkg/validator"
	"github.com/wrendann/teamfinder/utils"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
	logger *zap.Logger
}

func NewAuthController(repo AuthRepository, cfg *config.Config, logger *zap.Logger) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
		logger: logger,
	}
}

func (ac *AuthController) generateAndSaveTokens(userID uuid.UUID) (string, string, error) {
	accessToken, err := token.GenerateJWT(userID, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString, err := token.GenerateRefreshToken(userID, ac.config.JWT.RefreshTokenSecret, ac.config.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return "", "", fmt.Errorf("refresh token generation failed: %w", err)
	}

	refreshToken := &RefreshToken{
		UserID:    userID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}

	if err := ac.repo.SaveRefreshToken(refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to save refresh token: %w", err)
	}
	return accessToken, refreshTokenString, nil
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a new account with username, email and password, plus optional profile fields.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "Registration details"
// @Success      201   {object} responses.SuccessResponse{data=AuthResponse} "Account created, returns tokens and profile"
// @Failure      400   {object} responses.ErrorResponse "Validation error"
// @Failure      409   {object} responses.ErrorResponse "Email or username already taken"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	if _, err := ac.repo.GetUserByEmail(req.Email); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.SendError(c, http.StatusConflict, "User with this email already exists")
		return
	}
	if _, err := ac.repo.GetUserByUsername(req.Username); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.SendError(c, http.StatusConflict, "User with this username already exists")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Failed to process password")
		return
	}

	newUser := user.User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Bio:      req.Bio,
		Skills:   req.Skills,
		Location: req.Location,
	}

	if err := ac.repo.CreateUser(&newUser); err != nil {
		responses.InternalServerError(c, "Failed to create user: "+err.Error())
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(newUser.ID)
	if err != nil {
		responses.InternalServerError(c, "Account created but failed to issue tokens: "+err.Error())
		return
	}

	ac.logger.Info("user registered", zap.String("user_id", newUser.ID.String()), zap.String("username", newUser.Username))
	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(&newUser),
	})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with email or username plus password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object} responses.SuccessResponse{data=AuthResponse} "Tokens and profile"
// @Failure      400  {object} responses.ErrorResponse "Validation error"
// @Failure      401  {object} responses.ErrorResponse "Invalid credentials"
// @Failure      500  {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	identifier := strings.TrimSpace(req.LoginIdentifier)
	var u *user.User
	var err error
	if strings.Contains(identifier, "@") {
		u, err = ac.repo.GetUserByEmail(strings.ToLower(identifier))
	} else {
		u, err = ac.repo.GetUserByUsername(identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.Unauthorized(c, "Invalid credentials")
			return
		}
		responses.InternalServerError(c, "Failed to look up user")
		return
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(u.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens: "+err.Error())
		return
	}

	ac.logger.Info("user logged in", zap.String("user_id", u.ID.String()))
	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u),
	})
}

// RefreshToken godoc
// @Summary      Refresh the access token
// @Description  Exchanges a valid, known refresh token for a new token pair. The old refresh token is rotated out.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        refresh  body  RefreshTokenRequest  true  "Refresh token"
// @Success      200  {object} responses.SuccessResponse{data=AuthResponse} "New tokens"
// @Failure      401  {object} responses.ErrorResponse "Unknown, expired or invalid refresh token"
// @Failure      500  {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	claims, err := token.ValidateJWT(req.RefreshToken, ac.config.JWT.RefreshTokenSecret)
	if err != nil {
		responses.Unauthorized(c, "Invalid refresh token: "+err.Error())
		return
	}

	stored, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up refresh token")
		return
	}
	if stored == nil || stored.ExpiresAt.Before(time.Now()) {
		responses.Unauthorized(c, "Refresh token is unknown or expired")
		return
	}

	u, err := ac.repo.GetUserByID(claims.UserID)
	if err != nil {
		responses.Unauthorized(c, "User for this token no longer exists")
		return
	}

	// Rotate: the presented token is consumed.
	if err := ac.repo.DeleteRefreshToken(req.RefreshToken); err != nil {
		responses.InternalServerError(c, "Failed to rotate refresh token")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(u.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens: "+err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Token refreshed", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u),
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Invalidates the given refresh token, or every session of the caller.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        logout  body  LogoutRequest  false  "Logout options"
// @Success      200  {object} responses.SuccessResponse "Logged out"
// @Failure      401  {object} responses.ErrorResponse "Unauthorized"
// @Security     ApiKeyAuth
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req LogoutRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	if req.InvalidateAllSessions {
		if err := ac.repo.DeleteRefreshTokensForUser(userID); err != nil {
			responses.InternalServerError(c, "Failed to invalidate sessions")
			return
		}
	} else if req.RefreshToken != "" {
		if err := ac.repo.DeleteRefreshToken(req.RefreshToken); err != nil {
			responses.InternalServerError(c, "Failed to invalidate session")
			return
		}
	}

	ac.logger.Info("user logged out", zap.String("user_id", userID.String()))
	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// GetProfile godoc
// @Summary      Get own profile
// @Tags         Auth
// @Produce      json
// @Success      200  {object} responses.SuccessResponse{data=UserResponse} "Profile"
// @Failure      401  {object} responses.ErrorResponse "Unauthorized"
// @Security     ApiKeyAuth
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to load profile")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", FilterUserRecord(u))
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Updates bio, skills, interests, location or profile picture. Omitted fields are untouched.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        profile  body  UpdateProfileRequest  true  "Profile fields"
// @Success      200  {object} responses.SuccessResponse{data=UserResponse} "Updated profile"
// @Failure      400  {object} responses.ErrorResponse "Validation error"
// @Failure      401  {object} responses.ErrorResponse "Unauthorized"
// @Security     ApiKeyAuth
// @Router       /auth/me [put]
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to load profile")
		return
	}

	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.Skills != nil {
		u.Skills = *req.Skills
	}
	if req.Interests != nil {
		u.Interests = *req.Interests
	}
	if req.Location != nil {
		u.Location = *req.Location
	}
	if req.ProfilePicture != nil {
		u.ProfilePicture = *req.ProfilePicture
	}

	if err := ac.repo.UpdateUser(u); err != nil {
		responses.InternalServerError(c, "Failed to update profile: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile updated successfully", FilterUserRecord(u))
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Verifies the old password, stores the new one and invalidates every session.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        passwords  body  ChangePasswordRequest  true  "Old and new password"
// @Success      200  {object} responses.SuccessResponse "Password changed"
// @Failure      400  {object} responses.ErrorResponse "Validation error"
// @Failure      401  {object} responses.ErrorResponse "Wrong old password"
// @Security     ApiKeyAuth
// @Router       /auth/change-password [post]
func (ac *AuthController) ChangePassword(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to load user")
		return
	}

	if !utils.CheckPassword(u.Password, req.OldPassword) {
		responses.Unauthorized(c, "Old password is incorrect")
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		responses.InternalServerError(c, "Failed to process password")
		return
	}
	u.Password = hashed

	if err := ac.repo.UpdateUser(u); err != nil {
		responses.InternalServerError(c, "Failed to update password")
		return
	}

	// All existing sessions are revoked after a password change.
	if err := ac.repo.DeleteRefreshTokensForUser(userID); err != nil {
		ac.logger.Warn("failed to revoke sessions after password change", zap.String("user_id", userID.String()), zap.Error(err))
	}

	responses.SendSuccess(c, http.StatusOK, "Password changed successfully", nil)
}
