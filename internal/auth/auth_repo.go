package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wrendann/teamfinder/internal/user"
)

// AuthRepository defines the data operations the auth flows need.
type AuthRepository interface {
	CreateUser(u *user.User) error
	GetUserByID(id uuid.UUID) (*user.User, error)
	GetUserByEmail(email string) (*user.User, error)
	GetUserByUsername(username string) (*user.User, error)
	UpdateUser(u *user.User) error

	SaveRefreshToken(rt *RefreshToken) error
	GetRefreshToken(tokenString string) (*RefreshToken, error)
	DeleteRefreshToken(tokenString string) error
	DeleteRefreshTokensForUser(userID uuid.UUID) error
	DeleteExpiredRefreshTokens() error
}

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *authRepository) GetUserByID(id uuid.UUID) (*user.User, error) {
	var u user.User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByEmail(email string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByUsername(username string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) UpdateUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *authRepository) SaveRefreshToken(rt *RefreshToken) error {
	return r.db.Create(rt).Error
}

func (r *authRepository) GetRefreshToken(tokenString string) (*RefreshToken, error) {
	var rt RefreshToken
	if err := r.db.Where("token = ?", tokenString).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *authRepository) DeleteRefreshToken(tokenString string) error {
	return r.db.Where("token = ?", tokenString).Delete(&RefreshToken{}).Error
}

func (r *authRepository) DeleteRefreshTokensForUser(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&RefreshToken{}).Error
}

func (r *authRepository) DeleteExpiredRefreshTokens() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&RefreshToken{}).Error
}
