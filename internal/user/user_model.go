package user

import (
	"github.com/wrendann/teamfinder/internal/models"
)

// User holds the account and the profile fields used for team matching.
type User struct {
	models.Base
	Username       string             `json:"username" gorm:"uniqueIndex;not null"`
	Email          string             `json:"email" gorm:"uniqueIndex;not null"`
	Password       string             `json:"-" gorm:"not null"`
	Bio            string             `json:"bio"`
	Skills         models.StringSlice `json:"skills" gorm:"type:jsonb"`
	Interests      models.StringSlice `json:"interests" gorm:"type:jsonb"`
	Location       string             `json:"location"`
	ProfilePicture string             `json:"profile_picture"`
}
