// event/model.go
package event

import (
	"time"

	"github.com/wrendann/teamfinder/internal/models"
)

// Event represents a competition or gathering that teams form around.
type Event struct {
	models.Base
	Name        string    `json:"name" gorm:"not null;index"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date" gorm:"index;not null"`
	EndDate     time.Time `json:"end_date" gorm:"not null"`
	Location    string    `json:"location"`
}
