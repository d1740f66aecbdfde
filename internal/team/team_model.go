// team/model.go
package team

import (
	"time"

	"github.com/google/uuid"

	"github.com/wrendann/teamfinder/internal/event"
	"github.com/wrendann/teamfinder/internal/models"
	"github.com/wrendann/teamfinder/internal/user"
)

const (
	StatusPending  = "pending"
	StatusRejected = "rejected"

	// DefaultMemberRole is the role a member gets on acceptance. Roles are
	// free-text labels; the UI offers suggestions but anything non-empty goes.
	DefaultMemberRole = "Member"

	// DefaultMaxSize applies when a team is created without a capacity.
	DefaultMaxSize = 5
)

// Team is a bounded group tied to one event. The owner is a reference to a
// user, not a member row: owners are never listed in team_members and never
// count toward capacity.
type Team struct {
	models.Base
	Name           string       `json:"name" gorm:"not null"`
	Description    string       `json:"description"`
	EventID        uuid.UUID    `json:"event_id" gorm:"type:uuid;index;not null"`
	Event          event.Event  `json:"-" gorm:"foreignKey:EventID"`
	OwnerID        uuid.UUID    `json:"owner_id" gorm:"type:uuid;index;not null"`
	Owner          user.User    `json:"-" gorm:"foreignKey:OwnerID"`
	MaxSize        int          `json:"max_size" gorm:"not null;default:5"`
	RequiredSkills string       `json:"required_skills"`
	IsOpen         bool         `json:"is_open" gorm:"default:true"`
	Members        []TeamMember `json:"-" gorm:"foreignKey:TeamID"`
}

// TeamMember is an approved, counted membership. At most one row per
// (team, user).
type TeamMember struct {
	models.Base
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;uniqueIndex:idx_member_team_user;not null"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex:idx_member_team_user;not null"`
	User     user.User `json:"-" gorm:"foreignKey:UserID"`
	Role     string    `json:"role" gorm:"default:'Member'"`
	JoinedAt time.Time `json:"joined_at"`
}

// JoinRequest is a pending ask from a non-member, awaiting the owner's
// decision. A rejected request stays around with status "rejected" so the
// requester's state is visible to them.
type JoinRequest struct {
	models.Base
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;index;not null"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	User   user.User `json:"-" gorm:"foreignKey:UserID"`
	Status string    `json:"status" gorm:"default:'pending'"`
}

// TeamInvitation is a pending owner-issued offer, awaiting the invitee's
// decision. InvitedByID always records the team owner who sent it.
type TeamInvitation struct {
	models.Base
	TeamID      uuid.UUID `json:"team_id" gorm:"type:uuid;index;not null"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	User        user.User `json:"-" gorm:"foreignKey:UserID"`
	InvitedByID uuid.UUID `json:"invited_by_id" gorm:"type:uuid;not null"`
	Status      string    `json:"status" gorm:"default:'pending'"`
}
