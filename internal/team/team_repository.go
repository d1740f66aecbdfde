package team

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository is the persistence surface for teams and the three
// relationship tables. Lookup methods return (nil, nil) when no row exists.
type TeamRepository interface {
	CreateTeam(team *Team) error
	GetTeamByID(id uuid.UUID) (*Team, error)
	GetTeams(page, limit int, filters map[string]interface{}) ([]Team, int64, error)
	UpdateTeam(team *Team) error
	DeleteTeam(id uuid.UUID) error
	GetTeamsOwnedBy(userID uuid.UUID) ([]Team, error)
	GetTeamsWithMember(userID uuid.UUID) ([]Team, error)
	GetTeamsByEvent(eventID uuid.UUID) ([]Team, error)

	GetSnapshot(teamID uuid.UUID) (*Snapshot, error)

	GetMember(teamID, userID uuid.UUID) (*TeamMember, error)
	CountMembers(teamID uuid.UUID) (int64, error)
	CreateMember(member *TeamMember) error
	UpdateMember(member *TeamMember) error
	DeleteMember(teamID, userID uuid.UUID) error

	GetPendingJoinRequest(teamID, userID uuid.UUID) (*JoinRequest, error)
	HasRejectedJoinRequest(teamID, userID uuid.UUID) (bool, error)
	GetJoinRequestsForUser(userID uuid.UUID) ([]JoinRequest, error)
	CreateJoinRequest(request *JoinRequest) error
	UpdateJoinRequest(request *JoinRequest) error
	DeleteJoinRequests(teamID, userID uuid.UUID) error

	GetPendingInvitation(teamID, userID uuid.UUID) (*TeamInvitation, error)
	HasRejectedInvitation(teamID, userID uuid.UUID) (bool, error)
	GetInvitationsForUser(userID uuid.UUID) ([]TeamInvitation, error)
	CreateInvitation(invitation *TeamInvitation) error
	UpdateInvitation(invitation *TeamInvitation) error
	DeleteInvitations(teamID, userID uuid.UUID) error

	// WithTransaction runs fn against a repository bound to a single
	// transaction; fn returning an error rolls everything back.
	WithTransaction(fn func(tx TeamRepository) error) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new gorm-backed team repository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) WithTransaction(fn func(tx TeamRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&teamRepository{db: tx})
	})
}

func (r *teamRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) GetTeamByID(id uuid.UUID) (*Team, error) {
	var team Team
	err := r.db.Preload("Event").Preload("Owner").Preload("Members").
		First(&team, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeams(page, limit int, filters map[string]interface{}) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{})
	if name, ok := filters["name"].(string); ok && name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}
	if eventID, ok := filters["event_id"].(uuid.UUID); ok {
		query = query.Where("event_id = ?", eventID)
	}
	if isOpen, ok := filters["is_open"].(bool); ok {
		query = query.Where("is_open = ?", isOpen)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Event").Preload("Owner").Preload("Members").
		Order("created_at desc").Offset(offset).Limit(limit).
		Find(&teams).Error
	return teams, total, err
}

func (r *teamRepository) UpdateTeam(team *Team) error {
	return r.db.Save(team).Error
}

func (r *teamRepository) DeleteTeam(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("team_id = ?", id).Delete(&TeamMember{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("team_id = ?", id).Delete(&JoinRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("team_id = ?", id).Delete(&TeamInvitation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Team{}, "id = ?", id).Error
	})
}

func (r *teamRepository) GetTeamsOwnedBy(userID uuid.UUID) ([]Team, error) {
	var teams []Team
	err := r.db.Preload("Event").Preload("Owner").Preload("Members").
		Where("owner_id = ?", userID).Order("created_at desc").
		Find(&teams).Error
	return teams, err
}

func (r *teamRepository) GetTeamsWithMember(userID uuid.UUID) ([]Team, error) {
	var teams []Team
	err := r.db.Preload("Event").Preload("Owner").Preload("Members").
		Joins("JOIN team_members ON team_members.team_id = teams.id AND team_members.deleted_at IS NULL").
		Where("team_members.user_id = ?", userID).
		Order("teams.created_at desc").
		Find(&teams).Error
	return teams, err
}

func (r *teamRepository) GetTeamsByEvent(eventID uuid.UUID) ([]Team, error) {
	var teams []Team
	err := r.db.Preload("Owner").Preload("Members").
		Where("event_id = ?", eventID).Order("created_at desc").
		Find(&teams).Error
	return teams, err
}

func (r *teamRepository) GetSnapshot(teamID uuid.UUID) (*Snapshot, error) {
	team, err := r.GetTeamByID(teamID)
	if err != nil || team == nil {
		return nil, err
	}

	snapshot := &Snapshot{Team: team}

	if err := r.db.Preload("User").Where("team_id = ?", teamID).
		Order("joined_at asc").Find(&snapshot.Members).Error; err != nil {
		return nil, err
	}
	if err := r.db.Preload("User").Where("team_id = ?", teamID).
		Order("created_at asc").Find(&snapshot.Requests).Error; err != nil {
		return nil, err
	}
	if err := r.db.Preload("User").Where("team_id = ?", teamID).
		Order("created_at asc").Find(&snapshot.Invitations).Error; err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (r *teamRepository) GetMember(teamID, userID uuid.UUID) (*TeamMember, error) {
	var member TeamMember
	err := r.db.First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) CountMembers(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

func (r *teamRepository) CreateMember(member *TeamMember) error {
	return r.db.Create(member).Error
}

func (r *teamRepository) UpdateMember(member *TeamMember) error {
	return r.db.Save(member).Error
}

// Relationship rows are hard-deleted: a soft-deleted member row would still
// occupy the (team_id, user_id) unique index and block a later rejoin.
func (r *teamRepository) DeleteMember(teamID, userID uuid.UUID) error {
	return r.db.Unscoped().Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&TeamMember{}).Error
}

func (r *teamRepository) GetPendingJoinRequest(teamID, userID uuid.UUID) (*JoinRequest, error) {
	var request JoinRequest
	err := r.db.First(&request, "team_id = ? AND user_id = ? AND status = ?",
		teamID, userID, StatusPending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *teamRepository) HasRejectedJoinRequest(teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&JoinRequest{}).
		Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, StatusRejected).
		Count(&count).Error
	return count > 0, err
}

func (r *teamRepository) GetJoinRequestsForUser(userID uuid.UUID) ([]JoinRequest, error) {
	var requests []JoinRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").
		Find(&requests).Error
	return requests, err
}

func (r *teamRepository) CreateJoinRequest(request *JoinRequest) error {
	return r.db.Create(request).Error
}

func (r *teamRepository) UpdateJoinRequest(request *JoinRequest) error {
	return r.db.Save(request).Error
}

func (r *teamRepository) DeleteJoinRequests(teamID, userID uuid.UUID) error {
	return r.db.Unscoped().Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&JoinRequest{}).Error
}

func (r *teamRepository) GetPendingInvitation(teamID, userID uuid.UUID) (*TeamInvitation, error) {
	var invitation TeamInvitation
	err := r.db.First(&invitation, "team_id = ? AND user_id = ? AND status = ?",
		teamID, userID, StatusPending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invitation, nil
}

func (r *teamRepository) HasRejectedInvitation(teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&TeamInvitation{}).
		Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, StatusRejected).
		Count(&count).Error
	return count > 0, err
}

func (r *teamRepository) GetInvitationsForUser(userID uuid.UUID) ([]TeamInvitation, error) {
	var invitations []TeamInvitation
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").
		Find(&invitations).Error
	return invitations, err
}

func (r *teamRepository) CreateInvitation(invitation *TeamInvitation) error {
	return r.db.Create(invitation).Error
}

func (r *teamRepository) UpdateInvitation(invitation *TeamInvitation) error {
	return r.db.Save(invitation).Error
}

func (r *teamRepository) DeleteInvitations(teamID, userID uuid.UUID) error {
	return r.db.Unscoped().Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&TeamInvitation{}).Error
}
