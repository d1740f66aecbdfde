package team

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RelationState describes a user's standing toward one team. Exactly one
// state holds at a time; when rows could support more than one reading the
// precedence below decides.
type RelationState string

const (
	RelationOwner     RelationState = "owner"
	RelationMember    RelationState = "member"
	RelationInvited   RelationState = "invited"
	RelationRequested RelationState = "requested"
	RelationRejected  RelationState = "rejected"
	RelationNone      RelationState = "none"
)

// Snapshot is a team plus every relationship row attached to it, all read
// together. Views are always derived from a fresh snapshot instead of
// patching earlier results, so a stale badge cannot outlive a refetch.
type Snapshot struct {
	Team        *Team
	Members     []TeamMember
	Requests    []JoinRequest
	Invitations []TeamInvitation
}

// CurrentSize is the number of approved members. The owner is not counted.
func (s *Snapshot) CurrentSize() int {
	return len(s.Members)
}

func (s *Snapshot) IsFull() bool {
	return s.CurrentSize() >= s.Team.MaxSize
}

// Relationship resolves the viewer's state toward the team, applying the
// precedence owner > member > invited > requested > rejected > none.
func Relationship(s *Snapshot, viewerID uuid.UUID) RelationState {
	if viewerID == uuid.Nil {
		return RelationNone
	}
	if s.Team.OwnerID == viewerID {
		return RelationOwner
	}
	for _, m := range s.Members {
		if m.UserID == viewerID {
			return RelationMember
		}
	}
	for _, inv := range s.Invitations {
		if inv.UserID == viewerID && inv.Status == StatusPending {
			return RelationInvited
		}
	}
	for _, req := range s.Requests {
		if req.UserID == viewerID && req.Status == StatusPending {
			return RelationRequested
		}
	}
	for _, req := range s.Requests {
		if req.UserID == viewerID && req.Status == StatusRejected {
			return RelationRejected
		}
	}
	for _, inv := range s.Invitations {
		if inv.UserID == viewerID && inv.Status == StatusRejected {
			return RelationRejected
		}
	}
	return RelationNone
}

// MembershipEngine owns every transition between relationship states. Each
// operation re-reads and re-validates inside one transaction, so a decision
// made against a stale view still lands consistently or fails with a
// transition error.
type MembershipEngine struct {
	repo        TeamRepository
	allowRejoin bool
}

// NewMembershipEngine creates the transition engine. allowRejoin controls
// whether a previously rejected user may request or be invited again.
func NewMembershipEngine(repo TeamRepository, allowRejoin bool) *MembershipEngine {
	return &MembershipEngine{repo: repo, allowRejoin: allowRejoin}
}

// relationIn computes the caller's state using targeted lookups, for use
// inside a transaction where pulling a full snapshot would be wasteful.
func relationIn(tx TeamRepository, team *Team, userID uuid.UUID) (RelationState, error) {
	if team.OwnerID == userID {
		return RelationOwner, nil
	}
	member, err := tx.GetMember(team.ID, userID)
	if err != nil {
		return RelationNone, err
	}
	if member != nil {
		return RelationMember, nil
	}
	invitation, err := tx.GetPendingInvitation(team.ID, userID)
	if err != nil {
		return RelationNone, err
	}
	if invitation != nil {
		return RelationInvited, nil
	}
	request, err := tx.GetPendingJoinRequest(team.ID, userID)
	if err != nil {
		return RelationNone, err
	}
	if request != nil {
		return RelationRequested, nil
	}
	rejectedReq, err := tx.HasRejectedJoinRequest(team.ID, userID)
	if err != nil {
		return RelationNone, err
	}
	rejectedInv, err := tx.HasRejectedInvitation(team.ID, userID)
	if err != nil {
		return RelationNone, err
	}
	if rejectedReq || rejectedInv {
		return RelationRejected, nil
	}
	return RelationNone, nil
}

// clearRejections removes stale rejected rows so a fresh request or
// invitation starts the pair from a clean slate.
func clearRejections(tx TeamRepository, teamID, userID uuid.UUID) error {
	if err := tx.DeleteJoinRequests(teamID, userID); err != nil {
		return err
	}
	return tx.DeleteInvitations(teamID, userID)
}

// RequestJoin files a join request by the caller. Legal only from the none
// state (or rejected, when rejoin is allowed), and only while the team is
// open with room left.
func (e *MembershipEngine) RequestJoin(teamID, callerID uuid.UUID) error {
	return e.repo.WithTransaction(func(tx TeamRepository) error {
		team, err := tx.GetTeamByID(teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrTeamNotFound
		}

		state, err := relationIn(tx, team, callerID)
		if err != nil {
			return err
		}
		switch state {
		case RelationOwner, RelationMember, RelationInvited, RelationRequested:
			return ErrAlreadyRelated
		case RelationRejected:
			if !e.allowRejoin {
				return ErrNotAllowed
			}
		}

		if !team.IsOpen {
			return ErrTeamClosed
		}
		count, err := tx.CountMembers(teamID)
		if err != nil {
			return err
		}
		if count >= int64(team.MaxSize) {
			return ErrTeamFull
		}

		if state == RelationRejected {
			if err := clearRejections(tx, teamID, callerID); err != nil {
				return err
			}
		}
		return tx.CreateJoinRequest(&JoinRequest{
			TeamID: teamID,
			UserID: callerID,
			Status: StatusPending,
		})
	})
}

// Invite issues an invitation from the owner to a target user. A previously
// rejected target may always be re-invited; the rejoin toggle only restricts
// self-initiated requests. Capacity is deliberately not checked here; it is
// enforced when the invitation is accepted, so an owner can line up
// candidates for seats that may free up.
func (e *MembershipEngine) Invite(teamID, callerID, targetID uuid.UUID) error {
	return e.repo.WithTransaction(func(tx TeamRepository) error {
		team, err := tx.GetTeamByID(teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrTeamNotFound
		}
		if team.OwnerID != callerID {
			return ErrNotOwner
		}

		state, err := relationIn(tx, team, targetID)
		if err != nil {
			return err
		}
		switch state {
		case RelationOwner, RelationMember, RelationInvited, RelationRequested:
			return ErrAlreadyRelated
		case RelationRejected:
			if err := clearRejections(tx, teamID, targetID); err != nil {
				return err
			}
		}

		return tx.CreateInvitation(&TeamInvitation{
			TeamID:      teamID,
			UserID:      targetID,
			InvitedByID: team.OwnerID,
			Status:      StatusPending,
		})
	})
}

// AcceptRequest promotes a pending join request to membership. Owner only.
// Capacity is re-checked here, so two accepts racing for one seat cannot
// both land.
func (e *MembershipEngine) AcceptRequest(teamID, callerID, targetID uuid.UUID) error {
	return e.repo.WithTransaction(func(tx TeamRepository) error {
		team, err := tx.GetTeamByID(teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrTeamNotFound
		}
		if team.OwnerID != callerID {
			return ErrNotOwner
		}

		request, err := tx.GetPendingJoinRequest(teamID, targetID)
		if err != nil {
			return err
		}
		if request == nil {
			return ErrTargetNotFound
		}

		count, err := tx.CountMembers(teamID)
		if err != nil {
			return err
		}
		if count >= int64(team.MaxSize) {
			return ErrTeamFull
		}

		if err := tx.DeleteJoinRequests(teamID, targetID); err != nil {
			return err
		}
		return tx.CreateMember(&TeamMember{
			TeamID:   teamID,
			UserID:   targetID,
			Role:     DefaultMemberRole,
			JoinedAt: time.Now(),
		})
	})
}

// RejectRequest marks a pending join request rejected. Owner only. The row
// is kept so the requester sees the outcome.
func (e *MembershipEngine) RejectRequest(teamID, callerID, targetID uuid.UUID) error {
	return e.repo.WithTransaction(func(tx TeamRepository) error {
		team, err := tx.GetTeamByID(teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrTeamNotFound
		}
		if team.OwnerID != callerID {
			return ErrNotOwner
		}

		request, err := tx.GetPendingJoinRequest(teamID, targetID)
		if err != nil {
			return err
		}
		if request == nil {
			return ErrTargetNotFound
		}

		request.Status = StatusRejected
		return tx.UpdateJoinRequest(request)
	})
}

// AcceptInvite accepts the caller's own pending invitation. Capacity is
// checked now, not at invite time, so a full team fails the accept.
func (e *MembershipEngine) AcceptInvite(teamID, callerID uuid.UUID) error {
	return e.repo.WithTransaction(func(tx TeamRepository) error {
		team, err := tx.GetTeamByID(teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrTeamNotFound
		}

		invitation, err := tx.GetPendingInvitation(teamID, callerID)
		if err != nil {
			return err
		}
		if invitation == nil {
			return ErrTargetNotFound
		}

		count, err := tx.CountMembers(teamID)
		if err != nil {
			return err
		}
		if count >= int64(team.MaxSize) {
			return ErrTeamFull
		}

		if err := tx.DeleteInvitations(teamID, callerID); err != nil {
			return err
		}
		return tx.CreateMember(&TeamMember{
			TeamID:   teamID,
			UserID:   callerID,
			Role:     DefaultMemberRole,
			JoinedAt: time.Now(),
		})
	})
}

// RejectInvite declines the caller's own pending invitation.
func (e *MembershipEngine) RejectInvite(teamID, callerID uuid.UUID) error {
	return e.repo.WithTransaction(func(tx TeamRepository) error {
		team, err := tx.GetTeamByID(teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrTeamNotFound
		}

		invitation, err := tx.GetPendingInvitation(teamID, callerID)
		if err != nil {
			return err
		}
		if invitation == nil {
			return ErrTargetNotFound
		}

		invitation.Status = StatusRejected
		return tx.UpdateInvitation(invitation)
	})
}

// Kick removes a member. Owner only; the owner cannot be kicked.
func (e *MembershipEngine) Kick(teamID, callerID, targetID uuid.UUID) error {
	return e.repo.WithTransaction(func(tx TeamRepository) error {
		team, err := tx.GetTeamByID(teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrTeamNotFound
		}
		if team.OwnerID != callerID {
			return ErrNotOwner
		}
		if targetID == team.OwnerID {
			return ErrNotAllowed
		}

		member, err := tx.GetMember(teamID, targetID)
		if err != nil {
			return err
		}
		if member == nil {
			return ErrTargetNotFound
		}
		return tx.DeleteMember(teamID, targetID)
	})
}

// Leave removes the caller's own membership. The owner cannot leave; they
// would have to delete the team instead.
func (e *MembershipEngine) Leave(teamID, callerID uuid.UUID) error {
	return e.repo.WithTransaction(func(tx TeamRepository) error {
		team, err := tx.GetTeamByID(teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrTeamNotFound
		}
		if team.OwnerID == callerID {
			return ErrOwnerCannotLeave
		}

		member, err := tx.GetMember(teamID, callerID)
		if err != nil {
			return err
		}
		if member == nil {
			return ErrTargetNotFound
		}
		return tx.DeleteMember(teamID, callerID)
	})
}

// UpdateRole changes a member's role label. Owner only; the owner has no
// member row so their "role" cannot be edited.
func (e *MembershipEngine) UpdateRole(teamID, callerID, targetID uuid.UUID, role string) error {
	role = strings.TrimSpace(role)
	if role == "" {
		return ErrValidation
	}
	return e.repo.WithTransaction(func(tx TeamRepository) error {
		team, err := tx.GetTeamByID(teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrTeamNotFound
		}
		if team.OwnerID != callerID {
			return ErrNotOwner
		}
		if targetID == team.OwnerID {
			return ErrNotAllowed
		}

		member, err := tx.GetMember(teamID, targetID)
		if err != nil {
			return err
		}
		if member == nil {
			return ErrTargetNotFound
		}

		member.Role = role
		return tx.UpdateMember(member)
	})
}

// TeamUpdate carries the owner-editable team fields. Nil pointers leave the
// field untouched.
type TeamUpdate struct {
	Name           *string
	Description    *string
	RequiredSkills *string
	IsOpen         *bool
	MaxSize        *int
}

// UpdateTeamDetails patches team attributes. Owner only. Shrinking MaxSize
// below the current member count is refused rather than evicting anyone.
func (e *MembershipEngine) UpdateTeamDetails(teamID, callerID uuid.UUID, update TeamUpdate) (*Team, error) {
	var updated *Team
	err := e.repo.WithTransaction(func(tx TeamRepository) error {
		team, err := tx.GetTeamByID(teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrTeamNotFound
		}
		if team.OwnerID != callerID {
			return ErrNotOwner
		}

		if update.Name != nil {
			name := strings.TrimSpace(*update.Name)
			if name == "" {
				return ErrValidation
			}
			team.Name = name
		}
		if update.Description != nil {
			team.Description = *update.Description
		}
		if update.RequiredSkills != nil {
			team.RequiredSkills = *update.RequiredSkills
		}
		if update.IsOpen != nil {
			team.IsOpen = *update.IsOpen
		}
		if update.MaxSize != nil {
			if *update.MaxSize < 1 {
				return ErrValidation
			}
			count, err := tx.CountMembers(teamID)
			if err != nil {
				return err
			}
			if int64(*update.MaxSize) < count {
				return ErrValidation
			}
			team.MaxSize = *update.MaxSize
		}

		if err := tx.UpdateTeam(team); err != nil {
			return err
		}
		updated = team
		return nil
	})
	return updated, err
}

// DeleteTeam removes the team and every relationship row. Owner only.
func (e *MembershipEngine) DeleteTeam(teamID, callerID uuid.UUID) error {
	return e.repo.WithTransaction(func(tx TeamRepository) error {
		team, err := tx.GetTeamByID(teamID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrTeamNotFound
		}
		if team.OwnerID != callerID {
			return ErrNotOwner
		}
		return tx.DeleteTeam(teamID)
	})
}
