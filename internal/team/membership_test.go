package team

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrendann/teamfinder/internal/models"
)

func seedTeam(t *testing.T, repo *memoryRepository, ownerID uuid.UUID, maxSize int, isOpen bool) *Team {
	t.Helper()
	team := &Team{
		Name:    "Test Team",
		EventID: uuid.New(),
		OwnerID: ownerID,
		MaxSize: maxSize,
		IsOpen:  isOpen,
	}
	require.NoError(t, repo.CreateTeam(team))
	return team
}

func seedMember(t *testing.T, repo *memoryRepository, teamID, userID uuid.UUID) {
	t.Helper()
	require.NoError(t, repo.CreateMember(&TeamMember{
		TeamID:   teamID,
		UserID:   userID,
		Role:     DefaultMemberRole,
		JoinedAt: time.Now(),
	}))
}

func relationOf(t *testing.T, repo *memoryRepository, teamID, userID uuid.UUID) RelationState {
	t.Helper()
	snapshot, err := repo.GetSnapshot(teamID)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	return Relationship(snapshot, userID)
}

func TestRequestJoinLifecycle(t *testing.T) {
	repo := newMemoryRepository()
	engine := NewMembershipEngine(repo, true)
	owner, alice := uuid.New(), uuid.New()
	team := seedTeam(t, repo, owner, 3, true)

	require.NoError(t, engine.RequestJoin(team.ID, alice))
	assert.Equal(t, RelationRequested, relationOf(t, repo, team.ID, alice))

	// Filing twice is a no-op conflict, not a second row.
	assert.ErrorIs(t, engine.RequestJoin(team.ID, alice), ErrAlreadyRelated)

	require.NoError(t, engine.AcceptRequest(team.ID, owner, alice))
	assert.Equal(t, RelationMember, relationOf(t, repo, team.ID, alice))

	// The accept consumed the request, so replaying it fails cleanly.
	assert.ErrorIs(t, engine.AcceptRequest(team.ID, owner, alice), ErrTargetNotFound)

	// A member cannot re-request.
	assert.ErrorIs(t, engine.RequestJoin(team.ID, alice), ErrAlreadyRelated)

	// The request row is gone, not merely resolved.
	requests, err := repo.GetJoinRequestsForUser(alice)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestRequestJoinOwnerAndGates(t *testing.T) {
	repo := newMemoryRepository()
	engine := NewMembershipEngine(repo, true)
	owner := uuid.New()

	open := seedTeam(t, repo, owner, 1, true)
	assert.ErrorIs(t, engine.RequestJoin(open.ID, owner), ErrAlreadyRelated)

	closed := seedTeam(t, repo, owner, 3, false)
	assert.ErrorIs(t, engine.RequestJoin(closed.ID, uuid.New()), ErrTeamClosed)

	seedMember(t, repo, open.ID, uuid.New())
	assert.ErrorIs(t, engine.RequestJoin(open.ID, uuid.New()), ErrTeamFull)

	assert.ErrorIs(t, engine.RequestJoin(uuid.New(), uuid.New()), ErrTeamNotFound)
}

func TestAcceptRequestCapacityRace(t *testing.T) {
	repo := newMemoryRepository()
	engine := NewMembershipEngine(repo, true)
	owner, alice, bob := uuid.New(), uuid.New(), uuid.New()
	team := seedTeam(t, repo, owner, 1, true)

	require.NoError(t, engine.RequestJoin(team.ID, alice))
	require.NoError(t, engine.RequestJoin(team.ID, bob))

	// One seat, two pending requests: the second accept must lose even
	// though both looked fine when filed.
	require.NoError(t, engine.AcceptRequest(team.ID, owner, alice))
	assert.ErrorIs(t, engine.AcceptRequest(team.ID, owner, bob), ErrTeamFull)

	assert.Equal(t, RelationMember, relationOf(t, repo, team.ID, alice))
	assert.Equal(t, RelationRequested, relationOf(t, repo, team.ID, bob))
}

func TestAcceptRejectRequireOwner(t *testing.T) {
	repo := newMemoryRepository()
	engine := NewMembershipEngine(repo, true)
	owner, alice, mallory := uuid.New(), uuid.New(), uuid.New()
	team := seedTeam(t, repo, owner, 3, true)

	require.NoError(t, engine.RequestJoin(team.ID, alice))

	assert.ErrorIs(t, engine.AcceptRequest(team.ID, mallory, alice), ErrNotOwner)
	assert.ErrorIs(t, engine.RejectRequest(team.ID, mallory, alice), ErrNotOwner)
	// The requester cannot approve themselves either.
	assert.ErrorIs(t, engine.AcceptRequest(team.ID, alice, alice), ErrNotOwner)

	assert.Equal(t, RelationRequested, relationOf(t, repo, team.ID, alice))
}

func TestRejectionAndRejoin(t *testing.T) {
	repo := newMemoryRepository()
	engine := NewMembershipEngine(repo, true)
	owner, alice := uuid.New(), uuid.New()
	team := seedTeam(t, repo, owner, 3, true)

	require.NoError(t, engine.RequestJoin(team.ID, alice))
	require.NoError(t, engine.RejectRequest(team.ID, owner, alice))
	assert.Equal(t, RelationRejected, relationOf(t, repo, team.ID, alice))

	// Rejecting an already rejected request fails: nothing is pending.
	assert.ErrorIs(t, engine.RejectRequest(team.ID, owner, alice), ErrTargetNotFound)

	// Rejoin allowed: a fresh request replaces the rejected history.
	require.NoError(t, engine.RequestJoin(team.ID, alice))
	assert.Equal(t, RelationRequested, relationOf(t, repo, team.ID, alice))

	requests, err := repo.GetJoinRequestsForUser(alice)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, StatusPending, requests[0].Status)
}

func TestRejoinDisabled(t *testing.T) {
	repo := newMemoryRepository()
	engine := NewMembershipEngine(repo, false)
	owner, alice := uuid.New(), uuid.New()
	team := seedTeam(t, repo, owner, 3, true)

	require.NoError(t, engine.RequestJoin(team.ID, alice))
	require.NoError(t, engine.RejectRequest(team.ID, owner, alice))

	assert.ErrorIs(t, engine.RequestJoin(team.ID, alice), ErrNotAllowed)
	assert.Equal(t, RelationRejected, relationOf(t, repo, team.ID, alice))

	// The toggle blocks self-initiated requests only; the owner may still
	// re-invite a rejected user.
	require.NoError(t, engine.Invite(team.ID, owner, alice))
	assert.Equal(t, RelationInvited, relationOf(t, repo, team.ID, alice))
}

func TestInviteFlow(t *testing.T) {
	repo := newMemoryRepository()
	engine := NewMembershipEngine(repo, true)
	owner, alice, mallory := uuid.New(), uuid.New(), uuid.New()
	team := seedTeam(t, repo, owner, 3, true)

	assert.ErrorIs(t, engine.Invite(team.ID, mallory, alice), ErrNotOwner)
	assert.ErrorIs(t, engine.Invite(team.ID, owner, owner), ErrAlreadyRelated)

	require.NoError(t, engine.Invite(team.ID, owner, alice))
	assert.Equal(t, RelationInvited, relationOf(t, repo, team.ID, alice))
	assert.ErrorIs(t, engine.Invite(team.ID, owner, alice), ErrAlreadyRelated)

	// An invited user does not file requests on top of the invitation.
	assert.ErrorIs(t, engine.RequestJoin(team.ID, alice), ErrAlreadyRelated)

	require.NoError(t, engine.AcceptInvite(team.ID, alice))
	assert.Equal(t, RelationMember, relationOf(t, repo, team.ID, alice))
	assert.ErrorIs(t, engine.AcceptInvite(team.ID, alice), ErrTargetNotFound)

	invitations, err := repo.GetInvitationsForUser(alice)
	require.NoError(t, err)
	assert.Empty(t, invitations)
}

func TestInviteIgnoresCapacityUntilAccept(t *testing.T) {
	repo := newMemoryRepository()
	engine := NewMembershipEngine(repo, true)
	owner, alice := uuid.New(), uuid.New()
	team := seedTeam(t, repo, owner, 1, true)
	seedMember(t, repo, team.ID, uuid.New())

	// Owners may queue invitations past capacity; the gate is at accept.
	require.NoError(t, engine.Invite(team.ID, owner, alice))
	assert.ErrorIs(t, engine.AcceptInvite(team.ID, alice), ErrTeamFull)
	assert.Equal(t, RelationInvited, relationOf(t, repo, team.ID, alice))

	// Once a seat frees up the same invitation goes through.
	snapshot, err := repo.GetSnapshot(team.ID)
	require.NoError(t, err)
	require.NoError(t, engine.Kick(team.ID, owner, snapshot.Members[0].UserID))
	require.NoError(t, engine.AcceptInvite(team.ID, alice))
	assert.Equal(t, RelationMember, relationOf(t, repo, team.ID, alice))
}

func TestRejectInvitation(t *testing.T) {
	repo := newMemoryRepository()
	engine := NewMembershipEngine(repo, true)
	owner, alice := uuid.New(), uuid.New()
	team := seedTeam(t, repo, owner, 3, true)

	require.NoError(t, engine.Invite(team.ID, owner, alice))
	require.NoError(t, engine.RejectInvite(team.ID, alice))
	assert.Equal(t, RelationRejected, relationOf(t, repo, team.ID, alice))
	assert.ErrorIs(t, engine.RejectInvite(team.ID, alice), ErrTargetNotFound)

	// Rejecting an invitation does not bar a change of heart.
	require.NoError(t, engine.RequestJoin(team.ID, alice))
	assert.Equal(t, RelationRequested, relationOf(t, repo, team.ID, alice))
}

func TestKickAndLeave(t *testing.T) {
	repo := newMemoryRepository()
	engine := NewMembershipEngine(repo, true)
	owner, alice, bob := uuid.New(), uuid.New(), uuid.New()
	team := seedTeam(t, repo, owner, 3, true)
	seedMember(t, repo, team.ID, alice)
	seedMember(t, repo, team.ID, bob)

	assert.ErrorIs(t, engine.Kick(team.ID, alice, bob), ErrNotOwner)
	assert.ErrorIs(t, engine.Kick(team.ID, owner, owner), ErrNotAllowed)
	assert.ErrorIs(t, engine.Kick(team.ID, owner, uuid.New()), ErrTargetNotFound)

	require.NoError(t, engine.Kick(team.ID, owner, alice))
	assert.Equal(t, RelationNone, relationOf(t, repo, team.ID, alice))

	assert.ErrorIs(t, engine.Leave(team.ID, owner), ErrOwnerCannotLeave)
	assert.ErrorIs(t, engine.Leave(team.ID, alice), ErrTargetNotFound)
	require.NoError(t, engine.Leave(team.ID, bob))
	assert.Equal(t, RelationNone, relationOf(t, repo, team.ID, bob))

	// A kicked user starts over from none.
	require.NoError(t, engine.RequestJoin(team.ID, alice))
	assert.Equal(t, RelationRequested, relationOf(t, repo, team.ID, alice))
}

func TestUpdateRole(t *testing.T) {
	repo := newMemoryRepository()
	engine := NewMembershipEngine(repo, true)
	owner, alice := uuid.New(), uuid.New()
	team := seedTeam(t, repo, owner, 3, true)
	seedMember(t, repo, team.ID, alice)

	assert.ErrorIs(t, engine.UpdateRole(team.ID, alice, alice, "Designer"), ErrNotOwner)
	assert.ErrorIs(t, engine.UpdateRole(team.ID, owner, owner, "Designer"), ErrNotAllowed)
	assert.ErrorIs(t, engine.UpdateRole(team.ID, owner, uuid.New(), "Designer"), ErrTargetNotFound)
	assert.ErrorIs(t, engine.UpdateRole(team.ID, owner, alice, "   "), ErrValidation)

	require.NoError(t, engine.UpdateRole(team.ID, owner, alice, "Designer"))
	member, err := repo.GetMember(team.ID, alice)
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, "Designer", member.Role)
}

func TestUpdateTeamDetails(t *testing.T) {
	repo := newMemoryRepository()
	engine := NewMembershipEngine(repo, true)
	owner := uuid.New()
	team := seedTeam(t, repo, owner, 3, true)
	seedMember(t, repo, team.ID, uuid.New())
	seedMember(t, repo, team.ID, uuid.New())

	_, err := engine.UpdateTeamDetails(team.ID, uuid.New(), TeamUpdate{})
	assert.ErrorIs(t, err, ErrNotOwner)

	desc := "Looking for a backend dev"
	closed := false
	updated, err := engine.UpdateTeamDetails(team.ID, owner, TeamUpdate{
		Description: &desc,
		IsOpen:      &closed,
	})
	require.NoError(t, err)
	assert.Equal(t, desc, updated.Description)
	assert.False(t, updated.IsOpen)

	// Capacity cannot shrink below the current member count.
	tooSmall := 1
	_, err = engine.UpdateTeamDetails(team.ID, owner, TeamUpdate{MaxSize: &tooSmall})
	assert.ErrorIs(t, err, ErrValidation)

	bigger := 2
	updated, err = engine.UpdateTeamDetails(team.ID, owner, TeamUpdate{MaxSize: &bigger})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.MaxSize)
}

func TestDeleteTeamClearsRelationships(t *testing.T) {
	repo := newMemoryRepository()
	engine := NewMembershipEngine(repo, true)
	owner, alice, bob := uuid.New(), uuid.New(), uuid.New()
	team := seedTeam(t, repo, owner, 3, true)
	seedMember(t, repo, team.ID, alice)
	require.NoError(t, engine.RequestJoin(team.ID, bob))

	assert.ErrorIs(t, engine.DeleteTeam(team.ID, alice), ErrNotOwner)
	require.NoError(t, engine.DeleteTeam(team.ID, owner))

	snapshot, err := repo.GetSnapshot(team.ID)
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	requests, err := repo.GetJoinRequestsForUser(bob)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestRelationshipPrecedence(t *testing.T) {
	ownerID, viewerID := uuid.New(), uuid.New()
	base := func() *Snapshot {
		return &Snapshot{Team: &Team{
			Base:    models.Base{ID: uuid.New()},
			OwnerID: ownerID,
			MaxSize: 3,
		}}
	}

	t.Run("owner wins over everything", func(t *testing.T) {
		s := base()
		s.Members = []TeamMember{{UserID: ownerID}}
		assert.Equal(t, RelationOwner, Relationship(s, ownerID))
	})

	t.Run("member wins over pending rows", func(t *testing.T) {
		s := base()
		s.Members = []TeamMember{{UserID: viewerID}}
		s.Invitations = []TeamInvitation{{UserID: viewerID, Status: StatusPending}}
		s.Requests = []JoinRequest{{UserID: viewerID, Status: StatusPending}}
		assert.Equal(t, RelationMember, Relationship(s, viewerID))
	})

	t.Run("invited wins over requested", func(t *testing.T) {
		s := base()
		s.Invitations = []TeamInvitation{{UserID: viewerID, Status: StatusPending}}
		s.Requests = []JoinRequest{{UserID: viewerID, Status: StatusPending}}
		assert.Equal(t, RelationInvited, Relationship(s, viewerID))
	})

	t.Run("requested wins over rejected history", func(t *testing.T) {
		s := base()
		s.Requests = []JoinRequest{
			{UserID: viewerID, Status: StatusRejected},
			{UserID: viewerID, Status: StatusPending},
		}
		assert.Equal(t, RelationRequested, Relationship(s, viewerID))
	})

	t.Run("rejected from either table", func(t *testing.T) {
		s := base()
		s.Invitations = []TeamInvitation{{UserID: viewerID, Status: StatusRejected}}
		assert.Equal(t, RelationRejected, Relationship(s, viewerID))

		s = base()
		s.Requests = []JoinRequest{{UserID: viewerID, Status: StatusRejected}}
		assert.Equal(t, RelationRejected, Relationship(s, viewerID))
	})

	t.Run("stranger and anonymous are none", func(t *testing.T) {
		s := base()
		s.Members = []TeamMember{{UserID: uuid.New()}}
		assert.Equal(t, RelationNone, Relationship(s, viewerID))
		assert.Equal(t, RelationNone, Relationship(s, uuid.Nil))
	})
}

func TestSnapshotCounts(t *testing.T) {
	s := &Snapshot{
		Team: &Team{MaxSize: 2},
		Members: []TeamMember{
			{UserID: uuid.New()},
			{UserID: uuid.New()},
		},
	}
	assert.Equal(t, 2, s.CurrentSize())
	assert.True(t, s.IsFull())

	s.Team.MaxSize = 5
	assert.False(t, s.IsFull())
}
