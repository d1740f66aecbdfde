package team

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wrendann/teamfinder/internal/models"
)

// memoryRepository is an in-memory TeamRepository for exercising the
// membership engine without a database. Transactions are flat: the engine
// validates before it mutates, so rollback is never needed here.
type memoryRepository struct {
	mu          sync.Mutex
	teams       map[uuid.UUID]*Team
	members     []*TeamMember
	requests    []*JoinRequest
	invitations []*TeamInvitation
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{teams: make(map[uuid.UUID]*Team)}
}

func (r *memoryRepository) WithTransaction(fn func(tx TeamRepository) error) error {
	return fn(r)
}

func stamp(b *models.Base) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
}

func (r *memoryRepository) CreateTeam(team *Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&team.Base)
	r.teams[team.ID] = team
	return nil
}

func (r *memoryRepository) GetTeamByID(id uuid.UUID) (*Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.teams[id], nil
}

func (r *memoryRepository) GetTeams(page, limit int, filters map[string]interface{}) ([]Team, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *memoryRepository) UpdateTeam(team *Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[team.ID] = team
	return nil
}

func (r *memoryRepository) DeleteTeam(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.teams, id)
	r.members = filterMembers(r.members, func(m *TeamMember) bool { return m.TeamID != id })
	r.requests = filterRequests(r.requests, func(q *JoinRequest) bool { return q.TeamID != id })
	r.invitations = filterInvitations(r.invitations, func(i *TeamInvitation) bool { return i.TeamID != id })
	return nil
}

func (r *memoryRepository) GetTeamsOwnedBy(userID uuid.UUID) ([]Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Team
	for _, t := range r.teams {
		if t.OwnerID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memoryRepository) GetTeamsWithMember(userID uuid.UUID) ([]Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Team
	for _, m := range r.members {
		if m.UserID == userID {
			if t, ok := r.teams[m.TeamID]; ok {
				out = append(out, *t)
			}
		}
	}
	return out, nil
}

func (r *memoryRepository) GetTeamsByEvent(eventID uuid.UUID) ([]Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Team
	for _, t := range r.teams {
		if t.EventID != eventID {
			continue
		}
		copied := *t
		copied.Members = nil
		for _, m := range r.members {
			if m.TeamID == t.ID {
				copied.Members = append(copied.Members, *m)
			}
		}
		out = append(out, copied)
	}
	return out, nil
}

func (r *memoryRepository) GetSnapshot(teamID uuid.UUID) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	team, ok := r.teams[teamID]
	if !ok {
		return nil, nil
	}
	s := &Snapshot{Team: team}
	for _, m := range r.members {
		if m.TeamID == teamID {
			s.Members = append(s.Members, *m)
		}
	}
	for _, q := range r.requests {
		if q.TeamID == teamID {
			s.Requests = append(s.Requests, *q)
		}
	}
	for _, i := range r.invitations {
		if i.TeamID == teamID {
			s.Invitations = append(s.Invitations, *i)
		}
	}
	return s, nil
}

func (r *memoryRepository) GetMember(teamID, userID uuid.UUID) (*TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.TeamID == teamID && m.UserID == userID {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) CountMembers(teamID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, m := range r.members {
		if m.TeamID == teamID {
			count++
		}
	}
	return count, nil
}

func (r *memoryRepository) CreateMember(member *TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&member.Base)
	r.members = append(r.members, member)
	return nil
}

func (r *memoryRepository) UpdateMember(member *TeamMember) error {
	return nil
}

func (r *memoryRepository) DeleteMember(teamID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members = filterMembers(r.members, func(m *TeamMember) bool {
		return !(m.TeamID == teamID && m.UserID == userID)
	})
	return nil
}

func (r *memoryRepository) GetPendingJoinRequest(teamID, userID uuid.UUID) (*JoinRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.requests {
		if q.TeamID == teamID && q.UserID == userID && q.Status == StatusPending {
			return q, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) HasRejectedJoinRequest(teamID, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.requests {
		if q.TeamID == teamID && q.UserID == userID && q.Status == StatusRejected {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) GetJoinRequestsForUser(userID uuid.UUID) ([]JoinRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []JoinRequest
	for _, q := range r.requests {
		if q.UserID == userID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *memoryRepository) CreateJoinRequest(request *JoinRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&request.Base)
	r.requests = append(r.requests, request)
	return nil
}

func (r *memoryRepository) UpdateJoinRequest(request *JoinRequest) error {
	return nil
}

func (r *memoryRepository) DeleteJoinRequests(teamID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = filterRequests(r.requests, func(q *JoinRequest) bool {
		return !(q.TeamID == teamID && q.UserID == userID)
	})
	return nil
}

func (r *memoryRepository) GetPendingInvitation(teamID, userID uuid.UUID) (*TeamInvitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.invitations {
		if i.TeamID == teamID && i.UserID == userID && i.Status == StatusPending {
			return i, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) HasRejectedInvitation(teamID, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.invitations {
		if i.TeamID == teamID && i.UserID == userID && i.Status == StatusRejected {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) GetInvitationsForUser(userID uuid.UUID) ([]TeamInvitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []TeamInvitation
	for _, i := range r.invitations {
		if i.UserID == userID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (r *memoryRepository) CreateInvitation(invitation *TeamInvitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&invitation.Base)
	r.invitations = append(r.invitations, invitation)
	return nil
}

func (r *memoryRepository) UpdateInvitation(invitation *TeamInvitation) error {
	return nil
}

func (r *memoryRepository) DeleteInvitations(teamID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invitations = filterInvitations(r.invitations, func(i *TeamInvitation) bool {
		return !(i.TeamID == teamID && i.UserID == userID)
	})
	return nil
}

func filterMembers(in []*TeamMember, keep func(*TeamMember) bool) []*TeamMember {
	out := in[:0]
	for _, m := range in {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func filterRequests(in []*JoinRequest, keep func(*JoinRequest) bool) []*JoinRequest {
	out := in[:0]
	for _, q := range in {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

func filterInvitations(in []*TeamInvitation, keep func(*TeamInvitation) bool) []*TeamInvitation {
	out := in[:0]
	for _, i := range in {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}
