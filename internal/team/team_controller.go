package team

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	mw "github.com/wrendann/teamfinder/internal/middleware"
	"github.com/wrendann/teamfinder/internal/user"
	"github.com/wrendann/teamfinder/pkg/responses"
	"github.com/wrendann/teamfinder/pkg/validator"
)

// TeamController exposes the team directory and every membership transition
// over HTTP. All state changes go through the engine; handlers only parse,
// authenticate and translate errors.
type TeamController struct {
	repo     TeamRepository
	userRepo user.UserRepository
	engine   *MembershipEngine
	logger   *zap.Logger
}

// NewTeamController creates a new team controller.
func NewTeamController(repo TeamRepository, userRepo user.UserRepository, engine *MembershipEngine, logger *zap.Logger) *TeamController {
	return &TeamController{
		repo:     repo,
		userRepo: userRepo,
		engine:   engine,
		logger:   logger,
	}
}

type CreateTeamRequest struct {
	Name           string    `json:"name" binding:"required,min=3,max=100"`
	Description    string    `json:"description"`
	EventID        uuid.UUID `json:"event_id" binding:"required"`
	MaxSize        int       `json:"max_size" binding:"omitempty,min=1,max=100"`
	RequiredSkills string    `json:"required_skills"`
	IsOpen         *bool     `json:"is_open"`
}

type UpdateTeamRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=3,max=100"`
	Description    *string `json:"description"`
	RequiredSkills *string `json:"required_skills"`
	IsOpen         *bool   `json:"is_open"`
	MaxSize        *int    `json:"max_size" binding:"omitempty,min=1,max=100"`
}

type InviteRequest struct {
	Username string `json:"username" binding:"required"`
}

type MemberActionRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

type UpdateRoleRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
	Role   string    `json:"role" binding:"required,max=50"`
}

// MemberEntry is a member row as rendered in a team detail.
type MemberEntry struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// RequestEntry is a pending join request in a team detail. Only the owner
// receives these.
type RequestEntry struct {
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	RequestedAt time.Time `json:"requested_at"`
}

// InviteEntry is a pending invitation in a team detail. Only the owner
// receives these.
type InviteEntry struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	InvitedAt time.Time `json:"invited_at"`
}

// TeamSummary is the list-view shape of a team.
type TeamSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	EventID        uuid.UUID `json:"event_id"`
	EventName      string    `json:"event_name"`
	OwnerID        uuid.UUID `json:"owner_id"`
	OwnerUsername  string    `json:"owner_username"`
	MaxSize        int       `json:"max_size"`
	CurrentSize    int       `json:"current_size"`
	IsFull         bool      `json:"is_full"`
	IsOpen         bool      `json:"is_open"`
	RequiredSkills string    `json:"required_skills"`
	CreatedAt      time.Time `json:"created_at"`
}

// TeamDetail is the full team view. ViewerRelationship is recomputed on
// every fetch; PendingRequests and PendingInvites are populated only for
// the owner.
type TeamDetail struct {
	TeamSummary
	ApprovedMembers    []MemberEntry  `json:"approved_members"`
	PendingRequests    []RequestEntry `json:"pending_requests,omitempty"`
	PendingInvites     []InviteEntry  `json:"pending_invites,omitempty"`
	ViewerRelationship RelationState  `json:"viewer_relationship"`
}

func toSummary(t *Team) TeamSummary {
	return TeamSummary{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		EventID:        t.EventID,
		EventName:      t.Event.Name,
		OwnerID:        t.OwnerID,
		OwnerUsername:  t.Owner.Username,
		MaxSize:        t.MaxSize,
		CurrentSize:    len(t.Members),
		IsFull:         len(t.Members) >= t.MaxSize,
		IsOpen:         t.IsOpen,
		RequiredSkills: t.RequiredSkills,
		CreatedAt:      t.CreatedAt,
	}
}

func toDetail(s *Snapshot, viewerID uuid.UUID) TeamDetail {
	detail := TeamDetail{
		TeamSummary:        toSummary(s.Team),
		ApprovedMembers:    make([]MemberEntry, 0, len(s.Members)),
		ViewerRelationship: Relationship(s, viewerID),
	}
	detail.CurrentSize = s.CurrentSize()
	detail.IsFull = s.IsFull()

	for _, m := range s.Members {
		detail.ApprovedMembers = append(detail.ApprovedMembers, MemberEntry{
			UserID:   m.UserID,
			Username: m.User.Username,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		})
	}

	if detail.ViewerRelationship == RelationOwner {
		for _, r := range s.Requests {
			if r.Status != StatusPending {
				continue
			}
			detail.PendingRequests = append(detail.PendingRequests, RequestEntry{
				UserID:      r.UserID,
				Username:    r.User.Username,
				RequestedAt: r.CreatedAt,
			})
		}
		for _, inv := range s.Invitations {
			if inv.Status != StatusPending {
				continue
			}
			detail.PendingInvites = append(detail.PendingInvites, InviteEntry{
				UserID:    inv.UserID,
				Username:  inv.User.Username,
				InvitedAt: inv.CreatedAt,
			})
		}
	}
	return detail
}

// sendTransitionError translates an engine error into the wire taxonomy.
func (tc *TeamController) sendTransitionError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		tc.logger.Error("membership transition failed", zap.Error(err))
		responses.InternalServerError(c, "")
		return
	}
	responses.SendErrorReason(c, status, err.Error(), Reason(err))
}

func (tc *TeamController) callerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := mw.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return uuid.Nil, false
	}
	return id, true
}

func (tc *TeamController) teamIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		responses.BadRequest(c, "Invalid team ID")
		return uuid.Nil, false
	}
	return id, true
}

// CreateTeam godoc
// @Summary Create a team
// @Description Creates a team under an event. The caller becomes the owner and does not occupy a member slot.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team details"
// @Success 201 {object} responses.SuccessResponse{data=TeamSummary} "Team created"
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Security ApiKeyAuth
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	callerID, ok := tc.callerID(c)
	if !ok {
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	team := Team{
		Name:           req.Name,
		Description:    req.Description,
		EventID:        req.EventID,
		OwnerID:        callerID,
		MaxSize:        req.MaxSize,
		RequiredSkills: req.RequiredSkills,
		IsOpen:         true,
	}
	if team.MaxSize == 0 {
		team.MaxSize = DefaultMaxSize
	}
	if req.IsOpen != nil {
		team.IsOpen = *req.IsOpen
	}

	if err := tc.repo.CreateTeam(&team); err != nil {
		responses.InternalServerError(c, "Failed to create team: "+err.Error())
		return
	}

	created, err := tc.repo.GetTeamByID(team.ID)
	if err != nil || created == nil {
		responses.InternalServerError(c, "Failed to load created team")
		return
	}
	tc.logger.Info("team created",
		zap.String("team_id", team.ID.String()),
		zap.String("owner_id", callerID.String()))
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", toSummary(created))
}

// GetAllTeams godoc
// @Summary List teams
// @Description Retrieves teams with optional name, event and openness filters.
// @Tags Teams
// @Produce json
// @Param name query string false "Name substring filter"
// @Param event_id query string false "Filter by event"
// @Param is_open query bool false "Filter by openness"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]TeamSummary} "List of teams"
// @Security ApiKeyAuth
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	filters := make(map[string]interface{})
	if name := c.Query("name"); name != "" {
		filters["name"] = name
	}
	if rawEventID := c.Query("event_id"); rawEventID != "" {
		eventID, err := uuid.Parse(rawEventID)
		if err != nil {
			responses.BadRequest(c, "Invalid event ID")
			return
		}
		filters["event_id"] = eventID
	}
	if rawOpen := c.Query("is_open"); rawOpen != "" {
		isOpen, err := strconv.ParseBool(rawOpen)
		if err != nil {
			responses.BadRequest(c, "Invalid is_open value")
			return
		}
		filters["is_open"] = isOpen
	}

	teams, total, err := tc.repo.GetTeams(page, limit, filters)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams: "+err.Error())
		return
	}

	summaries := make([]TeamSummary, 0, len(teams))
	for i := range teams {
		summaries = append(summaries, toSummary(&teams[i]))
	}
	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", summaries, total, page, limit)
}

// GetTeamByID godoc
// @Summary Get a team
// @Description Retrieves full team details. The viewer's relationship to the team is recomputed on every fetch; pending requests and invitations are included only for the owner.
// @Tags Teams
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=TeamDetail} "Team details"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	callerID, ok := tc.callerID(c)
	if !ok {
		return
	}
	teamID, ok := tc.teamIDParam(c)
	if !ok {
		return
	}

	snapshot, err := tc.repo.GetSnapshot(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return
	}
	if snapshot == nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", toDetail(snapshot, callerID))
}

// UpdateTeam godoc
// @Summary Update team details
// @Description Patches team attributes. Owner only. Max size cannot shrink below the current member count.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Param team body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=TeamSummary} "Team updated"
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /teams/{team_id} [patch]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	callerID, ok := tc.callerID(c)
	if !ok {
		return
	}
	teamID, ok := tc.teamIDParam(c)
	if !ok {
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	updated, err := tc.engine.UpdateTeamDetails(teamID, callerID, TeamUpdate{
		Name:           req.Name,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		IsOpen:         req.IsOpen,
		MaxSize:        req.MaxSize,
	})
	if err != nil {
		tc.sendTransitionError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", toSummary(updated))
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Deletes the team and all of its requests, invitations and memberships. Owner only.
// @Tags Teams
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} responses.SuccessResponse "Team deleted"
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	callerID, ok := tc.callerID(c)
	if !ok {
		return
	}
	teamID, ok := tc.teamIDParam(c)
	if !ok {
		return
	}

	if err := tc.engine.DeleteTeam(teamID, callerID); err != nil {
		tc.sendTransitionError(c, err)
		return
	}
	tc.logger.Info("team deleted", zap.String("team_id", teamID.String()))
	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}

// RequestJoin godoc
// @Summary Request to join a team
// @Description Files a join request by the caller. Fails if the caller already has a relationship with the team, or the team is closed or full.
// @Tags Membership
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 201 {object} responses.SuccessResponse "Request filed"
// @Failure 409 {object} responses.ErrorResponse "Already related, team closed, or team full"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/join [post]
func (tc *TeamController) RequestJoin(c *gin.Context) {
	callerID, ok := tc.callerID(c)
	if !ok {
		return
	}
	teamID, ok := tc.teamIDParam(c)
	if !ok {
		return
	}

	if err := tc.engine.RequestJoin(teamID, callerID); err != nil {
		tc.sendTransitionError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Join request submitted", nil)
}

// InviteMember godoc
// @Summary Invite a user to the team
// @Description Invites a user by username. Owner only. Capacity is not checked here; it is enforced when the invitation is accepted.
// @Tags Membership
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Param invite body InviteRequest true "Invitee"
// @Success 201 {object} responses.SuccessResponse "Invitation sent"
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 409 {object} responses.ErrorResponse "Already related"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/invite [post]
func (tc *TeamController) InviteMember(c *gin.Context) {
	callerID, ok := tc.callerID(c)
	if !ok {
		return
	}
	teamID, ok := tc.teamIDParam(c)
	if !ok {
		return
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	target, err := tc.userRepo.GetByUsername(req.Username)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up user: "+err.Error())
		return
	}
	if target == nil {
		responses.NotFound(c, "User")
		return
	}

	if err := tc.engine.Invite(teamID, callerID, target.ID); err != nil {
		tc.sendTransitionError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Invitation sent", nil)
}

// AcceptRequest godoc
// @Summary Accept a join request
// @Description Promotes a pending join request to membership. Owner only. Fails if the team is already full.
// @Tags Membership
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Param body body MemberActionRequest true "Requester"
// @Success 200 {object} responses.SuccessResponse "Request accepted"
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "No pending request"
// @Failure 409 {object} responses.ErrorResponse "Team full"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/members/accept [post]
func (tc *TeamController) AcceptRequest(c *gin.Context) {
	tc.memberAction(c, tc.engine.AcceptRequest, "Join request accepted")
}

// RejectRequest godoc
// @Summary Reject a join request
// @Description Marks a pending join request rejected. Owner only.
// @Tags Membership
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Param body body MemberActionRequest true "Requester"
// @Success 200 {object} responses.SuccessResponse "Request rejected"
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "No pending request"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/members/reject [post]
func (tc *TeamController) RejectRequest(c *gin.Context) {
	tc.memberAction(c, tc.engine.RejectRequest, "Join request rejected")
}

// KickMember godoc
// @Summary Remove a member
// @Description Removes a member from the team. Owner only; the owner cannot be removed.
// @Tags Membership
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Param body body MemberActionRequest true "Member to remove"
// @Success 200 {object} responses.SuccessResponse "Member removed"
// @Failure 403 {object} responses.ErrorResponse "Not the owner or target is the owner"
// @Failure 404 {object} responses.ErrorResponse "Not a member"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/members/kick [post]
func (tc *TeamController) KickMember(c *gin.Context) {
	tc.memberAction(c, tc.engine.Kick, "Member removed")
}

// memberAction handles the shared parse-then-transition shape of the
// owner-on-target endpoints.
func (tc *TeamController) memberAction(c *gin.Context, op func(teamID, callerID, targetID uuid.UUID) error, successMessage string) {
	callerID, ok := tc.callerID(c)
	if !ok {
		return
	}
	teamID, ok := tc.teamIDParam(c)
	if !ok {
		return
	}

	var req MemberActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := op(teamID, callerID, req.UserID); err != nil {
		tc.sendTransitionError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, successMessage, nil)
}

// UpdateMemberRole godoc
// @Summary Update a member's role
// @Description Changes a member's role label. Owner only. The owner has no member row, so their role cannot be edited.
// @Tags Membership
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Param body body UpdateRoleRequest true "Member and new role"
// @Success 200 {object} responses.SuccessResponse "Role updated"
// @Failure 403 {object} responses.ErrorResponse "Not the owner"
// @Failure 404 {object} responses.ErrorResponse "Not a member"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/members/role [patch]
func (tc *TeamController) UpdateMemberRole(c *gin.Context) {
	callerID, ok := tc.callerID(c)
	if !ok {
		return
	}
	teamID, ok := tc.teamIDParam(c)
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := tc.engine.UpdateRole(teamID, callerID, req.UserID, req.Role); err != nil {
		tc.sendTransitionError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Role updated", nil)
}

// LeaveTeam godoc
// @Summary Leave a team
// @Description Removes the caller's own membership. The owner cannot leave.
// @Tags Membership
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} responses.SuccessResponse "Left the team"
// @Failure 403 {object} responses.ErrorResponse "Owner cannot leave"
// @Failure 404 {object} responses.ErrorResponse "Not a member"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/members/leave [post]
func (tc *TeamController) LeaveTeam(c *gin.Context) {
	tc.selfAction(c, tc.engine.Leave, "Left the team")
}

// AcceptInvitation godoc
// @Summary Accept an invitation
// @Description Accepts the caller's own pending invitation. Fails if the team filled up since the invitation was sent.
// @Tags Membership
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} responses.SuccessResponse "Invitation accepted"
// @Failure 404 {object} responses.ErrorResponse "No pending invitation"
// @Failure 409 {object} responses.ErrorResponse "Team full"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/members/accept_invitation [post]
func (tc *TeamController) AcceptInvitation(c *gin.Context) {
	tc.selfAction(c, tc.engine.AcceptInvite, "Invitation accepted")
}

// RejectInvitation godoc
// @Summary Reject an invitation
// @Description Declines the caller's own pending invitation.
// @Tags Membership
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} responses.SuccessResponse "Invitation rejected"
// @Failure 404 {object} responses.ErrorResponse "No pending invitation"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/members/reject_invitation [post]
func (tc *TeamController) RejectInvitation(c *gin.Context) {
	tc.selfAction(c, tc.engine.RejectInvite, "Invitation rejected")
}

// selfAction handles the shared shape of the caller-on-self endpoints.
func (tc *TeamController) selfAction(c *gin.Context, op func(teamID, callerID uuid.UUID) error, successMessage string) {
	callerID, ok := tc.callerID(c)
	if !ok {
		return
	}
	teamID, ok := tc.teamIDParam(c)
	if !ok {
		return
	}

	if err := op(teamID, callerID); err != nil {
		tc.sendTransitionError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, successMessage, nil)
}

// MyTeamsResponse groups the caller's teams by their standing in them.
type MyTeamsResponse struct {
	Owned  []TeamSummary `json:"owned"`
	Member []TeamSummary `json:"member"`
}

// GetMyTeams godoc
// @Summary List the caller's teams
// @Description Retrieves teams the caller owns and teams they are a member of.
// @Tags Membership
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=MyTeamsResponse} "Caller's teams"
// @Security ApiKeyAuth
// @Router /me/teams [get]
func (tc *TeamController) GetMyTeams(c *gin.Context) {
	callerID, ok := tc.callerID(c)
	if !ok {
		return
	}

	owned, err := tc.repo.GetTeamsOwnedBy(callerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams: "+err.Error())
		return
	}
	memberOf, err := tc.repo.GetTeamsWithMember(callerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams: "+err.Error())
		return
	}

	resp := MyTeamsResponse{
		Owned:  make([]TeamSummary, 0, len(owned)),
		Member: make([]TeamSummary, 0, len(memberOf)),
	}
	for i := range owned {
		resp.Owned = append(resp.Owned, toSummary(&owned[i]))
	}
	for i := range memberOf {
		resp.Member = append(resp.Member, toSummary(&memberOf[i]))
	}
	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", resp)
}

// GetMyJoinRequests godoc
// @Summary List the caller's join requests
// @Description Retrieves the caller's join requests across all teams, pending and rejected.
// @Tags Membership
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]JoinRequest} "Caller's join requests"
// @Security ApiKeyAuth
// @Router /me/join-requests [get]
func (tc *TeamController) GetMyJoinRequests(c *gin.Context) {
	callerID, ok := tc.callerID(c)
	if !ok {
		return
	}

	requests, err := tc.repo.GetJoinRequestsForUser(callerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve join requests: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Join requests retrieved successfully", requests)
}

// GetMyInvitations godoc
// @Summary List the caller's invitations
// @Description Retrieves the caller's invitations across all teams, pending and rejected.
// @Tags Membership
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]TeamInvitation} "Caller's invitations"
// @Security ApiKeyAuth
// @Router /me/invitations [get]
func (tc *TeamController) GetMyInvitations(c *gin.Context) {
	callerID, ok := tc.callerID(c)
	if !ok {
		return
	}

	invitations, err := tc.repo.GetInvitationsForUser(callerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve invitations: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Invitations retrieved successfully", invitations)
}
